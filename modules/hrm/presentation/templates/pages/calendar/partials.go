package calendar

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/iota-uz/staffcal/modules/hrm/presentation/viewmodels"
	"github.com/iota-uz/staffcal/pkg/composables"
)

// CellDetail is the popover for a single grid cell.
func CellDetail(vm viewmodels.CellDetail) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := &htmlWriter{w: w}

		hw.raw(`<div class="card p-4 mt-3">`)
		hw.raw(`<div class="flex items-center gap-2">`)
		hw.raw(`<span class="inline-block w-4 h-4 rounded ` + vm.Color + `"></span>`)
		hw.raw(`<span class="font-medium">`)
		hw.text(vm.Label)
		hw.raw(`</span><span class="text-text-600">`)
		hw.text(vm.Date)
		hw.raw(`</span></div>`)

		hw.raw(`<div class="mt-2">`)
		hw.text(vm.FullName)
		if vm.Position != "" {
			hw.raw(`<span class="text-text-600"> · </span><span class="text-text-600">`)
			hw.text(vm.Position)
			hw.raw(`</span>`)
		}
		hw.raw(`</div>`)

		key := "Calendar.NonWorking"
		if vm.IsWorking {
			key = "Calendar.Working"
		}
		hw.raw(`<div class="text-sm text-text-600 mt-1">`)
		hw.text(pageCtx.T(key))
		hw.raw(`</div></div>`)
		return hw.err
	})
}

// EmployeeDetail is the popover for an employee row: the per-type day tally
// over the visible interval.
func EmployeeDetail(vm *viewmodels.EmployeeDetail) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}

		hw.raw(`<div class="card p-4 mt-3">`)
		hw.raw(`<div class="font-medium">`)
		hw.text(vm.FullName)
		hw.raw(`</div>`)
		if vm.Position != "" {
			hw.raw(`<div class="text-sm text-text-600">`)
			hw.text(vm.Position)
			hw.raw(`</div>`)
		}
		hw.raw(`<ul class="mt-2 space-y-1">`)
		for _, c := range vm.Counts {
			hw.raw(`<li class="flex items-center gap-2">`)
			hw.raw(`<span class="inline-block w-4 h-4 rounded ` + c.Color + `"></span>`)
			hw.raw(`<span>`)
			hw.text(c.Label)
			hw.raw(`</span><span class="ml-auto tabular-nums">`)
			hw.text(itoa(c.Count))
			hw.raw(`</span></li>`)
		}
		hw.raw(`</ul></div>`)
		return hw.err
	})
}

// DayOffPicker is the request-day-off dialog: a mini calendar of the current
// statuses plus the request form.
func DayOffPicker(vm *viewmodels.MiniCalendar) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := &htmlWriter{w: w}

		hw.raw(`<div class="card p-4 mt-3" id="day-off-picker">`)
		hw.raw(`<h2 class="font-medium mb-3">`)
		hw.text(pageCtx.T("Calendar.RequestDayOff"))
		hw.raw(`</h2>`)

		hw.raw(`<div class="grid grid-cols-2 gap-4">`)
		for _, month := range vm.Months {
			renderMiniMonth(hw, month)
		}
		hw.raw(`</div>`)

		hw.raw(`<div id="day-off-feedback"></div>`)

		hw.raw(`<form class="mt-4 flex items-end gap-2"`)
		hw.attr("hx-post", "/hrm/day-offs")
		hw.attr("hx-target", "#day-off-picker")
		hw.attr("hx-swap", "outerHTML")
		hw.raw(`>`)
		hw.raw(`<label class="flex flex-col text-sm">`)
		hw.text(pageCtx.T("Calendar.DayOffDate"))
		hw.raw(`<input type="date" name="Date" required class="border border-surface-400 rounded px-2 py-1"/></label>`)
		hw.raw(`<label class="flex flex-col text-sm grow">`)
		hw.text(pageCtx.T("Calendar.DayOffComment"))
		hw.raw(`<input type="text" name="Comment" class="border border-surface-400 rounded px-2 py-1"/></label>`)
		hw.raw(`<button type="submit" class="btn btn-primary">`)
		hw.text(pageCtx.T("Calendar.Submit"))
		hw.raw(`</button></form></div>`)
		return hw.err
	})
}

func renderMiniMonth(hw *htmlWriter, month viewmodels.MiniMonth) {
	hw.raw(`<div><div class="text-sm font-medium mb-1">`)
	hw.text(month.Label)
	hw.raw(`</div><div class="grid grid-cols-7 gap-px">`)
	for i := 0; i < month.LeadingBlanks; i++ {
		hw.raw(`<span></span>`)
	}
	for _, day := range month.Days {
		class := "w-7 h-7 flex items-center justify-center rounded text-xs " + day.Color
		if day.IsToday {
			class += " ring-1 ring-brand-500"
		}
		hw.raw(`<span class="` + class + `"`)
		hw.attr("title", day.Label)
		hw.raw(`>`)
		hw.text(day.Date[8:])
		hw.raw(`</span>`)
	}
	hw.raw(`</div></div>`)
}

// DayOffError renders a validation message into the picker feedback area.
func DayOffError(messageKey string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := &htmlWriter{w: w}
		hw.raw(`<p class="text-sm text-red-600 mt-2">`)
		hw.text(pageCtx.T(messageKey))
		hw.raw(`</p>`)
		return hw.err
	})
}

// DayOffSubmitted replaces the picker after a successful request.
func DayOffSubmitted(date string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := &htmlWriter{w: w}
		hw.raw(`<div class="card p-4 mt-3">`)
		hw.text(pageCtx.T("Calendar.DayOffSubmitted", map[string]interface{}{"Date": date}))
		hw.raw(`</div>`)
		return hw.err
	})
}
