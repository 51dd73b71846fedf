package calendar

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/iota-uz/staffcal/modules/hrm/presentation/templates/layouts"
	"github.com/iota-uz/staffcal/modules/hrm/presentation/viewmodels"
	"github.com/iota-uz/staffcal/pkg/composables"
)

const (
	basePath = "/hrm/calendar"
	rowsPath = "/hrm/calendar/rows"
)

// Index is the full calendar page.
func Index(vm *viewmodels.CalendarGrid) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		content := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
			hw := &htmlWriter{w: w}
			hw.raw(`<main class="p-4">`)
			hw.err = firstErr(hw.err, Grid(vm).Render(ctx, w))
			hw.raw(`<div id="calendar-detail"></div>`)
			hw.raw(`</main>`)
			return hw.err
		})
		layout := layouts.Base(layouts.BaseProps{Title: pageCtx.T("Calendar.Title")})
		return layout.Render(templ.WithChildren(ctx, content), w)
	})
}

// Grid renders the toolbar plus the scrollable month/day table. The whole
// block is swapped on navigation; only row batches are appended on scroll.
func Grid(vm *viewmodels.CalendarGrid) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		pageCtx := composables.UsePageCtx(ctx)
		hw := &htmlWriter{w: w}

		hw.raw(`<div id="calendar-grid"`)
		hw.attr("data-tag", vm.Tag)
		hw.attr("data-today-col", itoa(vm.TodayColumn))
		hw.raw(`>`)

		renderToolbar(hw, pageCtx.T, vm)

		hw.raw(`<div id="calendar-scroll" class="overflow-auto max-h-[75vh] border border-surface-400 rounded-lg">`)
		hw.raw(`<table class="border-collapse text-sm min-w-full">`)

		renderHeader(hw, vm)

		hw.raw(`<tbody id="calendar-rows">`)
		renderRows(hw, vm)
		renderSentinel(hw, vm)
		hw.raw(`</tbody></table></div>`)

		// One-time scroll so today's column starts centered.
		hw.raw(`<script>(function(){var g=document.getElementById("calendar-grid");` +
			`if(g.dataset.centered)return;g.dataset.centered="1";` +
			`var c=parseInt(g.dataset.todayCol,10);if(c<0)return;` +
			`var s=document.getElementById("calendar-scroll");` +
			`var cell=s.querySelector("thead tr:last-child th:nth-child("+(c+2)+")");` +
			`if(cell)s.scrollLeft=cell.offsetLeft-s.clientWidth/2;})();</script>`)

		hw.raw(`</div>`)
		return hw.err
	})
}

func renderToolbar(hw *htmlWriter, t func(string, ...map[string]interface{}) string, vm *viewmodels.CalendarGrid) {
	hw.raw(`<div class="flex items-center gap-2 mb-3">`)

	navButton(hw, t("Calendar.Prev"), basePath+"?action=back")
	navButton(hw, t("Calendar.Today"), basePath+"?action=today")
	navButton(hw, t("Calendar.Next"), basePath+"?action=forward")

	hw.raw(`<span class="font-medium px-2">`)
	hw.text(itoa(vm.AnchorYear))
	hw.raw(`</span>`)
	navButton(hw, "−", basePath+"?action=year&year="+itoa(vm.AnchorYear-1))
	navButton(hw, "+", basePath+"?action=year&year="+itoa(vm.AnchorYear+1))

	spanButton(hw, t("Calendar.FourMonths"), 4, vm.Span)
	spanButton(hw, t("Calendar.TwelveMonths"), 12, vm.Span)

	hw.raw(`<input id="calendar-search" type="search" name="search" class="ml-auto border border-surface-400 rounded px-2 py-1"`)
	hw.attr("value", vm.Search)
	hw.attr("placeholder", t("Calendar.SearchPlaceholder"))
	hw.attr("hx-get", basePath)
	hw.attr("hx-trigger", "input changed delay:300ms, search")
	hw.attr("hx-target", "#calendar-grid")
	hw.attr("hx-swap", "outerHTML")
	hw.raw(`/>`)

	hw.raw(`<button class="btn btn-primary"`)
	hw.attr("hx-get", "/hrm/day-offs/new")
	hw.attr("hx-target", "#calendar-detail")
	hw.raw(`>`)
	hw.text(t("Calendar.RequestDayOff"))
	hw.raw(`</button>`)

	hw.raw(`</div>`)
}

func navButton(hw *htmlWriter, label, url string) {
	hw.raw(`<button class="btn btn-secondary"`)
	hw.attr("hx-get", url)
	hw.attr("hx-target", "#calendar-grid")
	hw.attr("hx-swap", "outerHTML")
	hw.attr("hx-include", "#calendar-search")
	hw.raw(`>`)
	hw.text(label)
	hw.raw(`</button>`)
}

func spanButton(hw *htmlWriter, label string, span, active int) {
	class := "btn btn-secondary"
	if span == active {
		class = "btn btn-primary"
	}
	hw.raw(`<button class="` + class + `"`)
	hw.attr("hx-get", basePath+"?action=span&span="+itoa(span))
	hw.attr("hx-target", "#calendar-grid")
	hw.attr("hx-swap", "outerHTML")
	hw.attr("hx-include", "#calendar-search")
	hw.raw(`>`)
	hw.text(label)
	hw.raw(`</button>`)
}

func renderHeader(hw *htmlWriter, vm *viewmodels.CalendarGrid) {
	hw.raw(`<thead class="sticky top-0 bg-surface-100 z-10"><tr>`)
	hw.raw(`<th rowspan="2" class="sticky left-0 bg-surface-100 border border-surface-400 px-3 min-w-48"></th>`)
	for _, m := range vm.Months {
		hw.raw(`<th colspan="` + itoa(m.DayCount) + `" class="border border-surface-400 px-2 py-1 text-left whitespace-nowrap">`)
		hw.text(m.Label)
		hw.raw(`</th>`)
	}
	hw.raw(`</tr><tr>`)
	for _, d := range vm.Days {
		class := "border border-surface-400 w-8 text-center font-normal"
		if d.IsToday {
			class += " bg-brand-200 font-semibold"
		}
		hw.raw(`<th class="` + class + `"`)
		hw.attr("data-date", d.Date)
		hw.raw(`>`)
		hw.text(itoa(d.Day))
		hw.raw(`</th>`)
	}
	hw.raw(`</tr></thead>`)
}

func renderRows(hw *htmlWriter, vm *viewmodels.CalendarGrid) {
	for _, row := range vm.Rows {
		hw.raw(`<tr class="h-10">`)
		hw.raw(`<td class="sticky left-0 bg-surface-100 border border-surface-400 px-3 whitespace-nowrap cursor-pointer"`)
		hw.attr("hx-get", basePath+"/employees/"+row.EmployeeID)
		hw.attr("hx-target", "#calendar-detail")
		hw.raw(`><div class="font-medium">`)
		hw.text(row.FullName)
		hw.raw(`</div><div class="text-xs text-text-600">`)
		hw.text(row.Position)
		hw.raw(`</div></td>`)

		for _, cell := range row.Cells {
			class := "border border-surface-300 cursor-pointer " + cell.Color
			if cell.IsToday {
				class += " ring-1 ring-brand-500"
			}
			hw.raw(`<td class="` + class + `"`)
			hw.attr("title", cell.Label)
			hw.attr("hx-get", basePath+"/cell?employee="+row.EmployeeID+"&date="+cell.Date)
			hw.attr("hx-target", "#calendar-detail")
			hw.raw(`></td>`)
		}
		hw.raw(`</tr>`)
	}
}

// renderSentinel emits the infinite-scroll trigger row. Revealing it fetches
// the next batch, which replaces the sentinel with its rows plus a fresh
// sentinel, or with nothing once the sequence is complete.
func renderSentinel(hw *htmlWriter, vm *viewmodels.CalendarGrid) {
	if !vm.ShowSentinel {
		return
	}
	hw.raw(`<tr id="calendar-sentinel"`)
	hw.attr("hx-get", rowsPath+"?page="+itoa(vm.NextPage)+"&tag="+vm.Tag)
	hw.attr("hx-trigger", "revealed")
	hw.attr("hx-swap", "outerHTML")
	hw.raw(`><td colspan="` + itoa(len(vm.Days)+1) + `" class="text-center py-2 text-text-600">…</td></tr>`)
}

// RowBatch is the HTMX response for one appended page: the new rows followed
// by the next sentinel.
func RowBatch(vm *viewmodels.CalendarGrid) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		renderRows(hw, vm)
		renderSentinel(hw, vm)
		return hw.err
	})
}

func firstErr(a, b error) error {
	if a != nil {
		return a
	}
	return b
}
