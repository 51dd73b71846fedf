package daystatus

import (
	"context"

	"github.com/go-faster/errors"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
)

// ErrFetch marks network or backend failures while fetching a page. The grid
// recovers locally: infinite scroll stops, the user can re-trigger it.
var ErrFetch = errors.New("daystatus: page fetch failed")

// FindParams selects one page of employee day-status rows.
type FindParams struct {
	Search string
	Start  string // ISO YYYY-MM-DD
	End    string // ISO YYYY-MM-DD
	Offset int
	Limit  int
}

// Page is one slice of the row sequence. Contract: len(Items) <= Limit;
// ordering is stable across pages of the same query, so concatenating pages
// 0..k equals a single fetch with limit (k+1)*Limit; TotalCount is constant
// across pages of one query but may differ between independent queries.
type Page struct {
	Items      []calendar.EmployeeDayStatusRow
	TotalCount int
}

// PagedSource supplies day-status data for an employee set and interval, in
// pages keyed by offset/limit. The calendar core consumes this contract and
// never computes day-status business rules itself.
type PagedSource interface {
	FetchPage(ctx context.Context, params FindParams) (*Page, error)
}
