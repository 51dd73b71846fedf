package daystatus

import (
	"context"
	"strings"
	"sync"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
)

// MemorySource serves pages from a fixed in-memory row sequence. Used by
// tests and the local development seed; honors the same ordering contract as
// the HTTP source.
type MemorySource struct {
	mu   sync.Mutex
	rows []calendar.EmployeeDayStatusRow

	// FetchCount tracks issued requests for test assertions.
	FetchCount int
}

func NewMemorySource(rows []calendar.EmployeeDayStatusRow) *MemorySource {
	return &MemorySource{rows: rows}
}

func (s *MemorySource) FetchPage(ctx context.Context, params FindParams) (*Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.FetchCount++

	matched := make([]calendar.EmployeeDayStatusRow, 0, len(s.rows))
	needle := strings.ToLower(strings.TrimSpace(params.Search))
	for _, row := range s.rows {
		if needle != "" && !strings.Contains(strings.ToLower(row.Employee.FullName()), needle) {
			continue
		}
		matched = append(matched, row)
	}

	total := len(matched)
	if params.Offset >= total {
		return &Page{Items: nil, TotalCount: total}, nil
	}
	end := params.Offset + params.Limit
	if end > total {
		end = total
	}
	items := make([]calendar.EmployeeDayStatusRow, end-params.Offset)
	copy(items, matched[params.Offset:end])
	return &Page{Items: items, TotalCount: total}, nil
}
