package daystatus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
)

type employeeDTO struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
}

type dayStatusDTO struct {
	Date      string `json:"date"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	IsWorking bool   `json:"is_working"`
}

type rowDTO struct {
	Employee employeeDTO    `json:"employee"`
	Dates    []dayStatusDTO `json:"dates"`
}

type pageDTO struct {
	Items      []rowDTO `json:"items"`
	TotalCount int      `json:"total_count"`
}

// HTTPSource fetches day-status pages from the upstream HR API.
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSource(baseURL string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) FetchPage(ctx context.Context, params FindParams) (*Page, error) {
	endpoint, err := url.Parse(s.baseURL + "/employees/day-statuses")
	if err != nil {
		return nil, errors.Wrap(err, "daystatus: invalid base URL")
	}
	q := endpoint.Query()
	q.Set("start", params.Start)
	q.Set("end", params.End)
	q.Set("offset", strconv.Itoa(params.Offset))
	q.Set("limit", strconv.Itoa(params.Limit))
	if params.Search != "" {
		q.Set("search", params.Search)
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "daystatus: build request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(ErrFetch, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.Wrap(ErrFetch, fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var dto pageDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, errors.Wrap(ErrFetch, err.Error())
	}

	return mapPage(&dto), nil
}

func mapPage(dto *pageDTO) *Page {
	items := make([]calendar.EmployeeDayStatusRow, 0, len(dto.Items))
	for _, row := range dto.Items {
		items = append(items, mapRow(row))
	}
	return &Page{Items: items, TotalCount: dto.TotalCount}
}

func mapRow(dto rowDTO) calendar.EmployeeDayStatusRow {
	id, err := uuid.Parse(dto.Employee.ID)
	if err != nil {
		id = uuid.Nil
	}
	dates := make(calendar.DayStatusMap, len(dto.Dates))
	for _, d := range dto.Dates {
		parsed, err := time.Parse(time.DateOnly, d.Date)
		if err != nil {
			// A malformed record degrades one cell to the working-day
			// default, never the whole row.
			continue
		}
		dates[calendar.DateKey(parsed)] = calendar.DayStatus{
			Date:      parsed,
			Type:      calendar.DayType(d.Type),
			Name:      d.Name,
			IsWorking: d.IsWorking,
		}
	}
	return calendar.EmployeeDayStatusRow{
		Employee: calendar.EmployeeRef{
			ID:        id,
			FirstName: dto.Employee.FirstName,
			LastName:  dto.Employee.LastName,
			Position:  dto.Employee.Position,
		},
		Dates: dates,
	}
}
