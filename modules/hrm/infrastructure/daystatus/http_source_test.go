package daystatus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iota-uz/staffcal/modules/hrm/domain/calendar"
)

func TestHTTPSource_FetchPage(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/employees/day-statuses", r.URL.Path)
		gotQuery = map[string]string{
			"start":  r.URL.Query().Get("start"),
			"end":    r.URL.Query().Get("end"),
			"offset": r.URL.Query().Get("offset"),
			"limit":  r.URL.Query().Get("limit"),
			"search": r.URL.Query().Get("search"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{
					"employee": {"id": "5c5e9d74-9b1e-4f9f-ae2c-111111111111", "first_name": "Anna", "last_name": "Petrova", "position": "Engineer"},
					"dates": [
						{"date": "2024-01-01", "type": "holiday", "name": "New Year", "is_working": false},
						{"date": "2024-01-02", "type": "vacation", "name": "", "is_working": false},
						{"date": "not-a-date", "type": "holiday", "name": "", "is_working": false}
					]
				}
			],
			"total_count": 50
		}`))
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL, 5*time.Second)
	page, err := source.FetchPage(context.Background(), FindParams{
		Search: "petrova",
		Start:  "2024-01-01",
		End:    "2024-12-31",
		Offset: 0,
		Limit:  20,
	})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", gotQuery["start"])
	assert.Equal(t, "2024-12-31", gotQuery["end"])
	assert.Equal(t, "0", gotQuery["offset"])
	assert.Equal(t, "20", gotQuery["limit"])
	assert.Equal(t, "petrova", gotQuery["search"])

	assert.Equal(t, 50, page.TotalCount)
	require.Len(t, page.Items, 1)
	row := page.Items[0]
	assert.Equal(t, "Petrova Anna", row.Employee.FullName())
	// The malformed date record is dropped, the valid ones survive.
	require.Len(t, row.Dates, 2)
	status := calendar.Classify(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), row.Dates)
	assert.Equal(t, calendar.Holiday, status.Type)
	assert.Equal(t, "New Year", status.Name)
}

func TestHTTPSource_FetchPage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	source := NewHTTPSource(srv.URL, 5*time.Second)
	_, err := source.FetchPage(context.Background(), FindParams{Start: "2024-01-01", End: "2024-12-31", Limit: 20})
	require.ErrorIs(t, err, ErrFetch)
}

func TestHTTPSource_FetchPage_ContextCanceled(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	source := NewHTTPSource(srv.URL, 5*time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := source.FetchPage(ctx, FindParams{Start: "2024-01-01", End: "2024-12-31", Limit: 20})
	require.Error(t, err)
}

func TestMemorySource_Paging(t *testing.T) {
	rows := make([]calendar.EmployeeDayStatusRow, 5)
	for i := range rows {
		rows[i] = calendar.EmployeeDayStatusRow{
			Employee: calendar.EmployeeRef{LastName: string(rune('A' + i))},
			Dates:    calendar.DayStatusMap{},
		}
	}
	source := NewMemorySource(rows)

	page, err := source.FetchPage(context.Background(), FindParams{Offset: 0, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, 5, page.TotalCount)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "A", page.Items[0].Employee.LastName)

	page, err = source.FetchPage(context.Background(), FindParams{Offset: 4, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "E", page.Items[0].Employee.LastName)

	page, err = source.FetchPage(context.Background(), FindParams{Offset: 10, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestMemorySource_Search(t *testing.T) {
	rows := []calendar.EmployeeDayStatusRow{
		{Employee: calendar.EmployeeRef{FirstName: "Anna", LastName: "Petrova"}},
		{Employee: calendar.EmployeeRef{FirstName: "Boris", LastName: "Ivanov"}},
	}
	source := NewMemorySource(rows)

	page, err := source.FetchPage(context.Background(), FindParams{Search: "ivanov", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ivanov Boris", page.Items[0].Employee.FullName())
}
