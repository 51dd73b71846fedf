package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CalendarPagesFetched counts successful day-status page fetches.
	CalendarPagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffcal_calendar_pages_fetched_total",
		Help: "Number of day-status pages fetched from the upstream API.",
	})

	// CalendarFetchErrors counts failed day-status page fetches.
	CalendarFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffcal_calendar_fetch_errors_total",
		Help: "Number of failed day-status page fetches.",
	})

	// CalendarStaleResponsesDiscarded counts fetch responses dropped because
	// the grid interval changed while they were in flight.
	CalendarStaleResponsesDiscarded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffcal_calendar_stale_responses_discarded_total",
		Help: "Number of day-status responses discarded as stale after navigation.",
	})
)
