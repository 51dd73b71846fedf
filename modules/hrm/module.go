package hrm

import (
	"embed"
	"time"

	"github.com/iota-uz/staffcal/modules/hrm/infrastructure/daystatus"
	"github.com/iota-uz/staffcal/modules/hrm/presentation/controllers"
	"github.com/iota-uz/staffcal/modules/hrm/services"
	"github.com/iota-uz/staffcal/pkg/application"
	"github.com/iota-uz/staffcal/pkg/configuration"
)

//go:embed presentation/locales/*.toml
var LocaleFiles embed.FS

type Option func(*Module)

// WithSource overrides the upstream day-status source; local development and
// tests use it to swap in a seeded in-memory source.
func WithSource(source daystatus.PagedSource) Option {
	return func(m *Module) {
		m.source = source
	}
}

func NewModule(opts ...Option) application.Module {
	m := &Module{}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

type Module struct {
	source daystatus.PagedSource
}

func (m *Module) Register(app application.Application) error {
	conf := configuration.Use()

	source := m.source
	if source == nil {
		source = daystatus.NewHTTPSource(conf.DayStatusAPI.BaseURL, conf.DayStatusAPI.Timeout)
	}

	app.RegisterLocaleFiles(&LocaleFiles)

	app.RegisterServices(
		services.NewScheduleService(source, app.EventPublisher(), conf.PageSize, conf.GridSessionTTL),
	)

	app.RegisterControllers(
		controllers.NewCalendarController(app),
		controllers.NewHealthController(app),
	)

	app.RegisterNavItems(NavItems...)

	registerEventObservers(app)

	return nil
}

// registerEventObservers logs grid lifecycle events. Metrics counters are
// incremented at the publishing site; these subscribers only add visibility.
func registerEventObservers(app application.Application) {
	logger := app.Logger()
	bus := app.EventPublisher()

	bus.Subscribe(func(ev services.GridNavigatedEvent) {
		logger.WithFields(map[string]interface{}{
			"tag":    ev.Tag,
			"start":  ev.Interval.Start.Format(time.DateOnly),
			"end":    ev.Interval.End.Format(time.DateOnly),
			"search": ev.Search,
		}).Debug("calendar grid navigated")
	})
	bus.Subscribe(func(ev services.GridPageLoadedEvent) {
		logger.WithFields(map[string]interface{}{
			"tag":   ev.Tag,
			"page":  ev.Page,
			"rows":  ev.RowCount,
			"total": ev.TotalCount,
		}).Debug("calendar page loaded")
	})
	bus.Subscribe(func(ev services.GridFetchFailedEvent) {
		logger.WithError(ev.Err).WithField("page", ev.Page).Warn("calendar page fetch failed")
	})
	bus.Subscribe(func(ev services.StaleResponseDiscardedEvent) {
		logger.WithFields(map[string]interface{}{
			"stale_tag":   ev.StaleTag,
			"current_tag": ev.CurrentTag,
		}).Info("stale day-status response discarded")
	})
	bus.Subscribe(func(ev services.DayOffRequestedEvent) {
		logger.WithField("date", ev.Date.Format(time.DateOnly)).Info("day-off request submitted")
	})
}

func (m *Module) Name() string {
	return "hrm"
}
