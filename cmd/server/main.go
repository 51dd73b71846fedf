package main

import (
	"log"
	"net/http"
	"os"
	"runtime/debug"

	internalassets "github.com/iota-uz/staffcal/internal/assets"
	"github.com/iota-uz/staffcal/modules"
	"github.com/iota-uz/staffcal/modules/hrm/presentation/controllers"
	"github.com/iota-uz/staffcal/pkg/application"
	"github.com/iota-uz/staffcal/pkg/configuration"
	"github.com/iota-uz/staffcal/pkg/eventbus"
	"github.com/iota-uz/staffcal/pkg/metrics"
	"github.com/iota-uz/staffcal/pkg/middleware"
	"github.com/iota-uz/staffcal/pkg/server"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	logger := conf.Logger()

	app := application.New(&application.ApplicationOptions{
		Bundle:   application.LoadBundle(),
		EventBus: eventbus.NewEventPublisher(logger),
		Logger:   logger,
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	app.RegisterMiddleware(
		middleware.LogRequests(logger),
	)
	app.RegisterControllers(
		controllers.NewStaticFilesController(internalassets.FS),
	)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}

	serverInstance := server.NewHTTPServer(
		app,
		http.NotFoundHandler(),
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		}),
	)
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
