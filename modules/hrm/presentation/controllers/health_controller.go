package controllers

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/iota-uz/staffcal/pkg/application"
	"github.com/iota-uz/staffcal/pkg/configuration"
	"github.com/iota-uz/staffcal/pkg/httpapi"
)

type HealthController struct {
	app       application.Application
	startedAt time.Time
}

func NewHealthController(app application.Application) application.Controller {
	return &HealthController{app: app, startedAt: time.Now()}
}

func (c *HealthController) Key() string {
	return "/health"
}

func (c *HealthController) Register(r *mux.Router) {
	r.HandleFunc("/health", c.Get).Methods(http.MethodGet)
}

func (c *HealthController) Get(w http.ResponseWriter, r *http.Request) {
	conf := configuration.Use()
	_ = httpapi.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": conf.GoAppEnvironment,
		"uptime":      time.Since(c.startedAt).Round(time.Second).String(),
	})
}
