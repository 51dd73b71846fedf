package controllers

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/iota-uz/staffcal/pkg/application"
)

type StaticFilesController struct {
	fsys fs.FS
}

func NewStaticFilesController(fsys fs.FS) application.Controller {
	return &StaticFilesController{fsys: fsys}
}

func (c *StaticFilesController) Key() string {
	return "/assets"
}

func (c *StaticFilesController) Register(r *mux.Router) {
	r.PathPrefix("/assets/").Handler(
		http.StripPrefix("/assets/", http.FileServer(http.FS(c.fsys))),
	)
}
