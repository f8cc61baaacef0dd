package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fieldsuite/fieldsuite/modules/core/presentation/assets"
)

type StaticController struct{}

func NewStaticController() *StaticController {
	return &StaticController{}
}

func (c *StaticController) Key() string {
	return "/static"
}

func (c *StaticController) Register(r *mux.Router) {
	r.PathPrefix("/static/").Handler(
		http.StripPrefix("/static/", http.FileServer(http.FS(assets.FS))),
	)
}
