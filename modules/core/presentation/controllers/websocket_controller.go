package controllers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fieldsuite/fieldsuite/pkg/application"
)

// WebsocketController mounts the hub that pushes state-sync messages to
// every shell a session has open.
type WebsocketController struct {
	hub application.Huber
}

func NewWebsocketController(hub application.Huber) *WebsocketController {
	return &WebsocketController{hub: hub}
}

func (c *WebsocketController) Key() string {
	return "/ws"
}

func (c *WebsocketController) Register(r *mux.Router) {
	r.Handle("/ws", c.hub).Methods(http.MethodGet)
}
