package controllers

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fieldsuite/fieldsuite/pkg/application"
	"github.com/fieldsuite/fieldsuite/pkg/composables"
)

// SpotlightController serves the global quick-search palette. Results are
// rendered server-side as a list of anchor fragments.
type SpotlightController struct {
	app application.Application
}

func NewSpotlightController(app application.Application) *SpotlightController {
	return &SpotlightController{app: app}
}

func (c *SpotlightController) Key() string {
	return "/spotlight"
}

func (c *SpotlightController) Register(r *mux.Router) {
	r.HandleFunc("/spotlight/search", c.search).Methods(http.MethodGet)
}

func (c *SpotlightController) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items := c.app.Spotlight().Find(ctx, r.URL.Query().Get("q"))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := io.WriteString(w, `<ul class="spotlight-results">`); err != nil {
		return
	}
	for _, item := range items {
		if _, err := io.WriteString(w, `<li>`); err != nil {
			return
		}
		if err := item.Render(ctx, w); err != nil {
			composables.UseLogger(ctx).WithError(err).Error("spotlight item render failed")
			return
		}
		if _, err := io.WriteString(w, `</li>`); err != nil {
			return
		}
	}
	_, _ = io.WriteString(w, `</ul>`)
}
