package controllers

import (
	"net/http"
)

// NotFound covers paths no controller claims, such as multi-segment paths
// outside the platform prefix. Unknown single-segment section ids never get
// here; the navigation controller recovers them to the dashboard.
func NotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`<!DOCTYPE html><html lang="en"><head><title>Not found | FieldSuite</title><link rel="stylesheet" href="/static/app.css"></head><body><div class="section-placeholder"><h1>Page not found</h1><a href="/">Back to dashboard</a></div></body></html>`))
	}
}

func MethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
	}
}
