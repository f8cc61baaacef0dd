// Package server turns the application's registered controllers and
// middleware into a serving mux router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gorilla/mux"

	"github.com/fieldsuite/fieldsuite/pkg/application"
)

type HTTPServer struct {
	app                     application.Application
	notFoundHandler         http.Handler
	methodNotAllowedHandler http.Handler

	router *mux.Router
	srv    *http.Server
}

func NewHTTPServer(
	app application.Application,
	notFoundHandler, methodNotAllowedHandler http.Handler,
) *HTTPServer {
	return &HTTPServer{
		app:                     app,
		notFoundHandler:         notFoundHandler,
		methodNotAllowedHandler: methodNotAllowedHandler,
	}
}

// Router assembles the mux router on first use and reuses it afterwards.
// Controllers and middleware are read from the application at assembly
// time, so everything registered before the first request is served.
func (s *HTTPServer) Router() *mux.Router {
	if s.router != nil {
		return s.router
	}

	r := mux.NewRouter()
	middlewares := s.app.Middleware()
	r.Use(middlewares...)
	for _, controller := range s.app.Controllers() {
		controller.Register(r)
	}

	// mux does not run r.Use middleware for the fallback handlers; wrap
	// them in the same chain so error pages get logging and session
	// context too.
	r.NotFoundHandler = wrap(s.notFoundHandler, middlewares)
	r.MethodNotAllowedHandler = wrap(s.methodNotAllowedHandler, middlewares)

	s.router = r
	return r
}

func wrap(h http.Handler, middlewares []mux.MiddlewareFunc) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

func (s *HTTPServer) Start(socketAddress string) error {
	s.srv = &http.Server{
		Addr:              socketAddress,
		Handler:           gziphandler.GzipHandler(s.Router()),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s.srv.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
