package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/hbnb-platform/hbnb-api/internal/api"
	apiMiddleware "github.com/hbnb-platform/hbnb-api/internal/api/middleware"
)

// APIPrefix is the path under which every resource endpoint is mounted.
const APIPrefix = "/api/v1"

// setupRouter creates the application router with its middleware stack and
// all routes.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	r.Route(APIPrefix, func(r chi.Router) {
		api.RegisterRoutes(r, app.facade, app.jwtService)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
