package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/harborpark/transport/internal/httpserver/deps"
	"github.com/harborpark/transport/internal/httpserver/handlers"
)

func init() { Register(registerTransport) }

func registerTransport(r chi.Router, d deps.Deps) {
	r.Get("/api/transport/live", handlers.Live(d))
	r.Get("/api/spaces/{id}", handlers.Space(d))
}
