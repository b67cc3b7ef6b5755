package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/harborpark/transport/internal/httpserver/deps"
	"github.com/harborpark/transport/internal/httpserver/handlers"
	"github.com/harborpark/transport/internal/httpserver/mw"
)

func init() { Register(registerBookings) }

func registerBookings(r chi.Router, d deps.Deps) {
	limiter := mw.RateLimit(mw.RateLimitConfig{
		Burst:        d.BookingBurst,
		RefillPerMin: d.BookingRefillPerMin,
		TrustProxy:   d.TrustProxy,
		Logger:       d.Logger,
	})
	r.With(limiter).Post("/api/bookings", handlers.CreateBooking(d))
}
