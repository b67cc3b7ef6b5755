package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/harborpark/transport/internal/domain"
	"github.com/harborpark/transport/internal/httpserver/deps"
	"github.com/harborpark/transport/internal/logger"
)

type bookingResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// CreateBooking accepts a booking submission and stores it. The write
// path is deliberately small: decode, validate, insert.
func CreateBooking(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if d.Bookings == nil {
			writeJSON(w, http.StatusServiceUnavailable, bookingResponse{
				Status:  "error",
				Message: "booking store is not configured",
			})
			return
		}

		var booking domain.BookingRequest
		if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
			writeJSON(w, http.StatusBadRequest, bookingResponse{
				Status:  "error",
				Message: "invalid booking payload",
			})
			return
		}

		if err := booking.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, bookingResponse{
				Status:  "error",
				Message: err.Error(),
			})
			return
		}

		if err := d.Bookings.CreateBooking(r.Context(), &booking); err != nil {
			d.Logger.Error("booking insert failed",
				logger.String("space_id", booking.SpaceID),
				logger.Error(err))
			writeJSON(w, http.StatusInternalServerError, bookingResponse{
				Status:  "error",
				Message: "unable to record booking request",
			})
			return
		}

		d.Logger.Info("booking request stored",
			logger.String("space_id", booking.SpaceID))

		writeJSON(w, http.StatusOK, bookingResponse{
			Status:  "ok",
			Message: "Request received. Hosts typically reply within 15 minutes.",
		})
	}
}
