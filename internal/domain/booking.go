package domain

import (
	"fmt"
	"strings"
	"time"
)

// BookingRequest is a booking submission as posted by the frontend.
// Field names follow the public API contract.
type BookingRequest struct {
	SpaceID      string    `json:"spaceId"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	VehiclePlate string    `json:"vehiclePlate"`
	Arrival      time.Time `json:"arrival"`
	Departure    time.Time `json:"departure"`
	Notes        string    `json:"notes,omitempty"`
	RequiresEV   bool      `json:"requiresEv"`
}

// Validate checks required fields and the arrival/departure ordering.
// The returned error message lists every missing field so the caller can
// surface it directly.
func (b *BookingRequest) Validate() error {
	var missing []string
	check := func(name, value string) {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	check("spaceId", b.SpaceID)
	check("fullName", b.FullName)
	check("email", b.Email)
	check("phone", b.Phone)
	check("vehiclePlate", b.VehiclePlate)
	if b.Arrival.IsZero() {
		missing = append(missing, "arrival")
	}
	if b.Departure.IsZero() {
		missing = append(missing, "departure")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required fields: %s", strings.Join(missing, ", "))
	}

	if !b.Departure.After(b.Arrival) {
		return fmt.Errorf("departure must be later than arrival")
	}
	if !strings.Contains(b.Email, "@") {
		return fmt.Errorf("invalid email address")
	}
	return nil
}
