package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/harborpark/transport/internal/domain"
)

// Store persists booking requests. Bookings are the only write path in the
// system; everything else is read-only aggregation.
type Store struct {
	db *gorm.DB
}

// New opens the database and runs migrations.
func New(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres: %w", err)
	}
	if err := migrate(db); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

type BookingRecord struct {
	ID           int64     `gorm:"primaryKey"`
	SpaceID      string    `gorm:"column:space_id;not null"`
	FullName     string    `gorm:"not null"`
	Email        string    `gorm:"not null"`
	Phone        string    `gorm:"not null"`
	VehiclePlate string    `gorm:"not null"`
	ArrivalAt    time.Time `gorm:"not null"`
	DepartureAt  time.Time `gorm:"not null"`
	Notes        *string
	RequiresEV   bool      `gorm:"column:requires_ev"`
	SubmittedAt  time.Time `gorm:"not null"`
}

func (BookingRecord) TableName() string { return "booking_requests" }

// CreateBooking inserts one validated booking request. The plate is
// normalized to upper case on persist.
func (s *Store) CreateBooking(ctx context.Context, b *domain.BookingRequest) error {
	rec := BookingRecord{
		SpaceID:      strings.TrimSpace(b.SpaceID),
		FullName:     strings.TrimSpace(b.FullName),
		Email:        strings.TrimSpace(b.Email),
		Phone:        strings.TrimSpace(b.Phone),
		VehiclePlate: strings.ToUpper(strings.TrimSpace(b.VehiclePlate)),
		ArrivalAt:    b.Arrival,
		DepartureAt:  b.Departure,
		RequiresEV:   b.RequiresEV,
		SubmittedAt:  time.Now().UTC(),
	}
	if notes := strings.TrimSpace(b.Notes); notes != "" {
		rec.Notes = &notes
	}

	if err := s.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("failed to store booking request: %w", err)
	}
	return nil
}
