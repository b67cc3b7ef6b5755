package postgres

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE TABLE IF NOT EXISTS booking_requests (
		id             BIGSERIAL PRIMARY KEY,
		space_id       TEXT NOT NULL,
		full_name      TEXT NOT NULL,
		email          TEXT NOT NULL,
		phone          TEXT NOT NULL,
		vehicle_plate  TEXT NOT NULL,
		arrival_at     TIMESTAMPTZ NOT NULL,
		departure_at   TIMESTAMPTZ NOT NULL,
		notes          TEXT,
		requires_ev    BOOLEAN NOT NULL DEFAULT false,
		submitted_at   TIMESTAMPTZ NOT NULL DEFAULT now()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_booking_requests_space_id ON booking_requests(space_id);`,
	`CREATE INDEX IF NOT EXISTS idx_booking_requests_submitted_at ON booking_requests(submitted_at);`,
}

func migrate(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration statement %d failed: %w", i, err)
		}
	}
	return nil
}
