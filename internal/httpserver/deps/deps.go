package deps

import (
	"context"
	"time"

	"github.com/harborpark/transport/internal/domain"
	"github.com/harborpark/transport/internal/logger"
	redisstore "github.com/harborpark/transport/internal/store/redis"
)

// Feed serves the aggregated live payload.
type Feed interface {
	LivePayload(ctx context.Context, bypassCache bool) (*domain.TransportLivePayload, error)
	CacheAge() (time.Duration, bool)
}

// SpaceFinder resolves a single parking space by identifier.
// (nil, nil) means not found.
type SpaceFinder interface {
	SpaceByID(ctx context.Context, id string) (*domain.ParkingSpace, error)
}

// BookingStore persists a validated booking submission.
type BookingStore interface {
	CreateBooking(ctx context.Context, b *domain.BookingRequest) error
}

// Deps is the dependency bundle passed to route registrars.
type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string

	Feed     Feed
	Spaces   SpaceFinder
	Bookings BookingStore      // nil when no database is configured
	Usage    *redisstore.Store // nil when redis is disabled

	CacheTTL time.Duration

	// Booking rate limiting
	BookingBurst        int
	BookingRefillPerMin int
	TrustProxy          bool
}
