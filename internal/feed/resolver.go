package feed

import (
	"context"
	"errors"
	"strings"

	"github.com/harborpark/transport/internal/domain"
	"github.com/harborpark/transport/internal/logger"
)

// SpaceResolver answers space lookups against the curated static dataset
// first, then the live feed. ErrFeedUnavailable is re-raised so the caller
// can render a degraded page; any other live-feed problem resolves to
// "not found" rather than an error.
type SpaceResolver struct {
	static map[string]domain.ParkingSpace
	live   *Aggregator
	log    logger.Logger
}

func NewSpaceResolver(static []domain.ParkingSpace, live *Aggregator, log logger.Logger) *SpaceResolver {
	byID := make(map[string]domain.ParkingSpace, len(static))
	for _, space := range static {
		byID[space.ID] = space
	}
	return &SpaceResolver{static: byID, live: live, log: log}
}

// SpaceByID returns (nil, nil) for blank or unknown ids.
func (r *SpaceResolver) SpaceByID(ctx context.Context, id string) (*domain.ParkingSpace, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, nil
	}

	if space, ok := r.static[id]; ok {
		return &space, nil
	}

	space, err := r.live.SpaceByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrFeedUnavailable) {
			return nil, err
		}
		r.log.Error("unable to resolve parking space",
			logger.String("id", id),
			logger.Error(err))
		return nil, nil
	}
	return space, nil
}
