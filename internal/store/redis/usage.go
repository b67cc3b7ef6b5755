package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Store records best-effort usage telemetry. Losing a counter increment is
// acceptable; callers ignore errors from IncrementSpaceLookup.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// IncrementSpaceLookup bumps the lookup counter for a parking space.
func (s *Store) IncrementSpaceLookup(ctx context.Context, id string) error {
	if err := s.client.Incr(ctx, SpaceLookupKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to increment space lookups: %w", err)
	}
	return nil
}

// SpaceLookups returns the lookup counter for a parking space (0 when the
// space has never been looked up).
func (s *Store) SpaceLookups(ctx context.Context, id string) (int64, error) {
	n, err := s.client.Get(ctx, SpaceLookupKey(id)).Int64()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read space lookups: %w", err)
	}
	return n, nil
}

// Ping reports connectivity for the status endpoint.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}
