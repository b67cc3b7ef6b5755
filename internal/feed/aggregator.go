package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/harborpark/transport/internal/domain"
	"github.com/harborpark/transport/internal/logger"
	"github.com/harborpark/transport/internal/sources/govhk"
)

// Config holds the aggregator's source endpoints and cache window.
type Config struct {
	CarparkInfoURL    string
	CarparkVacancyURL string
	TrafficNewsURL    string
	CacheTTL          time.Duration
}

// Aggregator fetches the three upstream sources concurrently, assembles
// the unified payload, and memoizes it in a single in-process cache slot.
//
// The info and vacancy sources are mandatory; either missing fails the
// whole aggregation with ErrFeedUnavailable. The traffic source degrades
// to an empty incident list. Concurrent cache refreshes collapse into one
// upstream round-trip via singleflight.
type Aggregator struct {
	fetcher *govhk.Client
	traffic *govhk.TrafficNormalizer
	log     logger.Logger
	cfg     Config
	now     func() time.Time

	mu     sync.RWMutex
	cached *cacheEntry

	group singleflight.Group
}

// cacheEntry pairs a payload with its fetch time. The slot is replaced
// wholesale on refresh, never mutated in place.
type cacheEntry struct {
	payload   *domain.TransportLivePayload
	fetchedAt time.Time
}

func New(fetcher *govhk.Client, log logger.Logger, cfg Config) *Aggregator {
	return &Aggregator{
		fetcher: fetcher,
		traffic: govhk.NewTrafficNormalizer(log),
		log:     log,
		cfg:     cfg,
		now:     time.Now,
	}
}

// LivePayload returns the current payload. With bypassCache false, a
// cached payload younger than the TTL is returned as-is; otherwise one
// refresh runs (shared across concurrent callers) and overwrites the slot.
// With bypassCache true the sources are always re-fetched and the slot is
// left untouched.
func (a *Aggregator) LivePayload(ctx context.Context, bypassCache bool) (*domain.TransportLivePayload, error) {
	if bypassCache {
		return a.build(ctx)
	}

	if payload := a.cachedPayload(); payload != nil {
		return payload, nil
	}

	v, err, _ := a.group.Do("live", func() (any, error) {
		// A refresh that completed while this caller queued already
		// repopulated the slot.
		if payload := a.cachedPayload(); payload != nil {
			return payload, nil
		}
		// The refresh result is shared with every queued caller, so it
		// must not die with whichever request happened to lead it. The
		// per-source fetch timeout still bounds the work.
		payload, err := a.build(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		a.mu.Lock()
		a.cached = &cacheEntry{payload: payload, fetchedAt: a.now()}
		a.mu.Unlock()
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.TransportLivePayload), nil
}

// SpaceByID resolves a parking space from the live feed. Returns
// (nil, nil) when the id is simply not present; ErrFeedUnavailable is
// propagated, not masked.
func (a *Aggregator) SpaceByID(ctx context.Context, id string) (*domain.ParkingSpace, error) {
	payload, err := a.LivePayload(ctx, false)
	if err != nil {
		return nil, err
	}
	for i := range payload.Parking {
		if payload.Parking[i].ID == id {
			space := payload.Parking[i]
			return &space, nil
		}
	}
	return nil, nil
}

// CacheAge reports how old the cached payload is, and whether one exists.
func (a *Aggregator) CacheAge() (time.Duration, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.cached == nil {
		return 0, false
	}
	return a.now().Sub(a.cached.fetchedAt), true
}

func (a *Aggregator) cachedPayload() *domain.TransportLivePayload {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if a.cached != nil && a.now().Sub(a.cached.fetchedAt) < a.cfg.CacheTTL {
		return a.cached.payload
	}
	return nil
}

// build runs the three fetches in parallel and blocks until all settle.
// Each source resolves to either a complete body or absence; normalization
// never sees a partial response.
func (a *Aggregator) build(ctx context.Context) (*domain.TransportLivePayload, error) {
	var (
		info       govhk.CarparkInfoResponse
		vacancy    govhk.CarparkVacancyResponse
		infoOK     bool
		vacancyOK  bool
		trafficXML string
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		infoOK = a.fetcher.FetchJSON(ctx, a.cfg.CarparkInfoURL, &info)
	}()
	go func() {
		defer wg.Done()
		vacancyOK = a.fetcher.FetchJSON(ctx, a.cfg.CarparkVacancyURL, &vacancy)
	}()
	go func() {
		defer wg.Done()
		trafficXML, _ = a.fetcher.FetchText(ctx, a.trafficNewsURL())
	}()
	wg.Wait()

	if !infoOK || !vacancyOK {
		return nil, ErrFeedUnavailable
	}

	parking := govhk.NormalizeParkingSpaces(&info, &vacancy)
	incidents, incidentsTimestamp := a.traffic.Normalize(trafficXML)

	a.log.Info("assembled live transport payload",
		logger.Int("parking", len(parking)),
		logger.Int("incidents", len(incidents)))

	return &domain.TransportLivePayload{
		GeneratedAt: a.now().UTC(),
		Parking:     parking,
		Traffic: domain.TrafficSection{
			Incidents:        incidents,
			SourceTimestamps: domain.SourceTimestamps{Incidents: incidentsTimestamp},
		},
	}, nil
}

// trafficNewsURL appends a cache-busting parameter; the upstream CDN
// otherwise serves stale advisories.
func (a *Aggregator) trafficNewsURL() string {
	sep := "?"
	if strings.Contains(a.cfg.TrafficNewsURL, "?") {
		sep = "&"
	}
	return fmt.Sprintf("%s%s_=%d", a.cfg.TrafficNewsURL, sep, a.now().UnixMilli())
}
