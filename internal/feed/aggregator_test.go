package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/harborpark/transport/internal/logger"
	"github.com/harborpark/transport/internal/sources/govhk"
)

const testInfoJSON = `{"results":[{
	"park_Id":"p1",
	"name":"Star Ferry Carpark",
	"latitude":22.2944,
	"longitude":114.1694,
	"address":{"region":"HK","streetName":"Edinburgh Place"},
	"privateCar":{"space":400,"hourlyCharges":[{"price":30}]}
}]}`

const testVacancyJSON = `{"results":[{
	"park_Id":"p1",
	"privateCar":[{"vacancy":120}]
}]}`

const testTrafficXML = `<list><message>
	<msgID>50123</msgID>
	<CurrentStatus>1</CurrentStatus>
	<EngShort>Accident on Gloucester Road</EngShort>
	<EngText>A traffic accident occurred near Wan Chai.</EngText>
	<ReferenceDate>2024/05/01 下午 03:15:00</ReferenceDate>
</message></list>`

// feedCounters tracks upstream hits per source.
type feedCounters struct {
	info    atomic.Int64
	vacancy atomic.Int64
	traffic atomic.Int64
}

// newTestFeed serves canned upstream bodies; per-source status overrides
// simulate outages.
func newTestFeed(t *testing.T, counters *feedCounters, failVacancy, failTraffic bool) (*Aggregator, *httptest.Server) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/info", func(w http.ResponseWriter, r *http.Request) {
		counters.info.Add(1)
		_, _ = w.Write([]byte(testInfoJSON))
	})
	mux.HandleFunc("/vacancy", func(w http.ResponseWriter, r *http.Request) {
		counters.vacancy.Add(1)
		if failVacancy {
			http.Error(w, "outage", http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(testVacancyJSON))
	})
	mux.HandleFunc("/traffic", func(w http.ResponseWriter, r *http.Request) {
		counters.traffic.Add(1)
		if failTraffic {
			http.Error(w, "outage", http.StatusServiceUnavailable)
			return
		}
		if r.URL.Query().Get("_") == "" {
			t.Error("traffic request missing cache-busting parameter")
		}
		_, _ = w.Write([]byte(testTrafficXML))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	fetcher := govhk.NewClient(logger.Nop(), 2*time.Second)
	agg := New(fetcher, logger.Nop(), Config{
		CarparkInfoURL:    ts.URL + "/info",
		CarparkVacancyURL: ts.URL + "/vacancy",
		TrafficNewsURL:    ts.URL + "/traffic",
		CacheTTL:          30 * time.Second,
	})
	return agg, ts
}

func TestLivePayloadAssemblesAllSources(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, false)

	payload, err := agg.LivePayload(context.Background(), false)
	if err != nil {
		t.Fatalf("LivePayload() error = %v", err)
	}
	if len(payload.Parking) != 1 {
		t.Fatalf("got %d parking spaces, want 1", len(payload.Parking))
	}
	if payload.Parking[0].ID != "p1" {
		t.Errorf("space ID = %q", payload.Parking[0].ID)
	}
	if len(payload.Traffic.Incidents) != 1 {
		t.Fatalf("got %d incidents, want 1", len(payload.Traffic.Incidents))
	}
	if payload.Traffic.SourceTimestamps.Incidents != "2024-05-01T07:15:00Z" {
		t.Errorf("incidents timestamp = %q", payload.Traffic.SourceTimestamps.Incidents)
	}
	if payload.GeneratedAt.IsZero() || payload.GeneratedAt.Location() != time.UTC {
		t.Errorf("GeneratedAt = %v, want non-zero UTC", payload.GeneratedAt)
	}
}

func TestLivePayloadCachesWithinTTL(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, false)

	first, err := agg.LivePayload(context.Background(), false)
	if err != nil {
		t.Fatalf("first LivePayload() error = %v", err)
	}
	second, err := agg.LivePayload(context.Background(), false)
	if err != nil {
		t.Fatalf("second LivePayload() error = %v", err)
	}

	if first != second {
		t.Error("cached call returned a different payload instance")
	}
	if got := counters.info.Load(); got != 1 {
		t.Errorf("info fetched %d times, want 1", got)
	}
}

func TestLivePayloadCacheExpiry(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, false)

	current := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	var mu sync.Mutex
	agg.now = func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		return current
	}

	if _, err := agg.LivePayload(context.Background(), false); err != nil {
		t.Fatalf("LivePayload() error = %v", err)
	}

	mu.Lock()
	current = current.Add(31 * time.Second)
	mu.Unlock()

	if _, err := agg.LivePayload(context.Background(), false); err != nil {
		t.Fatalf("LivePayload() after expiry error = %v", err)
	}
	if got := counters.info.Load(); got != 2 {
		t.Errorf("info fetched %d times, want 2 after TTL expiry", got)
	}
}

func TestLivePayloadBypassAlwaysRefetches(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, false)

	for i := 0; i < 2; i++ {
		if _, err := agg.LivePayload(context.Background(), true); err != nil {
			t.Fatalf("bypass LivePayload() error = %v", err)
		}
	}
	if got := counters.info.Load(); got != 2 {
		t.Errorf("info fetched %d times, want 2", got)
	}

	// Bypass responses never populate the cache slot.
	if _, ok := agg.CacheAge(); ok {
		t.Error("CacheAge() reports a cached payload after bypass-only calls")
	}
}

func TestLivePayloadMandatorySourceFailure(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, true, false)

	_, err := agg.LivePayload(context.Background(), false)
	if !errors.Is(err, ErrFeedUnavailable) {
		t.Fatalf("LivePayload() error = %v, want ErrFeedUnavailable", err)
	}

	// A failed refresh must not leave a cache entry behind.
	if _, ok := agg.CacheAge(); ok {
		t.Error("CacheAge() reports a cached payload after failed refresh")
	}
}

func TestLivePayloadTrafficDegradesToEmpty(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, true)

	payload, err := agg.LivePayload(context.Background(), false)
	if err != nil {
		t.Fatalf("LivePayload() error = %v", err)
	}
	if payload.Traffic.Incidents == nil {
		t.Fatal("incidents slice is nil, want non-nil empty")
	}
	if len(payload.Traffic.Incidents) != 0 {
		t.Errorf("got %d incidents, want 0", len(payload.Traffic.Incidents))
	}
	if payload.Traffic.SourceTimestamps.Incidents != "" {
		t.Errorf("incidents timestamp = %q, want empty", payload.Traffic.SourceTimestamps.Incidents)
	}
	if len(payload.Parking) != 1 {
		t.Errorf("parking section missing despite healthy mandatory sources")
	}
}

func TestLivePayloadRefreshSurvivesCallerCancellation(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// The shared refresh is detached from the requesting context, so a
	// caller that gave up must not poison the result other callers wait on.
	payload, err := agg.LivePayload(ctx, false)
	if err != nil {
		t.Fatalf("LivePayload() with cancelled context error = %v", err)
	}
	if len(payload.Parking) != 1 {
		t.Fatalf("got %d parking spaces, want 1", len(payload.Parking))
	}
	if _, ok := agg.CacheAge(); !ok {
		t.Error("refresh did not populate the cache slot")
	}
}

func TestLivePayloadConcurrentColdStart(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, false)

	const callers = 8
	var wg sync.WaitGroup
	wg.Add(callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		go func(i int) {
			defer wg.Done()
			_, errs[i] = agg.LivePayload(context.Background(), false)
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	if got := counters.info.Load(); got != 1 {
		t.Errorf("info fetched %d times for %d concurrent callers, want 1", got, callers)
	}
}

func TestAggregatorSpaceByID(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, false)

	space, err := agg.SpaceByID(context.Background(), "p1")
	if err != nil {
		t.Fatalf("SpaceByID() error = %v", err)
	}
	if space == nil || space.ID != "p1" {
		t.Fatalf("SpaceByID() = %+v, want p1", space)
	}

	missing, err := agg.SpaceByID(context.Background(), "nope")
	if err != nil {
		t.Fatalf("SpaceByID(nope) error = %v", err)
	}
	if missing != nil {
		t.Errorf("SpaceByID(nope) = %+v, want nil", missing)
	}
}

func TestCacheAge(t *testing.T) {
	var counters feedCounters
	agg, _ := newTestFeed(t, &counters, false, false)

	if _, ok := agg.CacheAge(); ok {
		t.Error("CacheAge() = true before any fetch")
	}

	if _, err := agg.LivePayload(context.Background(), false); err != nil {
		t.Fatalf("LivePayload() error = %v", err)
	}

	age, ok := agg.CacheAge()
	if !ok {
		t.Fatal("CacheAge() = false after successful fetch")
	}
	if age < 0 || age > 10*time.Second {
		t.Errorf("CacheAge() = %v, want small non-negative age", age)
	}
}
