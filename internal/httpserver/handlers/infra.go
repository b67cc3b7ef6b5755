package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/harborpark/transport/internal/httpserver/deps"
)

type healthzResponse struct {
	Status        string  `json:"status"`
	UptimeSeconds float64 `json:"uptime_seconds"`
	Version       string  `json:"version,omitempty"`
	Commit        string  `json:"commit,omitempty"`
	BuildDate     string  `json:"build_date,omitempty"`
	GoVersion     string  `json:"go_version,omitempty"`
}

func Healthz(d deps.Deps) http.HandlerFunc {
	start := d.StartTime
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, healthzResponse{
			Status:        "ok",
			Version:       d.Version,
			Commit:        d.Commit,
			BuildDate:     d.BuildDate,
			GoVersion:     d.GoVersion,
			UptimeSeconds: time.Since(start).Seconds(),
		})
	}
}

type readyzResponse struct {
	Ready bool `json:"ready"`
}

func Readyz(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, readyzResponse{Ready: true})
	}
}

type componentStatus struct {
	OK     bool   `json:"ok"`
	Mode   string `json:"mode,omitempty"`
	AgeSec *int   `json:"cache_age_seconds,omitempty"`
	Error  string `json:"error,omitempty"`
}

type statusResponse struct {
	Mode       string                     `json:"mode"`
	Components map[string]componentStatus `json:"components"`
}

// Status reports component health: feed cache freshness, booking store
// configuration, redis connectivity. Consumed by the presentation layer's
// degradation indicator.
func Status(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		components := map[string]componentStatus{
			"feed":     checkFeed(d),
			"bookings": checkBookings(d),
			"redis":    checkRedis(r.Context(), d),
		}

		mode := "live"
		if !components["feed"].OK {
			mode = "degraded"
		}

		writeJSON(w, http.StatusOK, statusResponse{
			Mode:       mode,
			Components: components,
		})
	}
}

func checkFeed(d deps.Deps) componentStatus {
	age, ok := d.Feed.CacheAge()
	if !ok {
		// Nothing cached yet; the feed is still serviceable, it just has
		// not been asked for a payload since startup.
		return componentStatus{OK: true, Mode: "cold"}
	}
	sec := int(age.Seconds())
	return componentStatus{OK: true, Mode: "cached", AgeSec: &sec}
}

func checkBookings(d deps.Deps) componentStatus {
	if d.Bookings == nil {
		return componentStatus{OK: false, Mode: "disabled", Error: "no database configured"}
	}
	return componentStatus{OK: true, Mode: "postgres"}
}

func checkRedis(ctx context.Context, d deps.Deps) componentStatus {
	if d.Usage == nil {
		return componentStatus{OK: false, Mode: "disabled", Error: "client not initialized"}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := d.Usage.Ping(pingCtx); err != nil {
		return componentStatus{OK: false, Mode: "degraded", Error: "unreachable"}
	}
	return componentStatus{OK: true, Mode: "optimal"}
}
