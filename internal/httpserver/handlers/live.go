package handlers

import (
	"errors"
	"net/http"

	"github.com/harborpark/transport/internal/feed"
	"github.com/harborpark/transport/internal/httpserver/deps"
	"github.com/harborpark/transport/internal/logger"
)

// Live serves the aggregated transport payload. Mandatory-source failure
// is a 502 so callers can distinguish upstream outages from our own bugs.
func Live(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")

		payload, err := d.Feed.LivePayload(r.Context(), false)
		if err != nil {
			if errors.Is(err, feed.ErrFeedUnavailable) {
				writeError(w, http.StatusBadGateway, err.Error())
				return
			}
			d.Logger.Error("live payload request failed", logger.Error(err))
			writeError(w, http.StatusInternalServerError, "unable to fetch transport feed")
			return
		}

		writeJSON(w, http.StatusOK, payload)
	}
}
