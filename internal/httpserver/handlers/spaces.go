package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/harborpark/transport/internal/feed"
	"github.com/harborpark/transport/internal/httpserver/deps"
	"github.com/harborpark/transport/internal/logger"
)

// Space resolves a single parking space by id. Lookup counters are best
// effort; a redis hiccup never affects the response.
func Space(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		id := chi.URLParam(r, "id")

		space, err := d.Spaces.SpaceByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, feed.ErrFeedUnavailable) {
				writeError(w, http.StatusBadGateway, err.Error())
				return
			}
			d.Logger.Error("space lookup failed",
				logger.String("id", id),
				logger.Error(err))
			writeError(w, http.StatusInternalServerError, "unable to resolve parking space")
			return
		}
		if space == nil {
			writeError(w, http.StatusNotFound, "parking space not found")
			return
		}

		if d.Usage != nil {
			if err := d.Usage.IncrementSpaceLookup(r.Context(), space.ID); err != nil {
				d.Logger.Debug("lookup counter increment failed",
					logger.String("id", space.ID),
					logger.Error(err))
			}
		}

		writeJSON(w, http.StatusOK, space)
	}
}
