package main

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter exposes the latest snapshot over HTTP. When hub is non-nil the
// event stream is served on /events.
func NewRouter(store *SnapshotStore, hub *EventHub) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/grid", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(store.Get().Grid))
	})

	r.Get("/piece", func(w http.ResponseWriter, r *http.Request) {
		snap := store.Get()
		if snap.Piece == nil {
			respondJSON(w, http.StatusNotFound, map[string]string{"error": "no active piece"})
			return
		}
		respondJSON(w, http.StatusOK, snap.Piece)
	})

	r.Get("/stats", func(w http.ResponseWriter, r *http.Request) {
		snap := store.Get()
		respondJSON(w, http.StatusOK, map[string]any{
			"commits": snap.Commits,
			"filled":  snap.Filled,
			"paused":  snap.Paused,
			"stats":   snap.Stats,
		})
	})

	if hub != nil {
		r.Get("/events", hub.ServeWS)
	}

	return r
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
