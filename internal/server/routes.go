package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/itinerary/internal/itinerary"
	"github.com/ziadkadry99/itinerary/internal/loader"
	"github.com/ziadkadry99/itinerary/internal/page"
	"github.com/ziadkadry99/itinerary/internal/site"
)

// SnapshotHeader carries the id of the document snapshot a response was built from.
const SnapshotHeader = "X-Snapshot-ID"

// staticPrefix is where pages find their stylesheet and script.
const staticPrefix = "/static/"

func (s *Server) registerRoutes(r chi.Router) {
	r.Get("/", s.handlePage)
	r.Get("/days/{position}", s.handlePage)
	r.Get("/viatge.json", s.handleData)
	r.Get("/api/trip", s.handleTrip)
	r.Get(staticPrefix+site.StyleFile, handleAsset("text/css; charset=utf-8", site.Stylesheet()))
	r.Get(staticPrefix+site.ScriptFile, handleAsset("text/javascript; charset=utf-8", site.Script()))
}

// handlePage runs the pipeline for one request. A load failure still answers
// 200 with the error panel.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	position := 1
	if v := chi.URLParam(r, "position"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		position = n
	}

	target := site.NewPageTarget(site.RouteHref)
	p := page.Open(r.Context(), s.loader, target,
		page.WithFormatter(s.formatter),
		page.WithLogger(s.logger))

	if p.Loaded() && position > 1 {
		if err := p.SelectDay(position - 1); err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
	}

	assets, err := site.AssetsAt(staticPrefix)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	data := target.Data()
	data.Assets = assets
	data.HashScript = s.hashScript
	if p.Loaded() {
		data.SnapshotID = p.SnapshotID().String()
		w.Header().Set(SnapshotHeader, data.SnapshotID)
	}

	body, err := site.RenderPageBytes(data)
	if err != nil {
		s.logger.Error("rendering page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// handleData serves the raw data file. Remote sources are not proxied.
func (s *Server) handleData(w http.ResponseWriter, r *http.Request) {
	if s.loader.IsRemote() {
		http.Error(w, "not found", http.StatusNotFound)
		return
	}
	data, err := s.loader.Fetch(r.Context())
	if err != nil {
		s.logger.Warn("data file read failed",
			zap.String("source", s.loader.Source()),
			zap.Error(err))
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleTrip returns the validated document.
func (s *Server) handleTrip(w http.ResponseWriter, r *http.Request) {
	state := loader.NewState()
	if err := s.loader.Load(r.Context(), state); err != nil {
		s.logger.Warn("itinerary load failed",
			zap.String("source", s.loader.Source()),
			zap.String("kind", loader.Kind(err)),
			zap.Error(err))
		writeError(w, err)
		return
	}
	w.Header().Set(SnapshotHeader, state.SnapshotID().String())
	writeJSON(w, http.StatusOK, itinerary.Document{Trip: state.Trip()})
}

func handleAsset(contentType string, body []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "no-cache")
		w.Write(body)
	}
}

// errorResponse is the JSON body of a failed API call.
type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

// statusFor maps pipeline errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loader.ErrFetch), errors.Is(err, loader.ErrStatus),
		errors.Is(err, loader.ErrParse), errors.Is(err, loader.ErrInvalidDocument):
		return http.StatusBadGateway
	case errors.Is(err, page.ErrNotLoaded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage describes a failure without its cause. Paths and upstream
// URLs stay in the log.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, loader.ErrFetch), errors.Is(err, loader.ErrStatus):
		return "itinerary data unavailable"
	case errors.Is(err, loader.ErrParse):
		return "itinerary data is not valid JSON"
	case errors.Is(err, loader.ErrInvalidDocument):
		return "itinerary data has an unexpected shape"
	case errors.Is(err, page.ErrNotLoaded):
		return "itinerary not loaded"
	default:
		return http.StatusText(http.StatusInternalServerError)
	}
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), errorResponse{
		Error: errorMessage(err),
		Kind:  loader.Kind(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
