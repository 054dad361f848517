package loader

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/ziadkadry99/itinerary/internal/itinerary"
)

// ErrAlreadyLoaded is returned when a State is written a second time.
var ErrAlreadyLoaded = errors.New("itinerary already loaded")

// State holds the one document snapshot of a page instance. It is written
// once by a Loader and read by the renderer and navigation afterwards.
type State struct {
	mu         sync.RWMutex
	trip       *itinerary.Trip
	snapshotID uuid.UUID
}

// NewState returns an empty State.
func NewState() *State {
	return &State{}
}

func (s *State) store(trip *itinerary.Trip) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.trip != nil {
		return ErrAlreadyLoaded
	}
	s.trip = trip
	s.snapshotID = uuid.New()
	return nil
}

// Trip returns the loaded trip, or nil before a successful load.
func (s *State) Trip() *itinerary.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trip
}

// Loaded reports whether a document has been stored.
func (s *State) Loaded() bool {
	return s.Trip() != nil
}

// SnapshotID identifies the stored snapshot; uuid.Nil before a load.
func (s *State) SnapshotID() uuid.UUID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotID
}
