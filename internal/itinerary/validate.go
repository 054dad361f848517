package itinerary

import "errors"

var (
	// ErrMissingTrip is returned when the document has no "viatge" wrapper.
	ErrMissingTrip = errors.New("document has no viatge object")
	// ErrNoDays is returned when the trip has no days to show.
	ErrNoDays = errors.New("trip has no days")
)

// Validate checks the structure the renderer relies on. Optional fields are
// never an error; only a missing trip or an empty day list is.
func (d *Document) Validate() error {
	if d == nil || d.Trip == nil {
		return ErrMissingTrip
	}
	return d.Trip.Validate()
}

// Validate checks that the trip has something to render. Day numbers are not
// checked here: out-of-table numbers only change the icon.
func (t *Trip) Validate() error {
	if len(t.Days) == 0 {
		return ErrNoDays
	}
	return nil
}
