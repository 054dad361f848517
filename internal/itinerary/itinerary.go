// Package itinerary holds the trip document model: a trip made of days, each
// day made of time slots, plus a general checklist.
package itinerary

// Document is the top-level shape of the data file: {"viatge": Trip}.
type Document struct {
	Trip *Trip `json:"viatge"`
}

// Trip is the whole itinerary.
type Trip struct {
	Destination      string   `json:"destinacio"`
	DateRange        string   `json:"dates"`
	Days             []Day    `json:"dies"`
	GeneralChecklist []string `json:"checklistGeneral"`
}

// Day is one calendar day of the itinerary.
type Day struct {
	Number            int          `json:"numero"`
	Title             string       `json:"titol"`
	Date              string       `json:"data"`
	Notes             string       `json:"notesDia,omitempty"`
	TimeSlots         []TimeSlot   `json:"franges"`
	RouteLink         string       `json:"enllacRuta,omitempty"`
	DinnerRestaurants []Restaurant `json:"restaurantsSopar,omitempty"`
}

// TimeSlot is one scheduled activity within a day.
type TimeSlot struct {
	TimeRange     string `json:"horari"`
	ActivityTitle string `json:"activitat"`
	Details       string `json:"detalls,omitempty"`
}

// Restaurant is a dinner suggestion attached to a day.
type Restaurant struct {
	Name      string `json:"nom"`
	Specialty string `json:"especialitat"`
	Location  string `json:"ubicacio"`
}

// HasNotes reports whether the day carries a note.
func (d *Day) HasNotes() bool { return d.Notes != "" }

// HasRoute reports whether the day links to an external route.
func (d *Day) HasRoute() bool { return d.RouteLink != "" }

// HasRestaurants reports whether the day lists dinner suggestions.
func (d *Day) HasRestaurants() bool { return len(d.DinnerRestaurants) > 0 }

// HasDetails reports whether the slot carries details.
func (s *TimeSlot) HasDetails() bool { return s.Details != "" }
