package itinerary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleJSON = `{
  "viatge": {
    "destinacio": "Menorca",
    "dates": "1-4 July",
    "dies": [
      {
        "numero": 1,
        "titol": "Arrival",
        "data": "1 July",
        "notesDia": "Pick up the car",
        "franges": [
          {"horari": "10:00-12:00", "activitat": "Flight", "detalls": "Terminal 1"},
          {"horari": "13:00-14:00", "activitat": "Lunch"}
        ],
        "enllacRuta": "https://example.com/route",
        "restaurantsSopar": [
          {"nom": "Es Cranc", "especialitat": "Lobster stew", "ubicacio": "Fornells"}
        ]
      },
      {"numero": 2, "titol": "Cami de Cavalls", "data": "2 July", "franges": []}
    ],
    "checklistGeneral": ["Passport", "Sunscreen"]
  }
}`

func TestDecodeWireNames(t *testing.T) {
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(sampleJSON), &doc))
	require.NoError(t, doc.Validate())

	trip := doc.Trip
	assert.Equal(t, "Menorca", trip.Destination)
	assert.Equal(t, "1-4 July", trip.DateRange)
	assert.Equal(t, []string{"Passport", "Sunscreen"}, trip.GeneralChecklist)
	require.Len(t, trip.Days, 2)

	day := trip.Days[0]
	assert.Equal(t, 1, day.Number)
	assert.Equal(t, "Arrival", day.Title)
	assert.Equal(t, "1 July", day.Date)
	assert.True(t, day.HasNotes())
	assert.True(t, day.HasRoute())
	assert.True(t, day.HasRestaurants())
	require.Len(t, day.TimeSlots, 2)
	assert.True(t, day.TimeSlots[0].HasDetails())
	assert.False(t, day.TimeSlots[1].HasDetails())
	assert.Equal(t, Restaurant{Name: "Es Cranc", Specialty: "Lobster stew", Location: "Fornells"}, day.DinnerRestaurants[0])

	second := trip.Days[1]
	assert.False(t, second.HasNotes())
	assert.False(t, second.HasRoute())
	assert.False(t, second.HasRestaurants())
	assert.Empty(t, second.TimeSlots)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		doc  *Document
		want error
	}{
		{"nil document", nil, ErrMissingTrip},
		{"missing wrapper", &Document{}, ErrMissingTrip},
		{"no days", &Document{Trip: &Trip{Destination: "X"}}, ErrNoDays},
		{"one day", &Document{Trip: &Trip{Days: []Day{{Number: 1}}}}, nil},
		{"out of table number", &Document{Trip: &Trip{Days: []Day{{Number: 9}}}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.doc.Validate()
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDayIcon(t *testing.T) {
	tests := []struct {
		number int
		want   string
	}{
		{1, "plane"},
		{2, "hiking"},
		{3, "swimmer"},
		{4, "plane-departure"},
		{5, DefaultDayIcon},
		{0, DefaultDayIcon},
		{-3, DefaultDayIcon},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DayIcon(tt.number), "DayIcon(%d)", tt.number)
	}

	seen := map[string]bool{}
	for n := 1; n <= 4; n++ {
		icon := DayIcon(n)
		assert.False(t, seen[icon], "icon %q used twice", icon)
		assert.NotEqual(t, DefaultDayIcon, icon)
		seen[icon] = true
	}
}
