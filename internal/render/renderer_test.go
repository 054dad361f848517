package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ziadkadry99/itinerary/internal/itinerary"
)

func sampleTrip() *itinerary.Trip {
	return &itinerary.Trip{
		Destination: "Menorca",
		DateRange:   "1-4 July",
		Days: []itinerary.Day{
			{
				Number: 1,
				Title:  "Arrival",
				Date:   "1 July",
				Notes:  "Pick up the car",
				TimeSlots: []itinerary.TimeSlot{
					{TimeRange: "10:00-12:00", ActivityTitle: "Flight", Details: "Terminal 1"},
					{TimeRange: "13:00-14:00", ActivityTitle: "Lunch"},
				},
			},
			{
				Number:    2,
				Title:     "Cami de Cavalls",
				Date:      "2 July",
				RouteLink: "https://example.com/route",
				DinnerRestaurants: []itinerary.Restaurant{
					{Name: "Es Cranc", Specialty: "Lobster stew", Location: "Fornells"},
				},
			},
			{Number: 5, Title: "Spare day", Date: "5 July"},
		},
		GeneralChecklist: []string{"A", "B"},
	}
}

func TestInitialize(t *testing.T) {
	rec := &Recorder{}
	New(rec, nil).Initialize(sampleTrip())

	assert.Equal(t, "Itinerary Menorca | 1-4 July", rec.Title)

	wantTabs := []TabView{
		{Label: "Day 1", Icon: TabIcon, Number: 1, Active: true},
		{Label: "Day 2", Icon: TabIcon, Number: 2},
		{Label: "Day 5", Icon: TabIcon, Number: 5},
	}
	if diff := cmp.Diff(wantTabs, rec.Tabs); diff != "" {
		t.Errorf("tabs mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, []int{0}, rec.ActiveTabs())

	assert.Equal(t, ChecklistView{Entries: []Markup{"A", "B"}}, rec.Checklist)
	assert.Equal(t, Markup("Arrival"), rec.Header.Title)
	assert.Equal(t, []string{"SetTitle", "SetTabs", "SetChecklist", "SetDayHeader", "SetDayContent"}, rec.Calls)
}

func TestRenderDaySlotsInOrder(t *testing.T) {
	rec := &Recorder{}
	trip := sampleTrip()
	New(rec, nil).RenderDay(&trip.Days[0])

	want := DayContent{
		Slots: []SlotView{
			{TimeRange: "10:00-12:00", Activity: "Flight", Details: "Terminal 1"},
			{TimeRange: "13:00-14:00", Activity: "Lunch"},
		},
	}
	if diff := cmp.Diff(want, rec.Content); diff != "" {
		t.Errorf("content mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, DayHeader{Icon: "plane", Title: "Arrival", Date: "1 July", Notes: "Pick up the car"}, rec.Header)
}

func TestRenderDayEmptySlots(t *testing.T) {
	rec := &Recorder{}
	trip := sampleTrip()
	New(rec, nil).RenderDay(&trip.Days[1])

	assert.Empty(t, rec.Content.Slots)
	assert.Equal(t, NoActivitiesText, rec.Content.Placeholder)
	assert.Empty(t, rec.Header.Notes)
	assert.Equal(t, "hiking", rec.Header.Icon)
}

func TestRenderDaySpecialLinks(t *testing.T) {
	rec := &Recorder{}
	trip := sampleTrip()
	r := New(rec, nil)

	r.RenderDay(&trip.Days[1])
	require.NotNil(t, rec.Content.Links)
	require.NotNil(t, rec.Content.Links.Route)
	assert.Equal(t, "https://example.com/route", rec.Content.Links.Route.URL)
	assert.Equal(t, RouteLinkLabel, rec.Content.Links.Route.Label)
	require.NotNil(t, rec.Content.Links.Restaurants)
	assert.Equal(t, []RestaurantView{{Name: "Es Cranc", Specialty: "Lobster stew", Location: "Fornells"}},
		rec.Content.Links.Restaurants.Items)

	// Neither part present: the block is not attached at all.
	r.RenderDay(&trip.Days[0])
	assert.Nil(t, rec.Content.Links)

	// Only the route link.
	r.RenderDay(&itinerary.Day{Number: 3, RouteLink: "https://example.com/r"})
	require.NotNil(t, rec.Content.Links)
	assert.NotNil(t, rec.Content.Links.Route)
	assert.Nil(t, rec.Content.Links.Restaurants)
}

func TestRenderDayIcons(t *testing.T) {
	rec := &Recorder{}
	r := New(rec, nil)
	want := map[int]string{1: "plane", 2: "hiking", 3: "swimmer", 4: "plane-departure", 5: "calendar-day"}
	for number, icon := range want {
		r.RenderDay(&itinerary.Day{Number: number})
		assert.Equal(t, icon, rec.Header.Icon, "day %d", number)
	}
}

func TestRenderChecklist(t *testing.T) {
	rec := &Recorder{}
	r := New(rec, nil)

	r.RenderChecklist(nil)
	assert.Equal(t, ChecklistView{Entries: []Markup{EmptyChecklistText}, Placeholder: true}, rec.Checklist)

	r.RenderChecklist([]string{"A", "B"})
	assert.Equal(t, ChecklistView{Entries: []Markup{"A", "B"}}, rec.Checklist)

	// Idempotent full replace.
	r.RenderChecklist([]string{"A", "B"})
	assert.Equal(t, ChecklistView{Entries: []Markup{"A", "B"}}, rec.Checklist)

	r.RenderChecklist([]string{})
	assert.Len(t, rec.Checklist.Entries, 1)
	assert.True(t, rec.Checklist.Placeholder)
}

func TestRenderLoadError(t *testing.T) {
	rec := &Recorder{}
	New(rec, nil).RenderLoadError()

	require.NotNil(t, rec.Error)
	assert.Equal(t, LoadErrorLines, rec.Error.Lines)
	assert.Empty(t, rec.Content.Slots)
}

func TestFormatterPolicies(t *testing.T) {
	input := `Swim at <b>Cala</b> <script>alert(1)</script>`

	raw, err := NewFormatter(PolicyRaw)
	require.NoError(t, err)
	assert.Equal(t, Markup(input), raw.Format(input))

	esc, err := NewFormatter(PolicyEscape)
	require.NoError(t, err)
	assert.Equal(t, Markup(`Swim at &lt;b&gt;Cala&lt;/b&gt; &lt;script&gt;alert(1)&lt;/script&gt;`), esc.Format(input))

	san, err := NewFormatter(PolicySanitize)
	require.NoError(t, err)
	got := string(san.Format(input))
	assert.Contains(t, got, "<b>Cala</b>")
	assert.NotContains(t, got, "<script>")

	md, err := NewFormatter(PolicyMarkdown)
	require.NoError(t, err)
	assert.Equal(t, Markup("Bring <strong>water</strong>"), md.Format("Bring **water**"))

	empty, err := NewFormatter("")
	require.NoError(t, err)
	assert.Equal(t, PolicyRaw, empty.Policy())

	_, err = NewFormatter("shout")
	assert.Error(t, err)
}

func TestRendererAppliesPolicy(t *testing.T) {
	esc, err := NewFormatter(PolicyEscape)
	require.NoError(t, err)

	rec := &Recorder{}
	New(rec, esc).RenderChecklist([]string{"<i>Hat</i>"})
	assert.Equal(t, []Markup{"&lt;i&gt;Hat&lt;/i&gt;"}, rec.Checklist.Entries)

	// The placeholder is our own text and is never escaped.
	New(rec, esc).RenderChecklist(nil)
	assert.Equal(t, []Markup{EmptyChecklistText}, rec.Checklist.Entries)
}

func TestPlainText(t *testing.T) {
	assert.Equal(t, "Swim & snorkel", PlainText("<em>Swim</em> &amp; snorkel"))
	assert.False(t, strings.Contains(PlainText("<p>x</p>"), "<"))
}
