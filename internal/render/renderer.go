package render

import (
	"fmt"

	"github.com/ziadkadry99/itinerary/internal/itinerary"
)

// Texts shown by the renderer.
const (
	TitleFormat        = "Itinerary %s | %s"
	TabLabelFormat     = "Day %d"
	TabIcon            = "calendar-day"
	NoActivitiesText   = "No activities scheduled for this day."
	EmptyChecklistText = "No elements in checklist"
	RouteLinkLabel     = "View route on Wikiloc"
	RouteLinkIcon      = "hiking"
	RestaurantsHeading = "Recommended restaurants:"
	RestaurantsIcon    = "utensils"
)

// LoadErrorLines is the generic message of the error panel. The cause is
// never shown; it goes to the log.
var LoadErrorLines = []string{
	"⚠️ The itinerary data could not be loaded.",
	"Please check that the viatge.json file exists.",
}

// Renderer turns trip data into content descriptions for one Target.
type Renderer struct {
	target Target
	format *Formatter
}

// New creates a Renderer writing to target. A nil formatter inserts text
// fields unchanged.
func New(target Target, format *Formatter) *Renderer {
	if format == nil {
		format = RawFormatter()
	}
	return &Renderer{target: target, format: format}
}

// Initialize paints the page title, the tab strip with the first tab active,
// the checklist and the first day.
func (r *Renderer) Initialize(trip *itinerary.Trip) {
	r.target.SetTitle(Title(trip))
	r.target.SetTabs(Tabs(trip.Days))
	r.RenderChecklist(trip.GeneralChecklist)
	if len(trip.Days) > 0 {
		r.RenderDay(&trip.Days[0])
	}
}

// Title returns the page title for trip.
func Title(trip *itinerary.Trip) string {
	return fmt.Sprintf(TitleFormat, trip.Destination, trip.DateRange)
}

// Tabs builds one tab per day, in order, with the first one active.
func Tabs(days []itinerary.Day) []TabView {
	tabs := make([]TabView, len(days))
	for i, day := range days {
		tabs[i] = TabView{
			Label:  fmt.Sprintf(TabLabelFormat, day.Number),
			Icon:   TabIcon,
			Number: day.Number,
			Active: i == 0,
		}
	}
	return tabs
}

// RenderDay replaces the day header and day content regions.
func (r *Renderer) RenderDay(day *itinerary.Day) {
	header := DayHeader{
		Icon:  itinerary.DayIcon(day.Number),
		Title: r.format.Format(day.Title),
		Date:  r.format.Format(day.Date),
	}
	if day.HasNotes() {
		header.Notes = r.format.Format(day.Notes)
	}
	r.target.SetDayHeader(header)

	var content DayContent
	if len(day.TimeSlots) == 0 {
		content.Placeholder = NoActivitiesText
	} else {
		content.Slots = make([]SlotView, 0, len(day.TimeSlots))
		for i := range day.TimeSlots {
			slot := &day.TimeSlots[i]
			view := SlotView{
				TimeRange: r.format.Format(slot.TimeRange),
				Activity:  r.format.Format(slot.ActivityTitle),
			}
			if slot.HasDetails() {
				view.Details = r.format.Format(slot.Details)
			}
			content.Slots = append(content.Slots, view)
		}
	}

	var links SpecialLinks
	attach := false
	if day.HasRoute() {
		links.Route = &RouteLink{URL: day.RouteLink, Label: RouteLinkLabel, Icon: RouteLinkIcon}
		attach = true
	}
	if day.HasRestaurants() {
		list := &RestaurantList{Heading: RestaurantsHeading, Icon: RestaurantsIcon}
		for _, rest := range day.DinnerRestaurants {
			list.Items = append(list.Items, RestaurantView{
				Name:      r.format.Format(rest.Name),
				Specialty: r.format.Format(rest.Specialty),
				Location:  r.format.Format(rest.Location),
			})
		}
		links.Restaurants = list
		attach = true
	}
	if attach {
		content.Links = &links
	}

	r.target.SetDayContent(content)
}

// RenderChecklist replaces the checklist region. An empty list renders one
// placeholder entry.
func (r *Renderer) RenderChecklist(items []string) {
	if len(items) == 0 {
		r.target.SetChecklist(ChecklistView{
			Entries:     []Markup{Markup(EmptyChecklistText)},
			Placeholder: true,
		})
		return
	}
	entries := make([]Markup, len(items))
	for i, item := range items {
		entries[i] = r.format.Format(item)
	}
	r.target.SetChecklist(ChecklistView{Entries: entries})
}

// RenderLoadError paints the error panel in place of the day content.
func (r *Renderer) RenderLoadError() {
	lines := make([]string, len(LoadErrorLines))
	copy(lines, LoadErrorLines)
	r.target.ShowError(ErrorPanel{Lines: lines})
}
