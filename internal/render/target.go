// Package render projects an itinerary into structured content and hands it
// to a Target. The HTML page, the terminal viewer and the tests each provide
// their own Target.
package render

// Markup is a text fragment already passed through the markup policy. HTML
// targets insert it as is.
type Markup string

// Target receives content descriptions from the Renderer. Every setter
// replaces the whole region it names.
type Target interface {
	SetTitle(title string)
	SetTabs(tabs []TabView)
	SetActiveTab(index int)
	SetChecklist(list ChecklistView)
	SetDayHeader(header DayHeader)
	SetDayContent(content DayContent)
	ShowError(panel ErrorPanel)
}

// TabView is one control of the tab strip.
type TabView struct {
	Label  string
	Icon   string
	Number int
	Active bool
}

// ChecklistView is the general checklist. Placeholder is set when Entries
// holds the single "empty" entry.
type ChecklistView struct {
	Entries     []Markup
	Placeholder bool
}

// DayHeader is the header region of the selected day. Notes is empty when the
// day has no note.
type DayHeader struct {
	Icon  string
	Title Markup
	Date  Markup
	Notes Markup
}

// DayContent is the content region of the selected day. Exactly one of Slots
// and Placeholder is set. Links is nil unless it holds at least one part.
type DayContent struct {
	Slots       []SlotView
	Placeholder string
	Links       *SpecialLinks
}

// SlotView is one time slot block.
type SlotView struct {
	TimeRange Markup
	Activity  Markup
	Details   Markup
}

// SpecialLinks groups the optional route link and restaurant list of a day.
type SpecialLinks struct {
	Route       *RouteLink
	Restaurants *RestaurantList
}

// RouteLink points at an external route page; it opens in a new tab.
type RouteLink struct {
	URL   string
	Label string
	Icon  string
}

// RestaurantList is the dinner suggestions block.
type RestaurantList struct {
	Heading string
	Icon    string
	Items   []RestaurantView
}

// RestaurantView renders as "name - specialty (location)".
type RestaurantView struct {
	Name      Markup
	Specialty Markup
	Location  Markup
}

// ErrorPanel replaces the day content when the data could not be loaded.
type ErrorPanel struct {
	Lines []string
}
