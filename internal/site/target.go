package site

import (
	"fmt"

	"github.com/ziadkadry99/itinerary/internal/integrity"
	"github.com/ziadkadry99/itinerary/internal/nav"
	"github.com/ziadkadry99/itinerary/internal/render"
)

// DefaultTitle is shown before a trip is loaded and on the error page.
const DefaultTitle = "Itinerary"

// Tab is a tab strip entry with the address of its page.
type Tab struct {
	render.TabView
	Position int
	Href     string
}

// Assets locates the stylesheet and script of a page and carries their SRI
// values. An empty integrity omits the attribute.
type Assets struct {
	StyleHref       string
	StyleIntegrity  string
	ScriptHref      string
	ScriptIntegrity string
}

// PageData is everything the page template needs.
type PageData struct {
	Title      string
	Tabs       []Tab
	Checklist  render.ChecklistView
	Header     *render.DayHeader
	Content    *render.DayContent
	Error      *render.ErrorPanel
	ScrollTop  bool
	Assets     Assets
	HashScript *integrity.Script
	// LiveReload is the websocket path pages connect to; empty disables it.
	LiveReload string
	SnapshotID string
}

// PageTarget is the HTML render target. It accumulates the regions the
// renderer paints; Data returns a copy ready for the template.
type PageTarget struct {
	// TabHref maps a 1-based tab position to a link.
	TabHref func(position int) string
	data    PageData
}

var (
	_ render.Target = (*PageTarget)(nil)
	_ nav.Scroller  = (*PageTarget)(nil)
)

// NewPageTarget returns a target whose tabs link through href.
func NewPageTarget(href func(position int) string) *PageTarget {
	return &PageTarget{TabHref: href}
}

// FileHref links tabs to the static site files: index.html for the first
// tab, day-N.html for the others.
func FileHref(position int) string {
	if position <= 1 {
		return "index.html"
	}
	return fmt.Sprintf("day-%d.html", position)
}

// RouteHref links tabs to the page server routes.
func RouteHref(position int) string {
	if position <= 1 {
		return "/"
	}
	return fmt.Sprintf("/days/%d", position)
}

// SetTitle sets the document title.
func (t *PageTarget) SetTitle(title string) {
	t.data.Title = title
}

// SetTabs builds the tab strip, resolving each link with TabHref.
func (t *PageTarget) SetTabs(tabs []render.TabView) {
	t.data.Tabs = make([]Tab, len(tabs))
	for i, tv := range tabs {
		t.data.Tabs[i] = Tab{TabView: tv, Position: i + 1}
		if t.TabHref != nil {
			t.data.Tabs[i].Href = t.TabHref(i + 1)
		}
	}
}

// SetActiveTab highlights the tab at index.
func (t *PageTarget) SetActiveTab(index int) {
	for i := range t.data.Tabs {
		t.data.Tabs[i].Active = i == index
	}
}

// SetChecklist sets the checklist sidebar.
func (t *PageTarget) SetChecklist(list render.ChecklistView) {
	t.data.Checklist = list
}

// SetDayHeader sets the day header.
func (t *PageTarget) SetDayHeader(header render.DayHeader) {
	t.data.Header = &header
}

// SetDayContent sets the day body and drops any error panel.
func (t *PageTarget) SetDayContent(content render.DayContent) {
	t.data.Content = &content
	t.data.Error = nil
}

// ShowError replaces the day regions with the error panel.
func (t *PageTarget) ShowError(panel render.ErrorPanel) {
	t.data.Error = &panel
	t.data.Header = nil
	t.data.Content = nil
}

// ScrollToTop marks the page so the browser starts at the top.
func (t *PageTarget) ScrollToTop() {
	t.data.ScrollTop = true
}

// ActiveTab returns the index of the active tab, or -1.
func (t *PageTarget) ActiveTab() int {
	for i, tab := range t.data.Tabs {
		if tab.Active {
			return i
		}
	}
	return -1
}

// Data returns a snapshot of the painted page.
func (t *PageTarget) Data() PageData {
	d := t.data
	d.Tabs = append([]Tab(nil), t.data.Tabs...)
	if d.Title == "" {
		d.Title = DefaultTitle
	}
	return d
}
