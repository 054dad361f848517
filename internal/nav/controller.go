// Package nav implements tab navigation between the days of an itinerary.
package nav

import (
	"errors"
	"fmt"

	"github.com/ziadkadry99/itinerary/internal/itinerary"
)

// ErrNoSuchTab is returned when a selection names a tab that does not exist.
var ErrNoSuchTab = errors.New("no such tab")

// DayRenderer paints one day.
type DayRenderer interface {
	RenderDay(day *itinerary.Day)
}

// TabMarker shows which tab is active.
type TabMarker interface {
	SetActiveTab(index int)
}

// Scroller brings the view back to the top. Calls are fire-and-forget.
type Scroller interface {
	ScrollToTop()
}

// Tab is one navigation control. It owns the Day it was built for, so a
// selection never re-derives the day from a list.
type Tab struct {
	day    *itinerary.Day
	active bool
}

// Day returns the day this tab represents.
func (t *Tab) Day() *itinerary.Day { return t.day }

// Active reports whether the tab is the selected one.
func (t *Tab) Active() bool { return t.active }

// Controller keeps exactly one tab active and re-renders on selection.
type Controller struct {
	tabs     []*Tab
	active   int
	renderer DayRenderer
	marker   TabMarker
	scroller Scroller
}

// New builds one tab per day with the first tab active. It does not render;
// the renderer's initialization has already painted the first day. scroller
// may be nil.
func New(days []itinerary.Day, renderer DayRenderer, marker TabMarker, scroller Scroller) *Controller {
	c := &Controller{
		tabs:     make([]*Tab, len(days)),
		renderer: renderer,
		marker:   marker,
		scroller: scroller,
	}
	for i := range days {
		c.tabs[i] = &Tab{day: &days[i], active: i == 0}
	}
	return c
}

// Tabs returns the controls in day order.
func (c *Controller) Tabs() []*Tab { return c.tabs }

// Len returns the number of tabs.
func (c *Controller) Len() int { return len(c.tabs) }

// Active returns the index of the active tab.
func (c *Controller) Active() int { return c.active }

// SelectDay activates tab index, renders its day and scrolls to the top.
func (c *Controller) SelectDay(index int) error {
	if index < 0 || index >= len(c.tabs) {
		return fmt.Errorf("%w: %d of %d", ErrNoSuchTab, index+1, len(c.tabs))
	}

	for _, tab := range c.tabs {
		tab.active = false
	}
	tab := c.tabs[index]
	tab.active = true
	c.active = index
	c.marker.SetActiveTab(index)

	c.renderer.RenderDay(tab.day)

	if c.scroller != nil {
		c.scroller.ScrollToTop()
	}
	return nil
}

// Next selects the tab after the active one, wrapping around.
func (c *Controller) Next() error {
	if len(c.tabs) == 0 {
		return ErrNoSuchTab
	}
	return c.SelectDay((c.active + 1) % len(c.tabs))
}

// Prev selects the tab before the active one, wrapping around.
func (c *Controller) Prev() error {
	if len(c.tabs) == 0 {
		return ErrNoSuchTab
	}
	return c.SelectDay((c.active - 1 + len(c.tabs)) % len(c.tabs))
}
