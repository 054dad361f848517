// Package tui is the terminal viewer: a bubbletea program painting the
// itinerary through the same renderer and tab controller as the HTML pages.
package tui

import (
	"fmt"
	"strings"

	"github.com/ziadkadry99/itinerary/internal/nav"
	"github.com/ziadkadry99/itinerary/internal/render"
)

// iconGlyphs stands in for the web icon set in a terminal.
var iconGlyphs = map[string]string{
	"plane":           "✈",
	"hiking":          "🥾",
	"swimmer":         "🏊",
	"plane-departure": "🛫",
	"calendar-day":    "📅",
	"utensils":        "🍴",
}

func glyph(icon string) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return "•"
}

// Target is the terminal render target. Text arrives already formatted; it
// is reduced to plain text before display.
type Target struct {
	title     string
	tabs      []render.TabView
	checklist render.ChecklistView
	header    *render.DayHeader
	content   *render.DayContent
	errPanel  *render.ErrorPanel
	scroll    bool
}

var (
	_ render.Target = (*Target)(nil)
	_ nav.Scroller  = (*Target)(nil)
)

// NewTarget returns an empty terminal target.
func NewTarget() *Target {
	return &Target{}
}

// SetTitle sets the window title.
func (t *Target) SetTitle(title string) { t.title = title }

// SetTabs copies the tab strip.
func (t *Target) SetTabs(tabs []render.TabView) {
	t.tabs = append([]render.TabView(nil), tabs...)
}

// SetActiveTab highlights the tab at index.
func (t *Target) SetActiveTab(index int) {
	for i := range t.tabs {
		t.tabs[i].Active = i == index
	}
}

// SetChecklist sets the checklist section.
func (t *Target) SetChecklist(list render.ChecklistView) { t.checklist = list }

// SetDayHeader sets the day heading.
func (t *Target) SetDayHeader(header render.DayHeader) { t.header = &header }

// SetDayContent sets the day body and drops any error panel.
func (t *Target) SetDayContent(content render.DayContent) {
	t.content = &content
	t.errPanel = nil
}

// ShowError replaces the day sections with the error lines.
func (t *Target) ShowError(panel render.ErrorPanel) {
	t.errPanel = &panel
	t.header = nil
	t.content = nil
}

// ScrollToTop asks the viewer to reset its viewport on the next refresh.
func (t *Target) ScrollToTop() { t.scroll = true }

// takeScroll reports and clears a pending scroll request.
func (t *Target) takeScroll() bool {
	s := t.scroll
	t.scroll = false
	return s
}

// Title returns the painted title.
func (t *Target) Title() string { return t.title }

// Tabs returns the tab strip.
func (t *Target) Tabs() []render.TabView { return t.tabs }

// Markdown describes the day and checklist regions as Markdown for glamour.
func (t *Target) Markdown() string {
	var b strings.Builder

	if t.errPanel != nil {
		for _, line := range t.errPanel.Lines {
			fmt.Fprintf(&b, "> %s\n>\n", line)
		}
		return b.String()
	}

	if h := t.header; h != nil {
		fmt.Fprintf(&b, "# %s %s\n\n", glyph(h.Icon), plain(h.Title))
		fmt.Fprintf(&b, "*%s*\n\n", plain(h.Date))
		if h.Notes != "" {
			fmt.Fprintf(&b, "> %s\n\n", plain(h.Notes))
		}
	}

	if c := t.content; c != nil {
		if len(c.Slots) == 0 {
			fmt.Fprintf(&b, "*%s*\n\n", c.Placeholder)
		}
		for _, s := range c.Slots {
			fmt.Fprintf(&b, "- **%s** %s\n", plain(s.TimeRange), plain(s.Activity))
			if s.Details != "" {
				fmt.Fprintf(&b, "  %s\n", plain(s.Details))
			}
		}
		if len(c.Slots) > 0 {
			b.WriteString("\n")
		}
		if l := c.Links; l != nil {
			if l.Route != nil {
				fmt.Fprintf(&b, "%s [%s](%s)\n\n", glyph(l.Route.Icon), l.Route.Label, linkEscaper.Replace(l.Route.URL))
			}
			if r := l.Restaurants; r != nil {
				fmt.Fprintf(&b, "%s **%s**\n\n", glyph(r.Icon), r.Heading)
				for _, item := range r.Items {
					fmt.Fprintf(&b, "- **%s** - %s (%s)\n", plain(item.Name), plain(item.Specialty), plain(item.Location))
				}
				b.WriteString("\n")
			}
		}
	}

	if len(t.checklist.Entries) > 0 {
		b.WriteString("## Checklist\n\n")
		for _, e := range t.checklist.Entries {
			if t.checklist.Placeholder {
				fmt.Fprintf(&b, "*%s*\n", plain(e))
				continue
			}
			fmt.Fprintf(&b, "- [ ] %s\n", plain(e))
		}
	}

	return b.String()
}

// mdEscaper backslash-escapes the characters glamour would read as markup.
var mdEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
	"!", `\!`,
	"|", `\|`,
	"~", `\~`,
	"+", `\+`,
	"-", `\-`,
)

// linkEscaper keeps a URL inside its link destination.
var linkEscaper = strings.NewReplacer(" ", "%20", "(", "%28", ")", "%29")

// plain reduces formatted text to a single escaped Markdown line.
func plain(m render.Markup) string {
	text := strings.Join(strings.Fields(render.PlainText(m)), " ")
	return mdEscaper.Replace(text)
}
