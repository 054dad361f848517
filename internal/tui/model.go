package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/ziadkadry99/itinerary/internal/nav"
	"github.com/ziadkadry99/itinerary/internal/page"
)

const (
	headerHeight = 3
	footerHeight = 1
)

// Styles used by the viewer.
type Styles struct {
	Title     lipgloss.Style
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Footer    lipgloss.Style
}

// DefaultStyles returns the viewer styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#228be6")).
			Padding(0, 2).
			Bold(true),
		Tab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#868e96")).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#228be6")).
			Padding(0, 1).
			Bold(true).
			Underline(true),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#868e96")).
			Padding(0, 1),
	}
}

// Model is the bubbletea model of the viewer.
type Model struct {
	page     *page.Page
	target   *Target
	viewport viewport.Model
	renderer *glamour.TermRenderer
	styles   Styles
	width    int
	height   int
}

// New returns a viewer over an opened page painted into target.
func New(p *page.Page, target *Target) Model {
	m := Model{
		page:     p,
		target:   target,
		viewport: viewport.New(80, 20),
		styles:   DefaultStyles(),
		width:    80,
		height:   20 + headerHeight + footerHeight,
	}
	m.renderer = newRenderer(m.width)
	m.refresh()
	return m
}

func newRenderer(width int) *glamour.TermRenderer {
	wrap := width - 4
	if wrap < 20 {
		wrap = 20
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return nil
	}
	return r
}

// refresh repaints the viewport from the target.
func (m *Model) refresh() {
	md := m.target.Markdown()
	content := md
	if m.renderer != nil {
		if out, err := m.renderer.Render(md); err == nil {
			content = out
		}
	}
	m.viewport.SetContent(content)
	if m.target.takeScroll() {
		m.viewport.GotoTop()
	}
}

// Active returns the active tab index, or -1 when nothing is loaded.
func (m Model) Active() int {
	if c := m.page.Controller(); c != nil {
		return c.Active()
	}
	return -1
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - headerHeight - footerHeight
		if m.viewport.Height < 1 {
			m.viewport.Height = 1
		}
		m.renderer = newRenderer(msg.Width)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "right", "l", "tab":
			m.navigate(func(c *nav.Controller) error { return c.Next() })
			return m, nil
		case "left", "h", "shift+tab":
			m.navigate(func(c *nav.Controller) error { return c.Prev() })
			return m, nil
		case "1", "2", "3", "4", "5", "6", "7", "8", "9":
			idx := int(key[0] - '1')
			m.navigate(func(c *nav.Controller) error { return c.SelectDay(idx) })
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// navigate applies a selection; positions past the last tab are ignored.
func (m *Model) navigate(sel func(*nav.Controller) error) {
	c := m.page.Controller()
	if c == nil {
		return
	}
	if err := sel(c); err != nil {
		return
	}
	m.refresh()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title()))
	b.WriteString("\n")
	b.WriteString(m.tabStrip())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render("←/→ h/l tab: switch day • 1-9: jump • ↑/↓: scroll • q: quit"))
	return b.String()
}

func (m Model) title() string {
	if t := m.target.Title(); t != "" {
		return t
	}
	return "Itinerary"
}

func (m Model) tabStrip() string {
	tabs := m.target.Tabs()
	parts := make([]string, len(tabs))
	for i, tab := range tabs {
		label := glyph(tab.Icon) + " " + tab.Label
		if tab.Active {
			parts[i] = m.styles.ActiveTab.Render(label)
		} else {
			parts[i] = m.styles.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// Run starts the viewer and blocks until the user quits or ctx is done.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
