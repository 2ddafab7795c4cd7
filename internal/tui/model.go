// Package tui renders the leaderboard and battle views as a Bubble Tea
// program for terminal clients.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"value-arena/internal/catalog"
)

type View int

const (
	LeaderboardView View = iota
	BattleView
)

var viewNames = []string{"Leaderboard", "Battle"}

func (v View) String() string {
	if v >= 0 && int(v) < len(viewNames) {
		return viewNames[v]
	}
	return fmt.Sprintf("View(%d)", int(v))
}

type Options struct {
	Width    int
	Height   int
	Style    string // glamour standard style, "dark" when empty
	Renderer *lipgloss.Renderer
}

type Model struct {
	catalog *catalog.Catalog
	view    View
	width   int
	height  int
	style   string
	styles  styles
	bodies  []string
}

func New(c *catalog.Catalog, opts Options) Model {
	if opts.Style == "" {
		opts.Style = "dark"
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}

	m := Model{
		catalog: c,
		width:   opts.Width,
		height:  opts.Height,
		style:   opts.Style,
		styles:  newStyles(opts.Renderer),
	}
	m.bodies = m.renderBodies()
	return m
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.view {
	case BattleView:
		b.WriteString(m.renderBattle())
	default:
		b.WriteString(m.renderLeaderboard())
	}

	b.WriteString("\n\n")
	b.WriteString(m.styles.help.Render("tab/←→ switch view • 1 leaderboard • 2 battle • q quit"))
	return b.String()
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab", "right", "l":
			m.view = (m.view + 1) % View(len(viewNames))
		case "shift+tab", "left", "h":
			m.view = (m.view + View(len(viewNames)) - 1) % View(len(viewNames))
		case "1":
			m.view = LeaderboardView
		case "2":
			m.view = BattleView
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if msg.Width != m.width && msg.Width > 0 {
			m.width = msg.Width
			m.bodies = m.renderBodies()
		}
	}
	return m, nil
}

// CurrentView reports which tab is showing.
func (m Model) CurrentView() View {
	return m.view
}

// renderBodies converts each battle response with glamour at the current
// panel width. Content that fails to render is shown as written.
func (m Model) renderBodies() []string {
	width := m.panelWidth() - 4
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(m.style),
		glamour.WithWordWrap(width),
	)

	bodies := make([]string, len(m.catalog.Battle.Responses))
	for i, resp := range m.catalog.Battle.Responses {
		bodies[i] = resp.Content
		if err != nil {
			continue
		}
		if out, rerr := r.Render(resp.Content); rerr == nil {
			bodies[i] = strings.Trim(out, "\n")
		}
	}
	return bodies
}

func (m Model) sideBySide() bool {
	return m.width >= 2*minPanelWidth+2
}

func (m Model) panelWidth() int {
	if m.sideBySide() {
		return m.width/2 - 2
	}
	return max(m.width-2, 20)
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(viewNames))
	for i, name := range viewNames {
		label := fmt.Sprintf("%d %s", i+1, name)
		if View(i) == m.view {
			tabs = append(tabs, m.styles.activeTab.Render(label))
		} else {
			tabs = append(tabs, m.styles.tab.Render(label))
		}
	}
	title := m.styles.title.Render("⚖ " + m.catalog.Site.Name)
	return lipgloss.JoinHorizontal(lipgloss.Center, title, "  ", strings.Join(tabs, " "))
}
