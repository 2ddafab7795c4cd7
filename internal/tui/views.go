package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"value-arena/internal/catalog"
)

const (
	minPanelWidth = 40
	categoryWidth = 46
)

type styles struct {
	title     lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	help      lipgloss.Style
	heading   lipgloss.Style
	faint     lipgloss.Style
	card      lipgloss.Style
	rowEven   lipgloss.Style
	rowOdd    lipgloss.Style
	position  lipgloss.Style
	badge     lipgloss.Style
	choice    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		tab:       r.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245")),
		activeTab: r.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("236")),
		help:      r.NewStyle().Foreground(lipgloss.Color("240")),
		heading:   r.NewStyle().Bold(true),
		faint:     r.NewStyle().Foreground(lipgloss.Color("245")),
		card:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1),
		rowEven:   r.NewStyle().Background(lipgloss.Color("235")),
		rowOdd:    r.NewStyle(),
		position:  r.NewStyle().Foreground(lipgloss.Color("240")),
		badge:     r.NewStyle().Foreground(lipgloss.Color("86")),
		choice:    r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

// renderLeaderboard lays the categories out side by side when the terminal
// is wide enough, stacked otherwise. Rows keep catalog order.
func (m Model) renderLeaderboard() string {
	cards := make([]string, 0, len(m.catalog.Leaderboard))
	for _, cat := range m.catalog.Leaderboard {
		cards = append(cards, m.renderCategory(cat))
	}

	if m.width >= len(cards)*(categoryWidth+2) {
		return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, cards...)
}

func (m Model) renderCategory(cat catalog.Category) string {
	var b strings.Builder
	b.WriteString(m.styles.heading.Render(cat.Title) + "\n")
	b.WriteString(m.styles.faint.Render(cat.Description) + "\n\n")
	b.WriteString(m.styles.faint.Render(fmt.Sprintf("%-3s %-20s %7s %8s", "#", "Model", "Survey", "Elo")))

	for i, row := range cat.Rows {
		line := m.styles.position.Render(fmt.Sprintf("%-3d", i+1)) +
			fmt.Sprintf(" %-20s %7s %8d", row.Model, row.Survey, row.Elo)
		style := m.styles.rowOdd
		if i%2 == 0 {
			style = m.styles.rowEven
		}
		b.WriteString("\n" + style.Render(line))
	}

	return m.styles.card.Width(categoryWidth).Render(b.String())
}

func (m Model) renderBattle() string {
	battle := m.catalog.Battle

	var b strings.Builder
	b.WriteString(m.styles.faint.Render("Lens ") + m.styles.heading.Render(battle.Lens))
	for _, badge := range battle.Badges {
		b.WriteString("  " + m.styles.badge.Render("● "+badge))
	}
	b.WriteString("\n\n")

	prompt := m.styles.card.Width(max(m.width-2, 20)).Render(battle.Prompt)
	b.WriteString(prompt + "\n")

	panels := make([]string, 0, len(battle.Responses))
	for i, resp := range battle.Responses {
		panels = append(panels, m.renderPanel(resp, m.bodies[i]))
	}
	if m.sideBySide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, panels...))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, panels...))
	}
	b.WriteString("\n")

	choices := make([]string, 0, len(battle.RatingChoices))
	for _, c := range battle.RatingChoices {
		choices = append(choices, m.styles.choice.Render(c.Label+"\n"+m.styles.faint.Render(c.Hint)))
	}
	if m.width >= lipgloss.Width(lipgloss.JoinHorizontal(lipgloss.Top, choices...)) {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, choices...))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, choices...))
	}
	b.WriteString("\n\n")

	b.WriteString(m.styles.faint.Render("Ask follow-up: " + battle.FollowUpPlaceholder + "  [Send]"))
	return b.String()
}

func (m Model) renderPanel(resp catalog.Response, body string) string {
	header := m.styles.faint.Render(resp.Label) + "\n" +
		m.styles.heading.Render(resp.Model) + "  " + m.styles.badge.Render(resp.Tone)
	return m.styles.card.Width(m.panelWidth()).Render(header + "\n" + body)
}
