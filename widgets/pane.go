package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane draws a rounded frame with the title set into the top border.
type Pane struct {
	Title  string
	Body   Widget
	Border lipgloss.Color
	Accent lipgloss.Color
}

func (p Pane) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if width < 6 {
		width = 6
	}

	borderStyle := lipgloss.NewStyle().Foreground(p.Border)
	titleStyle := lipgloss.NewStyle().Foreground(p.Accent).Bold(true)

	innerWidth := width - 2
	contentWidth := innerWidth - 2

	title := strings.TrimSpace(p.Title)
	titleText := ""
	if title != "" {
		titleText = " " + title + " "
		if ansi.StringWidth(titleText) > innerWidth-1 {
			titleText = " " + ansi.Truncate(title, max(1, innerWidth-3), "") + " "
		}
	}
	titleW := ansi.StringWidth(titleText)
	dashes := max(0, innerWidth-titleW)
	leftDash := min(1, dashes)
	rightDash := dashes - leftDash

	v := borderStyle.Render("│")
	top := borderStyle.Render("╭") +
		borderStyle.Render(strings.Repeat("─", leftDash)) +
		titleStyle.Render(titleText) +
		borderStyle.Render(strings.Repeat("─", rightDash)) +
		borderStyle.Render("╮")

	var body []string
	if p.Body != nil {
		body = splitLines(p.Body.Render(contentWidth))
	}
	rows := make([]string, 0, len(body)+2)
	rows = append(rows, top)
	for _, line := range body {
		rows = append(rows, v+" "+padRight(line, contentWidth)+" "+v)
	}
	if len(body) == 0 {
		rows = append(rows, v+strings.Repeat(" ", innerWidth)+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))

	return strings.Join(rows, "\n")
}
