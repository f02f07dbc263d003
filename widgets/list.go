package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// List draws one entry per item behind a marker. Wrapped lines hang under
// the item text. Markers, when set, override Bullet per item.
type List struct {
	Items   []string
	Bullet  string
	Markers []string
	Style   lipgloss.Style
}

func (l List) Render(width int) string {
	if width <= 0 || len(l.Items) == 0 {
		return ""
	}
	bullet := l.Bullet
	if bullet == "" {
		bullet = "•"
	}
	markerWidth := ansi.StringWidth(bullet)
	for _, m := range l.Markers {
		markerWidth = max(markerWidth, ansi.StringWidth(m))
	}
	textWidth := max(1, width-markerWidth-1)
	style := lipgloss.NewStyle().Inherit(l.Style).Width(textWidth)

	rows := make([]string, 0, len(l.Items))
	for i, item := range l.Items {
		marker := bullet
		if i < len(l.Markers) {
			marker = l.Markers[i]
		}
		marker = padRight(marker, markerWidth)
		wrapped := strings.Split(style.Render(item), "\n")
		for j, line := range wrapped {
			prefix := marker + " "
			if j > 0 {
				prefix = strings.Repeat(" ", markerWidth+1)
			}
			rows = append(rows, strings.TrimRight(prefix+line, " "))
		}
	}
	return strings.Join(rows, "\n")
}
