package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pospreview/internal/theme"
	"github.com/jask/pospreview/internal/view"
	"github.com/jask/pospreview/widgets"
)

const (
	// rowMinWidth is the width below which rows stack vertically.
	rowMinWidth    = 90
	chipMinWidth   = 18
	buttonMinWidth = 26
)

var (
	boldStyle  = lipgloss.NewStyle().Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(theme.ColorMuted)
	codeStyle  = lipgloss.NewStyle().Foreground(theme.ColorCode)
	linkStyle  = lipgloss.NewStyle().Foreground(theme.ColorLink).Underline(true)
)

// Text draws root for a terminal of the given width.
func Text(root view.Node, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	return textWidget(root).Render(width)
}

func textWidget(n view.Node) widgets.Widget {
	switch n.Kind {
	case view.KindPage:
		return widgets.VStack{Widgets: textChildren(n), Spacing: 1}
	case view.KindHeader:
		return headerWidget(n)
	case view.KindLogo:
		st := nodeStyle(n.Style).Bold(true).Padding(1, 3)
		return widgets.Center{Widget: widgets.Block{Content: n.Text, Style: st, Shrink: true}}
	case view.KindBanner:
		return bannerWidget(n)
	case view.KindRow:
		return widgets.Row{Widgets: textChildren(n), Gap: 1, MinWidth: rowMinWidth}
	case view.KindCard:
		return widgets.Pane{
			Title:  n.Title,
			Body:   widgets.VStack{Widgets: textChildren(n), Spacing: 1},
			Border: theme.ColorBorder,
			Accent: theme.ToneColor(n.Style.Tone),
		}
	case view.KindBox:
		return widgets.Pane{
			Title:  n.Title,
			Body:   widgets.VStack{Widgets: textChildren(n), Spacing: 1},
			Border: theme.ColorSurface1,
			Accent: theme.ColorSubtext0,
		}
	case view.KindHeading:
		return widgets.Block{Content: n.Text, Style: boldStyle}
	case view.KindText, view.KindItem, view.KindLine:
		return widgets.Block{Content: n.Text, Style: nodeStyle(n.Style)}
	case view.KindFooter:
		return footerWidget(n)
	case view.KindList:
		return widgets.List{Items: childTexts(n)}
	case view.KindStatusList:
		return statusWidget(n)
	case view.KindGrid:
		return chipGrid(n)
	case view.KindCode:
		return codeWidget(n)
	case view.KindSteps:
		return stepsWidget(n)
	case view.KindNote:
		return noteWidget(n)
	case view.KindButtons:
		return buttonsWidget(n)
	default:
		return widgets.Block{Content: inlineText(n)}
	}
}

func textChildren(n view.Node) []widgets.Widget {
	out := make([]widgets.Widget, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, textWidget(c))
	}
	return out
}

func childTexts(n view.Node) []string {
	out := make([]string, len(n.Children))
	for i, c := range n.Children {
		out[i] = inlineText(c)
	}
	return out
}

// nodeStyle maps node style metadata onto a terminal style. Fills are only
// drawn behind inverse text; light web surfaces are left to the terminal.
func nodeStyle(st view.Style) lipgloss.Style {
	s := lipgloss.NewStyle()
	if st.Tone != view.ToneNeutral {
		s = s.Foreground(theme.ToneColor(st.Tone))
	}
	if st.Tone == view.ToneInverse && st.Background != "" {
		s = s.Background(lipgloss.Color(st.Background))
	}
	if st.Emphasis {
		s = s.Bold(true)
	}
	if st.Centered {
		s = s.Align(lipgloss.Center)
	}
	return s
}

func headerWidget(n view.Node) widgets.Widget {
	st := nodeStyle(n.Style).Padding(1, 2)
	var logo []widgets.Widget
	lines := []string{boldStyle.Render(n.Title)}
	for _, c := range n.Children {
		if c.Kind == view.KindLogo {
			logo = append(logo, textWidget(c))
			continue
		}
		line := c.Text
		if c.Style.Tone == view.ToneMuted {
			line = mutedStyle.Render(line)
		}
		lines = append(lines, line)
	}
	body := widgets.Block{Content: strings.Join(lines, "\n"), Style: st}
	return widgets.VStack{Widgets: append(logo, body)}
}

func bannerWidget(n view.Node) widgets.Widget {
	tone := theme.ToneColor(n.Style.Tone)
	st := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tone).
		Padding(0, 1)
	title := lipgloss.NewStyle().Foreground(tone).Bold(true).Render(string(n.Icon) + " " + n.Title)
	return widgets.Block{Content: title + "\n" + n.Text, Style: st}
}

func footerWidget(n view.Node) widgets.Widget {
	lines := make([]widgets.Widget, 0, len(n.Children))
	for _, c := range n.Children {
		st := nodeStyle(c.Style)
		if c.Style.Tone == view.ToneNeutral {
			st = st.Foreground(theme.ToneColor(n.Style.Tone))
		}
		if n.Style.Tone == view.ToneInverse && n.Style.Background != "" {
			st = st.Background(lipgloss.Color(n.Style.Background))
		}
		lines = append(lines, widgets.Block{Content: c.Text, Style: st.Align(lipgloss.Center)})
	}
	return widgets.VStack{Widgets: lines}
}

func statusWidget(n view.Node) widgets.Widget {
	items := make([]string, len(n.Children))
	markers := make([]string, len(n.Children))
	for i, c := range n.Children {
		markers[i] = lipgloss.NewStyle().Foreground(theme.ToneColor(c.Style.Tone)).Render(string(c.Icon))
		items[i] = boldStyle.Render(c.Title)
		if c.Text != "" {
			items[i] += "\n" + mutedStyle.Render(c.Text)
		}
	}
	return widgets.List{Items: items, Markers: markers}
}

func chipGrid(n view.Node) widgets.Widget {
	cells := make([]widgets.Widget, len(n.Children))
	chip := lipgloss.NewStyle().Background(theme.ColorSurface0).Foreground(theme.ColorText).Padding(0, 1)
	for i, c := range n.Children {
		cells[i] = widgets.Block{Content: c.Text, Style: chip}
	}
	return widgets.Grid{Cells: cells, Columns: n.Columns, Gap: 1, MinCellWidth: chipMinWidth}
}

func codeWidget(n view.Node) widgets.Widget {
	st := nodeStyle(n.Style).Foreground(theme.ColorText).Padding(0, 1)
	if n.Style.Background == "" {
		st = st.Background(theme.ColorCrust)
	}
	return widgets.Block{Content: strings.Join(childTexts(n), "\n"), Style: st}
}

func stepsWidget(n view.Node) widgets.Widget {
	items := make([]string, len(n.Children))
	markers := make([]string, len(n.Children))
	for i, c := range n.Children {
		markers[i] = strconv.Itoa(c.Index) + "."
		items[i] = inlineText(c)
	}
	return widgets.List{Items: items, Markers: markers}
}

func noteWidget(n view.Node) widgets.Widget {
	tone := theme.ToneColor(n.Style.Tone)
	st := lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(tone).
		PaddingLeft(1)
	label := lipgloss.NewStyle().Foreground(tone).Bold(true).Render(string(n.Icon) + " " + n.Title)
	return widgets.Block{Content: label + " " + inlineText(n), Style: st}
}

func buttonsWidget(n view.Node) widgets.Widget {
	cells := make([]widgets.Widget, len(n.Children))
	accent := theme.ToneColor(n.Style.Tone)
	for i, c := range n.Children {
		st := lipgloss.NewStyle().Foreground(accent)
		if c.Style.Emphasis {
			st = st.Background(accent).Foreground(theme.ColorBase).Bold(true)
		}
		label := "[ " + strings.TrimSpace(string(c.Icon)+" "+c.Text) + " ]"
		cells[i] = widgets.Block{Content: label, Style: st, Shrink: true}
	}
	return widgets.Grid{Cells: cells, Gap: 2, MinCellWidth: buttonMinWidth}
}

// inlineText flattens a node's inline runs with terminal styling. Nodes
// without runs fall back to their text.
func inlineText(n view.Node) string {
	if len(n.Children) == 0 {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		switch c.Kind {
		case view.KindCodeSpan:
			b.WriteString(codeStyle.Render(c.Text))
		case view.KindLink:
			b.WriteString(linkStyle.Render(c.Text))
			if c.Href != "" && c.Href != c.Text {
				b.WriteString(" (" + c.Href + ")")
			}
		default:
			b.WriteString(c.Text)
		}
	}
	return b.String()
}
