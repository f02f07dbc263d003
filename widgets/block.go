package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Block wraps Content to the given width with Style. Backgrounds and
// padding in Style fill the whole width unless Shrink is set, in which case
// the block keeps its natural width while that fits.
type Block struct {
	Content string
	Style   lipgloss.Style
	Shrink  bool
}

func (b Block) Render(width int) string {
	if width <= 0 {
		return ""
	}
	if b.Shrink {
		out := b.Style.Render(b.Content)
		if lipgloss.Width(out) <= width {
			return out
		}
	}
	w := max(1, width-b.Style.GetHorizontalBorderSize()-b.Style.GetHorizontalMargins())
	return b.Style.Width(w).Render(b.Content)
}

// Center places a widget's lines in the middle of the width.
type Center struct {
	Widget Widget
}

func (c Center) Render(width int) string {
	if c.Widget == nil || width <= 0 {
		return ""
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, c.Widget.Render(width))
}

// Lines joins pre-rendered lines without wrapping; lines wider than the
// width are cut.
type Lines []string

func (l Lines) Render(width int) string {
	if width <= 0 {
		return ""
	}
	out := make([]string, len(l))
	for i, line := range l {
		out[i] = ansi.Truncate(line, width, "")
	}
	return strings.Join(out, "\n")
}
