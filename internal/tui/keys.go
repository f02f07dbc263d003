package tui

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/pospreview/internal/theme"
)

// Previewer actions.
const (
	actionQuit   = "quit"
	actionTop    = "top"
	actionBottom = "bottom"
	actionScroll = "scroll"
)

type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	// Hidden bindings work but are left out of the footer.
	Hidden bool
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultBindings are the previewer keys. Scrolling itself is handled by
// the viewport; its entry only documents the keys.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"↑/↓"}, Action: actionScroll, Description: "scroll"},
		{Keys: []string{"g", "home"}, Action: actionTop, Description: "top"},
		{Keys: []string{"G", "end"}, Action: actionBottom, Description: "bottom"},
		{Keys: []string{"q", "esc"}, Action: actionQuit, Description: "quit"},
		{Keys: []string{"ctrl+c"}, Action: actionQuit, Hidden: true},
	}
}

// Action returns the action bound to the pressed key, or "".
func (r *KeyRegistry) Action(msg tea.KeyMsg) string {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action
			}
		}
	}
	return ""
}

// Runes stay case-sensitive so g and G can differ.
func normalizeKey(k string) string {
	return strings.TrimSpace(k)
}

// Footer draws the visible bindings followed by extra, padded to width.
func (r *KeyRegistry) Footer(width int, extra string) string {
	bg := theme.ColorSurface0
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorFocus).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(r.bindings)+1)
	for _, b := range r.bindings {
		if b.Hidden || len(b.Keys) == 0 {
			continue
		}
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	if extra != "" {
		parts = append(parts, descStyle.Render(extra))
	}
	return renderBar(max(1, width), strings.Join(parts, sep), bg)
}

func renderBar(width int, text string, bg lipgloss.TerminalColor) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += lipgloss.NewStyle().Background(bg).Render(strings.Repeat(" ", width-lineW))
	}
	return line
}
