// Package tui is the read-only terminal previewer: a scrollable viewport
// over the text rendering of one view.
package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pospreview/internal/theme"
)

const statusHeight = 1

// RenderFunc draws the page at a terminal width.
type RenderFunc func(width int) string

// App wraps a viewport around a rendered page and redraws it when the
// terminal is resized. Action buttons in the page stay inert.
type App struct {
	title    string
	render   RenderFunc
	keys     *KeyRegistry
	view     viewport.Model
	ready    bool
	width    int
	quitting bool
}

// New returns an App showing the output of render.
func New(title string, render RenderFunc) App {
	return App{title: title, render: render, keys: NewKeyRegistry(DefaultBindings())}
}

func (a App) Init() tea.Cmd { return nil }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		height := max(1, msg.Height-statusHeight)
		if !a.ready {
			a.view = viewport.New(msg.Width, height)
			a.ready = true
		} else {
			a.view.Width = msg.Width
			a.view.Height = height
		}
		a.view.SetContent(a.render(msg.Width))
		return a, nil
	case tea.KeyMsg:
		switch a.keys.Action(msg) {
		case actionQuit:
			a.quitting = true
			return a, tea.Quit
		case actionTop:
			a.view.GotoTop()
			return a, nil
		case actionBottom:
			a.view.GotoBottom()
			return a, nil
		}
	}
	var cmd tea.Cmd
	a.view, cmd = a.view.Update(msg)
	return a, cmd
}

func (a App) View() string {
	if a.quitting {
		return ""
	}
	if !a.ready {
		return "loading…"
	}
	return a.view.View() + "\n" + a.statusLine()
}

func (a App) statusLine() string {
	title := lipgloss.NewStyle().
		Foreground(theme.ColorBase).
		Background(theme.ColorBrand).
		Bold(true).
		Padding(0, 1).
		Render(a.title)
	footer := a.keys.Footer(max(1, a.width-lipgloss.Width(title)), fmt.Sprintf("%3.0f%%", a.view.ScrollPercent()*100))
	return title + footer
}

// Run starts the previewer on the alternate screen and blocks until the
// user quits.
func Run(a App, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithInput(in), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run previewer: %w", err)
	}
	return nil
}
