// Package theme holds the terminal palette and the per-view style
// configuration handed to the page composer.
package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/pospreview/internal/view"
)

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	ColorRed      lipgloss.Color = "#f38ba8"
	ColorPeach    lipgloss.Color = "#fab387"
	ColorGreen    lipgloss.Color = "#a6e3a1"
	ColorTeal     lipgloss.Color = "#94e2d5"
	ColorSky      lipgloss.Color = "#89dceb"
	ColorBlue     lipgloss.Color = "#89b4fa"
	ColorLavender lipgloss.Color = "#b4befe"

	ColorText     lipgloss.Color = "#cdd6f4"
	ColorSubtext0 lipgloss.Color = "#a6adc8"
	ColorOverlay1 lipgloss.Color = "#7f849c"
	ColorOverlay0 lipgloss.Color = "#6c7086"
	ColorSurface1 lipgloss.Color = "#45475a"
	ColorSurface0 lipgloss.Color = "#313244"
	ColorBase     lipgloss.Color = "#1e1e2e"
	ColorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	ColorBrand   = ColorTeal
	ColorFocus   = ColorLavender
	ColorSuccess = ColorGreen
	ColorError   = ColorRed
	ColorInfo    = ColorSky
	ColorMuted   = ColorOverlay1
	ColorBorder  = ColorOverlay0
	ColorCode    = ColorPeach
	ColorLink    = ColorBlue
)

// ToneColor maps a semantic tone to its terminal foreground color. Inverse
// text sits on a filled background and keeps the default text color.
func ToneColor(t view.Tone) lipgloss.Color {
	switch t {
	case view.ToneBrand:
		return ColorBrand
	case view.ToneSuccess:
		return ColorSuccess
	case view.ToneError:
		return ColorError
	case view.ToneInfo:
		return ColorInfo
	case view.ToneMuted:
		return ColorMuted
	default:
		return ColorText
	}
}

// Theme is the web-facing style configuration of one view. All values are
// "#rrggbb" colors copied onto the nodes the composer emits.
type Theme struct {
	Brand       string
	HeaderFrom  string
	HeaderTo    string
	LogoFrom    string
	LogoTo      string
	FeatureFill string
	SectionFill string
	LogoFill    string
	ChipFill    string
	CodeFill    string
	FooterFill  string
	SurfaceFill string
}

// Report is the style of the deployment-readiness view.
func Report() Theme {
	return Theme{
		Brand:       "#1976d2",
		HeaderFrom:  "#667eea",
		HeaderTo:    "#764ba2",
		ChipFill:    "#f5f5f5",
		CodeFill:    "#212121",
		FooterFill:  "#fafafa",
		SurfaceFill: "#ffffff",
	}
}

// Preview is the style of the branding preview.
func Preview() Theme {
	return Theme{
		Brand:       "#008080",
		LogoFrom:    "#008080",
		LogoTo:      "#20b2aa",
		FeatureFill: "#f0f8ff",
		SectionFill: "#fff8dc",
		LogoFill:    "#f0fff0",
		ChipFill:    "#ffffff",
		FooterFill:  "#008080",
		SurfaceFill: "#ffffff",
	}
}
