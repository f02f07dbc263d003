package page

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/jask/pospreview/internal/content"
	"github.com/jask/pospreview/internal/theme"
	"github.com/jask/pospreview/internal/view"
)

// ErrUnknownView is returned by Lookup for names that are not registered.
var ErrUnknownView = errors.New("unknown view")

// maxSuggestDistance bounds how far a typo may be from a view name and
// still get a suggestion.
const maxSuggestDistance = 3

// View is a named page.
type View struct {
	Name        string
	Description string
	Compose     func(content.Bundle) view.Node
}

// Registry holds views in registration order.
type Registry struct {
	views []View
}

// NewRegistry returns a registry over the given views.
func NewRegistry(views ...View) *Registry {
	return &Registry{views: append([]View{}, views...)}
}

// DefaultRegistry returns the report and preview views with their themes.
func DefaultRegistry() *Registry {
	return NewRegistry(
		View{
			Name:        "report",
			Description: "Deployment readiness: test results, features, run instructions",
			Compose: func(b content.Bundle) view.Node {
				return ComposeReport(b.Report, theme.Report())
			},
		},
		View{
			Name:        "preview",
			Description: "Branding preview: logo, updated features, app sections",
			Compose: func(b content.Bundle) view.Node {
				return ComposePreview(b.Preview, theme.Preview())
			},
		},
	)
}

// Views returns the registered views in order.
func (r *Registry) Views() []View {
	return append([]View{}, r.views...)
}

// Names returns the registered view names in order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.views))
	for _, v := range r.views {
		names = append(names, v.Name)
	}
	return names
}

// Lookup finds a view by name, ignoring case and surrounding space. The
// error for an unknown name suggests the closest registered one.
func (r *Registry) Lookup(name string) (View, error) {
	target := strings.ToLower(strings.TrimSpace(name))
	for _, v := range r.views {
		if strings.EqualFold(v.Name, target) {
			return v, nil
		}
	}
	if s := r.suggest(target); s != "" {
		return View{}, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownView, name, s)
	}
	return View{}, fmt.Errorf("%w %q (available: %s)", ErrUnknownView, name, strings.Join(r.Names(), ", "))
}

func (r *Registry) suggest(target string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, v := range r.views {
		d := levenshtein.ComputeDistance(target, strings.ToLower(v.Name))
		if d < bestDist {
			best, bestDist = v.Name, d
		}
	}
	return best
}
