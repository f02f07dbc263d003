// Package render draws a composed view tree with one of the host backends:
// terminal text, HTML, Markdown or JSON.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jask/pospreview/internal/view"
)

// DefaultWidth is used when no terminal width is known.
const DefaultWidth = 100

// ErrUnknownFormat is returned by ParseFormat for unsupported names.
var ErrUnknownFormat = errors.New("unknown format")

// Format selects a backend.
type Format int

const (
	FormatText Format = iota
	FormatHTML
	FormatMarkdown
	FormatJSON
)

var formatNames = map[Format]string{
	FormatText:     "text",
	FormatHTML:     "html",
	FormatMarkdown: "markdown",
	FormatJSON:     "json",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Formats lists the accepted format names.
func Formats() []string {
	return []string{"text", "html", "markdown", "json"}
}

// ParseFormat maps a format name (or the aliases "tty" and "md").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "text", "tty", "":
		return FormatText, nil
	case "html":
		return FormatHTML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, fmt.Errorf("%w %q (want one of %s)", ErrUnknownFormat, s, strings.Join(Formats(), ", "))
	}
}

// Options control one render pass.
type Options struct {
	Format Format
	// Width is the terminal width for text and pretty Markdown output.
	Width int
	// Pretty styles Markdown output for a terminal.
	Pretty bool
}

// Renderer writes view trees and logs each pass.
type Renderer struct {
	log zerolog.Logger
}

// New returns a Renderer logging to log.
func New(log zerolog.Logger) *Renderer {
	return &Renderer{log: log}
}

// Write draws root to w.
func (r *Renderer) Write(w io.Writer, root view.Node, opts Options) error {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}
	log := r.log.With().
		Str("render_id", uuid.NewString()).
		Str("view", root.ID).
		Str("format", opts.Format.String()).
		Logger()
	start := time.Now()
	log.Debug().Int("width", width).Msg("render start")

	var err error
	switch opts.Format {
	case FormatText:
		_, err = io.WriteString(w, Text(root, width)+"\n")
	case FormatHTML:
		err = HTML(w, root)
	case FormatMarkdown:
		md := Markdown(root)
		if opts.Pretty {
			md, err = Pretty(md, width)
		}
		if err == nil {
			_, err = io.WriteString(w, md)
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(root)
	default:
		err = fmt.Errorf("%w: %s", ErrUnknownFormat, opts.Format)
	}
	if err != nil {
		log.Error().Err(err).Msg("render failed")
		return fmt.Errorf("render %s as %s: %w", root.ID, opts.Format, err)
	}

	log.Debug().
		Int("nodes", countNodes(root)).
		Dur("elapsed", time.Since(start)).
		Msg("render done")
	return nil
}

func countNodes(root view.Node) int {
	n := 0
	view.Walk(root, func(view.Node) bool {
		n++
		return true
	})
	return n
}

// Write draws root to w without logging.
func Write(w io.Writer, root view.Node, opts Options) error {
	return New(zerolog.Nop()).Write(w, root, opts)
}
