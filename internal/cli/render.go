package cli

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"

	"github.com/jask/pospreview/internal/render"
)

func newRenderCommand(o *options) *cobra.Command {
	var (
		format      string
		width       int
		pretty      bool
		contentPath string
	)
	cmd := &cobra.Command{
		Use:   "render [view]",
		Short: "Write a view to stdout",
		Long: `Render a view as terminal text, HTML, Markdown or JSON.

The view defaults to ui.view from the config ("report" unless set).
Flags override config values.

Examples:
  pospreview render
  pospreview render preview --format html > preview.html
  pospreview render report --format markdown --pretty
  pospreview render --content records.yaml --format json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: o.registry.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			flags := cmd.Flags()
			if !flags.Changed("format") {
				format = o.cfg.UI.Format
			}
			if !flags.Changed("width") {
				width = o.cfg.UI.Width
			}
			if !flags.Changed("pretty") {
				pretty = o.cfg.UI.Pretty
			}

			f, err := render.ParseFormat(format)
			if err != nil {
				return err
			}
			root, err := o.compose(name, contentPath)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if width <= 0 {
				width = detectWidth(out)
			}
			return render.New(o.log).Write(out, root, render.Options{Format: f, Width: width, Pretty: pretty})
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&format, "format", "f", "text", "output format: "+strings.Join(render.Formats(), ", "))
	flags.IntVarP(&width, "width", "w", 0, "terminal width for text output (default: detected)")
	flags.BoolVar(&pretty, "pretty", false, "style markdown output for the terminal")
	flags.StringVar(&contentPath, "content", "", "YAML or TOML file replacing the built-in records")

	return cmd
}

// detectWidth returns the terminal width of out, then $COLUMNS, then the
// render default.
func detectWidth(out io.Writer) int {
	if f, ok := out.(*os.File); ok {
		if w, _, err := term.GetSize(f.Fd()); err == nil && w > 0 {
			return w
		}
	}
	if cols, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && cols > 0 {
		return cols
	}
	return render.DefaultWidth
}
