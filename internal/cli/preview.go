package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jask/pospreview/internal/render"
	"github.com/jask/pospreview/internal/tui"
)

// ErrNotTerminal is returned when the previewer would draw to a pipe or file.
var ErrNotTerminal = errors.New("stdout is not a terminal")

func newPreviewCommand(o *options) *cobra.Command {
	var contentPath string
	cmd := &cobra.Command{
		Use:   "preview [view]",
		Short: "Browse a view in a scrollable terminal previewer",
		Long: `Open a read-only previewer over the text rendering of a view.

Keys: ↑/↓ or j/k scroll, pgup/pgdn page, g/G top/bottom, q or esc quit.
The page redraws when the terminal is resized. Use "render" to write a
view to a pipe or file.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: o.registry.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !isTerminal(out) {
				return fmt.Errorf("preview: %w (use render instead)", ErrNotTerminal)
			}
			var name string
			if len(args) == 1 {
				name = args[0]
			}
			root, err := o.compose(name, contentPath)
			if err != nil {
				return err
			}
			o.log.Debug().Str("view", root.ID).Msg("previewer start")
			app := tui.New(root.Title, func(width int) string {
				return render.Text(root, width)
			})
			return tui.Run(app, cmd.InOrStdin(), out)
		},
	}
	cmd.Flags().StringVar(&contentPath, "content", "", "YAML or TOML file replacing the built-in records")
	return cmd
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
