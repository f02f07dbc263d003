// Package cli wires the pospreview commands.
package cli

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jask/pospreview/internal/config"
	"github.com/jask/pospreview/internal/content"
	"github.com/jask/pospreview/internal/logger"
	"github.com/jask/pospreview/internal/page"
	"github.com/jask/pospreview/internal/view"
)

// allowMissingConfig marks commands that run on defaults when the config
// file named by --config or $POSPREVIEW_CONFIG does not exist yet.
const allowMissingConfig = "allow-missing-config"

// Version is injected at build time via -ldflags
var Version = "dev"

// options is the state shared by every subcommand once the root has loaded
// config and built the logger.
type options struct {
	configPath string
	logLevel   string

	cfg      config.Config
	log      zerolog.Logger
	registry *page.Registry
}

// NewRootCommand creates and returns the root cobra command for pospreview
func NewRootCommand() *cobra.Command {
	o := &options{log: zerolog.Nop(), registry: page.DefaultRegistry()}
	cmd := &cobra.Command{
		Use:   "pospreview",
		Short: "Render the POS deployment report and branding preview",
		Long: `pospreview renders two static pages for a point-of-sale system: a
deployment-readiness report (test results, features, run instructions)
and a branding preview (logo, updated features, app sections).

Pages can be written as terminal text, HTML, Markdown or JSON, or browsed
in a scrollable terminal previewer. Built-in records can be replaced with
a YAML or TOML content file.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setup(cmd)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "config file (default $POSPREVIEW_CONFIG or ~/.config/pospreview/config.toml)")
	flags.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(newRenderCommand(o))
	cmd.AddCommand(newPreviewCommand(o))
	cmd.AddCommand(newViewsCommand(o))
	cmd.AddCommand(newConfigCommand(o))

	return cmd
}

func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		if cmd.Annotations[allowMissingConfig] == "" || !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		cfg = config.Default()
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	o.cfg = cfg
	o.log = logger.New(logger.Config{Level: cfg.Log.Level, Pretty: cfg.Log.Pretty}, cmd.ErrOrStderr())
	o.log.Debug().Str("command", cmd.Name()).Str("config", config.Path(o.configPath)).Msg("config loaded")
	return nil
}

// bundle returns the built-in records, or those of the content file given
// by flag or config.
func (o *options) bundle(path string) (content.Bundle, error) {
	if path == "" {
		path = o.cfg.Content.Path
	}
	if path == "" {
		return content.Defaults(), nil
	}
	b, err := content.LoadFile(path)
	if err != nil {
		return content.Bundle{}, err
	}
	o.log.Debug().Str("path", path).Msg("content loaded")
	return b, nil
}

// compose looks up a view (the configured one when name is empty) and
// builds its tree.
func (o *options) compose(name, contentPath string) (view.Node, error) {
	if name == "" {
		name = o.cfg.UI.View
	}
	v, err := o.registry.Lookup(name)
	if err != nil {
		return view.Node{}, err
	}
	b, err := o.bundle(contentPath)
	if err != nil {
		return view.Node{}, fmt.Errorf("load content: %w", err)
	}
	return v.Compose(b), nil
}
