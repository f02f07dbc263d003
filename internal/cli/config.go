package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/pospreview/internal/config"
)

func newConfigCommand(o *options) *cobra.Command {
	var write bool
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Print the configuration after defaults, the config file and
POSPREVIEW_* environment overrides are applied.

With --write the configuration is saved to the config path, creating the
directory if needed.`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{allowMissingConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if write {
				path := config.Path(o.configPath)
				if err := config.Save(o.cfg, path); err != nil {
					return err
				}
				o.log.Info().Str("path", path).Msg("config written")
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
				return nil
			}
			return config.Write(cmd.OutOrStdout(), o.cfg)
		},
	}
	cmd.Flags().BoolVar(&write, "write", false, "save the configuration to the config path")
	return cmd
}
