package cli

import (
	"github.com/spf13/cobra"
)

func (c *CLI) configCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write the effective configuration as YAML",
		Example: `  roomgen config -o roomgen.yaml
  roomgen --config mine.toml config -o merged.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := cfg.WriteYAML(output); err != nil {
				return err
			}
			c.Logger.Info("Wrote config", "path", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "roomgen.yaml", "output file")

	return cmd
}
