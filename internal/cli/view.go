package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JnyJny/DungeonGenerator/internal/ui"
	"github.com/JnyJny/DungeonGenerator/internal/viewer"
)

func (c *CLI) viewCommand() *cobra.Command {
	var rooms, spacing int

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Step through generation in the terminal",
		Long: `View fills the terminal with a dungeon and walks the pipeline one step
at a time.

Keys:
  space, right  one step
  enter         finish the current stage
  r             start over
  q, esc        quit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("rooms") {
				cfg.Viewer.MaxRooms = rooms
			}
			if cmd.Flags().Changed("spacing") {
				cfg.Viewer.GridSpacing = spacing
			}

			palette, err := ui.NewPalette(cfg.Palette)
			if err != nil {
				return err
			}

			p := cfg.Params()
			p.SeedRooms = cfg.Viewer.MaxRooms
			p.GridSpacing = cfg.Viewer.GridSpacing

			screen, err := ui.NewScreen()
			if err != nil {
				return err
			}
			defer screen.Close()

			v, err := viewer.New(screen, palette, p, cfg.RNG())
			if err != nil {
				return err
			}
			return v.Run(log.WithContext(cmd.Context(), c.Logger))
		},
	}

	cmd.Flags().IntVar(&rooms, "rooms", 0, "rooms seeded before separation (default from config)")
	cmd.Flags().IntVar(&spacing, "spacing", 0, "interior pixels per grid cell (default from config)")

	return cmd
}
