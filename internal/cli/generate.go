package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/JnyJny/DungeonGenerator/internal/export"
	"github.com/JnyJny/DungeonGenerator/internal/world"
)

type generateOpts struct {
	width     int
	height    int
	maxRoom   int
	spacing   int
	rooms     int
	ratio     float64
	edges     int
	hallWidth int
	maxSteps  int
	output    string
	format    string
}

func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dungeon and print or export it",
		Long: `Generate runs the whole pipeline once. Without --out or --format a
summary is printed; otherwise the dungeon is written as csv, json, dot or svg.`,
		Example: `  roomgen generate --seed 42
  roomgen generate --rooms 80 --spacing 4 -o dungeon.json
  roomgen generate --format dot | dot -Kneato -n -Tpng > graph.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	d := world.DefaultParams(world.DefaultWidth, world.DefaultHeight)
	cmd.Flags().IntVar(&opts.width, "width", d.Width, "surface width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", d.Height, "surface height in pixels")
	cmd.Flags().IntVar(&opts.maxRoom, "max-room", d.MaxRoomDimension, "largest room side in grid units")
	cmd.Flags().IntVar(&opts.spacing, "spacing", d.GridSpacing, "interior pixels per grid cell")
	cmd.Flags().IntVar(&opts.rooms, "rooms", d.SeedRooms, "rooms seeded before separation")
	cmd.Flags().Float64Var(&opts.ratio, "ratio", d.MainRoomRatio, "size multiple of the average a main room must reach")
	cmd.Flags().IntVar(&opts.edges, "edges", d.MaxEdges, "neighbors per main room")
	cmd.Flags().IntVar(&opts.hallWidth, "hall-width", d.HallWidth, "corridor width in grid units")
	cmd.Flags().IntVar(&opts.maxSteps, "max-steps", d.MaxSpreadSteps, "separation iteration cap")
	cmd.Flags().StringVarP(&opts.output, "out", "o", "", "output file (format inferred from extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: "+strings.Join(export.Formats, ", "))

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	// Flags given on the command line win over the config file
	p := cfg.Params()
	flags := cmd.Flags()
	override := func(name string, dst *int, v int) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("width", &p.Width, opts.width)
	override("height", &p.Height, opts.height)
	override("max-room", &p.MaxRoomDimension, opts.maxRoom)
	override("spacing", &p.GridSpacing, opts.spacing)
	override("rooms", &p.SeedRooms, opts.rooms)
	override("edges", &p.MaxEdges, opts.edges)
	override("hall-width", &p.HallWidth, opts.hallWidth)
	override("max-steps", &p.MaxSpreadSteps, opts.maxSteps)
	if flags.Changed("ratio") {
		p.MainRoomRatio = opts.ratio
	}

	format := opts.format
	if format == "" && opts.output != "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(opts.output)), ".")
	}

	ctx := log.WithContext(cmd.Context(), c.Logger)
	start := time.Now()
	d, err := world.Generate(ctx, p, cfg.RNG())
	if err != nil {
		return err
	}
	c.Logger.Infof("Generated %d rooms (%s)", len(d.Rooms), time.Since(start).Round(time.Millisecond))

	meta := export.NewMeta(cfg.Seed)
	if format == "" {
		return writeSummary(cmd.OutOrStdout(), d, meta)
	}

	if opts.output == "" {
		return export.Write(cmd.OutOrStdout(), format, d, meta)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := export.Write(f, format, d, meta); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	c.Logger.Info("Wrote dungeon", "path", opts.output, "format", format, "run", meta.RunID)
	return nil
}

func writeSummary(w io.Writer, d *world.Dungeon, meta export.Meta) error {
	_, err := fmt.Fprintf(w, "dungeon %dx%d spacing %d seed %d\n", d.Width, d.Height, d.GridSpacing, meta.Seed)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  rooms  %d\n", len(d.Rooms))
	fmt.Fprintf(w, "  main   %d\n", len(d.MainRooms()))
	fmt.Fprintf(w, "  halls  %d\n", len(d.Halls()))
	fmt.Fprintf(w, "  voids  %d\n", len(d.Voids()))
	fmt.Fprintf(w, "  edges  %d\n", len(d.Edges()))
	if bound, ok := d.Bound(); ok {
		fmt.Fprintf(w, "  bound  %d,%d %dx%d\n", bound.X, bound.Y, bound.Width, bound.Height)
	}
	return nil
}
