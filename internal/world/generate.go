package world

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/JnyJny/DungeonGenerator/internal/telemetry"
)

// Params controls a full generation run.
type Params struct {
	Width             int     // Surface width in pixels
	Height            int     // Surface height in pixels
	MaxRoomDimension  int     // Largest seeded room side, in grid units
	GridSpacing       int     // Interior pixels per grid cell
	SeedRooms         int     // Rooms scattered before separation
	MainRoomRatio     float64 // Size multiple of the average a main room must reach
	MaxEdges          int     // Neighbors per main room
	HallWidth         int     // Corridor probe width in grid units
	MaxSpreadSteps    int     // Separation iteration cap
	SeedRadiusDivisor float64 // Seeding disc radius is the dungeon radius over this
}

// DefaultParams returns the stock parameters for a surface of the given size.
func DefaultParams(width, height int) Params {
	return Params{
		Width:             width,
		Height:            height,
		MaxRoomDimension:  DefaultMaxRoomDimension,
		GridSpacing:       DefaultGridSpacing,
		SeedRooms:         DefaultSeedRooms,
		MainRoomRatio:     DefaultMainRoomRatio,
		MaxEdges:          DefaultMaxEdges,
		HallWidth:         DefaultHallWidth,
		MaxSpreadSteps:    DefaultMaxSpreadSteps,
		SeedRadiusDivisor: DefaultSeedRadiusDivisor,
	}
}

// Validate checks every parameter and reports the first one out of range.
func (p Params) Validate() error {
	switch {
	case p.Width <= 0 || p.Height <= 0:
		return fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidParams, p.Width, p.Height)
	case p.MaxRoomDimension < 1:
		return fmt.Errorf("%w: max room dimension must be at least 1, got %d", ErrInvalidParams, p.MaxRoomDimension)
	case p.GridSpacing < 0:
		return fmt.Errorf("%w: grid spacing must not be negative, got %d", ErrInvalidParams, p.GridSpacing)
	case p.SeedRooms < 0:
		return fmt.Errorf("%w: seed rooms must not be negative, got %d", ErrInvalidParams, p.SeedRooms)
	case p.MainRoomRatio <= 0:
		return fmt.Errorf("%w: main room ratio must be positive, got %g", ErrInvalidParams, p.MainRoomRatio)
	case p.MaxEdges < 0:
		return fmt.Errorf("%w: max edges must not be negative, got %d", ErrInvalidParams, p.MaxEdges)
	case p.HallWidth < 0:
		return fmt.Errorf("%w: hall width must not be negative, got %d", ErrInvalidParams, p.HallWidth)
	case p.MaxSpreadSteps < 1:
		return fmt.Errorf("%w: max spread steps must be at least 1, got %d", ErrInvalidParams, p.MaxSpreadSteps)
	case p.SeedRadiusDivisor <= 0:
		return fmt.Errorf("%w: seed radius divisor must be positive, got %g", ErrInvalidParams, p.SeedRadiusDivisor)
	}
	return nil
}

// New creates an empty dungeon configured from the parameters.
func (p Params) New(rng *rand.Rand) (*Dungeon, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	d, err := NewDungeon(p.Width, p.Height, p.MaxRoomDimension, p.MaxRoomDimension, p.GridSpacing, rng)
	if err != nil {
		return nil, err
	}
	d.MaxSpreadSteps = p.MaxSpreadSteps
	return d, nil
}

// SeedRadius returns the radius of the disc rooms are scattered in.
func (p Params) SeedRadius(d *Dungeon) float64 {
	return d.Radius() / p.SeedRadiusDivisor
}

// Generate runs the whole pipeline: scatter rooms, separate them, center
// the layout, pick main rooms, fill the gaps with voids, link neighbors
// and carve halls.
func Generate(ctx context.Context, p Params, rng *rand.Rand) (*Dungeon, error) {
	tracer := telemetry.Tracer("world")
	ctx, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	logger := log.FromContext(ctx)
	startTime := time.Now()

	d, err := p.New(rng)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	// try runs fn inside a child span named after the stage
	try := func(name string, fn func() error) error {
		_, child := tracer.Start(ctx, "dungeon."+name)
		defer child.End()
		if err := fn(); err != nil {
			child.SetStatus(codes.Error, err.Error())
			span.SetStatus(codes.Error, err.Error())
			return err
		}
		return nil
	}
	stage := func(name string, fn func()) {
		_, child := tracer.Start(ctx, "dungeon."+name)
		defer child.End()
		fn()
	}

	radius := p.SeedRadius(d)
	stage("seed", func() {
		for i := 0; i < p.SeedRooms; i++ {
			d.AddRandomRoom(radius)
		}
	})
	logger.Debug("seeded rooms", "rooms", len(d.Rooms), "radius", radius)

	if len(d.Rooms) == 0 {
		logger.Warn("no seed rooms requested, dungeon is empty")
		return d, nil
	}

	var steps int
	err = try("spread", func() error {
		var err error
		steps, err = d.SpreadOutRooms(ctx)
		return err
	})
	span.SetAttributes(attribute.Int("dungeon.spread_steps", steps))
	if err != nil {
		return nil, fmt.Errorf("spreading rooms: %w", err)
	}
	logger.Debug("rooms separated", "steps", steps)

	d.CenterIn(d.Rect())

	var mains []*Room
	err = try("classify", func() error {
		var err error
		mains, err = d.PickMainRooms(p.MainRoomRatio)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("picking main rooms: %w", err)
	}
	logger.Debug("main rooms picked", "main", len(mains))

	var voids, halls int
	stage("infill", func() {
		voids = d.InFillWithVoids()
	})
	logger.Debug("voids filled", "voids", voids)

	stage("neighbors", func() {
		d.FindMainRoomNeighbors(p.MaxEdges)
	})

	err = try("halls", func() error {
		var err error
		halls, err = d.ConnectHallsToRooms(p.HallWidth)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("carving halls: %w", err)
	}
	logger.Debug("halls carved", "halls", halls)

	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.grid_spacing", d.GridSpacing),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.main_rooms", len(mains)),
		attribute.Int("dungeon.halls", halls),
		attribute.Int("dungeon.edges", len(d.Edges())),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return d, nil
}
