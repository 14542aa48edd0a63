package world

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// SpreadStep runs one iteration of the separation simulation: every room
// moves by its velocity, then the first room found overlapping others
// scatters them. It returns true once a full sweep finds no overlaps, at
// which point every room has been stopped.
func (d *Dungeon) SpreadStep() bool {
	for _, room := range d.Rooms {
		room.update()
	}

	for _, room := range d.Rooms {
		if d.scatterFrom(room) > 0 {
			return false
		}
	}

	d.stopRooms()
	return true
}

// SpreadOutRooms iterates SpreadStep until the layout settles. It returns
// the number of steps taken. When MaxSpreadSteps is exhausted the rooms
// are stopped where they are and ErrNotConverged is returned.
func (d *Dungeon) SpreadOutRooms(ctx context.Context) (int, error) {
	limit := d.MaxSpreadSteps
	if limit <= 0 {
		limit = DefaultMaxSpreadSteps
	}

	for step := 1; step <= limit; step++ {
		if err := ctx.Err(); err != nil {
			d.stopRooms()
			return step - 1, err
		}
		if d.SpreadStep() {
			return step, nil
		}
	}

	d.stopRooms()
	return limit, fmt.Errorf("%w after %d steps", ErrNotConverged, limit)
}

// scatterFrom pushes every room overlapping a away from it and stops the
// rest. It returns the number of overlaps found.
func (d *Dungeon) scatterFrom(a *Room) int {
	hits := 0
	for _, b := range d.Rooms {
		if a.Collides(b) {
			b.repulse(a, d.rng)
			hits++
			continue
		}
		b.Velocity = r2.Vec{}
	}
	return hits
}

// stopRooms zeroes every velocity and re-snaps every room.
func (d *Dungeon) stopRooms() {
	for _, room := range d.Rooms {
		room.Velocity = r2.Vec{}
		room.SnapToGrid()
	}
}
