package world

import (
	"math/rand"
	"slices"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"
)

// jitter bounds the random push added to every repulsion so rooms stacked
// exactly on top of each other still separate.
const jitter = 10

// Room represents a rectangular, grid-aligned region of the dungeon.
type Room struct {
	ID         int     // Allocated by the owning dungeon in creation order
	Rect       Rect    // Pixel bounds, origin always on the grid
	GridWidth  int     // Width in grid units
	GridHeight int     // Height in grid units
	Velocity   r2.Vec  // Pending movement for the next separation step
	Layer      Layer   // Classification, Void until promoted
	Neighbors  []*Room // Nearest main rooms, in the order they were picked

	spacing int
}

// newRoom creates a void room at the given pixel position measuring
// gridWidth by gridHeight cells, snapped onto the grid.
func newRoom(id, x, y, gridWidth, gridHeight, spacing int) *Room {
	r := &Room{
		ID: id,
		Rect: Rect{
			X:      x,
			Y:      y,
			Width:  GridToScreen(gridWidth, spacing),
			Height: GridToScreen(gridHeight, spacing),
		},
		GridWidth:  gridWidth,
		GridHeight: gridHeight,
		Layer:      Void,
		spacing:    spacing,
	}
	r.SnapToGrid()
	return r
}

// IsVoid returns true if the room is unclassified filler.
func (r *Room) IsVoid() bool { return r.Layer == Void }

// IsHall returns true if the room was carved into a corridor.
func (r *Room) IsHall() bool { return r.Layer == Hall }

// IsMainRoom returns true if the room is a main room.
func (r *Room) IsMainRoom() bool { return r.Layer == MainRoom }

// Center returns the room's center point. It always reflects the current rect.
func (r *Room) Center() r2.Vec {
	x, y := r.Rect.Center()
	return r2.Vec{X: float64(x), Y: float64(y)}
}

// DistanceTo returns the Euclidean distance between the centers of two rooms.
func (r *Room) DistanceTo(other *Room) float64 {
	return r2.Norm(r2.Sub(r.Center(), other.Center()))
}

// Collides returns true if the interiors of two distinct rooms overlap.
func (r *Room) Collides(other *Room) bool {
	if r == other {
		return false
	}
	return collides(r.Rect, other.Rect)
}

// SnapToGrid moves the room's origin up onto the next grid line.
func (r *Room) SnapToGrid() {
	r.Rect = SnapOrigin(r.Rect, r.spacing)
}

// Centerbox returns the box spanning the origins of two rooms.
// The rooms' own extents are ignored.
func (r *Room) Centerbox(other *Room) Rect {
	x := min(r.Rect.X, other.Rect.X)
	y := min(r.Rect.Y, other.Rect.Y)
	return Rect{
		X:      x,
		Y:      y,
		Width:  max(r.Rect.X, other.Rect.X) - x,
		Height: max(r.Rect.Y, other.Rect.Y) - y,
	}
}

// update applies the room's velocity and snaps it back onto the grid.
func (r *Room) update() {
	r.Rect.X += int(r.Velocity.X)
	r.Rect.Y += int(r.Velocity.Y)
	r.SnapToGrid()
}

// repulse pushes the room away from other, plus a little noise.
func (r *Room) repulse(other *Room, rng *rand.Rand) {
	push := r2.Vec{
		X: float64(r.Rect.X-other.Rect.X) + noise(rng),
		Y: float64(r.Rect.Y-other.Rect.Y) + noise(rng),
	}
	r.Velocity = r2.Add(r.Velocity, push)
}

// noise returns a value in [-jitter, jitter] that is zero about a third of the time.
func noise(rng *rand.Rand) float64 {
	magnitude := rng.Intn(2*jitter+1) - jitter
	sign := rng.Intn(3) - 1
	return float64(magnitude * sign)
}

// goodNeighbor returns true if other may be added to the neighbor list.
func (r *Room) goodNeighbor(other *Room) bool {
	return r != other && !slices.Contains(r.Neighbors, other)
}

// PickClosestNeighbors appends the rooms from potentials nearest to this
// room until the neighbor list holds limit entries, and returns the list.
// When two candidates sit at exactly the same distance the earlier one wins.
// If reset is set the existing neighbors are cleared first.
func (r *Room) PickClosestNeighbors(potentials []*Room, limit int, reset bool) []*Room {
	if reset {
		r.Neighbors = nil
	}

	room := limit - len(r.Neighbors)
	if room <= 0 {
		return r.Neighbors
	}

	neighborhood := make(map[float64]*Room, len(potentials))
	for _, p := range potentials {
		if !r.goodNeighbor(p) {
			continue
		}
		d := r.DistanceTo(p)
		if _, taken := neighborhood[d]; !taken {
			neighborhood[d] = p
		}
	}

	distances := make([]float64, 0, len(neighborhood))
	for d := range neighborhood {
		distances = append(distances, d)
	}
	sort.Float64s(distances)

	for _, d := range distances[:min(room, len(distances))] {
		r.Neighbors = append(r.Neighbors, neighborhood[d])
	}
	return r.Neighbors
}
