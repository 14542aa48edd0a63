package world

import (
	"fmt"
	"math"
	"math/rand"
	"time"
)

const (
	// Default dungeon dimensions in pixels
	DefaultWidth  = 1024
	DefaultHeight = 1024

	// Generation parameters
	DefaultMaxRoomDimension  = 10      // Largest seeded room side, in grid units
	DefaultGridSpacing       = 8       // Interior pixels per grid cell
	DefaultSeedRooms         = 150     // Rooms scattered before separation
	DefaultMainRoomRatio     = 1.25    // Multiple of the average size a main room must reach
	DefaultMaxEdges          = 2       // Neighbors picked per main room
	DefaultHallWidth         = 3       // Corridor probe width in grid units
	DefaultMaxSpreadSteps    = 100_000 // Separation iterations before giving up
	DefaultSeedRadiusDivisor = 5.0     // Seeding disc radius is the dungeon radius over this
)

// idAllocator hands out room ids in creation order.
type idAllocator struct {
	next int
}

func (a *idAllocator) allocate() int {
	id := a.next
	a.next++
	return id
}

// Dungeon owns every room of a generated layout.
type Dungeon struct {
	Width         int // Pixel width of the target surface
	Height        int // Pixel height of the target surface
	GridSpacing   int
	MaxRoomWidth  int // Grid units
	MaxRoomHeight int // Grid units
	Rooms         []*Room

	// MaxSpreadSteps caps SpreadOutRooms. Zero means DefaultMaxSpreadSteps.
	MaxSpreadSteps int

	rng *rand.Rand
	ids idAllocator
}

// NewDungeon creates an empty dungeon. If rng is nil a time-seeded source is used.
func NewDungeon(width, height, maxRoomWidth, maxRoomHeight, gridSpacing int, rng *rand.Rand) (*Dungeon, error) {
	switch {
	case width <= 0 || height <= 0:
		return nil, fmt.Errorf("%w: dimensions must be positive, got %dx%d", ErrInvalidParams, width, height)
	case maxRoomWidth < 1 || maxRoomHeight < 1:
		return nil, fmt.Errorf("%w: max room size must be at least 1, got %dx%d", ErrInvalidParams, maxRoomWidth, maxRoomHeight)
	case gridSpacing < 0:
		return nil, fmt.Errorf("%w: grid spacing must not be negative, got %d", ErrInvalidParams, gridSpacing)
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Dungeon{
		Width:         width,
		Height:        height,
		GridSpacing:   gridSpacing,
		MaxRoomWidth:  maxRoomWidth,
		MaxRoomHeight: maxRoomHeight,
		Rooms:         make([]*Room, 0),
		rng:           rng,
	}, nil
}

// Rect returns the dungeon's target surface.
func (d *Dungeon) Rect() Rect {
	return Rect{Width: d.Width, Height: d.Height}
}

// Radius returns half of the shorter surface side.
func (d *Dungeon) Radius() float64 {
	return float64(min(d.Width, d.Height)) / 2
}

// Bound returns the union of every room's rect. It is recomputed on every
// call; ok is false when the dungeon has no rooms.
func (d *Dungeon) Bound() (bound Rect, ok bool) {
	if len(d.Rooms) == 0 {
		return Rect{}, false
	}
	bound = d.Rooms[0].Rect
	for _, room := range d.Rooms[1:] {
		bound = bound.Union(room.Rect)
	}
	return bound, true
}

// MainRooms returns the rooms on the main room layer.
func (d *Dungeon) MainRooms() []*Room { return d.onLayer(MainRoom) }

// Halls returns the rooms on the hall layer.
func (d *Dungeon) Halls() []*Room { return d.onLayer(Hall) }

// Voids returns the rooms on the void layer.
func (d *Dungeon) Voids() []*Room { return d.onLayer(Void) }

func (d *Dungeon) onLayer(layer Layer) []*Room {
	var rooms []*Room
	for _, room := range d.Rooms {
		if room.Layer == layer {
			rooms = append(rooms, room)
		}
	}
	return rooms
}

// RoomByID returns the room with the given id, or nil if there is none.
func (d *Dungeon) RoomByID(id int) *Room {
	for _, room := range d.Rooms {
		if room.ID == id {
			return room
		}
	}
	return nil
}

// SetRoomType moves a room onto another layer.
func (d *Dungeon) SetRoomType(room *Room, layer Layer) error {
	if !layer.Valid() {
		return fmt.Errorf("unknown layer %d", int(layer))
	}
	room.Layer = layer
	return nil
}

// AddRandomRoom seeds a void room of random size at a uniformly random
// point of the disc of the given radius around the surface center.
// A non-positive radius uses the dungeon radius.
func (d *Dungeon) AddRandomRoom(radius float64) *Room {
	if radius <= 0 {
		radius = d.Radius()
	}

	w := 1 + d.rng.Intn(d.MaxRoomWidth)
	h := 1 + d.rng.Intn(d.MaxRoomHeight)
	t := 2.0 * math.Pi * d.rng.Float64()
	u := d.rng.Float64() + d.rng.Float64()
	r := u
	if u > 1 {
		r = 2 - u
	}

	cx, cy := d.Rect().Center()
	x := radius*r*math.Cos(t) + float64(cx)
	y := radius*r*math.Sin(t) + float64(cy)

	room := newRoom(d.ids.allocate(), int(x), int(y), w, h, d.GridSpacing)
	d.Rooms = append(d.Rooms, room)
	return room
}

// addVoid inserts a 1x1 void room at a pixel position.
func (d *Dungeon) addVoid(x, y int) *Room {
	room := newRoom(d.ids.allocate(), x, y, 1, 1, d.GridSpacing)
	d.Rooms = append(d.Rooms, room)
	return room
}

// CenterIn moves every room so the layout bound is centered on rect.
// The offset is rounded up to the grid so rooms stay aligned.
func (d *Dungeon) CenterIn(rect Rect) {
	bound, ok := d.Bound()
	if !ok {
		return
	}

	grid := d.GridSpacing + 1
	rx, ry := rect.Center()
	bx, by := bound.Center()
	dx := RoundUp(rx-bx, grid)
	dy := RoundUp(ry-by, grid)

	for _, room := range d.Rooms {
		room.Rect = room.Rect.Translate(dx, dy)
	}
}

// HasOverlaps returns true if any two rooms' interiors overlap.
func (d *Dungeon) HasOverlaps() bool {
	for i, a := range d.Rooms {
		for _, b := range d.Rooms[i+1:] {
			if a.Collides(b) {
				return true
			}
		}
	}
	return false
}

// Edges returns every main room to neighbor pair, in construction order.
func (d *Dungeon) Edges() [][2]*Room {
	var edges [][2]*Room
	for _, room := range d.MainRooms() {
		for _, neighbor := range room.Neighbors {
			edges = append(edges, [2]*Room{room, neighbor})
		}
	}
	return edges
}
