// Package world provides grid-aligned dungeon generation by room separation.
package world

// Layer classifies a room within the dungeon.
type Layer int

const (
	// Void is unclassified filler, the raw material for halls.
	Void Layer = 0
	// Hall is a void room that was carved into a corridor segment.
	Hall Layer = 5
	// MainRoom anchors the dungeon's primary spaces and neighbor graph.
	MainRoom Layer = 10
)

// Layers lists every layer from background to foreground.
var Layers = []Layer{Void, Hall, MainRoom}

// Valid returns true if the layer is one of the known layers.
func (l Layer) Valid() bool {
	switch l {
	case Void, Hall, MainRoom:
		return true
	}
	return false
}

// String returns a human-readable layer name.
func (l Layer) String() string {
	switch l {
	case Void:
		return "void"
	case Hall:
		return "hall"
	case MainRoom:
		return "main"
	default:
		return "unknown"
	}
}

// Rune returns the layer's display character.
func (l Layer) Rune() rune {
	switch l {
	case Hall:
		return '+'
	case MainRoom:
		return '#'
	default:
		return '.'
	}
}
