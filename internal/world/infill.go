package world

// InFillWithVoids tiles the current layout bound with 1x1 void rooms
// wherever no room already sits. It returns the number of voids added.
func (d *Dungeon) InFillWithVoids() int {
	bound, ok := d.Bound()
	if !ok {
		return 0
	}
	return d.InFillWithVoidsIn(bound)
}

// InFillWithVoidsIn tiles bounds with 1x1 void rooms at grid stride,
// stopping one stride short of the far edges. Candidates that would
// overlap an existing room are discarded before anything is inserted.
func (d *Dungeon) InFillWithVoidsIn(bounds Rect) int {
	stride := d.GridSpacing + 1
	size := GridToScreen(1, d.GridSpacing)
	xfin := bounds.Right() - stride
	yfin := bounds.Bottom() - stride

	var tiles []Rect
	for x := bounds.X; x < xfin; x += stride {
		for y := bounds.Y; y < yfin; y += stride {
			tile := SnapOrigin(Rect{X: x, Y: y, Width: size, Height: size}, d.GridSpacing)
			if !d.occupied(tile) {
				tiles = append(tiles, tile)
			}
		}
	}

	for _, tile := range tiles {
		d.addVoid(tile.X, tile.Y)
	}
	return len(tiles)
}

// occupied returns true if rect overlaps any room's interior.
func (d *Dungeon) occupied(rect Rect) bool {
	for _, room := range d.Rooms {
		if collides(rect, room.Rect) {
			return true
		}
	}
	return false
}
