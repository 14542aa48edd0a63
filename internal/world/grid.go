package world

// GridToScreen converts a length in grid units into pixels.
// Every cell reserves one pixel of border and the run is closed by one more.
func GridToScreen(units, spacing int) int {
	return (spacing+1)*units + 1
}

// ScreenToGrid converts a pixel length back into grid units, rounding
// partial cells up. It inverts GridToScreen exactly.
func ScreenToGrid(pixels, spacing int) int {
	if pixels <= 1 {
		return 0
	}
	return ceilDiv(pixels-1, spacing+1)
}

// RoundUp rounds n up to the next multiple of m.
func RoundUp(n, m int) int {
	if m <= 1 {
		return n
	}
	return ceilDiv(n, m) * m
}

// SnapToGrid rounds every field of a freestanding rectangle up to the grid.
func SnapToGrid(r Rect, spacing int) Rect {
	grid := spacing + 1
	return Rect{
		X:      RoundUp(r.X, grid),
		Y:      RoundUp(r.Y, grid),
		Width:  RoundUp(r.Width, grid),
		Height: RoundUp(r.Height, grid),
	}
}

// SnapOrigin rounds only the rectangle's position up to the grid, leaving its size alone.
func SnapOrigin(r Rect, spacing int) Rect {
	grid := spacing + 1
	r.X = RoundUp(r.X, grid)
	r.Y = RoundUp(r.Y, grid)
	return r
}

// OnGrid returns true if the rectangle's origin sits on a grid line.
func OnGrid(r Rect, spacing int) bool {
	grid := spacing + 1
	return r.X%grid == 0 && r.Y%grid == 0
}

// ceilDiv divides a by b rounding toward positive infinity.
func ceilDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a > 0) == (b > 0) {
		q++
	}
	return q
}
