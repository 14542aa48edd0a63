package world

import "testing"

func TestRectInflate(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		dx, dy int
		want   Rect
	}{
		{"shrink by border", Rect{0, 0, 10, 10}, -2, -2, Rect{1, 1, 8, 8}},
		{"grow odd", Rect{10, 10, 0, 0}, 29, 29, Rect{-4, -4, 29, 29}},
		{"shrink past zero", Rect{10, 10, 0, 0}, -29, -29, Rect{24, 24, -29, -29}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Inflate(tt.dx, tt.dy); got != tt.want {
				t.Errorf("Inflate(%d, %d) = %+v, want %+v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{0, 0, 10, 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{5, 5, 10, 10}, true},
		{"touching edge", Rect{10, 0, 10, 10}, false},
		{"far away", Rect{50, 50, 5, 5}, false},
		{"contained", Rect{2, 2, 2, 2}, true},
		{"empty", Rect{2, 2, 0, 5}, false},
		{"negative size", Rect{8, 8, -4, -4}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%+v) = %v, want %v", tt.other, got, tt.want)
			}
		})
	}
}

func TestCollidesIgnoresSharedBorder(t *testing.T) {
	// Grid-adjacent rooms share one pixel of border
	a := Rect{0, 0, 10, 10}
	b := Rect{9, 0, 10, 10}
	if collides(a, b) {
		t.Error("rooms sharing a border should not collide")
	}
	if collides(a, Rect{8, 0, 10, 10}) {
		t.Error("rooms overlapping by two pixels lose them to the shrink and should not collide")
	}
	if !collides(a, Rect{7, 0, 10, 10}) {
		t.Error("rooms overlapping by three pixels should collide")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{10, 20, 5, 3}
	tests := []struct {
		x, y int
		want bool
	}{
		{10, 20, true},
		{14, 22, true},
		{15, 22, false}, // Right edge is exclusive
		{14, 23, false},
		{9, 20, false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRectUnion(t *testing.T) {
	got := Rect{0, 5, 10, 10}.Union(Rect{-5, 10, 3, 20})
	want := Rect{-5, 5, 15, 25}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}
}

func TestRectCenter(t *testing.T) {
	x, y := Rect{10, 20, 11, 7}.Center()
	if x != 15 || y != 23 {
		t.Errorf("Center = (%d,%d), want (15,23)", x, y)
	}
}
