package world

import "testing"

func TestInFillWithVoids(t *testing.T) {
	d := testDungeon(t, 4)
	big := place(d, 0, 0, 3, 3)
	big.Layer = MainRoom
	place(d, 25, 25, 1, 1)

	before, _ := d.Bound()
	existing := len(d.Rooms)

	// A 6x6 tiling of the 31px bound, minus 9 cells under the 3x3 room
	// and 1 under the 1x1 room
	added := d.InFillWithVoids()
	if added != 26 {
		t.Fatalf("added %d voids, want 26", added)
	}
	if len(d.Rooms) != existing+added {
		t.Errorf("room count = %d, want %d", len(d.Rooms), existing+added)
	}

	after, _ := d.Bound()
	if after != before {
		t.Errorf("bound changed from %+v to %+v", before, after)
	}

	for _, room := range d.Rooms[existing:] {
		if !room.IsVoid() || room.GridWidth != 1 || room.GridHeight != 1 {
			t.Errorf("infill room %d is %dx%d %v, want 1x1 void", room.ID, room.GridWidth, room.GridHeight, room.Layer)
		}
		if room.ID <= big.ID {
			t.Errorf("infill room id %d not after existing ids", room.ID)
		}
	}
	assertSettled(t, d)
}

func TestInFillWithVoidsEmpty(t *testing.T) {
	d := testDungeon(t, 4)
	if added := d.InFillWithVoids(); added != 0 {
		t.Errorf("added %d voids to an empty dungeon", added)
	}
}

func TestInFillWithVoidsInBounds(t *testing.T) {
	d := testDungeon(t, 4)

	added := d.InFillWithVoidsIn(Rect{X: 0, Y: 0, Width: 16, Height: 6})
	// x in {0,5,10}, y in {0}
	if added != 3 {
		t.Errorf("added %d voids, want 3", added)
	}
}
