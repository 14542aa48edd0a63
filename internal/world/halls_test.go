package world

import (
	"slices"
	"testing"
)

// corridorFixture builds two 2x2 main rooms on a spacing 4 grid, fills the
// gaps with voids and links a to b.
func corridorFixture(t *testing.T) (d *Dungeon, a, b *Room) {
	t.Helper()
	d = testDungeon(t, 4)
	a = place(d, 0, 0, 2, 2)
	b = place(d, 50, 50, 2, 2)
	a.Layer = MainRoom
	b.Layer = MainRoom

	if added := d.InFillWithVoids(); added != 136 {
		t.Fatalf("fixture infill added %d voids, want 136", added)
	}
	a.Neighbors = []*Room{b}
	return d, a, b
}

func roomAt(t *testing.T, d *Dungeon, x, y int) *Room {
	t.Helper()
	for _, room := range d.Rooms {
		if room.Rect.X == x && room.Rect.Y == y {
			return room
		}
	}
	t.Fatalf("no room at (%d,%d)", x, y)
	return nil
}

func TestConnectHallsToRooms(t *testing.T) {
	d, a, b := corridorFixture(t)

	// The outer probe reaches the ring of cells at x or y of 0 and 50;
	// everything inside the ring is a 1x1 cell also hit by the inner probe.
	carved, err := d.ConnectHallsToRooms(1)
	if err != nil {
		t.Fatalf("ConnectHallsToRooms: %v", err)
	}
	if carved != 36 {
		t.Errorf("carved %d halls, want 36", carved)
	}

	if r := roomAt(t, d, 25, 0); !r.IsHall() {
		t.Errorf("edge cell (25,0) is %v, want hall", r.Layer)
	}
	if r := roomAt(t, d, 50, 25); !r.IsHall() {
		t.Errorf("edge cell (50,25) is %v, want hall", r.Layer)
	}

	for _, room := range d.Rooms {
		x, y := room.Rect.X, room.Rect.Y
		if x >= 5 && x <= 45 && y >= 5 && y <= 45 && room.GridWidth == 1 && !room.IsVoid() {
			t.Errorf("inner cell (%d,%d) was carved", x, y)
		}
	}

	if !a.IsMainRoom() || !b.IsMainRoom() {
		t.Error("carving must not touch main rooms")
	}
}

func TestConnectHallsToRoomsIdempotent(t *testing.T) {
	d, _, _ := corridorFixture(t)

	if _, err := d.ConnectHallsToRooms(1); err != nil {
		t.Fatalf("ConnectHallsToRooms: %v", err)
	}
	first := ids(d.Halls())

	if carved, _ := d.ConnectHallsToRooms(1); carved != 0 {
		t.Errorf("second pass carved %d more halls", carved)
	}
	if second := ids(d.Halls()); !slices.Equal(first, second) {
		t.Errorf("hall set changed between passes: %v != %v", first, second)
	}
}

func TestConnectHallsToRoomsSelfEdge(t *testing.T) {
	d, a, _ := corridorFixture(t)
	a.Neighbors = []*Room{a}

	if _, err := d.ConnectHallsToRooms(1); err != nil {
		t.Fatalf("ConnectHallsToRooms: %v", err)
	}

	if !a.IsMainRoom() {
		t.Error("a self edge must leave the room alone")
	}
	assertSettled(t, d)
}
