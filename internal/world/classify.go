package world

import "gonum.org/v1/gonum/stat"

// PickMainRooms promotes to MainRoom every room whose grid width and height
// both reach ratio times the population average; every other room becomes
// Void. It returns the main rooms.
func (d *Dungeon) PickMainRooms(ratio float64) ([]*Room, error) {
	if len(d.Rooms) == 0 {
		return nil, ErrNoRooms
	}

	widths := make([]float64, len(d.Rooms))
	heights := make([]float64, len(d.Rooms))
	for i, room := range d.Rooms {
		widths[i] = float64(room.GridWidth)
		heights[i] = float64(room.GridHeight)
	}

	pickW := ratio * stat.Mean(widths, nil)
	pickH := ratio * stat.Mean(heights, nil)

	for _, room := range d.Rooms {
		layer := MainRoom
		if float64(room.GridWidth) < pickW || float64(room.GridHeight) < pickH {
			layer = Void
		}
		if err := d.SetRoomType(room, layer); err != nil {
			return nil, err
		}
	}

	return d.MainRooms(), nil
}

// FindMainRoomNeighbors links every main room to up to maxEdges of its
// nearest fellow main rooms. Lists are extended, never beyond maxEdges.
func (d *Dungeon) FindMainRoomNeighbors(maxEdges int) {
	rooms := d.MainRooms()
	for _, room := range rooms {
		room.PickClosestNeighbors(rooms, maxEdges, false)
	}
}
