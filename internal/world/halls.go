package world

import "github.com/zyedidia/generic/mapset"

// ConnectHallsToRooms carves corridors between every main room and its
// neighbors out of the void rooms lying in the box between them. It
// returns the number of voids turned into halls.
//
// Each edge is probed twice: once with the box inflated by the hall width
// and once deflated by it. Voids hit by the outer probe become halls,
// except 1x1 voids also hit by the inner probe, which would otherwise
// over-carve the corridor's corners.
func (d *Dungeon) ConnectHallsToRooms(hallWidth int) (int, error) {
	w := GridToScreen(hallWidth, d.GridSpacing)

	carved := 0
	for _, room := range d.MainRooms() {
		for _, neighbor := range room.Neighbors {
			box := room.Centerbox(neighbor)

			outers := d.voidsHit(SnapOrigin(box.Inflate(w, w), d.GridSpacing))
			inners := mapset.New[*Room]()
			for _, v := range d.voidsHit(SnapOrigin(box.Inflate(-w, -w), d.GridSpacing)) {
				inners.Put(v)
			}

			for _, v := range outers {
				if inners.Has(v) && v.GridWidth == 1 && v.GridHeight == 1 {
					continue
				}
				if err := d.SetRoomType(v, Hall); err != nil {
					return carved, err
				}
				carved++
			}
		}
	}
	return carved, nil
}

// voidsHit returns the void rooms whose interiors overlap probe.
// Probes are never inserted into the dungeon.
func (d *Dungeon) voidsHit(probe Rect) []*Room {
	var hits []*Room
	for _, room := range d.Rooms {
		if room.IsVoid() && collides(probe, room.Rect) {
			hits = append(hits, room)
		}
	}
	return hits
}
