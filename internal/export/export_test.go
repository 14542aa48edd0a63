package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"math/rand"
	"strconv"
	"strings"
	"testing"

	"github.com/JnyJny/DungeonGenerator/internal/world"
)

func testDungeon(t *testing.T) *world.Dungeon {
	t.Helper()
	p := world.DefaultParams(256, 256)
	p.MaxRoomDimension = 5
	p.GridSpacing = 4
	p.SeedRooms = 12
	d, err := world.Generate(context.Background(), p, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return d
}

func TestWriteCSV(t *testing.T) {
	d := testDungeon(t)

	var buf bytes.Buffer
	if err := WriteCSV(&buf, d); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading CSV back: %v", err)
	}
	if len(rows) != len(d.Rooms)+1 {
		t.Fatalf("got %d rows, want %d plus a header", len(rows), len(d.Rooms))
	}

	header := strings.Join(rows[0], ",")
	want := "id,layer,x,y,width,height,grid_width,grid_height,neighbors"
	if header != want {
		t.Errorf("header = %q, want %q", header, want)
	}
}

func TestWriteJSON(t *testing.T) {
	d := testDungeon(t)
	meta := NewMeta(11)

	var buf bytes.Buffer
	if err := WriteJSON(&buf, d, meta); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("decoding JSON: %v", err)
	}
	if doc.RunID != meta.RunID || doc.Seed != 11 {
		t.Errorf("meta = %+v, want %+v", doc.Meta, meta)
	}
	if len(doc.Rooms) != len(d.Rooms) {
		t.Errorf("rooms = %d, want %d", len(doc.Rooms), len(d.Rooms))
	}
	if len(doc.Edges) != len(d.Edges()) {
		t.Errorf("edges = %d, want %d", len(doc.Edges), len(d.Edges()))
	}
	for _, e := range doc.Edges {
		from, to := d.RoomByID(e.From), d.RoomByID(e.To)
		if from == nil || to == nil || !from.IsMainRoom() || !to.IsMainRoom() {
			t.Errorf("edge %d -> %d does not join two main rooms", e.From, e.To)
		}
	}
	if doc.Bound == nil {
		t.Error("bound missing")
	}
}

func TestToDOT(t *testing.T) {
	d := testDungeon(t)
	dot := ToDOT(d)

	if !strings.HasPrefix(dot, "digraph dungeon {") {
		t.Errorf("unexpected DOT preamble: %q", dot[:min(len(dot), 40)])
	}
	if got := strings.Count(dot, "->"); got != len(d.Edges()) {
		t.Errorf("DOT has %d edges, want %d", got, len(d.Edges()))
	}
	for _, room := range d.MainRooms() {
		if !strings.Contains(dot, "label=\""+strconv.Itoa(room.ID)+"\"") {
			t.Errorf("main room %d missing from DOT", room.ID)
		}
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	d := testDungeon(t)
	if err := Write(&bytes.Buffer{}, "png", d, NewMeta(1)); err == nil {
		t.Error("expected an error for an unknown format")
	}
}
