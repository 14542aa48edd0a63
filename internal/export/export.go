// Package export writes generated dungeons as CSV, JSON, DOT or SVG.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/JnyJny/DungeonGenerator/internal/world"
)

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
)

// Formats lists every supported output format.
var Formats = []string{FormatCSV, FormatJSON, FormatDOT, FormatSVG}

// Meta identifies a single generation run.
type Meta struct {
	RunID uuid.UUID `json:"run_id"`
	Seed  int64     `json:"seed"`
}

// NewMeta returns metadata for a fresh run.
func NewMeta(seed int64) Meta {
	return Meta{RunID: uuid.New(), Seed: seed}
}

// RoomRecord is one row of the room table.
type RoomRecord struct {
	ID          int    `csv:"id" json:"id"`
	Layer       string `csv:"layer" json:"layer"`
	X           int    `csv:"x" json:"x"`
	Y           int    `csv:"y" json:"y"`
	Width       int    `csv:"width" json:"width"`
	Height      int    `csv:"height" json:"height"`
	GridWidth   int    `csv:"grid_width" json:"grid_width"`
	GridHeight  int    `csv:"grid_height" json:"grid_height"`
	Neighbors   string `csv:"neighbors" json:"-"` // Space separated ids
	NeighborIDs []int  `csv:"-" json:"neighbors,omitempty"`
}

// Edge is one directed neighbor link between main rooms.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Document is the JSON form of a dungeon.
type Document struct {
	Meta
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	GridSpacing int          `json:"grid_spacing"`
	Bound       *world.Rect  `json:"bound,omitempty"`
	Rooms       []RoomRecord `json:"rooms"`
	Edges       []Edge       `json:"edges"`
}

// Records flattens the dungeon's rooms into table rows.
func Records(d *world.Dungeon) []RoomRecord {
	records := make([]RoomRecord, 0, len(d.Rooms))
	for _, room := range d.Rooms {
		ids := make([]int, 0, len(room.Neighbors))
		parts := make([]string, 0, len(room.Neighbors))
		for _, n := range room.Neighbors {
			ids = append(ids, n.ID)
			parts = append(parts, strconv.Itoa(n.ID))
		}
		records = append(records, RoomRecord{
			ID:          room.ID,
			Layer:       room.Layer.String(),
			X:           room.Rect.X,
			Y:           room.Rect.Y,
			Width:       room.Rect.Width,
			Height:      room.Rect.Height,
			GridWidth:   room.GridWidth,
			GridHeight:  room.GridHeight,
			Neighbors:   strings.Join(parts, " "),
			NeighborIDs: ids,
		})
	}
	return records
}

// NewDocument builds the JSON document for a dungeon.
func NewDocument(d *world.Dungeon, meta Meta) Document {
	doc := Document{
		Meta:        meta,
		Width:       d.Width,
		Height:      d.Height,
		GridSpacing: d.GridSpacing,
		Rooms:       Records(d),
		Edges:       make([]Edge, 0),
	}
	if bound, ok := d.Bound(); ok {
		doc.Bound = &bound
	}
	for _, e := range d.Edges() {
		doc.Edges = append(doc.Edges, Edge{From: e[0].ID, To: e[1].ID})
	}
	return doc
}

// WriteCSV writes the room table with a header row.
func WriteCSV(w io.Writer, d *world.Dungeon) error {
	if err := gocsv.Marshal(Records(d), w); err != nil {
		return fmt.Errorf("writing CSV: %w", err)
	}
	return nil
}

// WriteJSON writes the dungeon as an indented JSON document.
func WriteJSON(w io.Writer, d *world.Dungeon, meta Meta) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(d, meta)); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	return nil
}

// Write encodes the dungeon in the named format.
func Write(w io.Writer, format string, d *world.Dungeon, meta Meta) error {
	switch format {
	case FormatCSV:
		return WriteCSV(w, d)
	case FormatJSON:
		return WriteJSON(w, d, meta)
	case FormatDOT:
		_, err := io.WriteString(w, ToDOT(d))
		return err
	case FormatSVG:
		svg, err := RenderSVG(ToDOT(d))
		if err != nil {
			return err
		}
		_, err = w.Write(svg)
		return err
	default:
		return fmt.Errorf("unknown format %q (want one of %s)", format, strings.Join(Formats, ", "))
	}
}
