package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/JnyJny/DungeonGenerator/internal/world"
)

// ToDOT converts the main room neighbor graph to Graphviz DOT format.
// Nodes are pinned at their room centers so the drawing keeps the layout's shape.
func ToDOT(d *world.Dungeon) string {
	var buf bytes.Buffer
	buf.WriteString("digraph dungeon {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=filled, fillcolor=\"#FF0000\", fontcolor=white];\n")
	buf.WriteString("  edge [color=\"#007F00\", penwidth=3];\n")
	buf.WriteString("\n")

	for _, room := range d.MainRooms() {
		c := room.Center()
		// Graphviz points run bottom-up, pixels run top-down
		fmt.Fprintf(&buf, "  r%d [label=\"%d\", pos=\"%.0f,%.0f!\", width=%.2f, height=%.2f];\n",
			room.ID, room.ID, c.X, float64(d.Height)-c.Y,
			float64(room.Rect.Width)/72, float64(room.Rect.Height)/72)
	}

	buf.WriteString("\n")
	for _, e := range d.Edges() {
		fmt.Fprintf(&buf, "  r%d -> r%d;\n", e[0].ID, e[1].ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	gv.SetLayout(graphviz.NEATO)

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
