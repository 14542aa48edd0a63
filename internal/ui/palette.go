package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/JnyJny/DungeonGenerator/internal/config"
	"github.com/JnyJny/DungeonGenerator/internal/world"
)

// Palette maps each layer to a cell style.
type Palette struct {
	Background tcell.Style
	layers     map[world.Layer]tcell.Style
}

// NewPalette builds a palette from the configured hex colors.
func NewPalette(cfg config.PaletteConfig) (*Palette, error) {
	bg, err := ParseHexColor(cfg.Background)
	if err != nil {
		return nil, fmt.Errorf("background: %w", err)
	}

	p := &Palette{
		Background: tcell.StyleDefault.Background(bg),
		layers:     make(map[world.Layer]tcell.Style, len(world.Layers)),
	}

	pairs := map[world.Layer]config.LayerColors{
		world.Void:     cfg.Void,
		world.Hall:     cfg.Hall,
		world.MainRoom: cfg.Main,
	}
	for layer, pair := range pairs {
		fg, err := ParseHexColor(pair.FG)
		if err != nil {
			return nil, fmt.Errorf("%s foreground: %w", layer, err)
		}
		bg, err := ParseHexColor(pair.BG)
		if err != nil {
			return nil, fmt.Errorf("%s background: %w", layer, err)
		}
		p.layers[layer] = tcell.StyleDefault.Foreground(fg).Background(bg)
	}
	return p, nil
}

// Style returns the style for a layer, falling back to the background.
func (p *Palette) Style(layer world.Layer) tcell.Style {
	if s, ok := p.layers[layer]; ok {
		return s
	}
	return p.Background
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewHexColor(int32(rgb)), nil
}
