package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/JnyJny/DungeonGenerator/internal/config"
	"github.com/JnyJny/DungeonGenerator/internal/export"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

var smallDungeon = []string{"--seed", "42", "--width", "256", "--height", "256", "--max-room", "5", "--spacing", "4", "--rooms", "12"}

func TestGenerateSummary(t *testing.T) {
	out, err := execute(t, append([]string{"generate"}, smallDungeon...)...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(out, "dungeon 256x256 spacing 4 seed 42\n") {
		t.Errorf("unexpected summary:\n%s", out)
	}
	if !strings.Contains(out, "rooms") || !strings.Contains(out, "edges") {
		t.Errorf("summary is missing counts:\n%s", out)
	}
}

func TestGenerateSeedIsReproducible(t *testing.T) {
	args := append([]string{"generate", "--format", "csv"}, smallDungeon...)
	first, err := execute(t, args...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	second, err := execute(t, args...)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if first != second {
		t.Error("same seed produced different CSV output")
	}
}

func TestGenerateWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dungeon.json")
	if _, err := execute(t, append([]string{"generate", "-o", path}, smallDungeon...)...); err != nil {
		t.Fatalf("generate: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc export.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if doc.Seed != 42 || doc.Width != 256 || len(doc.Rooms) == 0 {
		t.Errorf("unexpected document: seed=%d width=%d rooms=%d", doc.Seed, doc.Width, len(doc.Rooms))
	}
}

func TestGenerateUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roomgen.toml")
	content := "seed = 9\n\n[dungeon]\nwidth = 128\nheight = 128\ngrid_spacing = 2\nmax_room_dimension = 4\nseed_rooms = 5\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "--config", path, "generate", "--height", "200")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(out, "dungeon 128x200 spacing 2 seed 9\n") {
		t.Errorf("config or flag not applied:\n%s", out)
	}
}

func TestGenerateErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"invalid width", []string{"generate", "--width", "0"}},
		{"unknown format", append([]string{"generate", "--format", "png"}, smallDungeon...)},
		{"missing config", []string{"--config", "/nonexistent/roomgen.yaml", "generate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := execute(t, tt.args...); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestConfigCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	if _, err := execute(t, "--seed", "3", "config", "-o", path); err != nil {
		t.Fatalf("config: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Seed != 3 {
		t.Errorf("seed = %d, want 3", cfg.Seed)
	}
}
