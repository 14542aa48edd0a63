package viewer

import (
	"context"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/JnyJny/DungeonGenerator/internal/telemetry"
	"github.com/JnyJny/DungeonGenerator/internal/ui"
	"github.com/JnyJny/DungeonGenerator/internal/world"
)

// Viewer runs a session in the terminal.
type Viewer struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	running  bool
}

// New creates a viewer whose dungeon fills the terminal. Each terminal cell
// shows one grid cell, and the bottom row is kept for the status line.
func New(screen *ui.Screen, palette *ui.Palette, p world.Params, rng *rand.Rand) (*Viewer, error) {
	cols, rows := screen.Size()
	grid := p.GridSpacing + 1
	p.Width = max(cols, 1) * grid
	p.Height = max(rows-1, 1) * grid

	session, err := NewSession(p, rng)
	if err != nil {
		return nil, err
	}

	return &Viewer{
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  session,
		running:  true,
	}, nil
}

// Session returns the session being shown.
func (v *Viewer) Session() *Session { return v.session }

// Run executes the event loop until the user quits or ctx is cancelled.
func (v *Viewer) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("viewer")
	ctx, span := tracer.Start(ctx, "viewer.run")
	defer span.End()

	logger := log.FromContext(ctx)
	d := v.session.Dungeon()
	span.SetAttributes(
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
	)
	logger.Debug("viewer started", "width", d.Width, "height", d.Height)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			v.screen.Interrupt()
		case <-done:
		}
	}()

	for v.running && ctx.Err() == nil {
		v.renderer.Render(v.session.Dungeon(), v.session.Status())

		ev := v.screen.PollEvent()
		if ev == nil {
			break
		}
		if err := v.handleEvent(ev); err != nil {
			return err
		}
	}

	span.SetAttributes(attribute.String("viewer.stage", v.session.Stage().String()))
	return ctx.Err()
}

// handleEvent processes a single terminal event.
func (v *Viewer) handleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return v.handleKeyEvent(ev)
	case *tcell.EventResize:
		v.screen.Sync()
	}
	return nil
}

// handleKeyEvent processes keyboard input.
func (v *Viewer) handleKeyEvent(ev *tcell.EventKey) error {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		v.running = false
	case tcell.KeyRight:
		v.session.Step()
	case tcell.KeyEnter:
		v.session.RunStage()

	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			v.session.Step()
		case 'r', 'R':
			return v.session.Reset()
		case 'q', 'Q':
			v.running = false
		}
	}
	return nil
}
