// Package viewer steps dungeon generation one stage at a time and shows
// the result in the terminal.
package viewer

import (
	"fmt"
	"math/rand"

	"github.com/JnyJny/DungeonGenerator/internal/world"
)

// Session holds a dungeon under construction and the stage it has reached.
type Session struct {
	params  world.Params
	rng     *rand.Rand
	dungeon *world.Dungeon
	stage   Stage
	steps   int // Separation iterations so far
	err     error
}

// NewSession creates a session with an empty dungeon at StageSeed.
func NewSession(p world.Params, rng *rand.Rand) (*Session, error) {
	s := &Session{params: p, rng: rng}
	if err := s.Reset(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reset discards the current dungeon and starts over from StageSeed.
// The random source carries on, so each reset gives a new layout.
func (s *Session) Reset() error {
	d, err := s.params.New(s.rng)
	if err != nil {
		return err
	}
	s.dungeon = d
	s.stage = StageSeed
	s.steps = 0
	s.err = nil
	return nil
}

// Dungeon returns the dungeon being built.
func (s *Session) Dungeon() *world.Dungeon { return s.dungeon }

// Stage returns the stage the next Step will run.
func (s *Session) Stage() Stage { return s.stage }

// Err returns the error that ended the session early, if any.
func (s *Session) Err() error { return s.err }

// Done reports whether the pipeline has finished.
func (s *Session) Done() bool { return s.stage == StageDone }

// Step advances the pipeline by the smallest visible amount: one seeded
// room, one separation iteration, or one whole later stage.
func (s *Session) Step() {
	d := s.dungeon

	switch s.stage {
	case StageSeed:
		if len(d.Rooms) < s.params.SeedRooms {
			d.AddRandomRoom(s.params.SeedRadius(d))
		}
		if len(d.Rooms) >= s.params.SeedRooms {
			s.stage = StageSpread
		}

	case StageSpread:
		s.steps++
		if d.SpreadStep() {
			d.CenterIn(d.Rect())
			s.stage = StageClassify
			return
		}
		if s.steps >= s.params.MaxSpreadSteps {
			s.fail(fmt.Errorf("%w after %d steps", world.ErrNotConverged, s.steps))
		}

	case StageClassify:
		if len(d.Rooms) == 0 {
			s.stage = StageDone
			return
		}
		if _, err := d.PickMainRooms(s.params.MainRoomRatio); err != nil {
			s.fail(err)
			return
		}
		s.stage = StageInfill

	case StageInfill:
		d.InFillWithVoids()
		s.stage = StageNeighbors

	case StageNeighbors:
		d.FindMainRoomNeighbors(s.params.MaxEdges)
		s.stage = StageHalls

	case StageHalls:
		if _, err := d.ConnectHallsToRooms(s.params.HallWidth); err != nil {
			s.fail(err)
			return
		}
		s.stage = StageDone
	}
}

// RunStage steps until the current stage is complete.
func (s *Session) RunStage() {
	current := s.stage
	for s.stage == current && !s.Done() {
		s.Step()
	}
}

// Finish steps until the pipeline is done.
func (s *Session) Finish() {
	for !s.Done() {
		s.Step()
	}
}

func (s *Session) fail(err error) {
	s.err = err
	s.stage = StageDone
}

// Status summarizes the session for the status line.
func (s *Session) Status() string {
	d := s.dungeon
	status := fmt.Sprintf("%s | rooms %d | main %d | halls %d | steps %d",
		s.stage, len(d.Rooms), len(d.MainRooms()), len(d.Halls()), s.steps)
	if s.err != nil {
		status += " | " + s.err.Error()
	}
	return status
}
