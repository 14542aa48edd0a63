package world

import "errors"

var (
	// ErrInvalidParams is returned when dungeon dimensions or generation
	// parameters are out of range.
	ErrInvalidParams = errors.New("invalid dungeon parameters")

	// ErrNoRooms is returned when an operation needs a room population and the dungeon is empty.
	ErrNoRooms = errors.New("no rooms to classify")

	// ErrNotConverged is returned when room separation hits its step limit
	// while rooms still overlap.
	ErrNotConverged = errors.New("room separation did not converge")
)
