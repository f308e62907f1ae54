package game

import "github.com/deitrix/blocks/piece"

// Event is an input to Transition.
type Event interface {
	event()
}

// NewGame starts a fresh round with the clock running.
type NewGame struct{}

// ResetGame returns the state to its idle defaults.
type ResetGame struct{}

// Pause stops the gravity clock.
type Pause struct{}

// Play restarts the gravity clock unless the game is over.
type Play struct{}

// SpawnShape archives the current shape, if any, and places a new shape of Kind at the spawn
// point.
type SpawnShape struct {
	Kind piece.Kind
}

type Rotate struct{}

type MoveLeft struct{}

type MoveRight struct{}

// MoveBottom moves the current shape one row down. It never archives the shape.
type MoveBottom struct{}

type IncrementScore struct {
	Points int
}

type SetTime struct {
	Tick int
}

// RemoveLine clears Row and shifts everything above it down by one. The caller must have checked
// that the row is full.
type RemoveLine struct {
	Row int
}

func (NewGame) event()        {}
func (ResetGame) event()      {}
func (Pause) event()          {}
func (Play) event()           {}
func (SpawnShape) event()     {}
func (Rotate) event()         {}
func (MoveLeft) event()       {}
func (MoveRight) event()      {}
func (MoveBottom) event()     {}
func (IncrementScore) event() {}
func (SetTime) event()        {}
func (RemoveLine) event()     {}
