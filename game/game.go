package game

import (
	"sync"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/piece"
)

// Game owns the current State of one session. Every method applies its transitions atomically, so
// readers on other goroutines only ever observe the state between transitions.
type Game struct {
	mu    sync.RWMutex
	board board.Board
	state State
}

func New(b board.Board) *Game {
	return &Game{
		board: b,
		state: NewState(),
	}
}

func (g *Game) Board() board.Board {
	return g.board
}

// State returns the current state. The returned value must be treated as read-only.
func (g *Game) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Dispatch applies events in order and returns the resulting state.
func (g *Game) Dispatch(events ...Event) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	for _, e := range events {
		g.state = Transition(g.board, g.state, e)
	}
	return g.state
}

// Command applies a player command. Unknown commands are ignored.
func (g *Game) Command(c Command) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	if e, ok := EventFor(g.state, c); ok {
		g.state = Transition(g.board, g.state, e)
	}
	return g.state
}

// Tick advances the gravity clock by one tick, drawing from next when a new shape is needed.
func (g *Game) Tick(next func() piece.Kind) State {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = Step(g.board, g.state, next)
	return g.state
}

func (g *Game) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return NewSnapshot(g.board, g.state)
}
