package game

import (
	"fmt"
	"time"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/piece"
)

// State is the complete game state. Transitions never modify the shape or slice a State points
// to; they build new ones, so a State returned by Transition can be read while later transitions
// run.
type State struct {
	// Current is the falling shape, or nil before the first spawn and after game over.
	Current *piece.Shape
	// Archived holds the shapes that have come to rest, most recent first.
	Archived []piece.Fragment
	// IsGaming is set while a round is in progress.
	IsGaming bool
	// IsTimeRunning is set while the gravity clock runs.
	IsTimeRunning bool
	// Tick counts gravity ticks.
	Tick int
	// TickSpeed is the duration between gravity ticks at the current level.
	TickSpeed time.Duration
	Score     int
	Level     int
	Lines     int
	GameOver  bool
}

// NewState returns the idle state.
func NewState() State {
	return State{TickSpeed: TickSpeed(0)}
}

// SpawnOrigin returns the origin at which a shape of kind k enters the board.
func SpawnOrigin(b board.Board, k piece.Kind) cell.Point {
	l := piece.LayoutOf(k, 0)
	return cell.Point{X: b.Cols/2 - l.Width/2, Y: 0}
}

// Transition applies e to s and returns the next state. Blocked moves and rotations return s
// unchanged. It panics on an event type it does not know.
func Transition(b board.Board, s State, e Event) State {
	switch e := e.(type) {
	case NewGame:
		s = NewState()
		s.IsGaming = true
		s.IsTimeRunning = true
		return s
	case ResetGame:
		return NewState()
	case Pause:
		s.IsTimeRunning = false
		return s
	case Play:
		if !s.GameOver {
			s.IsTimeRunning = true
		}
		return s
	case SpawnShape:
		return spawn(b, s, e.Kind)
	case Rotate:
		if s.Current == nil {
			return s
		}
		return place(b, s, b.ClampToRightWall(s.Current.Rotated()))
	case MoveLeft:
		if s.Current == nil || s.Current.Origin.X <= 0 {
			return s
		}
		return place(b, s, s.Current.Moved(-1, 0))
	case MoveRight:
		if s.Current == nil || s.Current.Origin.X >= b.Cols-s.Current.Width() {
			return s
		}
		return place(b, s, s.Current.Moved(1, 0))
	case MoveBottom:
		if s.Current == nil || s.Current.Origin.Y >= b.Rows-s.Current.Height() {
			return s
		}
		return place(b, s, s.Current.Moved(0, 1))
	case IncrementScore:
		if e.Points > 0 {
			s.Score += e.Points
		}
		return s
	case SetTime:
		s.Tick = e.Tick
		return s
	case RemoveLine:
		s.Archived = b.RemoveRow(s.Archived, e.Row)
		s.Lines++
		s.Level = LevelFor(s.Lines)
		s.TickSpeed = TickSpeed(s.Level)
		return s
	default:
		panic(fmt.Sprintf("game: unknown event %T", e))
	}
}

// place commits next as the current shape if it fits on the board.
func place(b board.Board, s State, next piece.Shape) State {
	if !b.Fits(next, s.Archived) {
		return s
	}
	s.Current = &next
	return s
}

func spawn(b board.Board, s State, k piece.Kind) State {
	if s.GameOver {
		return s
	}
	s.IsGaming = true
	if s.Current != nil {
		archived := make([]piece.Fragment, 0, len(s.Archived)+1)
		archived = append(archived, s.Current.Freeze())
		s.Archived = append(archived, s.Archived...)
		s.Current = nil
		s = clearLines(b, s)
	}
	next := piece.Build(k, 0, SpawnOrigin(b, k))
	if !b.Fits(next, s.Archived) {
		s.GameOver = true
		s.IsTimeRunning = false
		return s
	}
	s.Current = &next
	return s
}

// clearLines removes every full row, topmost first, rescanning after each removal, and awards the
// score for the whole pass.
func clearLines(b board.Board, s State) State {
	cleared := 0
	for {
		rows := b.FullRows(s.Archived)
		if len(rows) == 0 {
			break
		}
		s = Transition(b, s, RemoveLine{Row: rows[0]})
		cleared++
	}
	return Transition(b, s, IncrementScore{Points: LineScore(cleared)})
}

// Resting reports whether the current shape can no longer move down.
func Resting(b board.Board, s State) bool {
	if s.Current == nil {
		return false
	}
	return Transition(b, s, MoveBottom{}).Current == s.Current
}

// Step advances the gravity clock by one tick. A missing or resting shape is replaced by a new one
// of kind next(), which archives the resting shape; otherwise the current shape falls one row.
// Ticks are ignored unless a round is running.
func Step(b board.Board, s State, next func() piece.Kind) State {
	if !s.IsGaming || !s.IsTimeRunning || s.GameOver {
		return s
	}
	s = Transition(b, s, SetTime{Tick: s.Tick + 1})
	if s.Current == nil || Resting(b, s) {
		return Transition(b, s, SpawnShape{Kind: next()})
	}
	return Transition(b, s, MoveBottom{})
}

// Ghost returns where the current shape would come to rest if it kept falling.
func Ghost(b board.Board, s State) *piece.Shape {
	if s.Current == nil {
		return nil
	}
	for {
		next := Transition(b, s, MoveBottom{})
		if next.Current == s.Current {
			return s.Current
		}
		s = next
	}
}
