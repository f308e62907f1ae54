package game

import (
	"slices"
	"time"

	"github.com/deitrix/blocks/board"
	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/piece"
)

// ShapeView is the drawable part of a shape.
type ShapeView struct {
	Kind  piece.Kind
	Tint  cell.Tint
	Cells []cell.Point
}

// Snapshot is a self-contained copy of everything a renderer needs. Nothing in it is shared with
// the game.
type Snapshot struct {
	Cols, Rows    int
	Current       *ShapeView
	Ghost         *ShapeView
	Archived      []ShapeView
	Score         int
	Level         int
	Lines         int
	Tick          int
	TickSpeed     time.Duration
	GameOver      bool
	IsGaming      bool
	IsTimeRunning bool
}

func NewSnapshot(b board.Board, s State) Snapshot {
	snap := Snapshot{
		Cols:          b.Cols,
		Rows:          b.Rows,
		Archived:      make([]ShapeView, 0, len(s.Archived)),
		Score:         s.Score,
		Level:         s.Level,
		Lines:         s.Lines,
		Tick:          s.Tick,
		TickSpeed:     s.TickSpeed,
		GameOver:      s.GameOver,
		IsGaming:      s.IsGaming,
		IsTimeRunning: s.IsTimeRunning,
	}
	if s.Current != nil {
		snap.Current = viewOf(*s.Current)
		snap.Ghost = viewOf(*Ghost(b, s))
	}
	for _, f := range s.Archived {
		snap.Archived = append(snap.Archived, ShapeView{
			Kind:  f.Kind,
			Tint:  f.Tint,
			Cells: slices.Clone(f.Cells),
		})
	}
	return snap
}

func viewOf(s piece.Shape) *ShapeView {
	return &ShapeView{
		Kind:  s.Kind,
		Tint:  s.Tint,
		Cells: s.Cells(),
	}
}

// Shapes returns the archived shapes followed by the current shape, in drawing order.
func (s Snapshot) Shapes() []ShapeView {
	shapes := slices.Clone(s.Archived)
	if s.Current != nil {
		shapes = append(shapes, *s.Current)
	}
	return shapes
}
