package board

import (
	"slices"

	"github.com/deitrix/blocks/cell"
	"github.com/deitrix/blocks/piece"
	"github.com/kamstrup/intmap"
)

// Board holds the fixed dimensions of the playing field, in cells. All of its methods are pure
// predicates or derivations; none of them mutate their arguments.
type Board struct {
	Cols, Rows int
}

func New(cols, rows int) Board {
	return Board{Cols: cols, Rows: rows}
}

func (b Board) Contains(p cell.Point) bool {
	return p.X >= 0 && p.X < b.Cols && p.Y >= 0 && p.Y < b.Rows
}

// WithinBounds reports whether every cell of s lies on the board.
func (b Board) WithinBounds(s piece.Shape) bool {
	for _, c := range s.Cells() {
		if !b.Contains(c) {
			return false
		}
	}
	return true
}

// Collides reports whether any cell of s is already occupied by an archived fragment. Cells off the
// board never collide, since archived cells are always on it.
func (b Board) Collides(s piece.Shape, archived []piece.Fragment) bool {
	occupied := b.Occupancy(archived)
	for _, c := range s.Cells() {
		if b.Contains(c) && occupied.Has(b.index(c)) {
			return true
		}
	}
	return false
}

// Fits reports whether s can be placed on the board as it is.
func (b Board) Fits(s piece.Shape, archived []piece.Fragment) bool {
	return b.WithinBounds(s) && !b.Collides(s, archived)
}

// ClampToRightWall moves s left so that its bounding box ends at the right wall, if it currently
// extends past it.
func (b Board) ClampToRightWall(s piece.Shape) piece.Shape {
	if s.Origin.X+s.Width() > b.Cols {
		s.Origin.X = b.Cols - s.Width()
	}
	return s
}

// Occupancy returns the set of occupied cell indices. Cells that lie outside the board are
// ignored.
func (b Board) Occupancy(archived []piece.Fragment) *intmap.Set[int] {
	set := intmap.NewSet[int](len(archived) * 4)
	for _, f := range archived {
		for _, c := range f.Cells {
			if b.Contains(c) {
				set.Add(b.index(c))
			}
		}
	}
	return set
}

// RowCounts tallies the number of occupied cells in every row that has at least one.
func (b Board) RowCounts(archived []piece.Fragment) *intmap.Map[int, int] {
	counts := intmap.New[int, int](b.Rows)
	for _, f := range archived {
		for _, c := range f.Cells {
			n, _ := counts.Get(c.Y)
			counts.Put(c.Y, n+1)
		}
	}
	return counts
}

// FullRows returns the rows whose every cell is occupied, in ascending order.
func (b Board) FullRows(archived []piece.Fragment) []int {
	var rows []int
	b.RowCounts(archived).ForEach(func(row, n int) bool {
		if n == b.Cols {
			rows = append(rows, row)
		}
		return true
	})
	slices.Sort(rows)
	return rows
}

// RemoveRow returns a copy of archived with every cell on row removed and every cell above it
// shifted down by one. Fragments left without cells are dropped.
func (b Board) RemoveRow(archived []piece.Fragment, row int) []piece.Fragment {
	out := make([]piece.Fragment, 0, len(archived))
	for _, f := range archived {
		next := piece.Fragment{Kind: f.Kind, Tint: f.Tint}
		for _, c := range f.Cells {
			switch {
			case c.Y == row:
				continue
			case c.Y < row:
				c.Y++
			}
			next.Cells = append(next.Cells, c)
		}
		if len(next.Cells) > 0 {
			out = append(out, next)
		}
	}
	return out
}

// index is unique only for points on the board.
func (b Board) index(p cell.Point) int {
	return p.Y*b.Cols + p.X
}
