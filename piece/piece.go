package piece

import (
	"fmt"
	"slices"

	"github.com/deitrix/blocks/cell"
)

// Kind is one of the seven tetrominoes.
type Kind int

const (
	I Kind = iota
	J
	L
	O
	S
	T
	Z
)

// Kinds lists every tetromino in table order.
var Kinds = []Kind{I, J, L, O, S, T, Z}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case J:
		return "J"
	case L:
		return "L"
	case O:
		return "O"
	case S:
		return "S"
	case T:
		return "T"
	case Z:
		return "Z"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Rotations is the number of distinct rotation states. Rotation states are cyclic.
const Rotations = 4

// mask is a square, row-major occupancy mask of side Size.
type mask struct {
	Bits []int
	Size int
}

var masks = map[Kind]mask{
	I: {
		Bits: []int{
			0, 0, 0, 0,
			1, 1, 1, 1,
			0, 0, 0, 0,
			0, 0, 0, 0,
		},
		Size: 4,
	},
	J: {
		Bits: []int{
			1, 0, 0,
			1, 1, 1,
			0, 0, 0,
		},
		Size: 3,
	},
	L: {
		Bits: []int{
			0, 0, 1,
			1, 1, 1,
			0, 0, 0,
		},
		Size: 3,
	},
	O: {
		Bits: []int{
			1, 1,
			1, 1,
		},
		Size: 2,
	},
	S: {
		Bits: []int{
			0, 1, 1,
			1, 1, 0,
			0, 0, 0,
		},
		Size: 3,
	},
	T: {
		Bits: []int{
			0, 1, 0,
			1, 1, 1,
			0, 0, 0,
		},
		Size: 3,
	},
	Z: {
		Bits: []int{
			1, 1, 0,
			0, 1, 1,
			0, 0, 0,
		},
		Size: 3,
	},
}

var tints = map[Kind]cell.Tint{
	I: cell.Cyan,
	J: cell.Blue,
	L: cell.Orange,
	O: cell.Yellow,
	S: cell.Green,
	T: cell.Purple,
	Z: cell.Red,
}

// Layout is the canonical, trimmed cell layout of a kind in one rotation state. Offsets are
// relative to the top-left of the bounding box.
type Layout struct {
	Offsets       []cell.Point
	Width, Height int
}

var layouts [Z + 1][Rotations]Layout

func init() {
	for _, k := range Kinds {
		m := masks[k]
		for r := 0; r < Rotations; r++ {
			layouts[k][r] = m.trimSpace()
			m = m.rotate()
		}
	}
}

// rotate returns the mask rotated 90 degrees clockwise.
func (m mask) rotate() mask {
	bits := make([]int, len(m.Bits))
	for i := range m.Bits {
		x := i % m.Size
		y := i / m.Size
		bits[x*m.Size+m.Size-1-y] = m.Bits[i]
	}
	return mask{Bits: bits, Size: m.Size}
}

// trimSpace removes empty rows and columns from the mask and returns the occupied offsets.
func (m mask) trimSpace() Layout {
	minX, minY, maxX, maxY := m.Size, m.Size, 0, 0
	for i := range m.Bits {
		if m.Bits[i] == 0 {
			continue
		}
		x := i % m.Size
		y := i / m.Size
		minX = min(minX, x)
		minY = min(minY, y)
		maxX = max(maxX, x)
		maxY = max(maxY, y)
	}
	var l Layout
	for i := range m.Bits {
		if m.Bits[i] == 0 {
			continue
		}
		l.Offsets = append(l.Offsets, cell.Point{X: i%m.Size - minX, Y: i/m.Size - minY})
	}
	l.Width = maxX - minX + 1
	l.Height = maxY - minY + 1
	return l
}

// LayoutOf returns the canonical layout of kind k in the given rotation state. It panics on an
// unknown kind or a rotation outside 0..3.
func LayoutOf(k Kind, rotation int) Layout {
	if k < I || k > Z {
		panic(fmt.Sprintf("piece: unknown kind %d", int(k)))
	}
	if rotation < 0 || rotation >= Rotations {
		panic(fmt.Sprintf("piece: rotation %d out of range", rotation))
	}
	return layouts[k][rotation]
}

// Shape is a tetromino placed on the grid. Its cells and bounding box are always derived from
// Kind, Rotation and Origin and are never stored.
type Shape struct {
	Kind     Kind
	Rotation int
	// Origin is the top-left corner of the bounding box, in grid units.
	Origin cell.Point
	Tint   cell.Tint
}

// Build returns the shape of kind k in the given rotation state anchored at origin. The origin
// may lie outside the board; validity is for the caller to decide.
func Build(k Kind, rotation int, origin cell.Point) Shape {
	LayoutOf(k, rotation)
	return Shape{
		Kind:     k,
		Rotation: rotation,
		Origin:   origin,
		Tint:     tints[k],
	}
}

func (s Shape) layout() Layout {
	return LayoutOf(s.Kind, s.Rotation)
}

func (s Shape) Width() int {
	return s.layout().Width
}

func (s Shape) Height() int {
	return s.layout().Height
}

// Cells returns the occupied cells, in the canonical order of the layout.
func (s Shape) Cells() []cell.Point {
	offsets := s.layout().Offsets
	cells := make([]cell.Point, len(offsets))
	for i, o := range offsets {
		cells[i] = s.Origin.Add(o)
	}
	return cells
}

// Moved returns the shape translated by (dx, dy).
func (s Shape) Moved(dx, dy int) Shape {
	s.Origin = s.Origin.Add(cell.Point{X: dx, Y: dy})
	return s
}

// Rotated returns the shape in the next clockwise rotation state, keeping its origin.
func (s Shape) Rotated() Shape {
	return Build(s.Kind, (s.Rotation+1)%Rotations, s.Origin)
}

// Freeze materializes the shape's cells so they can be edited by line clears.
func (s Shape) Freeze() Fragment {
	return Fragment{
		Kind:  s.Kind,
		Tint:  s.Tint,
		Cells: s.Cells(),
	}
}

// Fragment is what remains of a shape after it has come to rest. Line clears remove and shift its
// cells individually.
type Fragment struct {
	Kind  Kind
	Tint  cell.Tint
	Cells []cell.Point
}

func (f Fragment) Clone() Fragment {
	f.Cells = slices.Clone(f.Cells)
	return f
}
