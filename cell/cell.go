package cell

import "image/color"

// Point is the (column, row) of a single cell on the board. The origin is the top-left corner and
// rows grow downwards.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Tint is the cosmetic color of a cell. It has no influence on the game rules.
type Tint struct {
	R, G, B uint8
}

var (
	Cyan   = Tint{R: 0x00, G: 0xf0, B: 0xf0}
	Blue   = Tint{R: 0x20, G: 0x40, B: 0xf0}
	Orange = Tint{R: 0xf0, G: 0xa0, B: 0x00}
	Yellow = Tint{R: 0xf0, G: 0xf0, B: 0x00}
	Green  = Tint{R: 0x00, G: 0xf0, B: 0x00}
	Purple = Tint{R: 0xa0, G: 0x00, B: 0xf0}
	Red    = Tint{R: 0xf0, G: 0x00, B: 0x00}
	Wall   = Tint{R: 0x60, G: 0x60, B: 0x60}
)

func (t Tint) NRGBA() color.NRGBA {
	return color.NRGBA{R: t.R, G: t.G, B: t.B, A: 0xff}
}
