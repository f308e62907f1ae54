package sprite

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// size is the side of the generated sprites in pixels. Sprites are scaled to the cell size when
// drawn.
const size = 16

var Cell, Ghost *ebiten.Image

var spriteMap = map[string]struct {
	img  **ebiten.Image
	mask func(int) *image.NRGBA
}{
	"cell":  {&Cell, cellMask},
	"ghost": {&Ghost, ghostMask},
}

// Load builds the sprites and the font faces for a cell of unit pixels. Sprites are white so they
// can be tinted with a color scale.
func Load(unit int) error {
	for _, s := range spriteMap {
		*s.img = ebiten.NewImageFromImage(s.mask(size))
	}
	return loadFonts(unit)
}

// cellMask is a solid block with a darker bevel on its bottom and right edges.
func cellMask(n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	bevel := max(n/8, 1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			c := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
			if x >= n-bevel || y >= n-bevel {
				c = color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

// ghostMask is the outline of a block.
func ghostMask(n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n, n))
	edge := max(n/8, 1)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if x < edge || y < edge || x >= n-edge || y >= n-edge {
				img.SetNRGBA(x, y, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x80})
			}
		}
	}
	return img
}
