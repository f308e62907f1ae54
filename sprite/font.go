package sprite

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var (
	Regular   *opentype.Font
	Monospace *opentype.Font
)

// Faces sized for the current cell unit. Debug is a fixed bitmap face.
var (
	Title font.Face
	HUD   font.Face
	Debug font.Face = basicfont.Face7x13
)

var fontMap = map[string]struct {
	f   **opentype.Font
	ttf []byte
}{
	"regular":   {&Regular, goregular.TTF},
	"monospace": {&Monospace, gomono.TTF},
}

func loadFonts(unit int) (err error) {
	for name, f := range fontMap {
		*f.f, err = opentype.Parse(f.ttf)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", name, err)
		}
	}
	Title, err = newFace(Regular, float64(unit)*0.75)
	if err != nil {
		return fmt.Errorf("creating title face: %w", err)
	}
	HUD, err = newFace(Monospace, float64(unit)/2)
	if err != nil {
		return fmt.Errorf("creating hud face: %w", err)
	}
	return nil
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
}
