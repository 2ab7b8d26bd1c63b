package render

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

// TextSize is the overlay font size in device pixels.
const TextSize = 13

var (
	boldOnce sync.Once
	boldFont *opentype.Font
)

// newFace returns a bold face at the given pixel size. Faces are not safe for
// concurrent use, so every canvas owns one; the parsed font is shared.
// Falls back to the built-in bitmap face when the font cannot be used.
func newFace(size float64) font.Face {
	boldOnce.Do(func() {
		f, err := opentype.Parse(gobold.TTF)
		if err == nil {
			boldFont = f
		}
	})
	if boldFont == nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(boldFont, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
