package assets

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"io/fs"
	"path"
	"strconv"
	"strings"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canonical sprite sizes.
var (
	sizeBackground = image.Pt(288, 512)
	sizeFloor      = image.Pt(336, 112)
	sizeBird       = image.Pt(34, 24)
	sizePipe       = image.Pt(52, 320)
	sizeDigit      = image.Pt(24, 36)
	sizeGameOver   = image.Pt(192, 42)
	sizeMessage    = image.Pt(184, 267)
)

var (
	sky        = color.RGBA{R: 0x4e, G: 0xc0, B: 0xca, A: 0xff}
	cloud      = color.RGBA{R: 0xe9, G: 0xfc, B: 0xd9, A: 0xff}
	city       = color.RGBA{R: 0xa8, G: 0xe0, B: 0xb8, A: 0xff}
	bush       = color.RGBA{R: 0x5e, G: 0xe2, B: 0x70, A: 0xff}
	sand       = color.RGBA{R: 0xde, G: 0xd8, B: 0x95, A: 0xff}
	grassLight = color.RGBA{R: 0x9c, G: 0xe6, B: 0x59, A: 0xff}
	grassDark  = color.RGBA{R: 0x73, G: 0xbf, B: 0x2e, A: 0xff}
	pipeDark   = color.RGBA{R: 0x55, G: 0x80, B: 0x22, A: 0xff}
	edge       = color.RGBA{R: 0x54, G: 0x38, B: 0x47, A: 0xff}
	feather    = color.RGBA{R: 0xf8, G: 0xc8, B: 0x30, A: 0xff}
	wing       = color.RGBA{R: 0xfa, G: 0xf0, B: 0xd0, A: 0xff}
	beak       = color.RGBA{R: 0xf0, G: 0x50, B: 0x30, A: 0xff}
	ink        = color.RGBA{A: 0xff}
	paper      = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	banner     = color.RGBA{R: 0xfc, G: 0xa0, B: 0x48, A: 0xff}
)

// Procedural synthesizes every asset at its canonical size, so the renderers
// work without a sprite directory on disk. Only the file name is significant.
type Procedural struct{}

// Fetch draws the named asset.
func (Procedural) Fetch(ctx context.Context, name string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch file := path.Base(name); file {
	case path.Base(NameBackground):
		return drawBackground(), nil
	case path.Base(NameFloor):
		return drawFloor(), nil
	case path.Base(NameBirdUp):
		return drawBird(BirdUp), nil
	case path.Base(NameBirdMid):
		return drawBird(BirdMid), nil
	case path.Base(NameBirdDown):
		return drawBird(BirdDown), nil
	case path.Base(NamePipe):
		return drawPipe(), nil
	case path.Base(NameGameOver):
		return drawGameOver(), nil
	case path.Base(NameMessage):
		return drawMessage(), nil
	default:
		if d, ok := digitOf(file); ok {
			return drawDigit(d), nil
		}
	}
	return nil, fmt.Errorf("procedural %s: %w", name, fs.ErrNotExist)
}

func digitOf(file string) (int, bool) {
	stem := strings.TrimSuffix(file, ".png")
	if len(stem) != 1 || stem[0] < '0' || stem[0] > '9' {
		return 0, false
	}
	return int(stem[0] - '0'), true
}

func canvas(size image.Point) *image.RGBA {
	return image.NewRGBA(image.Rectangle{Max: size})
}

func fill(dst *image.RGBA, r image.Rectangle, c color.Color) {
	xdraw.Draw(dst, r, image.NewUniform(c), image.Point{}, xdraw.Over)
}

func ellipse(dst *image.RGBA, cx, cy, rx, ry int, c color.Color) {
	for y := cy - ry; y <= cy+ry; y++ {
		for x := cx - rx; x <= cx+rx; x++ {
			dx := float64(x-cx) / float64(rx)
			dy := float64(y-cy) / float64(ry)
			if dx*dx+dy*dy <= 1 {
				dst.Set(x, y, c)
			}
		}
	}
}

// scaled draws src stretched into r with nearest-neighbor sampling.
func scaled(dst *image.RGBA, r image.Rectangle, src image.Image) {
	xdraw.NearestNeighbor.Scale(dst, r, src, src.Bounds(), xdraw.Over, nil)
}

// lettering renders text with a one pixel outline at the bitmap font's native size.
func lettering(text string, fg, outline color.Color) *image.RGBA {
	face := basicfont.Face7x13
	w := font.MeasureString(face, text).Ceil() + 2
	h := face.Height + 2
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	draw := func(dx, dy int, c color.Color) {
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(c),
			Face: face,
			Dot:  fixed.P(1+dx, 1+face.Ascent+dy),
		}
		d.DrawString(text)
	}
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx != 0 || dy != 0 {
				draw(dx, dy, outline)
			}
		}
	}
	draw(0, 0, fg)
	return img
}

func drawBackground() *image.RGBA {
	img := canvas(sizeBackground)
	fill(img, img.Bounds(), sky)

	for x := -10; x < sizeBackground.X+20; x += 36 {
		ellipse(img, x, 330+(x/36%2)*6, 26, 18, cloud)
	}
	for i, x := 0, 0; x < sizeBackground.X; i, x = i+1, x+18 {
		top := 350 + (i*37)%28
		fill(img, image.Rect(x, top, x+16, 404), city)
		for wy := top + 4; wy < 395; wy += 8 {
			fill(img, image.Rect(x+4, wy, x+7, wy+3), sky)
			fill(img, image.Rect(x+10, wy, x+13, wy+3), sky)
		}
	}
	for x := 0; x < sizeBackground.X+20; x += 24 {
		ellipse(img, x, 398, 16, 10, bush)
	}
	fill(img, image.Rect(0, 404, sizeBackground.X, sizeBackground.Y), sand)
	return img
}

func drawFloor() *image.RGBA {
	img := canvas(sizeFloor)
	fill(img, img.Bounds(), sand)
	fill(img, image.Rect(0, 0, sizeFloor.X, 2), edge)
	for y := 2; y < 16; y++ {
		for x := 0; x < sizeFloor.X; x++ {
			// Stripe period 12 divides the 48 px scroll wrap.
			if ((x+y)/6)%2 == 0 {
				img.Set(x, y, grassLight)
			} else {
				img.Set(x, y, grassDark)
			}
		}
	}
	fill(img, image.Rect(0, 16, sizeFloor.X, 20), pipeDark)
	return img
}

func drawBird(frame int) *image.RGBA {
	img := canvas(sizeBird)
	ellipse(img, 16, 12, 16, 11, ink)
	ellipse(img, 16, 12, 15, 10, feather)
	ellipse(img, 23, 8, 5, 5, ink)
	ellipse(img, 23, 8, 4, 4, paper)
	fill(img, image.Rect(24, 6, 26, 10), ink)
	fill(img, image.Rect(25, 13, 34, 19), ink)
	fill(img, image.Rect(26, 14, 33, 18), beak)

	wingY := [...]int{BirdUp: 8, BirdMid: 12, BirdDown: 16}[frame]
	ellipse(img, 8, wingY, 7, 4, ink)
	ellipse(img, 8, wingY, 6, 3, wing)
	return img
}

func drawPipe() *image.RGBA {
	img := canvas(sizePipe)
	fill(img, image.Rect(2, 24, 50, sizePipe.Y), pipeDark)
	fill(img, image.Rect(4, 24, 48, sizePipe.Y), grassDark)
	fill(img, image.Rect(8, 24, 14, sizePipe.Y), grassLight)

	fill(img, image.Rect(0, 0, sizePipe.X, 24), pipeDark)
	fill(img, image.Rect(2, 2, sizePipe.X-2, 22), grassDark)
	fill(img, image.Rect(6, 2, 12, 22), grassLight)
	return img
}

func drawDigit(d int) *image.RGBA {
	img := canvas(sizeDigit)
	scaled(img, img.Bounds(), lettering(strconv.Itoa(d), paper, ink))
	return img
}

func drawGameOver() *image.RGBA {
	img := canvas(sizeGameOver)
	scaled(img, img.Bounds(), lettering("GAME OVER", banner, edge))
	return img
}

func drawMessage() *image.RGBA {
	img := canvas(sizeMessage)
	scaled(img, image.Rect(4, 8, 180, 56), lettering("GET READY", grassDark, paper))

	ellipse(img, 92, 150, 60, 60, color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0x60})
	scaled(img, image.Rect(58, 126, 126, 174), drawBird(BirdMid))

	scaled(img, image.Rect(62, 214, 122, 244), lettering("TAP", banner, edge))
	fill(img, image.Rect(88, 190, 96, 210), paper)
	return img
}
