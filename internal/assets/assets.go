// Package assets loads the fixed sprite bundle the renderers draw with.
// Every sprite is fetched concurrently; the bundle exists only once all of
// them resolved, and is immutable afterwards.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"path"

	"golang.org/x/sync/errgroup"
)

// Asset names, resolved against a base path.
const (
	NameBackground = "sprites/background-day.png"
	NameFloor      = "sprites/base.png"
	NameBirdUp     = "sprites/yellowbird-upflap.png"
	NameBirdMid    = "sprites/yellowbird-midflap.png"
	NameBirdDown   = "sprites/yellowbird-downflap.png"
	NamePipe       = "sprites/pipe-green.png"
	NameGameOver   = "sprites/gameover.png"
	NameMessage    = "sprites/message.png"
)

// Bird frame indices into Set.Bird.
const (
	BirdUp = iota
	BirdMid
	BirdDown
)

// DigitName returns the asset name of a score digit glyph.
func DigitName(d int) string {
	return fmt.Sprintf("sprites/%d.png", d)
}

// Names returns every asset name in load order.
func Names() []string {
	names := []string{
		NameBackground,
		NameFloor,
		NameBirdUp,
		NameBirdMid,
		NameBirdDown,
		NamePipe,
		NameGameOver,
		NameMessage,
	}
	for d := 0; d <= 9; d++ {
		names = append(names, DigitName(d))
	}
	return names
}

// Set is the decoded sprite bundle.
type Set struct {
	Background image.Image
	Floor      image.Image
	Bird       [3]image.Image // Up, mid, down
	PipeUpper  image.Image    // Opening faces down
	PipeLower  image.Image    // Opening faces up
	Digits     [10]image.Image
	GameOver   image.Image
	Message    image.Image
}

// Fetcher retrieves and decodes one named image.
type Fetcher interface {
	Fetch(ctx context.Context, name string) (image.Image, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, name string) (image.Image, error)

// Fetch calls f(ctx, name).
func (f FetcherFunc) Fetch(ctx context.Context, name string) (image.Image, error) {
	return f(ctx, name)
}

// Load fetches every asset concurrently and assembles the bundle.
// The first failure cancels the outstanding fetches and no partial set is returned.
func Load(ctx context.Context, f Fetcher, base string) (*Set, error) {
	names := Names()
	images := make([]image.Image, len(names))

	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			img, err := f.Fetch(gctx, path.Join(base, name))
			if err != nil {
				return fmt.Errorf("assets: load %s: %w", name, err)
			}
			if img == nil {
				return fmt.Errorf("assets: load %s: fetcher returned no image", name)
			}
			images[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byName := make(map[string]image.Image, len(names))
	for i, name := range names {
		byName[name] = images[i]
	}

	set := &Set{
		Background: byName[NameBackground],
		Floor:      byName[NameFloor],
		Bird:       [3]image.Image{byName[NameBirdUp], byName[NameBirdMid], byName[NameBirdDown]},
		PipeLower:  byName[NamePipe],
		PipeUpper:  flipVertical(byName[NamePipe]),
		GameOver:   byName[NameGameOver],
		Message:    byName[NameMessage],
	}
	for d := range set.Digits {
		set.Digits[d] = byName[DigitName(d)]
	}
	return set, nil
}

// flipVertical returns a copy of img mirrored top to bottom, rebased at the origin.
func flipVertical(img image.Image) *image.RGBA {
	b := img.Bounds()
	src := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(src, src.Bounds(), img, b.Min, draw.Src)

	dst := image.NewRGBA(src.Bounds())
	rowLen := b.Dx() * 4
	for y := 0; y < b.Dy(); y++ {
		from := src.Pix[y*src.Stride : y*src.Stride+rowLen]
		to := dst.Pix[(b.Dy()-1-y)*dst.Stride : (b.Dy()-1-y)*dst.Stride+rowLen]
		copy(to, from)
	}
	return dst
}
