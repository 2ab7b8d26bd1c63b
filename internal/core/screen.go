package core

import (
	"image"
	"image/color"
	"strings"
)

// HalfBlock is the glyph used to show two vertically stacked pixels in one cell:
// the foreground paints the upper pixel, the background the lower one.
const HalfBlock = '▀'

// Cell is a single terminal cell with truecolor foreground and background.
type Cell struct {
	Rune rune
	Fg   color.RGBA
	Bg   color.RGBA
}

// Screen is a 2D cell buffer that terminal hosts print.
// It decouples the raster canvas from the terminal: a frame is blitted in as
// half-block cells and the platform handles the escape sequences.
type Screen struct {
	width  int
	height int
	cells  [][]Cell
}

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Clear()
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// PixelSize returns the pixel resolution one Blit fills: one column and two rows per cell.
func (s *Screen) PixelSize() (int, int) {
	return s.width, s.height * 2
}

// Resize changes the screen dimensions, preserving content where possible.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()
	s.Clear()

	copyW := Min(oldW, width)
	copyH := Min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear fills the entire screen with blank black cells.
func (s *Screen) Clear() {
	blank := Cell{Rune: ' ', Fg: color.RGBA{A: 0xff}, Bg: color.RGBA{A: 0xff}}
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = blank
		}
	}
}

// Set places a cell at the given position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, c Cell) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = c
}

// GetCell returns the cell at the given position.
// Returns a blank cell for out-of-bounds coordinates.
func (s *Screen) GetCell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{Rune: ' '}
	}
	return s.cells[y][x]
}

// Get returns the rune at the given position.
func (s *Screen) Get(x, y int) rune {
	return s.GetCell(x, y).Rune
}

// DrawText writes a string horizontally starting at (x, y) keeping each cell's background.
// Characters that extend beyond screen bounds are clipped.
func (s *Screen) DrawText(x, y int, text string, fg color.RGBA) {
	i := 0
	for _, r := range text {
		c := s.GetCell(x+i, y)
		s.Set(x+i, y, Cell{Rune: r, Fg: fg, Bg: c.Bg})
		i++
	}
}

// Blit downsamples img onto the whole screen as half-block cells.
// Every cell averages the source pixels that fall into its upper and lower half.
func (s *Screen) Blit(img image.Image) {
	b := img.Bounds()
	pw, ph := s.PixelSize()
	if pw == 0 || ph == 0 || b.Empty() {
		return
	}
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			top := averageArea(img, b, x, 2*y, pw, ph)
			bottom := averageArea(img, b, x, 2*y+1, pw, ph)
			s.cells[y][x] = Cell{Rune: HalfBlock, Fg: top, Bg: bottom}
		}
	}
}

// averageArea returns the mean color of the source region mapped to pixel (px, py)
// of a pw x ph target grid.
func averageArea(img image.Image, b image.Rectangle, px, py, pw, ph int) color.RGBA {
	x0 := b.Min.X + px*b.Dx()/pw
	x1 := b.Min.X + (px+1)*b.Dx()/pw
	y0 := b.Min.Y + py*b.Dy()/ph
	y1 := b.Min.Y + (py+1)*b.Dy()/ph
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	var r, g, bl, n uint32
	for y := y0; y < y1 && y < b.Max.Y; y++ {
		for x := x0; x < x1 && x < b.Max.X; x++ {
			cr, cg, cb, _ := img.At(x, y).RGBA()
			r += cr >> 8
			g += cg >> 8
			bl += cb >> 8
			n++
		}
	}
	if n == 0 {
		return color.RGBA{A: 0xff}
	}
	return color.RGBA{R: uint8(r / n), G: uint8(g / n), B: uint8(bl / n), A: 0xff}
}

// String converts the screen buffer to plain text without colors.
// Each row is joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*3 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x].Rune)
		}
	}
	return sb.String()
}

// Row returns the runes of the specified row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	var sb strings.Builder
	for _, c := range s.cells[y] {
		sb.WriteRune(c.Rune)
	}
	return sb.String()
}
