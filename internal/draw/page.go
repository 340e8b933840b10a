package draw

import (
	"fmt"

	"github.com/tomz197/rockfall/internal/config"
)

// Surface is the drawing capability used by renderers. Coordinates are
// screen pixels; everything is clipped to the screen.
type Surface interface {
	SetPixel(x, y int, c Color)
	FillRect(x, y, w, h int, c Color)
	DrawText(x, y int, s string, c Color)
	Blit(x, y int, img *Image)
	LoadPalette(p *Palette)
}

// Display is a Surface with two pages that can be flipped.
type Display interface {
	Surface
	Flip() error
}

// Frame is a read-only view of a page together with the palette in effect.
type Frame struct {
	Pix     []Color
	Palette *Palette
	W, H    int
}

// At returns the RGB colour at (x, y). Out of range reads as palette entry 0.
func (f Frame) At(x, y int) RGB {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return f.Palette[0]
	}
	return f.Palette[f.Pix[y*f.W+x]]
}

// Presenter shows a frame to the player.
type Presenter interface {
	Present(f Frame) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(f Frame) error

func (fn PresenterFunc) Present(f Frame) error { return fn(f) }

// Image is a bulk-copyable block of colour indices.
type Image struct {
	W, H int
	Pix  []Color
	// Key, when set, names a colour that Blit leaves untouched.
	Key *Color
}

// NewImage returns an image filled with index 0.
func NewImage(w, h int) *Image {
	return &Image{W: w, H: h, Pix: make([]Color, w*h)}
}

// SetPixel colours one pixel of the image.
func (img *Image) SetPixel(x, y int, c Color) {
	if x >= 0 && y >= 0 && x < img.W && y < img.H {
		img.Pix[y*img.W+x] = c
	}
}

// PageBuffer holds two pages. Drawing always targets the back page; Flip
// makes it visible and hands it to the presenter.
type PageBuffer struct {
	pages     [2][]Color
	back      int
	palette   Palette
	presenter Presenter
	flips     int
}

// NewPageBuffer allocates both pages. presenter may be nil.
func NewPageBuffer(presenter Presenter) *PageBuffer {
	n := config.ScreenWidth * config.ScreenHeight
	return &PageBuffer{
		pages:     [2][]Color{make([]Color, n), make([]Color, n)},
		back:      1,
		palette:   GamePalette,
		presenter: presenter,
	}
}

// Back returns the index (0 or 1) of the page being drawn into.
func (b *PageBuffer) Back() int { return b.back }

// Flips returns how many times the pages have been swapped.
func (b *PageBuffer) Flips() int { return b.flips }

// BackAt returns the colour index at (x, y) on the back page.
func (b *PageBuffer) BackAt(x, y int) Color { return b.at(b.back, x, y) }

// VisibleAt returns the colour index at (x, y) on the visible page.
func (b *PageBuffer) VisibleAt(x, y int) Color { return b.at(b.back^1, x, y) }

func (b *PageBuffer) at(page, x, y int) Color {
	if x < 0 || y < 0 || x >= config.ScreenWidth || y >= config.ScreenHeight {
		return 0
	}
	return b.pages[page][y*config.ScreenWidth+x]
}

// Visible returns the visible page as a frame.
func (b *PageBuffer) Visible() Frame {
	return Frame{
		Pix:     b.pages[b.back^1],
		Palette: &b.palette,
		W:       config.ScreenWidth,
		H:       config.ScreenHeight,
	}
}

func (b *PageBuffer) SetPixel(x, y int, c Color) {
	if x < 0 || y < 0 || x >= config.ScreenWidth || y >= config.ScreenHeight {
		return
	}
	b.pages[b.back][y*config.ScreenWidth+x] = c
}

func (b *PageBuffer) FillRect(x, y, w, h int, c Color) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, config.ScreenWidth), min(y+h, config.ScreenHeight)
	page := b.pages[b.back]
	for yy := y0; yy < y1; yy++ {
		row := page[yy*config.ScreenWidth : (yy+1)*config.ScreenWidth]
		for xx := x0; xx < x1; xx++ {
			row[xx] = c
		}
	}
}

func (b *PageBuffer) DrawText(x, y int, s string, c Color) {
	drawText(b, x, y, s, c, 1)
}

func (b *PageBuffer) Blit(x, y int, img *Image) {
	if img == nil {
		return
	}
	for iy := 0; iy < img.H; iy++ {
		for ix := 0; ix < img.W; ix++ {
			c := img.Pix[iy*img.W+ix]
			if img.Key != nil && c == *img.Key {
				continue
			}
			b.SetPixel(x+ix, y+iy, c)
		}
	}
}

func (b *PageBuffer) LoadPalette(p *Palette) {
	if p != nil {
		b.palette = *p
	}
}

// Flip swaps the pages and presents the newly visible one.
func (b *PageBuffer) Flip() error {
	b.back ^= 1
	b.flips++
	if b.presenter == nil {
		return nil
	}
	if err := b.presenter.Present(b.Visible()); err != nil {
		return fmt.Errorf("error presenting frame: %w", err)
	}
	return nil
}

var _ Display = (*PageBuffer)(nil)
