package draw

import (
	"fmt"
	"io"
	"strings"

	"github.com/tomz197/rockfall/internal/config"
)

// Half-block characters. A cell shows its top pixel in the foreground colour
// and its bottom pixel in the background colour.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Viewport maps the logical screen onto terminal cells. Every cell covers two
// vertically stacked sub-pixels.
type Viewport struct {
	Cols, Rows int // Cells covered by the screen
	OffsetCol  int // 0-based columns skipped for centring
	OffsetRow  int // 0-based rows skipped for centring
	Scale      float64
}

// Fit scales the logical screen down to the terminal, keeping its aspect
// ratio. The screen is never scaled up; larger terminals get it centred.
func Fit(termWidth, termHeight int) Viewport {
	if termWidth <= 0 || termHeight <= 0 {
		return Viewport{}
	}
	scale := min(
		float64(termWidth)/config.ScreenWidth,
		float64(termHeight*2)/config.ScreenHeight,
		1.0,
	)
	cols := max(int(config.ScreenWidth*scale), 1)
	subRows := max(int(config.ScreenHeight*scale), 1)
	rows := (subRows + 1) / 2
	return Viewport{
		Cols:      cols,
		Rows:      rows,
		OffsetCol: (termWidth - cols) / 2,
		OffsetRow: (termHeight - rows) / 2,
		Scale:     scale,
	}
}

// span returns the logical pixel range [lo, hi) covered by terminal
// sub-pixel i.
func (v Viewport) span(i, limit int) (int, int) {
	lo := int(float64(i) / v.Scale)
	hi := max(int(float64(i+1)/v.Scale), lo+1)
	return min(lo, limit), min(hi, limit)
}

// Sample returns the colour index shown by the sub-pixel at column col and
// sub-row sub. When a sub-pixel covers several logical pixels any non-zero
// index wins, so single-pixel stars and bullets survive downscaling.
func (v Viewport) Sample(f Frame, col, sub int) Color {
	x0, x1 := v.span(col, f.W)
	y0, y1 := v.span(sub, f.H)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if c := f.Pix[y*f.W+x]; c != 0 {
				return c
			}
		}
	}
	if x0 < f.W && y0 < f.H {
		return f.Pix[y0*f.W+x0]
	}
	return 0
}

type cell struct {
	top, bottom RGB
}

// Canvas presents frames to an ANSI terminal using half blocks and 24-bit
// colour. Only cells that changed since the previous frame are written.
type Canvas struct {
	out        *ChunkWriter
	size       TermSizeFunc
	termWidth  int
	termHeight int
	vp         Viewport
	cells      []cell
	valid      bool
}

// NewCanvas creates a canvas writing to w. size reports the terminal
// dimensions and is polled on every frame.
func NewCanvas(w io.Writer, size TermSizeFunc) *Canvas {
	if size == nil {
		size = DefaultTermSizeFunc
	}
	return &Canvas{out: NewChunkWriter(w, 0, 0), size: size}
}

// Viewport returns the current mapping.
func (c *Canvas) Viewport() Viewport { return c.vp }

// Writer exposes the underlying chunk writer for text overlays. Output is
// flushed with the next frame.
func (c *Canvas) Writer() *ChunkWriter { return c.out }

// Invalidate forces every cell to be rewritten on the next frame.
func (c *Canvas) Invalidate() { c.valid = false }

// Present implements Presenter.
func (c *Canvas) Present(f Frame) error {
	tw, th, err := c.size()
	if err != nil {
		return fmt.Errorf("error reading terminal size: %w", err)
	}
	if tw != c.termWidth || th != c.termHeight {
		c.resize(tw, th)
	}

	for row := 0; row < c.vp.Rows; row++ {
		for col := 0; col < c.vp.Cols; col++ {
			cl := cell{
				top:    f.Palette[c.vp.Sample(f, col, row*2)],
				bottom: f.Palette[c.vp.Sample(f, col, row*2+1)],
			}
			i := row*c.vp.Cols + col
			if c.valid && c.cells[i] == cl {
				continue
			}
			c.cells[i] = cl
			c.out.MoveCursor(col+1, row+1)
			c.out.SetColors(cl.top, cl.bottom)
			c.out.WriteRune(BlockUpperHalf)
		}
	}
	c.out.WriteString(resetAttrs)
	c.valid = true

	if err := c.out.Flush(); err != nil {
		return fmt.Errorf("error writing frame: %w", err)
	}
	return nil
}

func (c *Canvas) resize(tw, th int) {
	c.termWidth, c.termHeight = tw, th
	c.vp = Fit(tw, th)
	c.cells = make([]cell, c.vp.Cols*c.vp.Rows)
	c.valid = false
	c.out.SetOffset(c.vp.OffsetCol, c.vp.OffsetRow)
	c.out.WriteString(resetAttrs + clearScreen)
	c.RenderBorder(c.out)
}

// RenderBorder draws a box around the screen area when the terminal has room
// for it: horizontal bars when there is a vertical offset, vertical bars when
// there is a horizontal offset, corners when both are present.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	vp := c.vp
	hasH := vp.OffsetCol >= 1
	hasV := vp.OffsetRow >= 1
	if !hasH && !hasV {
		return
	}

	// Border positions relative to the screen area (1-based, offset applied by cw)
	left, right := 0, vp.Cols+1
	top, bottom := 0, vp.Rows+1
	bar := strings.Repeat("─", vp.Cols)

	if hasV {
		if hasH {
			cw.WriteAt(left, top, "┌"+bar+"┐")
			cw.WriteAt(left, bottom, "└"+bar+"┘")
		} else {
			cw.WriteAt(1, top, bar)
			cw.WriteAt(1, bottom, bar)
		}
	}
	if hasH {
		for row := 1; row <= vp.Rows; row++ {
			cw.WriteAt(left, row, "│")
			cw.WriteAt(right, row, "│")
		}
	}
}

var _ Presenter = (*Canvas)(nil)
