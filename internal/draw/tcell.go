package draw

import "github.com/gdamore/tcell/v2"

// TcellPresenter shows frames on a tcell screen with half blocks.
type TcellPresenter struct {
	screen tcell.Screen
}

// NewTcellPresenter wraps an initialized screen.
func NewTcellPresenter(screen tcell.Screen) *TcellPresenter {
	return &TcellPresenter{screen: screen}
}

func rgbColor(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Present implements Presenter. tcell diffs cells itself, so every cell is
// set each frame.
func (p *TcellPresenter) Present(f Frame) error {
	w, h := p.screen.Size()
	vp := Fit(w, h)
	for row := 0; row < vp.Rows; row++ {
		for col := 0; col < vp.Cols; col++ {
			top := f.Palette[vp.Sample(f, col, row*2)]
			bottom := f.Palette[vp.Sample(f, col, row*2+1)]
			style := tcell.StyleDefault.Foreground(rgbColor(top)).Background(rgbColor(bottom))
			p.screen.SetContent(vp.OffsetCol+col, vp.OffsetRow+row, BlockUpperHalf, nil, style)
		}
	}
	p.screen.Show()
	return nil
}

var _ Presenter = (*TcellPresenter)(nil)
