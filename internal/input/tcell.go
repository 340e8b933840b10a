package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// TcellSource reads key events from a tcell screen.
type TcellSource struct {
	ch     chan Button
	done   chan struct{}
	state  keyState
	window time.Duration
	now    func() time.Time
}

// quitMarker is sent on the event channel when the player asks to quit.
const quitMarker Button = 1 << 15

// StartTcell spawns a goroutine polling screen events. Resize events trigger
// a screen sync; key events are mapped to console buttons.
func StartTcell(screen tcell.Screen, window time.Duration) *TcellSource {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	s := &TcellSource{
		ch:     make(chan Button, 128),
		done:   make(chan struct{}),
		window: window,
		now:    time.Now,
	}
	go func() {
		defer close(s.done)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				// screen finalized
				s.ch <- quitMarker
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if btn, ok := KeyButton(ev); ok {
					s.ch <- btn
				}
			}
		}
	}()
	return s
}

// Poll drains pending key events and returns the buttons seen within the
// hold window.
func (s *TcellSource) Poll() (Button, bool) {
	now := s.now()
drain:
	for {
		select {
		case b := <-s.ch:
			if b == quitMarker {
				s.state.quit = true
				continue
			}
			s.state.press(b, now)
		default:
			break drain
		}
	}
	return s.state.held(now, s.window), s.state.quit
}

// KeyButton maps a tcell key event to a console button. The quit keys map to
// an internal marker that Poll turns into quit.
func KeyButton(ev *tcell.EventKey) (Button, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return ButtonUp, true
	case tcell.KeyDown:
		return ButtonDown, true
	case tcell.KeyLeft:
		return ButtonLeft, true
	case tcell.KeyRight:
		return ButtonRight, true
	case tcell.KeyEnter:
		return ButtonStart, true
	case tcell.KeyTab, tcell.KeyBackspace, tcell.KeyBackspace2:
		return ButtonSelect, true
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return quitMarker, true
	case tcell.KeyRune:
		r := ev.Rune()
		if r > 0x7f {
			return 0, false
		}
		if isQuitByte(byte(r)) {
			return quitMarker, true
		}
		return byteButton(byte(r))
	}
	return 0, false
}
