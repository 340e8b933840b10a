package input

import (
	"bufio"
	"time"
)

// DefaultHoldWindow is how long a key is considered held after its last press.
// Terminals report repeats, not releases, so holding is inferred from recency.
const DefaultHoldWindow = 150 * time.Millisecond

// keyState tracks the last time each button was reported.
type keyState struct {
	last [numButton]time.Time
	quit bool
}

// press records b as seen at now.
func (k *keyState) press(b Button, now time.Time) {
	for i := 0; i < numButton; i++ {
		if b&(1<<i) != 0 {
			k.last[i] = now
		}
	}
}

// held returns every button reported within window of now.
func (k *keyState) held(now time.Time, window time.Duration) Button {
	var set Button
	for i := 0; i < numButton; i++ {
		if !k.last[i].IsZero() && now.Sub(k.last[i]) < window {
			set |= 1 << i
		}
	}
	return set
}

// reset forgets all previously seen keys.
func (k *keyState) reset() {
	clear(k.last[:])
}

// Stream decodes a raw terminal byte stream into held buttons.
type Stream struct {
	ch     chan byte
	state  keyState
	window time.Duration
	now    func() time.Time
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader, window time.Duration) *Stream {
	s := newStream(window)
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

func newStream(window time.Duration) *Stream {
	if window <= 0 {
		window = DefaultHoldWindow
	}
	return &Stream{
		ch:     make(chan byte, 128),
		window: window,
		now:    time.Now,
	}
}

// Poll drains all available bytes (non-blocking) and returns the buttons
// seen within the hold window.
func (s *Stream) Poll() (Button, bool) {
	now := s.now()
	var buf []byte

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.state.quit = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	s.apply(buf, now)
	return s.state.held(now, s.window), s.state.quit
}

// Reset forgets held keys, e.g. after a screen change that should not
// inherit repeats of the key that caused it.
func (s *Stream) Reset() {
	s.state.reset()
}

// apply parses collected bytes and updates key timestamps.
func (s *Stream) apply(buf []byte, now time.Time) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			if btn, ok := arrowButton(buf[i+2]); ok {
				s.state.press(btn, now)
				i += 2
				continue
			}
		}

		if isQuitByte(b) {
			s.state.quit = true
			continue
		}
		if btn, ok := byteButton(b); ok {
			s.state.press(btn, now)
		}
	}
}

func arrowButton(code byte) (Button, bool) {
	switch code {
	case 'A':
		return ButtonUp, true
	case 'B':
		return ButtonDown, true
	case 'C':
		return ButtonRight, true
	case 'D':
		return ButtonLeft, true
	}
	return 0, false
}

func isQuitByte(b byte) bool {
	return b == 'q' || b == 'Q' || b == 0x03 // Ctrl-C
}

// byteButton maps a single key byte to its console button.
func byteButton(b byte) (Button, bool) {
	switch b {
	case 'a', 'A':
		return ButtonLeft, true
	case 'd', 'D':
		return ButtonRight, true
	case 'w', 'W':
		return ButtonUp, true
	case 's', 'S':
		return ButtonDown, true
	case 'j', 'J', ' ':
		return ButtonA, true
	case 'k', 'K':
		return ButtonB, true
	case 'l', 'L':
		return ButtonL, true
	case 'o', 'O':
		return ButtonR, true
	case '\n', '\r':
		return ButtonStart, true
	case '\t', '\b', '\x7f':
		return ButtonSelect, true
	}
	return 0, false
}
