// Package input turns raw key sources into per-frame button snapshots.
package input

// Button is one bit of the console button set. A Button value with several
// bits set is a set of buttons.
type Button uint16

const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonRight
	ButtonLeft
	ButtonUp
	ButtonDown
	ButtonR
	ButtonL
)

// numButton is the number of defined button bits.
const numButton = 10

// AllButtons has every defined bit set. Bits outside it are ignored.
const AllButtons Button = 1<<numButton - 1

// Has reports whether every button in b is in the set.
func (s Button) Has(b Button) bool {
	return s&b == b && b != 0
}

// Snapshot is the input for one frame.
type Snapshot struct {
	Held    Button // Currently down
	Pressed Button // Went down this frame
}

// Down reports whether b is held this frame.
func (s Snapshot) Down(b Button) bool { return s.Held.Has(b) }

// Hit reports whether b was pressed this frame.
func (s Snapshot) Hit(b Button) bool { return s.Pressed.Has(b) }

// Tracker derives press edges from successive held sets.
type Tracker struct {
	prev Button
}

// Next returns the snapshot for a new held set: pressed = current AND NOT previous.
func (t *Tracker) Next(held Button) Snapshot {
	held &= AllButtons
	s := Snapshot{Held: held, Pressed: held &^ t.prev}
	t.prev = held
	return s
}

// Reset forgets the previous frame so every held button reads as newly pressed.
func (t *Tracker) Reset() {
	t.prev = 0
}

// Source delivers the held set once per frame. quit is true once the player
// asked to leave or the underlying stream ended.
type Source interface {
	Poll() (held Button, quit bool)
}
