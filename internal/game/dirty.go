package game

import (
	"errors"

	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/draw"
	"github.com/tomz197/rockfall/internal/object"
	"github.com/tomz197/rockfall/internal/physics"
)

var (
	ErrDoubleFlush     = errors.New("dirty: flushed twice in one frame")
	ErrQueueAfterFlush = errors.New("dirty: queue after flush")
)

// DirtyTracker collects rectangles to erase during update and clears them
// during render. Past the per-frame ceiling it gives up on the frame and
// owes a full redraw to the next one.
type DirtyTracker struct {
	rects    [config.DirtyCapacity]physics.Rect
	n        int
	dropping bool // ceiling exceeded; ignore queues until the next frame
	flushed  bool
	owed     bool // full redraw owed to the next frame
	due      bool // full redraw due in this frame
}

// BeginFrame starts a new update/render cycle.
func (d *DirtyTracker) BeginFrame() {
	d.flushed = false
	d.dropping = false
	if d.owed {
		d.due = true
		d.owed = false
	}
}

// Queue adds r for erasing. Empty rectangles are ignored.
func (d *DirtyTracker) Queue(r physics.Rect) error {
	if d.flushed {
		return ErrQueueAfterFlush
	}
	if r.Empty() || d.dropping {
		return nil
	}
	if d.n >= config.DirtyFrameCeiling || d.n == len(d.rects) {
		d.n = 0
		d.dropping = true
		d.owed = true
		return nil
	}
	d.rects[d.n] = r
	d.n++
	return nil
}

// Len returns the number of queued rectangles.
func (d *DirtyTracker) Len() int { return d.n }

// Flush fills every queued rectangle, clipped to the playfield, with c and
// empties the queue. It returns how many rectangles were drawn.
func (d *DirtyTracker) Flush(s draw.Surface, c draw.Color) (int, error) {
	if d.flushed {
		return 0, ErrDoubleFlush
	}
	d.flushed = true
	n := d.n
	for _, r := range d.rects[:n] {
		r = physics.Clip(r, object.Playfield)
		if !r.Empty() {
			s.FillRect(r.X, r.Y, r.W, r.H, c)
		}
	}
	d.n = 0
	return n, nil
}

// FullRedrawOwed reports whether a full redraw is pending.
func (d *DirtyTracker) FullRedrawOwed() bool { return d.owed || d.due }

// RequestFullRedraw makes the current frame a full redraw.
func (d *DirtyTracker) RequestFullRedraw() { d.due = true }

// TakeFullRedraw reports whether the current frame must be fully redrawn and
// clears that request. A redraw owed by this frame's overflow stays pending.
func (d *DirtyTracker) TakeFullRedraw() bool {
	due := d.due
	d.due = false
	return due
}

// Reset drops everything, including pending redraws.
func (d *DirtyTracker) Reset() {
	*d = DirtyTracker{}
}
