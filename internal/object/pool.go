package object

import "iter"

// Pool is a fixed-capacity set of reusable slots. Each slot is independently
// active or free. Capacity is fixed at construction; nothing is allocated
// after that.
type Pool[T any] struct {
	slots  []T
	active []bool
	n      int
}

// NewPool creates a pool with the given number of slots, all free.
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{
		slots:  make([]T, capacity),
		active: make([]bool, capacity),
	}
}

// Acquire activates the first free slot, scanning from slot 0, and returns
// its index and a pointer to its zeroed value. When every slot is active it
// returns ok=false and leaves the pool untouched.
func (p *Pool[T]) Acquire() (int, *T, bool) {
	if p.n == len(p.slots) {
		return -1, nil, false
	}
	for i, on := range p.active {
		if on {
			continue
		}
		var zero T
		p.slots[i] = zero
		p.active[i] = true
		p.n++
		return i, &p.slots[i], true
	}
	return -1, nil, false
}

// Release frees slot i. Releasing a free or out-of-range slot is a no-op.
// The slot's value is kept until the next Acquire reuses it.
func (p *Pool[T]) Release(i int) {
	if i < 0 || i >= len(p.slots) || !p.active[i] {
		return
	}
	p.active[i] = false
	p.n--
}

// Active reports whether slot i is in use.
func (p *Pool[T]) Active(i int) bool {
	return i >= 0 && i < len(p.slots) && p.active[i]
}

// Get returns slot i regardless of its state, or nil when out of range.
func (p *Pool[T]) Get(i int) *T {
	if i < 0 || i >= len(p.slots) {
		return nil
	}
	return &p.slots[i]
}

// All yields active slots in slot order. A slot released during iteration is
// skipped if not yet reached; the sequence can be ranged over any number of times.
func (p *Pool[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range p.slots {
			if !p.active[i] {
				continue
			}
			if !yield(i, &p.slots[i]) {
				return
			}
		}
	}
}

// Len returns the number of active slots.
func (p *Pool[T]) Len() int {
	return p.n
}

// Cap returns the fixed slot count.
func (p *Pool[T]) Cap() int {
	return len(p.slots)
}

// Reset frees every slot and zeroes its value.
func (p *Pool[T]) Reset() {
	clear(p.slots)
	clear(p.active)
	p.n = 0
}
