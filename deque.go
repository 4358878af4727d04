// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringdeque

import "code.hybscloud.com/spin"

// Deque is a fixed-capacity lock-free ring buffer with multi-producer
// PushBack and multi-consumer PopFront.
//
// A Deque must not be copied after first use; share it by pointer.
//
// Memory: capacity slots (one cache line each for small T)
type Deque[T any] struct {
	cursors
	slots      slots[T]
	stallLimit int
	stats      stats
}

// New creates a deque holding at most capacity elements.
// Returns ErrInvalidCapacity if capacity < 1.
func New[T any](capacity int) (*Deque[T], error) {
	return Build[T](NewBuilder(capacity))
}

func newDeque[T any](opts Options) (*Deque[T], error) {
	if opts.capacity < 1 {
		return nil, ErrInvalidCapacity
	}
	n := uint64(opts.capacity)
	d := &Deque[T]{
		slots:      newSlots[T](n),
		stallLimit: opts.stallLimit,
	}
	d.capacity = n
	return d, nil
}

// PushBack appends value at the tail.
// Returns ErrFull if the deque is full; the deque is not modified.
func (d *Deque[T]) PushBack(value T) error {
	sw := spin.Wait{}
	for {
		index, res := d.claimTail()
		switch res {
		case claimFull:
			return ErrFull
		case claimOK:
			if d.slots.write(index, &value) {
				return nil
			}
			// Consumer of index abandoned it; value is still ours.
		}
		d.stats.pushRetries.AddAcqRel(1)
		sw.Once()
	}
}

// PopFront removes and returns the element at the head.
// Returns (zero-value, ErrEmpty) if the deque is empty, or
// (zero-value, ErrStalled) if the claimed element's producer did not begin
// publishing within the stall limit.
func (d *Deque[T]) PopFront() (T, error) {
	sw := spin.Wait{}
	for {
		index, res := d.claimHead()
		switch res {
		case claimEmpty:
			var zero T
			return zero, ErrEmpty
		case claimOK:
			elem, ok := d.slots.read(index, d.stallLimit)
			if !ok {
				d.stats.stalls.AddAcqRel(1)
				return elem, ErrStalled
			}
			return elem, nil
		}
		d.stats.popRetries.AddAcqRel(1)
		sw.Once()
	}
}

// Len returns a snapshot of the number of elements.
// Under concurrent mutation the result may be stale on return.
func (d *Deque[T]) Len() int {
	return int(d.occupied())
}

// IsEmpty reports whether the deque held no elements at the moment of the
// check.
func (d *Deque[T]) IsEmpty() bool {
	return d.occupied() == 0
}

// IsFull reports whether the deque held capacity elements at the moment of
// the check.
func (d *Deque[T]) IsFull() bool {
	return d.occupied() == d.capacity
}

// Cap returns the deque capacity.
func (d *Deque[T]) Cap() int {
	return int(d.capacity)
}

// Stats returns a snapshot of the diagnostic counters.
func (d *Deque[T]) Stats() Stats {
	return d.stats.snapshot()
}
