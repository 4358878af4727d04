// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringdeque

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Slot phases, stored in the low bits of the sequence word.
const (
	phaseFree    = 0 // Empty, owned by the producer of this lap
	phaseWriting = 1 // Producer is copying the value in
	phaseReady   = 2 // Value published, owned by the consumer of this lap

	phaseBits = 2
)

// seqOf encodes a logical index and phase into a slot sequence word.
// Indices wrap after 2^62 operations on one deque. Encoded words of one
// slot are strictly increasing over its lifetime:
// free(i) < writing(i) < ready(i) < free(i+capacity).
func seqOf(index uint64, phase uint64) uint64 {
	return index<<phaseBits | phase
}

// slot is one storage cell. data is a plain field: it is written only while
// seq is writing(i) by the producer that won index i, and read only after an
// acquire load of ready(i) by the consumer that won index i.
type slot[T any] struct {
	seq  atomix.Uint64
	data T
	_    padShort
}

// slots is the fixed ring of storage cells.
type slots[T any] struct {
	cells    []slot[T]
	capacity uint64
}

func newSlots[T any](capacity uint64) slots[T] {
	s := slots[T]{
		cells:    make([]slot[T], capacity),
		capacity: capacity,
	}
	for i := uint64(0); i < capacity; i++ {
		s.cells[i].seq.StoreRelaxed(seqOf(i, phaseFree))
	}
	return s
}

func (s *slots[T]) at(index uint64) *slot[T] {
	return &s.cells[index%s.capacity]
}

// write publishes value at logical index, which the caller won via
// claimTail.
//
// It first waits for the consumer of the previous lap to release the slot.
// Returns false if the consumer of index gave up on it (see read); the
// caller then owns value again and must claim a fresh index.
func (s *slots[T]) write(index uint64, value *T) bool {
	cell := s.at(index)
	free := seqOf(index, phaseFree)
	sw := spin.Wait{}
	for {
		seq := cell.seq.LoadAcquire()
		switch {
		case seq == free:
			if cell.seq.CompareAndSwapAcqRel(free, seqOf(index, phaseWriting)) {
				cell.data = *value
				cell.seq.StoreRelease(seqOf(index, phaseReady))
				return true
			}
			// Lost to the consumer abandoning this index.
		case seq > free:
			return false
		}
		sw.Once()
	}
}

// read takes the value at logical index, which the caller won via
// claimHead.
//
// It spins until the producer of index publishes. Once limit spins pass,
// each further iteration tries to abandon the index, which is possible only
// while the producer has not started writing. An abandoned index is skipped
// by moving the slot straight to the next lap; its producer observes this in
// write and re-claims. Reports false on abandonment.
func (s *slots[T]) read(index uint64, limit int) (T, bool) {
	cell := s.at(index)
	free := seqOf(index, phaseFree)
	ready := seqOf(index, phaseReady)
	next := seqOf(index+s.capacity, phaseFree)
	sw := spin.Wait{}
	for spins := 0; ; spins++ {
		seq := cell.seq.LoadAcquire()
		if seq == ready {
			elem := cell.data
			var zero T
			cell.data = zero
			cell.seq.StoreRelease(next)
			return elem, true
		}
		if spins >= limit && seq == free {
			if cell.seq.CompareAndSwapAcqRel(free, next) {
				var zero T
				return zero, false
			}
			continue
		}
		sw.Once()
	}
}
