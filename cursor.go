// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringdeque

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// claimResult is the outcome of a single cursor claim attempt.
type claimResult uint8

const (
	claimOK    claimResult = iota // Caller owns the returned logical index
	claimLost                     // CAS lost or snapshot torn, re-read and retry
	claimFull                     // tail-head == capacity at a consistent snapshot
	claimEmpty                    // head == tail at a consistent snapshot
)

func (r claimResult) String() string {
	switch r {
	case claimOK:
		return "ok"
	case claimLost:
		return "lost"
	case claimFull:
		return "full"
	case claimEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// cursors holds the head and tail logical indices.
//
// Both only ever grow. They are advanced exclusively by CAS, which gives a
// total order over claims on each cursor. Producers and consumers hammer
// different cursors, so each lives on its own cache line.
type cursors struct {
	_        cpu.CacheLinePad
	tail     atomix.Uint64 // Next logical index to push
	_        cpu.CacheLinePad
	head     atomix.Uint64 // Next logical index to pop
	_        cpu.CacheLinePad
	capacity uint64
}

// claimTail tries to reserve the logical index at tail for a push.
//
// The head/tail pair is read as tail, head, and on the full path tail
// again: if tail did not move across the head load, the pair was a
// consistent snapshot and the full verdict holds at that instant.
func (c *cursors) claimTail() (uint64, claimResult) {
	tail := c.tail.LoadAcquire()
	head := c.head.LoadAcquire()
	if head > tail {
		// Tail moved and consumers caught up after our tail load.
		return 0, claimLost
	}
	if tail-head >= c.capacity {
		if c.tail.LoadAcquire() != tail {
			return 0, claimLost
		}
		return 0, claimFull
	}
	if !c.tail.CompareAndSwapAcqRel(tail, tail+1) {
		return 0, claimLost
	}
	return tail, claimOK
}

// claimHead tries to reserve the logical index at head for a pop.
//
// head is loaded before tail, and tail >= head always holds for the live
// values, so the loaded tail can never be behind the loaded head.
func (c *cursors) claimHead() (uint64, claimResult) {
	head := c.head.LoadAcquire()
	tail := c.tail.LoadAcquire()
	if head == tail {
		if c.head.LoadAcquire() != head {
			return 0, claimLost
		}
		return 0, claimEmpty
	}
	if !c.head.CompareAndSwapAcqRel(head, head+1) {
		return 0, claimLost
	}
	return head, claimOK
}

// occupied returns a best-effort tail-head, clamped to [0, capacity].
func (c *cursors) occupied() uint64 {
	head := c.head.LoadAcquire()
	tail := c.tail.LoadAcquire()
	if tail <= head {
		return 0
	}
	if n := tail - head; n < c.capacity {
		return n
	}
	return c.capacity
}
