// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package ringdeque provides a fixed-capacity, lock-free ring-buffer deque
// shared by any number of producer and consumer goroutines.
//
// Producers insert at the back with [Deque.PushBack]; consumers remove from
// the front with [Deque.PopFront]. Neither operation ever acquires a lock:
// all coordination happens through compare-and-swap on two cursors and an
// acquire/release handshake on each slot.
//
// # Quick Start
//
//	d, err := ringdeque.New[Event](1024)
//	if err != nil {
//	    return err // ErrInvalidCapacity
//	}
//
//	if err := d.PushBack(ev); ringdeque.IsWouldBlock(err) {
//	    // Deque is full - handle backpressure
//	}
//
//	ev, err := d.PopFront()
//	if ringdeque.IsWouldBlock(err) {
//	    // Deque is empty - try again later
//	}
//
// Builder API for tuning:
//
//	d, err := ringdeque.Build[Event](ringdeque.NewBuilder(1024).StallLimit(1 << 16))
//
// # Algorithm
//
// Every operation is split into a claim and a publish step.
//
// Claim: the head and tail cursors are unbounded logical indices. A producer
// reads both, rejects the push if tail-head equals the capacity, and
// otherwise advances tail by CAS. The winner owns logical index tail; a
// loser re-reads both cursors and tries again. Consumers do the same on head,
// rejecting the pop when head equals tail.
//
// Publish: the physical slot is index mod capacity. Each slot carries a
// sequence word naming the logical index it currently serves and a phase
// (free, writing, ready). The producer waits for its lap to become free,
// writes the value, then release-stores ready. The consumer acquire-loads
// until it observes ready, takes the value, and release-stores free for the
// next lap. Claiming a cursor and publishing a slot are two distinct atomic
// events, so a consumer may win the head race before the matching producer
// has finished writing; the slot handshake closes that window.
//
// # Capacity and Length
//
// Capacity is exact; it is not rounded to a power of 2. Any capacity >= 1
// is valid:
//
//	d, _ := ringdeque.New[int](3)   // Cap() == 3
//	_, err := ringdeque.New[int](0) // err == ErrInvalidCapacity
//
// [Deque.Len], [Deque.IsEmpty] and [Deque.IsFull] are snapshots. Under
// concurrent mutation they may be stale by the time the caller acts on them.
//
// # Error Handling
//
// [ErrFull] and [ErrEmpty] wrap [iox.ErrWouldBlock]: they are control flow
// signals, not failures, and satisfy [IsWouldBlock]:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := d.PushBack(item)
//	    if err == nil {
//	        break
//	    }
//	    if !ringdeque.IsWouldBlock(err) {
//	        return err
//	    }
//	    backoff.Wait()
//	}
//
// [ErrStalled] is returned by PopFront when the consumer claimed an index
// whose producer did not begin writing within the stall limit. The consumer
// abandons that index; the stalled producer notices on resume and re-inserts
// its value under a fresh claim, so nothing is lost or duplicated.
//
// Lost CAS races are never reported. They are retried internally and only
// show up in [Deque.Stats].
//
// # Race Detection
//
// Slot values are plain fields protected by acquire/release ordering on the
// slot sequence word. Go's race detector cannot observe that edge and
// reports false positives. Concurrent tests skip when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for atomics with explicit
// memory ordering, [code.hybscloud.com/spin] for CPU pause in retry loops,
// [code.hybscloud.com/iox] for semantic errors, and [golang.org/x/sys/cpu]
// for cache line padding.
package ringdeque
