// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringdeque

import (
	"errors"
	"fmt"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates the operation cannot proceed immediately.
//
// This is an alias for [iox.ErrWouldBlock]. [ErrFull] and [ErrEmpty] wrap it.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrFull is returned by PushBack when the deque held capacity elements at
// the moment of the check. No state was mutated; the caller still owns the
// value and may retry later.
var ErrFull = fmt.Errorf("ringdeque: deque is full: %w", iox.ErrWouldBlock)

// ErrEmpty is returned by PopFront when the deque held no elements at the
// moment of the check. No state was mutated.
var ErrEmpty = fmt.Errorf("ringdeque: deque is empty: %w", iox.ErrWouldBlock)

// ErrInvalidCapacity is returned by constructors for capacity < 1.
var ErrInvalidCapacity = errors.New("ringdeque: capacity must be >= 1")

// ErrStalled is returned by PopFront when the claimed slot was not written
// within the stall limit. It is distinct from ErrEmpty: something was
// pending but never became visible to this consumer. It is reported only
// when the producer has not started writing; a slot mid-write is awaited.
var ErrStalled = errors.New("ringdeque: producer stalled before publishing slot")

// IsWouldBlock reports whether err indicates the operation would block
// (ErrFull or ErrEmpty). Delegates to [iox.IsWouldBlock] for wrapped error
// support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
