// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringdeque

// Queue is the combined producer-consumer interface implemented by Deque.
//
// Example:
//
//	var q ringdeque.Queue[int]
//	q, _ = ringdeque.New[int](1024)
//
//	if err := q.PushBack(42); err != nil {
//	    // Handle full deque
//	}
//
//	elem, err := q.PopFront()
//	if err == nil {
//	    fmt.Println(elem)
//	}
type Queue[T any] interface {
	Producer[T]
	Consumer[T]
	Len() int
	Cap() int
}

// Producer is the interface for inserting elements at the back.
//
// Ownership of the value moves into the deque on success. On error the
// deque did not keep it.
type Producer[T any] interface {
	// PushBack appends value (non-blocking, lock-free).
	// Returns nil on success, ErrFull if the deque is full.
	// Safe for any number of concurrent producers.
	PushBack(value T) error
}

// Consumer is the interface for removing elements from the front.
//
// The slot is cleared on removal to allow garbage collection of referenced
// objects.
type Consumer[T any] interface {
	// PopFront removes and returns the head element (lock-free).
	// Returns (zero-value, ErrEmpty) if the deque is empty, or
	// (zero-value, ErrStalled) if the claimed slot was never published.
	// Safe for any number of concurrent consumers.
	PopFront() (T, error)
}

var _ Queue[int] = (*Deque[int])(nil)
