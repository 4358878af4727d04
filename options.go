// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringdeque

// DefaultStallLimit is the number of readiness spins PopFront performs on a
// claimed slot before it may abandon the slot and return ErrStalled.
const DefaultStallLimit = 1 << 20

// Options configures deque creation.
type Options struct {
	capacity   int // Exact, not rounded
	stallLimit int // Readiness spins before abandonment
}

// Builder creates deques with fluent configuration.
//
// Example:
//
//	// Defaults
//	d, err := ringdeque.Build[Request](ringdeque.NewBuilder(4096))
//
//	// Give up on stalled producers sooner
//	d, err := ringdeque.Build[Request](ringdeque.NewBuilder(4096).StallLimit(1 << 12))
type Builder struct {
	opts Options
}

// NewBuilder creates a deque builder with the given capacity.
//
// Capacity is validated by Build, not here, so that construction errors
// surface in one place.
func NewBuilder(capacity int) *Builder {
	return &Builder{opts: Options{capacity: capacity, stallLimit: DefaultStallLimit}}
}

// StallLimit sets how many readiness spins a consumer performs before it
// treats the producer of its claimed slot as stalled.
// Values <= 0 restore DefaultStallLimit.
func (b *Builder) StallLimit(spins int) *Builder {
	if spins <= 0 {
		spins = DefaultStallLimit
	}
	b.opts.stallLimit = spins
	return b
}

// Build creates a Deque[T] from the builder configuration.
// Returns ErrInvalidCapacity if capacity < 1.
func Build[T any](b *Builder) (*Deque[T], error) {
	return newDeque[T](b.opts)
}

// padShort fills the cache line after an 8-byte field.
type padShort [64 - 8]byte
