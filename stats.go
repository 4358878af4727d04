// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringdeque

import (
	"code.hybscloud.com/atomix"
	"golang.org/x/sys/cpu"
)

// Stats is a snapshot of diagnostic counters.
//
// Counters are only touched on contended or failing paths, never on the
// uncontended fast path. They carry no ordering with respect to deque
// contents and must not drive control flow.
type Stats struct {
	PushRetries uint64 `json:"push_retries"` // Lost tail claims and re-claims after abandonment
	PopRetries  uint64 `json:"pop_retries"`  // Lost head claims
	Stalls      uint64 `json:"stalls"`       // PopFront calls that returned ErrStalled
}

type stats struct {
	_           cpu.CacheLinePad
	pushRetries atomix.Uint64
	popRetries  atomix.Uint64
	stalls      atomix.Uint64
	_           cpu.CacheLinePad
}

func (s *stats) snapshot() Stats {
	return Stats{
		PushRetries: s.pushRetries.LoadRelaxed(),
		PopRetries:  s.popRetries.LoadRelaxed(),
		Stalls:      s.stalls.LoadRelaxed(),
	}
}
