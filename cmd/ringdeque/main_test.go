// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"testing"

	"code.hybscloud.com/ringdeque"
)

func TestRunDemo(t *testing.T) {
	if err := runDemo(); err != nil {
		t.Fatalf("runDemo: %v", err)
	}
}

func TestRunStress(t *testing.T) {
	if ringdeque.RaceEnabled {
		t.Skip("skip: lock-free algorithm uses cross-variable memory ordering")
	}
	d, err := ringdeque.New[int](8)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r := runStress(d, 3, 3, 2000)
	if !r.OK {
		t.Fatalf("runStress: got %+v, want OK", r)
	}
	if r.Popped != int64(r.Pushed) {
		t.Fatalf("Popped: got %d, want %d", r.Popped, r.Pushed)
	}
}
