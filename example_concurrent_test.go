// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// This file contains examples that use atomix concurrency primitives.
// These trigger false positives with Go's race detector because atomix
// atomic operations appear as regular memory accesses to the detector.

package ringdeque_test

import (
	"fmt"
	"slices"
	"sync"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringdeque"
)

// ExampleDeque_PopFront demonstrates several producers and consumers
// sharing one deque.
func ExampleDeque_PopFront() {
	d, _ := ringdeque.New[int](4)

	const producers, perProducer = 3, 4
	var prodWg sync.WaitGroup
	for p := range producers {
		prodWg.Add(1)
		go func(id int) {
			defer prodWg.Done()
			backoff := iox.Backoff{}
			for i := range perProducer {
				for d.PushBack(id*10+i) != nil {
					backoff.Wait()
				}
				backoff.Reset()
			}
		}(p)
	}

	results := make(chan int, producers*perProducer)
	var consWg sync.WaitGroup
	var consumed atomix.Int64
	for range 2 {
		consWg.Add(1)
		go func() {
			defer consWg.Done()
			backoff := iox.Backoff{}
			for consumed.Load() < producers*perProducer {
				v, err := d.PopFront()
				if err != nil {
					backoff.Wait()
					continue
				}
				backoff.Reset()
				consumed.Add(1)
				results <- v
			}
		}()
	}

	prodWg.Wait()
	consWg.Wait()
	close(results)

	var got []int
	for v := range results {
		got = append(got, v)
	}
	slices.Sort(got)
	fmt.Println(got)

	// Output:
	// [0 1 2 3 10 11 12 13 20 21 22 23]
}
