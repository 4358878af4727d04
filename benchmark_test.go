// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package ringdeque_test

import (
	"fmt"
	"runtime"
	"sync"
	"testing"

	"code.hybscloud.com/ringdeque"
	"code.hybscloud.com/spin"
)

// =============================================================================
// Single Goroutine Baselines
// =============================================================================

func BenchmarkDeque_SingleOp(b *testing.B) {
	d, _ := ringdeque.New[int](1024)

	b.ResetTimer()
	for i := range b.N {
		d.PushBack(i)
		d.PopFront()
	}
}

func BenchmarkDeque_NonPow2SingleOp(b *testing.B) {
	d, _ := ringdeque.New[int](1000)

	b.ResetTimer()
	for i := range b.N {
		d.PushBack(i)
		d.PopFront()
	}
}

func BenchmarkDeque_Len(b *testing.B) {
	d, _ := ringdeque.New[int](1024)
	d.PushBack(1)

	b.ResetTimer()
	for range b.N {
		_ = d.Len()
	}
}

// =============================================================================
// Contended Benchmarks
// =============================================================================

func BenchmarkDeque_Parallel(b *testing.B) {
	for _, capacity := range []int{16, 1024} {
		b.Run(fmt.Sprintf("cap=%d", capacity), func(b *testing.B) {
			benchmarkParallel(b, capacity)
		})
	}
}

func benchmarkParallel(b *testing.B, capacity int) {
	d, _ := ringdeque.New[int](capacity)
	numProducers := max(runtime.GOMAXPROCS(0)/2, 1)
	numConsumers := max(runtime.GOMAXPROCS(0)/2, 1)
	opsPerProducer := max(b.N/numProducers, 1)

	b.ResetTimer()

	var producerWg sync.WaitGroup
	var consumerWg sync.WaitGroup

	done := make(chan struct{})
	for range numConsumers {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			sw := spin.Wait{}
			for {
				select {
				case <-done:
					for {
						if _, err := d.PopFront(); ringdeque.IsWouldBlock(err) {
							return
						}
					}
				default:
					if _, err := d.PopFront(); err == nil {
						sw.Reset()
					} else {
						sw.Once()
					}
				}
			}
		}()
	}

	for p := range numProducers {
		producerWg.Add(1)
		go func(id int) {
			defer producerWg.Done()
			sw := spin.Wait{}
			base := id * opsPerProducer
			for i := range opsPerProducer {
				for d.PushBack(base+i) != nil {
					sw.Once()
				}
				sw.Reset()
			}
		}(p)
	}

	producerWg.Wait()
	close(done)
	consumerWg.Wait()

	st := d.Stats()
	b.ReportMetric(float64(st.PushRetries)/float64(b.N), "push-retries/op")
	b.ReportMetric(float64(st.PopRetries)/float64(b.N), "pop-retries/op")
}
