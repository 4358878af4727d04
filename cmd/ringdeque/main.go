// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command ringdeque exercises a ringdeque.Deque from the outside.
//
// With -demo it pushes a few values and drains them. Otherwise it runs a
// producer/consumer stress round, checks that every pushed value was popped
// exactly once, and prints a JSON report.
//
// Usage:
//
//	ringdeque -demo
//	ringdeque -capacity 64 -producers 4 -consumers 4 -items 100000
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/ringdeque"
	"github.com/sugawarayuuta/sonnet"
)

type report struct {
	Capacity  int             `json:"capacity"`
	Producers int             `json:"producers"`
	Consumers int             `json:"consumers"`
	Pushed    int             `json:"pushed"`
	Popped    int64           `json:"popped"`
	Missing   int             `json:"missing"`
	Duplicate int             `json:"duplicate"`
	Elapsed   string          `json:"elapsed"`
	Stats     ringdeque.Stats `json:"stats"`
	OK        bool            `json:"ok"`
}

func main() {
	demo := flag.Bool("demo", false, "Run the short push/pop demo and exit")
	capacity := flag.Int("capacity", 64, "Deque capacity")
	producers := flag.Int("producers", 4, "Number of producer goroutines")
	consumers := flag.Int("consumers", 4, "Number of consumer goroutines")
	items := flag.Int("items", 100000, "Values pushed by each producer")
	stallLimit := flag.Int("stall", 0, "Readiness spins before a consumer reports a stalled producer (0 = default)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if *demo {
		if err := runDemo(); err != nil {
			log.Fatal("demo failed:", err)
		}
		return
	}

	if *producers < 1 || *consumers < 1 || *items < 1 {
		log.Fatal("producers, consumers and items must be >= 1")
	}

	d, err := ringdeque.Build[int](ringdeque.NewBuilder(*capacity).StallLimit(*stallLimit))
	if err != nil {
		log.Fatalf("failed to create deque with capacity %d: %v", *capacity, err)
	}

	r := runStress(d, *producers, *consumers, *items)
	out, err := sonnet.Marshal(r)
	if err != nil {
		log.Fatal("failed to encode report:", err)
	}
	fmt.Println(string(out))
	if !r.OK {
		os.Exit(1)
	}
}

func runDemo() error {
	d, err := ringdeque.New[int](5)
	if err != nil {
		return err
	}

	fmt.Println("Pushing values: 1, 2, 3")
	for _, v := range []int{1, 2, 3} {
		if err := d.PushBack(v); err != nil {
			return err
		}
	}
	fmt.Println("Current length:", d.Len())

	fmt.Println("Popping values:")
	for {
		v, err := d.PopFront()
		if errors.Is(err, ringdeque.ErrEmpty) {
			break
		}
		if err != nil {
			return err
		}
		fmt.Println("  Popped:", v)
	}
	fmt.Println("Deque is empty:", d.IsEmpty())
	return nil
}

// runStress pushes producers*items distinct values and pops them from
// consumers goroutines. Each value v is counted in seen[v].
func runStress(d *ringdeque.Deque[int], producers, consumers, items int) report {
	total := producers * items
	seen := make([]atomix.Int32, total)
	var popped atomix.Int64

	start := time.Now()
	var wg sync.WaitGroup
	for p := range producers {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			backoff := iox.Backoff{}
			for i := range items {
				for d.PushBack(id*items+i) != nil {
					backoff.Wait()
				}
				backoff.Reset()
			}
		}(p)
	}

	for range consumers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			backoff := iox.Backoff{}
			for popped.Load() < int64(total) {
				v, err := d.PopFront()
				if err != nil {
					if errors.Is(err, ringdeque.ErrStalled) {
						log.Println("consumer abandoned a stalled slot")
					}
					backoff.Wait()
					continue
				}
				backoff.Reset()
				seen[v].Add(1)
				popped.Add(1)
			}
		}()
	}
	wg.Wait()
	elapsed := time.Since(start)

	r := report{
		Capacity:  d.Cap(),
		Producers: producers,
		Consumers: consumers,
		Pushed:    total,
		Popped:    popped.Load(),
		Elapsed:   elapsed.String(),
		Stats:     d.Stats(),
	}
	for i := range seen {
		switch n := seen[i].Load(); {
		case n == 0:
			r.Missing++
		case n > 1:
			r.Duplicate++
		}
	}
	r.OK = r.Missing == 0 && r.Duplicate == 0 && d.IsEmpty()
	return r
}
