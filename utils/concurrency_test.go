package utils

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestURLSetNoDuplicates(t *testing.T) {
	s := NewURLSet()

	if !s.Add("https://www.olx.ua/d/uk/obyavlenie/1") {
		t.Error("first Add should return true")
	}
	if s.Add("https://www.olx.ua/d/uk/obyavlenie/1") {
		t.Error("second Add of same URL should return false")
	}
	if s.Size() != 1 {
		t.Errorf("size: got %d, want 1", s.Size())
	}
}

func TestURLSetConcurrency(t *testing.T) {
	s := NewURLSet()
	var added int64

	pool := NewWorkerPool(10, 0)
	for i := 0; i < 100; i++ {
		url := "https://www.olx.ua/d/uk/obyavlenie/same"
		pool.Submit(func() {
			if s.Add(url) {
				atomic.AddInt64(&added, 1)
			}
		})
	}
	pool.Wait()

	if added != 1 {
		t.Errorf("expected exactly 1 successful add, got %d", added)
	}
}

func TestWorkerPoolEnforcesDelay(t *testing.T) {
	minDelay := 100 * time.Millisecond
	pool := NewWorkerPool(1, minDelay)

	var timestamps []time.Time
	gate := make(chan struct{}, 1)
	gate <- struct{}{}

	for i := 0; i < 3; i++ {
		pool.Submit(func() {
			<-gate
			timestamps = append(timestamps, time.Now())
			gate <- struct{}{}
		})
	}
	pool.Wait()

	for i := 1; i < len(timestamps); i++ {
		if gap := timestamps[i].Sub(timestamps[i-1]); gap < minDelay {
			t.Errorf("gap between job %d and %d: %v < minimum %v", i-1, i, gap, minDelay)
		}
	}
}

func TestWorkerPoolCeilingOfOneSerializes(t *testing.T) {
	pool := NewWorkerPool(1, 0)

	var inFlight, maxInFlight int64
	for i := 0; i < 20; i++ {
		pool.Submit(func() {
			cur := atomic.AddInt64(&inFlight, 1)
			for {
				prev := atomic.LoadInt64(&maxInFlight)
				if cur <= prev || atomic.CompareAndSwapInt64(&maxInFlight, prev, cur) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			atomic.AddInt64(&inFlight, -1)
		})
	}
	pool.Wait()

	if maxInFlight != 1 {
		t.Errorf("expected at most 1 in-flight job, saw %d", maxInFlight)
	}
}
