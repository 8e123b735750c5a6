package utils

import (
	"sync"
	"time"
)

// WorkerPool bounds the number of in-flight jobs and enforces a minimum
// delay between job starts. With maxWorkers=1 it degenerates into a strict
// one-request-at-a-time queue with a fixed inter-request gap, which is the
// throttling posture this crawler runs with.
type WorkerPool struct {
	maxWorkers int
	minDelay   time.Duration
	semaphore  chan struct{}
	wg         sync.WaitGroup

	mu        sync.Mutex
	lastStart time.Time
}

// NewWorkerPool creates a WorkerPool with the given ceiling and inter-job delay.
func NewWorkerPool(maxWorkers int, minDelay time.Duration) *WorkerPool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &WorkerPool{
		maxWorkers: maxWorkers,
		minDelay:   minDelay,
		semaphore:  make(chan struct{}, maxWorkers),
	}
}

// Submit enqueues a job. It blocks while the pool is at its ceiling, so the
// caller's loop is itself throttled.
func (wp *WorkerPool) Submit(job func()) {
	wp.wg.Add(1)
	wp.semaphore <- struct{}{}

	go func() {
		defer wp.wg.Done()
		defer func() { <-wp.semaphore }()

		wp.throttle()
		job()
	}()
}

// Wait blocks until all submitted jobs have completed.
func (wp *WorkerPool) Wait() {
	wp.wg.Wait()
}

func (wp *WorkerPool) throttle() {
	wp.mu.Lock()
	defer wp.mu.Unlock()

	if !wp.lastStart.IsZero() {
		if elapsed := time.Since(wp.lastStart); elapsed < wp.minDelay {
			time.Sleep(wp.minDelay - elapsed)
		}
	}
	wp.lastStart = time.Now()
}

// URLSet is a thread-safe set for deduplicating candidate URLs across pages.
type URLSet struct {
	mu   sync.RWMutex
	seen map[string]struct{}
}

// NewURLSet creates an empty URLSet.
func NewURLSet() *URLSet {
	return &URLSet{seen: make(map[string]struct{})}
}

// Add returns true if the URL was newly added, false if already present.
func (s *URLSet) Add(url string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.seen[url]; exists {
		return false
	}
	s.seen[url] = struct{}{}
	return true
}

// Contains returns true if the URL has already been seen.
func (s *URLSet) Contains(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.seen[url]
	return exists
}

// Size returns the number of unique URLs tracked.
func (s *URLSet) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seen)
}
