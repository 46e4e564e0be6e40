package store

import (
	"context"
	"time"
)

const (
	tickInterval   = 100 * time.Millisecond
	sampleSize     = 20
	evictThreshold = 5
)

// sampleDeadlineKeysLocked collects up to n keys from the deadlines map,
// relying on Go's randomized map iteration order exactly the way the
// teacher's sampleKeysRandom (mem.go) relies on it for eviction
// candidates — here repurposed from choosing eviction candidates under
// a memory limit to choosing keys to check for TTL expiry. Caller must
// hold at least a read lock.
func (s *Store) sampleDeadlineKeysLocked(n int) []string {
	out := make([]string, 0, n)
	for k := range s.deadlines {
		out = append(out, k)
		if len(out) >= n {
			break
		}
	}
	return out
}

// expireTick samples up to sampleSize keys from the deadline map and
// evicts every sampled key past its deadline, repeating within the same
// tick as long as at least evictThreshold were evicted on the previous
// pass. This is the exact collector rule: "if fewer than 5 of the 20
// sampled were evicted, stop for this tick; otherwise repeat."
func (s *Store) expireTick() {
	for {
		s.mu.Lock()
		if len(s.deadlines) == 0 {
			s.mu.Unlock()
			return
		}
		now := s.clock.Now()
		sampled := s.sampleDeadlineKeysLocked(sampleSize)
		evicted := 0
		for _, k := range sampled {
			if s.isExpiredLocked(k, now) {
				s.evictLocked(k)
				evicted++
			}
		}
		s.mu.Unlock()

		if evicted < evictThreshold {
			return
		}
	}
}

// RunExpirationCollector blocks, running one expireTick every
// tickInterval, until ctx is cancelled. Intended to be launched in its
// own goroutine by the server's startup path.
func (s *Store) RunExpirationCollector(ctx context.Context) {
	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.expireTick()
		}
	}
}
