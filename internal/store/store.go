package store

import "sync"

// Store is the process-wide keyspace singleton: a map of live values and
// a parallel map of deadlines, both guarded by one RWMutex so that every
// operation appears atomic to external observers — grounded on the
// teacher's internal/database.Database.Mu, generalized from per-database
// sharding down to the single shared keyspace this spec describes.
type Store struct {
	mu        sync.RWMutex
	values    map[string]Value
	deadlines map[string]float64
	clock     Clock
}

// New returns an empty Store using the real system clock.
func New() *Store {
	return NewWithClock(SystemClock{})
}

// NewWithClock returns an empty Store using the given clock, letting
// tests inject a FakeClock.
func NewWithClock(c Clock) *Store {
	return &Store{
		values:    make(map[string]Value),
		deadlines: make(map[string]float64),
		clock:     c,
	}
}

// isExpiredLocked reports whether key has a deadline strictly at or
// before now. Caller must hold mu (read or write).
func (s *Store) isExpiredLocked(key string, now float64) bool {
	dl, ok := s.deadlines[key]
	return ok && dl <= now
}

// evictLocked removes key from both maps. Caller must hold the write lock.
func (s *Store) evictLocked(key string) {
	delete(s.values, key)
	delete(s.deadlines, key)
}

// Get returns the value for key, lazily evicting it first if its
// deadline has passed. Returns ErrKeyError if the key is absent or was
// just evicted.
func (s *Store) Get(key string) (Value, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.isExpiredLocked(key, now) {
		s.evictLocked(key)
		return Value{}, ErrKeyError
	}
	v, ok := s.values[key]
	if !ok {
		return Value{}, ErrKeyError
	}
	return v.Clone(), nil
}

// SetOpts controls the optional behavior of Set.
type SetOpts struct {
	Deadline       float64
	HasDeadline    bool
	KeepDeadline   bool
	ReturnPrevious bool
}

// Set writes value under key. If KeepDeadline is true any existing
// deadline is left untouched (a supplied Deadline is ignored); otherwise
// a supplied Deadline replaces any existing one, and the absence of one
// clears it. If ReturnPrevious is true the prior value (before this
// write) is returned as (value, true); otherwise the second return is
// false.
func (s *Store) Set(key string, value Value, opts SetOpts) (Value, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var prev Value
	hadPrev := false
	if s.isExpiredLocked(key, now) {
		s.evictLocked(key)
	} else if old, ok := s.values[key]; ok {
		prev = old.Clone()
		hadPrev = true
	}

	s.values[key] = value
	if !opts.KeepDeadline {
		if opts.HasDeadline {
			s.deadlines[key] = opts.Deadline
		} else {
			delete(s.deadlines, key)
		}
	}

	if opts.ReturnPrevious {
		return prev, hadPrev
	}
	return Value{}, false
}

// Delete removes each key present in values from both maps, returning
// the count of keys that were live (not already expired) at the time of
// the call.
func (s *Store) Delete(keys []string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	count := 0
	for _, k := range keys {
		if _, ok := s.values[k]; !ok {
			continue
		}
		if !s.isExpiredLocked(k, now) {
			count++
		}
		s.evictLocked(k)
	}
	return count
}

// Keys returns every live key whose name matches via matchFn, evicting
// any keys discovered to be expired during the sweep. Order is
// unspecified.
func (s *Store) Keys(matchFn func(key string) bool) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	var expired []string
	var out []string
	for k := range s.values {
		if s.isExpiredLocked(k, now) {
			expired = append(expired, k)
			continue
		}
		if matchFn(k) {
			out = append(out, k)
		}
	}
	for _, k := range expired {
		s.evictLocked(k)
	}
	return out
}

// GetValAndDeadline is Get plus the key's deadline, if any.
func (s *Store) GetValAndDeadline(key string) (Value, float64, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.isExpiredLocked(key, now) {
		s.evictLocked(key)
		return Value{}, 0, false, ErrKeyError
	}
	v, ok := s.values[key]
	if !ok {
		return Value{}, 0, false, ErrKeyError
	}
	dl, hasDl := s.deadlines[key]
	return v.Clone(), dl, hasDl, nil
}

// SetDeadline sets or clears key's deadline. hasDeadline false clears
// any existing deadline. Returns ErrKeyError if the key is absent.
func (s *Store) SetDeadline(key string, deadline float64, hasDeadline bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.isExpiredLocked(key, now) {
		s.evictLocked(key)
		return ErrKeyError
	}
	if _, ok := s.values[key]; !ok {
		return ErrKeyError
	}
	if hasDeadline {
		s.deadlines[key] = deadline
	} else {
		delete(s.deadlines, key)
	}
	return nil
}

// Exists reports whether key is present and unexpired, without
// triggering eviction side effects beyond the usual lazy check.
func (s *Store) Exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	if s.isExpiredLocked(key, now) {
		s.evictLocked(key)
		return false
	}
	_, ok := s.values[key]
	return ok
}
