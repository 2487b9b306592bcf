// Copyright 2024 The Cockroach Authors.
//
// Use of this software is governed by the CockroachDB Software License
// included in the /LICENSE file.

package syncutil

// Set is a simple mutex-protected set of values of type V. All operations
// acquire the set's internal mutex for the duration of a single O(1) map
// access, so a Set is safe for concurrent use by multiple goroutines. The
// zero value is an empty set ready for use.
type Set[V comparable] struct {
	mu Mutex
	m  map[V]struct{}
}

// Add adds v to the set. It returns true if the value was not already
// present, i.e. adding an existing value is a no-op that returns false.
func (s *Set[V]) Add(v V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.m == nil {
		s.m = make(map[V]struct{})
	}
	if _, ok := s.m[v]; ok {
		return false
	}
	s.m[v] = struct{}{}
	return true
}

// Remove removes v from the set. It returns true if the value was present.
func (s *Set[V]) Remove(v V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[v]; !ok {
		return false
	}
	delete(s.m, v)
	return true
}

// Contains returns true if v is in the set.
func (s *Set[V]) Contains(v V) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.m[v]
	return ok
}

// Len returns the number of values in the set.
func (s *Set[V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.m)
}

// Range calls f for each value in the set (in unspecified order) until f
// returns false. The set's mutex is held for the duration of the iteration,
// so f must not call back into the set.
func (s *Set[V]) Range(f func(v V) bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for v := range s.m {
		if !f(v) {
			return
		}
	}
}
