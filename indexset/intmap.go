package indexset

import "errors"

// ErrMergeCycle is returned by ResolveMerge when chasing a vertex-merge
// chain revisits an index, which would otherwise loop forever. The
// intersector is required to only add forward-pointing entries (target
// strictly less than source, spec.md §4.3); a cycle here means that
// invariant was violated upstream and is a fatal fault (spec.md §7).
var ErrMergeCycle = errors.New("indexset: vertex-merge map contains a cycle")

// IntIntMap is a key→value lookup with update, used as the vertex-merge map
// (source index → canonical target index, spec.md §4.3). Iteration order is
// insertion order for reproducibility.
type IntIntMap struct {
	order []int
	vals  map[int]int
}

// NewIntIntMap returns an empty map.
func NewIntIntMap(capacity int) *IntIntMap {
	return &IntIntMap{
		order: make([]int, 0, capacity),
		vals:  make(map[int]int, capacity),
	}
}

// Set records key→value, overwriting any previous value for key.
func (m *IntIntMap) Set(key, value int) {
	if _, ok := m.vals[key]; !ok {
		m.order = append(m.order, key)
	}
	m.vals[key] = value
}

// Get returns the value for key and whether it was present.
func (m *IntIntMap) Get(key int) (int, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Len returns the number of keys.
func (m *IntIntMap) Len() int {
	return len(m.order)
}

// Keys returns keys in insertion order.
func (m *IntIntMap) Keys() []int {
	return m.order
}

// ResolveMerge chases map entries from v until a fixed point (a value with
// no further entry), per spec.md §4.3's resolve_merge. It terminates in at
// most Len()+1 steps for an acyclic map (spec.md §8, invariant 2); a cycle
// is detected defensively and reported as ErrMergeCycle rather than looping
// forever.
func ResolveMerge(v int, m *IntIntMap) (int, error) {
	limit := m.Len() + 1
	cur := v
	for step := 0; step < limit; step++ {
		next, ok := m.Get(cur)
		if !ok {
			return cur, nil
		}
		cur = next
	}
	return NotFound, ErrMergeCycle
}
