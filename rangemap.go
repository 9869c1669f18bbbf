package chronofold

import "sort"

// rangeFromMap stores a value for every key in [k, next-key), by only
// recording the value at the start of each run. get(key) is "the value at
// the greatest stored key <= key", matching a run-length encoding: a local
// run of appends by one author produces exactly one entry.
//
// Ported from original_source/src/rangemap.rs; the predecessor lookup reuses
// the teacher's sort.Search-over-a-sorted-slice idiom (crdt/ctree.go's
// siteIndex) instead of a BTreeMap, since Go's stdlib has no ordered map.
type rangeFromMap[V comparable] struct {
	keys   []LogIndex // strictly increasing
	values []V
}

func newRangeFromMap[V comparable]() *rangeFromMap[V] {
	return &rangeFromMap[V]{}
}

// get returns the value recorded for the greatest key <= index, if any.
// This assumes m.keys is sorted ascending, which holds only because every
// caller in this package calls set with ever-increasing keys (see set);
// it is not itself enforced here.
func (m *rangeFromMap[V]) get(index LogIndex) (V, bool) {
	var zero V
	i := sort.Search(len(m.keys), func(i int) bool { return m.keys[i] > index })
	if i == 0 {
		return zero, false
	}
	return m.values[i-1], true
}

// set records value for key. Within this package, every call site passes
// keys greater than all previously set keys (each new entry is keyed by
// len(log) at the moment it's appended, which only grows), which keeps the
// representation minimal and is what makes get's predecessor search valid;
// passing a non-increasing key here would silently corrupt later lookups
// for any key at or above it, since it is appended instead of inserted in
// order. set is a no-op if the key already maps to value.
func (m *rangeFromMap[V]) set(key LogIndex, value V) {
	if v, ok := m.get(key); ok && v == value {
		return
	}
	m.keys = append(m.keys, key)
	m.values = append(m.values, value)
}

func (m *rangeFromMap[V]) entryCount() int {
	return len(m.keys)
}
