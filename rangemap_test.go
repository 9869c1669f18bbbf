package chronofold

import "testing"

// Ported from original_source/src/rangemap.rs's test module.

func TestRangeFromMapGetEmpty(t *testing.T) {
	m := newRangeFromMap[string]()
	if _, ok := m.get(0); ok {
		t.Fatalf("get(0) on empty map should report false")
	}
}

func TestRangeFromMapSetAndGet(t *testing.T) {
	m := newRangeFromMap[string]()
	m.set(10, "alice")
	if _, ok := m.get(5); ok {
		t.Fatalf("get(5) should report false before the first run starts")
	}
	if got, ok := m.get(10); !ok || got != "alice" {
		t.Fatalf("get(10) = %v, %v; want alice, true", got, ok)
	}
	if got, ok := m.get(15); !ok || got != "alice" {
		t.Fatalf("get(15) = %v, %v; want alice, true (within the same run)", got, ok)
	}
}

func TestRangeFromMapMissingCompaction(t *testing.T) {
	// Setting the same effective value at a later key first, then an earlier
	// key with the same value, records two runs instead of being compacted
	// into one -- this package's set() only ever appends, matching the
	// original's documented non-canonical representation.
	m1 := newRangeFromMap[int]()
	m2 := newRangeFromMap[int]()
	m1.set(20, 2)
	m2.set(20, 2)
	if m1.entryCount() != m2.entryCount() {
		t.Fatalf("m1 and m2 should match after identical sets")
	}

	m1.set(10, 1)
	m1.set(15, 1) // compacted away: get(15) already reads 1 via the run started at 10
	m2.set(15, 1)
	m2.set(10, 1) // NOT compacted: get(10) was None when this ran, since no key <= 10 was set yet

	if got, want := m1.entryCount(), 2; got != want {
		t.Fatalf("m1.entryCount() = %d; want %d ({10:1, 20:2})", got, want)
	}
	if got, want := m2.entryCount(), 3; got != want {
		t.Fatalf("m2.entryCount() = %d; want %d ({10:1, 15:1, 20:2})", got, want)
	}
}
