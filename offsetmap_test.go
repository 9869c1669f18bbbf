package chronofold

import "testing"

// Ported from original_source/src/offsetmap.rs's test module.

func TestOffsetMapGetDefault(t *testing.T) {
	m := newOffsetMap(1)
	got, ok := m.get(0)
	if !ok || got != 1 {
		t.Fatalf("get(0) = %v, %v; want 1, true", got, ok)
	}
}

func TestOffsetMapSetDefaultIsNotStored(t *testing.T) {
	m := newOffsetMap(1)
	m.set(1, 2, true)
	got, ok := m.get(1)
	if !ok || got != 2 {
		t.Fatalf("get(1) = %v, %v; want 2, true", got, ok)
	}
	if m.entryCount() != 0 {
		t.Fatalf("entryCount() = %d; want 0 (default value should not be stored)", m.entryCount())
	}
}

func TestOffsetMapSetAndGetNone(t *testing.T) {
	m := newOffsetMap(1)
	m.set(42, 0, false)
	if _, ok := m.get(42); ok {
		t.Fatalf("get(42) should report false after set(42, _, false)")
	}
}

func TestOffsetMapSetAndGetValue(t *testing.T) {
	m := newOffsetMap(1)
	m.set(42, 50, true)
	m.set(50, 1, true)
	if got, ok := m.get(42); !ok || got != 50 {
		t.Fatalf("get(42) = %v, %v; want 50, true", got, ok)
	}
	if got, ok := m.get(50); !ok || got != 1 {
		t.Fatalf("get(50) = %v, %v; want 1, true", got, ok)
	}
}
