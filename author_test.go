package chronofold

import "testing"

// mockUUIDs stubs newUUID to return a fixed sequence, restoring the original
// generator when the test ends. Ported from the teacher's MockUUIDs helper
// in crdt/mocks_test.go.
func mockUUIDs(t *testing.T, ids ...string) {
	t.Helper()
	old := newUUID
	t.Cleanup(func() { newUUID = old })
	i := 0
	newUUID = func() string {
		id := ids[i]
		i++
		return id
	}
}

func TestNewUUIDAuthor(t *testing.T) {
	mockUUIDs(t, "fixed-id-1", "fixed-id-2")

	a := NewUUIDAuthor()
	if a != "fixed-id-1" {
		t.Fatalf("NewUUIDAuthor() = %q; want %q", a, "fixed-id-1")
	}
	b := NewUUIDAuthor()
	if b != "fixed-id-2" {
		t.Fatalf("NewUUIDAuthor() = %q; want %q", b, "fixed-id-2")
	}
}
