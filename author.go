package chronofold

import "github.com/google/uuid"

// UUIDAuthor identifies a replica by a randomly generated UUID, stored as
// its canonical string form so that it satisfies cmp.Ordered and can key a
// Go map directly.
//
// Grounded on the teacher's SiteID convention (a uuid.UUID identifying each
// site/replica), adapted here to the string-keyed AuthorID constraint.
type UUIDAuthor string

// newUUID is a package variable so tests can stub it out for deterministic
// fixtures, mirroring the teacher's randomUUIDv1/MockUUIDs pattern in
// crdt/mocks_test.go.
var newUUID = uuid.NewString

// NewUUIDAuthor generates a fresh, randomly assigned author identity.
func NewUUIDAuthor() UUIDAuthor {
	return UUIDAuthor(newUUID())
}
