package chronofold

// Op is the wire form of a change: the unit exchanged between replicas to
// keep them synchronized. Unlike a Change, an Op is independent of any
// particular replica's log: references to other operations are expressed as
// Timestamps instead of LogIndex values.
type Op[A AuthorID, T any] struct {
	ID        Timestamp[A]
	Reference *Timestamp[A] // nil for Root, and for Insert-at-beginning
	Change    Change[T]
}

// RootOp constructs the Op that materializes a replica's Root entry.
func RootOp[A AuthorID, T any](id Timestamp[A]) Op[A, T] {
	return Op[A, T]{ID: id, Change: RootChange[T]()}
}

// InsertOp constructs an Op that inserts value after reference. A nil
// reference means "insert at the very beginning of the sequence".
func InsertOp[A AuthorID, T any](id Timestamp[A], reference *Timestamp[A], value T) Op[A, T] {
	return Op[A, T]{ID: id, Reference: reference, Change: InsertChange(value)}
}

// DeleteOp constructs an Op tombstoning the entry referred to by reference.
func DeleteOp[A AuthorID, T any](id Timestamp[A], reference Timestamp[A]) Op[A, T] {
	ref := reference
	return Op[A, T]{ID: id, Reference: &ref, Change: DeleteChange[T]()}
}

func (op Op[A, T]) String() string {
	if op.Reference == nil {
		return "Op{" + op.ID.String() + ", <none>, " + op.Change.String() + "}"
	}
	return "Op{" + op.ID.String() + ", " + op.Reference.String() + ", " + op.Change.String() + "}"
}
