package chronofold

import "fmt"

// UnknownReferenceError is returned by Apply when an op's reference
// timestamp has not been observed locally yet. It is recoverable: buffer the
// op and retry once its predecessor has arrived.
type UnknownReferenceError[A AuthorID, T any] struct {
	Op Op[A, T]
}

func (e *UnknownReferenceError[A, T]) Error() string {
	return fmt.Sprintf("unknown reference %v", *e.Op.Reference)
}

// ExistingTimestampError is returned by Apply when an op with the same id
// has already been applied. It is recoverable: the duplicate can simply be
// dropped, since application is idempotent.
type ExistingTimestampError[A AuthorID, T any] struct {
	Op Op[A, T]
}

func (e *ExistingTimestampError[A, T]) Error() string {
	return fmt.Sprintf("existing timestamp %v", e.Op.ID)
}

// FutureTimestampError is returned by Apply when an op's id carries a log
// index greater than the local log's length. A well-behaved peer never
// produces this; it indicates a transport bug or a malicious peer. It is
// recoverable: buffer the op until the local log grows, or reject it.
type FutureTimestampError[A AuthorID, T any] struct {
	Op Op[A, T]
}

func (e *FutureTimestampError[A, T]) Error() string {
	return fmt.Sprintf("future timestamp %v", e.Op.ID)
}
