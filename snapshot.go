package chronofold

// Snapshot is a JSON-serializable capture of a chronofold's entire log,
// sufficient to reconstruct it byte-for-byte via FromSnapshot. It
// deliberately serializes the op log rather than the compressed secondary
// indices: replaying the same ops in the same order through applyChange's
// deterministic predecessor search reproduces the identical weave, and the
// op log is far more compact on the wire than the expanded next/reference
// maps would be.
//
// Ported from original_source/src/debug.rs and fmt.rs's serialization
// support, generalized to a round-trippable encoding.
type Snapshot[A AuthorID, T any] struct {
	Ops []Op[A, T] `json:"ops"`
}

// Snapshot captures every op this chronofold has applied, in log order.
func (c *Chronofold[A, T]) Snapshot() Snapshot[A, T] {
	return Snapshot[A, T]{Ops: c.IterOps(AllOps())}
}

// FromSnapshot reconstructs a chronofold from a previously captured
// Snapshot by replaying its ops in order.
func FromSnapshot[A AuthorID, T any](s Snapshot[A, T]) (*Chronofold[A, T], error) {
	c := newEmpty[A, T]()
	for _, op := range s.Ops {
		if err := c.Apply(op); err != nil {
			return nil, err
		}
	}
	return c, nil
}
