package chronofold

// ApplyWire applies a remote op whose Change carries a wire-format value of
// type V, converting it to the chronofold's local value type T via
// intoLocal.
//
// This exists as a free function, not a method, because Go forbids a method
// from introducing type parameters beyond its receiver's — the Rust
// original expresses the wire/local value split as an IntoLocalValue trait
// bound on Chronofold's own apply_change; here the conversion function is
// passed explicitly at the call site instead. Apply is the V == T
// specialization of this function.
func ApplyWire[A AuthorID, T any, V any](c *Chronofold[A, T], op Op[A, V], intoLocal func(V) T) error {
	if _, ok := c.logIndex(op.ID); ok {
		return &ExistingTimestampError[A, V]{Op: op}
	}
	if int(op.ID.Index) > len(c.log) {
		return &FutureTimestampError[A, V]{Op: op}
	}

	if op.Change.Kind == Root {
		c.applyChange(op.ID, 0, false, RootChange[T]())
		return nil
	}

	var reference LogIndex
	hasReference := false
	if op.Reference != nil {
		idx, ok := c.logIndex(*op.Reference)
		if !ok {
			return &UnknownReferenceError[A, V]{Op: op}
		}
		reference, hasReference = idx, true
	}

	change := op.Change
	var localChange Change[T]
	if change.Kind == Insert {
		localChange = InsertChange(intoLocal(change.Value))
	} else {
		localChange = Change[T]{Kind: change.Kind}
	}
	c.applyChange(op.ID, reference, hasReference, localChange)
	return nil
}

// IterOpsWire returns every op in r with its local value converted to wire
// format V via fromLocal, for replicas whose wire representation differs
// from their in-memory value type (e.g. a local rope-friendly rune type
// serialized to a wire string type).
func IterOpsWire[A AuthorID, T any, V any](c *Chronofold[A, T], r LogRange, fromLocal func(T) V) []Op[A, V] {
	ops := c.IterOps(r)
	out := make([]Op[A, V], len(ops))
	for i, op := range ops {
		wireChange := Change[V]{Kind: op.Change.Kind}
		if op.Change.Kind == Insert {
			wireChange.Value = fromLocal(op.Change.Value)
		}
		out[i] = Op[A, V]{ID: op.ID, Reference: op.Reference, Change: wireChange}
	}
	return out
}
