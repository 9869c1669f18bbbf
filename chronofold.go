package chronofold

// Chronofold is a replica of a conflict-free replicated sequence. It owns its
// log and every secondary index derived from it; a *Chronofold must not be
// accessed concurrently from more than one goroutine (see Session, which
// takes its single mutable borrow).
type Chronofold[A AuthorID, T any] struct {
	log     []Change[T]
	root    *LogIndex
	version *Version[A]

	next       *offsetMap     // default next[i] = i+1
	reference  *offsetMap     // default reference[i] = i-1
	author     *rangeFromMap[A]
	indexShift *rangeFromMap[int]
	tombstone  []bool
}

// New constructs a chronofold with a Root entry authored by author at log
// index 0, per this spec's resolution of the "beginning of the sequence"
// open question: every non-root entry always has a concrete reference.
func New[A AuthorID, T any](author A) *Chronofold[A, T] {
	c := newEmpty[A, T]()
	c.applyChange(Timestamp[A]{Index: 0, Author: author}, 0, false, RootChange[T]())
	return c
}

// newEmpty constructs a chronofold with no entries at all, used by New and
// FromSnapshot, which immediately replay a Root op to populate it.
func newEmpty[A AuthorID, T any]() *Chronofold[A, T] {
	return &Chronofold[A, T]{
		version:    NewVersion[A](),
		next:       newOffsetMap(1),
		reference:  newOffsetMap(-1),
		author:     newRangeFromMap[A](),
		indexShift: newRangeFromMap[int](),
	}
}

// IsEmpty reports whether the chronofold contains no live elements.
func (c *Chronofold[A, T]) IsEmpty() bool {
	return c.Len() == 0
}

// Len returns the number of live (non-tombstoned Insert) elements.
func (c *Chronofold[A, T]) Len() int {
	n := 0
	it := c.Iter()
	for it.Next() {
		n++
	}
	return n
}

// Get returns the change stored at log index, or false if index is out of
// bounds.
func (c *Chronofold[A, T]) Get(index LogIndex) (Change[T], bool) {
	if int(index) < 0 || int(index) >= len(c.log) {
		var zero Change[T]
		return zero, false
	}
	return c.log[index], true
}

// FirstIndex returns the Root entry's log index, the universal anchor for
// "insert at the very beginning of the sequence". It is false only when no
// Root entry has been applied: never for a Chronofold returned by New, and
// for one returned by FromSnapshot only if the snapshot holds no Root op.
func (c *Chronofold[A, T]) FirstIndex() (LogIndex, bool) {
	if c.root == nil {
		return 0, false
	}
	return *c.root, true
}

// LastIndex returns the index of the last log entry (in log order), or false
// if the log is empty.
func (c *Chronofold[A, T]) LastIndex() (LogIndex, bool) {
	if len(c.log) == 0 {
		return 0, false
	}
	return LogIndex(len(c.log) - 1), true
}

func (c *Chronofold[A, T]) nextLogIndex() LogIndex {
	return LogIndex(len(c.log))
}

// Version returns the vector clock summarising every op this replica has
// applied.
func (c *Chronofold[A, T]) Version() *Version[A] {
	return c.version
}

// Session opens a batched editing session for author, borrowing this
// chronofold exclusively for the session's lifetime.
func (c *Chronofold[A, T]) Session(author A) *Session[A, T] {
	return newSession(author, c)
}

// timestamp reconstructs the global Timestamp of the entry at index, using
// the author/indexShift secondary maps (invariant 4: author[i] and
// indexShift[i] reconstruct Timestamp(LogIndex(i-indexShift[i]), author[i])).
func (c *Chronofold[A, T]) timestamp(index LogIndex) (Timestamp[A], bool) {
	shift, ok1 := c.indexShift.get(index)
	author, ok2 := c.author.get(index)
	if !ok1 || !ok2 {
		var zero Timestamp[A]
		return zero, false
	}
	return Timestamp[A]{Index: LogIndex(int(index) - shift), Author: author}, true
}

// logIndex resolves a global Timestamp to this replica's local LogIndex, by
// scanning forward from the timestamp's originating index. Timestamps are
// monotone by invariant 3, so this scan is bounded by divergence width.
func (c *Chronofold[A, T]) logIndex(t Timestamp[A]) (LogIndex, bool) {
	for i := int(t.Index); i < len(c.log); i++ {
		ts, ok := c.timestamp(LogIndex(i))
		if ok && ts == t {
			return LogIndex(i), true
		}
	}
	return 0, false
}

// indexAfter returns the causal successor of index, or false if index is the
// last entry in causal order.
func (c *Chronofold[A, T]) indexAfter(index LogIndex) (LogIndex, bool) {
	return c.next.get(index)
}

// indexBefore returns the causal predecessor of index: the last entry, in
// causal order, between index's reference and index itself. For the Root
// entry it returns the Root itself; it returns false only when index has no
// reference. index is not checked against the log's bounds.
func (c *Chronofold[A, T]) indexBefore(index LogIndex) (LogIndex, bool) {
	if c.root != nil && index == *c.root {
		return index, true
	}
	ref, ok := c.reference.get(index)
	if !ok {
		return 0, false
	}
	var last LogIndex
	found := false
	it := c.iterCausalRange(IndicesBetween(ref, index))
	for it.Next() {
		last = it.Index()
		found = true
	}
	if !found {
		return 0, false
	}
	return last, true
}

// Apply applies a remote op to the chronofold.
//
// This is the method-form entry point for the common case where the op's
// wire value type is the same as the local value type (no IntoLocalValue
// hook needed); see ApplyWire for the general case.
func (c *Chronofold[A, T]) Apply(op Op[A, T]) error {
	return c.apply(op, func(v T) T { return v })
}

func (c *Chronofold[A, T]) apply(op Op[A, T], intoLocal func(T) T) error {
	if _, ok := c.logIndex(op.ID); ok {
		return &ExistingTimestampError[A, T]{Op: op}
	}
	if int(op.ID.Index) > len(c.log) {
		return &FutureTimestampError[A, T]{Op: op}
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
			return &UnknownReferenceError[A, T]{Op: op}
		}
		reference, hasReference = idx, true
	}

	change := op.Change
	if change.Kind == Insert {
		change = InsertChange(intoLocal(change.Value))
	}
	c.applyChange(op.ID, reference, hasReference, change)
	return nil
}
