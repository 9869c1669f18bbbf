package chronofold

// Session batches a sequence of local edits by a single author against a
// Chronofold, in the manner of a Vec cursor: PushBack/InsertAfter/Remove
// mutate the weave immediately (so later calls in the same session observe
// earlier ones) while producing ops that could be replayed remotely via
// IterOps.
//
// Ported from original_source/src/session.rs. A Session borrows its
// chronofold exclusively for its lifetime; the caller must not use the
// chronofold directly while a Session is open.
type Session[A AuthorID, T any] struct {
	author     A
	c          *Chronofold[A, T]
	firstIndex LogIndex
}

func newSession[A AuthorID, T any](author A, c *Chronofold[A, T]) *Session[A, T] {
	return &Session[A, T]{author: author, c: c, firstIndex: c.nextLogIndex()}
}

// Chronofold returns the chronofold this session is editing.
func (s *Session[A, T]) Chronofold() *Chronofold[A, T] {
	return s.c
}

// IterOps returns every op this session has produced so far, in log order.
func (s *Session[A, T]) IterOps() []Op[A, T] {
	return s.c.IterOps(OpsFrom(s.firstIndex))
}

func (s *Session[A, T]) nextID() Timestamp[A] {
	return Timestamp[A]{Index: s.c.nextLogIndex(), Author: s.author}
}

// InsertAfter inserts value immediately after the live or tombstoned entry
// at index, returning the new entry's index.
func (s *Session[A, T]) InsertAfter(index LogIndex, value T) LogIndex {
	id := s.nextID()
	return s.c.applyChange(id, index, true, InsertChange(value))
}

// PushFront inserts value as the new first element of the sequence.
func (s *Session[A, T]) PushFront(value T) LogIndex {
	root := LogIndex(0)
	if s.c.root != nil {
		root = *s.c.root
	}
	return s.InsertAfter(root, value)
}

// PushBack inserts value as the new last element of the sequence.
func (s *Session[A, T]) PushBack(value T) LogIndex {
	last := s.lastCausalIndex()
	return s.InsertAfter(last, value)
}

func (s *Session[A, T]) lastCausalIndex() LogIndex {
	var last LogIndex
	it := s.c.iterCausalRange(AllIndices())
	for it.Next() {
		last = it.Index()
	}
	return last
}

// Remove deletes the live entry at index, returning the new tombstoning
// entry's index. index is not checked: removing an already-tombstoned or
// non-Insert entry still appends a new Delete entry; callers are expected to
// only pass indices returned by Iter/Elements.
func (s *Session[A, T]) Remove(index LogIndex) LogIndex {
	id := s.nextID()
	return s.c.applyChange(id, index, true, DeleteChange[T]())
}

// Extend appends every value in values to the end of the sequence, in
// order.
func (s *Session[A, T]) Extend(values []T) {
	for _, v := range values {
		s.PushBack(v)
	}
}

// Clear removes every currently-live element.
func (s *Session[A, T]) Clear() {
	it := s.c.Iter()
	var indices []LogIndex
	for it.Next() {
		indices = append(indices, it.Value().Index)
	}
	for _, idx := range indices {
		s.Remove(idx)
	}
}

// Splice removes every live element in r and inserts values in their place,
// returning the removed elements in causal order. This mirrors
// Vec::splice's semantics over a causal IndexRange.
func (s *Session[A, T]) Splice(r IndexRange, values []T) []T {
	it := s.c.IterRange(r)
	var removedIdx []LogIndex
	var removed []T
	for it.Next() {
		el := it.Value()
		removedIdx = append(removedIdx, el.Index)
		removed = append(removed, el.Value)
	}

	anchor := LogIndex(0)
	if s.c.root != nil {
		anchor = *s.c.root
	}
	if len(removedIdx) > 0 {
		if before, ok := s.c.indexBefore(removedIdx[0]); ok {
			anchor = before
		}
	} else if idx, ok := s.precedingIndexForRange(r); ok {
		anchor = idx
	}

	for _, idx := range removedIdx {
		s.Remove(idx)
	}
	for _, v := range values {
		anchor = s.InsertAfter(anchor, v)
	}
	return removed
}

// precedingIndexForRange finds the causal predecessor of an empty range's
// start bound, used by Splice to anchor insertions when there is nothing to
// remove.
func (s *Session[A, T]) precedingIndexForRange(r IndexRange) (LogIndex, bool) {
	it := s.c.iterCausalRange(r)
	if it.current == nil {
		return s.lastCausalIndex(), true
	}
	return s.c.indexBefore(*it.current)
}
