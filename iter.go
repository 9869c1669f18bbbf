package chronofold

// IndexRange describes a range of LogIndex values in causal order, with each
// bound independently unbounded, inclusive, or exclusive — matching the
// half-open/inclusive/unbounded ranges spec.md's Session.splice allows.
type IndexRange struct {
	hasStart  bool
	start     LogIndex
	startExcl bool
	hasEnd    bool
	end       LogIndex
	endExcl   bool
}

// AllIndices returns the unbounded range (the whole sequence).
func AllIndices() IndexRange { return IndexRange{} }

// IndicesFrom returns [start, end) unbounded on the right.
func IndicesFrom(start LogIndex) IndexRange {
	return IndexRange{hasStart: true, start: start}
}

// IndicesUntil returns [.., end), exclusive of end.
func IndicesUntil(end LogIndex) IndexRange {
	return IndexRange{hasEnd: true, end: end, endExcl: true}
}

// IndicesBetween returns [start, end), the half-open range used by Vec-like
// splice semantics.
func IndicesBetween(start, end LogIndex) IndexRange {
	return IndexRange{hasStart: true, start: start, hasEnd: true, end: end, endExcl: true}
}

// IndicesInclusive returns [start, end], including both endpoints.
func IndicesInclusive(start, end LogIndex) IndexRange {
	return IndexRange{hasStart: true, start: start, hasEnd: true, end: end, endExcl: false}
}

// causalIndexIter walks log indices in causal order over a range, following
// the next secondary index. Ported from
// original_source/src/iter.rs's iter_log_indices_causal_range.
type causalIndexIter[A AuthorID, T any] struct {
	c             *Chronofold[A, T]
	current       *LogIndex
	firstExcluded *LogIndex
	value         LogIndex
}

func (c *Chronofold[A, T]) iterCausalRange(r IndexRange) *causalIndexIter[A, T] {
	it := &causalIndexIter[A, T]{c: c}
	switch {
	case !r.hasStart:
		it.current = c.root
	case !r.startExcl:
		v := r.start
		it.current = &v
	default:
		if idx, ok := c.indexAfter(r.start); ok {
			it.current = &idx
		}
	}
	switch {
	case !r.hasEnd:
		// unbounded
	case r.endExcl:
		v := r.end
		it.firstExcluded = &v
	default:
		if idx, ok := c.indexAfter(r.end); ok {
			it.firstExcluded = &idx
		}
	}
	return it
}

// Next advances the iterator. It must be called before Index.
func (it *causalIndexIter[A, T]) Next() bool {
	if it.current == nil {
		return false
	}
	idx := *it.current
	if it.firstExcluded != nil && idx == *it.firstExcluded {
		it.current = nil
		return false
	}
	it.value = idx
	if nxt, ok := it.c.indexAfter(idx); ok {
		it.current = &nxt
	} else {
		it.current = nil
	}
	return true
}

// Index returns the log index last produced by Next.
func (it *causalIndexIter[A, T]) Index() LogIndex { return it.value }

// iterSubtree returns root and every entry whose reference transitively
// lies within root's subtree, in causal order. Subtrees are contiguous in
// the linked list (spec.md §4.1), so walking next from root and stopping at
// the first entry that isn't a descendant is both correct and bounded by the
// subtree's size.
func (c *Chronofold[A, T]) iterSubtree(root LogIndex) []LogIndex {
	members := map[LogIndex]bool{root: true}
	result := []LogIndex{root}
	idx := root
	for {
		nxt, ok := c.indexAfter(idx)
		if !ok {
			break
		}
		ref, hasRef := c.reference.get(nxt)
		if !hasRef || !members[ref] {
			break
		}
		members[nxt] = true
		result = append(result, nxt)
		idx = nxt
	}
	return result
}

// Element is a value produced by an Iterator, paired with its log index.
type Element[T any] struct {
	Value T
	Index LogIndex
}

// Iterator walks live (non-tombstoned Insert) elements in causal order,
// skipping contiguous runs of tombstones and Root.
type Iterator[A AuthorID, T any] struct {
	under *causalIndexIter[A, T]
	c     *Chronofold[A, T]
	cur   Element[T]
}

// Iter returns an iterator over every live element, in causal order.
func (c *Chronofold[A, T]) Iter() *Iterator[A, T] {
	return c.IterRange(AllIndices())
}

// IterRange returns an iterator over every live element whose log index
// falls in r, in causal order.
func (c *Chronofold[A, T]) IterRange(r IndexRange) *Iterator[A, T] {
	return &Iterator[A, T]{under: c.iterCausalRange(r), c: c}
}

// Next advances the iterator, returning false once exhausted.
func (it *Iterator[A, T]) Next() bool {
	for it.under.Next() {
		idx := it.under.Index()
		ch := it.c.log[idx]
		if ch.Kind == Insert && !it.c.tombstone[idx] {
			it.cur = Element[T]{Value: ch.Value, Index: idx}
			return true
		}
	}
	return false
}

// Value returns the element last produced by Next.
func (it *Iterator[A, T]) Value() Element[T] { return it.cur }

// Elements materializes every live element's value, in causal order.
func (c *Chronofold[A, T]) Elements() []T {
	var out []T
	it := c.Iter()
	for it.Next() {
		out = append(out, it.Value().Value)
	}
	return out
}

// LogRange describes a range of LogIndex values in log (arrival) order, used
// by IterOps. Unlike IndexRange, this is a plain integer range: log order is
// simply array order.
type LogRange struct {
	Start  LogIndex
	End    LogIndex
	hasEnd bool
}

// AllOps returns the range covering the whole log.
func AllOps() LogRange { return LogRange{} }

// OpsFrom returns the range [start, end of log).
func OpsFrom(start LogIndex) LogRange { return LogRange{Start: start} }

// OpsBetween returns the range [start, end), exclusive of end.
func OpsBetween(start, end LogIndex) LogRange { return LogRange{Start: start, End: end, hasEnd: true} }

// IterOps returns, in log order, one Op per log entry in r, reconstituting
// ID and Reference timestamps from the author/indexShift secondary maps.
func (c *Chronofold[A, T]) IterOps(r LogRange) []Op[A, T] {
	end := len(c.log)
	if r.hasEnd && int(r.End) < end {
		end = int(r.End)
	}
	var ops []Op[A, T]
	for i := int(r.Start); i < end; i++ {
		idx := LogIndex(i)
		id, ok := c.timestamp(idx)
		if !ok {
			continue
		}
		var ref *Timestamp[A]
		if refIdx, ok := c.reference.get(idx); ok {
			if ts, ok := c.timestamp(refIdx); ok {
				ref = &ts
			}
		}
		ops = append(ops, Op[A, T]{ID: id, Reference: ref, Change: c.log[idx]})
	}
	return ops
}

// IterNewerOps returns, in log order, every op this replica has applied that
// the given version has not yet observed (an absent author means every op by
// that author is newer).
func (c *Chronofold[A, T]) IterNewerOps(v *Version[A]) []Op[A, T] {
	var out []Op[A, T]
	for _, op := range c.IterOps(AllOps()) {
		if known, ok := v.Get(op.ID.Author); !ok || op.ID.Index > known {
			out = append(out, op)
		}
	}
	return out
}
