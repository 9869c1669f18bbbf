package chronofold

// findPredecessor locates the log index a new entry with the given id,
// reference and change kind should be spliced in after, applying the
// sibling tie-break rule from spec.md §4.1:
//
//   - a Delete is placed after every existing Delete sibling (an entry with
//     the same reference) that carries a greater timestamp than id, so the
//     deletes of one entry sit right after it in descending timestamp order;
//   - an Insert is placed after every existing sibling that either is itself
//     a Delete, or carries a greater timestamp than id.
//
// In both cases the new entry lands after the winning sibling's entire
// subtree, not merely after the sibling itself.
//
// Ported from original_source/src/internal.rs's find_predecessor.
func (c *Chronofold[A, T]) findPredecessor(id Timestamp[A], reference LogIndex, hasReference bool, change Change[T]) (LogIndex, bool) {
	var lastSibling LogIndex
	found := false
	it := c.iterCausalRange(AllIndices())
	for it.Next() {
		idx := it.Index()
		ref, refOk := c.reference.get(idx)
		if refOk != hasReference || (refOk && ref != reference) {
			continue
		}
		ts, ok := c.timestamp(idx)
		if !ok {
			continue
		}
		siblingIsDelete := c.log[idx].Kind == Delete
		newer := ts.Compare(id) > 0
		if change.Kind == Delete {
			if siblingIsDelete && newer {
				lastSibling = idx
				found = true
			}
		} else if siblingIsDelete || newer {
			lastSibling = idx
			found = true
		}
	}
	if !found {
		return reference, hasReference
	}
	subtree := c.iterSubtree(lastSibling)
	return subtree[len(subtree)-1], true
}

// applyChange splices change into the weave as a new log entry authored by
// id, referencing reference, and returns its new log index. It updates
// every secondary index (next, reference, author, indexShift, tombstone)
// and the version. Ported from original_source/src/internal.rs's
// apply_change.
func (c *Chronofold[A, T]) applyChange(id Timestamp[A], reference LogIndex, hasReference bool, change Change[T]) LogIndex {
	newIndex := c.nextLogIndex()

	predIdx, predOk := c.findPredecessor(id, reference, hasReference, change)

	var oldSuccessor LogIndex
	hadSuccessor := false
	if predOk {
		oldSuccessor, hadSuccessor = c.next.get(predIdx)
		c.next.set(predIdx, newIndex, true)
	} else {
		if c.root != nil {
			oldSuccessor, hadSuccessor = *c.root, true
		}
		c.root = &newIndex
	}

	c.log = append(c.log, change)
	c.tombstone = append(c.tombstone, false)
	c.next.set(newIndex, oldSuccessor, hadSuccessor)
	c.reference.set(newIndex, reference, hasReference)
	c.author.set(newIndex, id.Author)
	c.indexShift.set(newIndex, int(newIndex)-int(id.Index))

	if change.Kind == Delete && hasReference {
		c.tombstone[reference] = true
	}

	c.version.Inc(id)
	return newIndex
}
