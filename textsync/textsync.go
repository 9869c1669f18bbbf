// Package textsync bridges a plain Go string to a chronofold[rune] session,
// translating a desired new text into the minimal sequence of chronofold
// edits that produces it.
//
// This has no teacher or original-source analogue: it is new glue needed
// because neither a diff algorithm nor a CRDT log, on its own, describes how
// a local text editor's "the buffer now reads X" events become chronofold
// ops. It is grounded in the teacher's diff package (Myers edit script) and
// this module's Session type.
package textsync

import (
	"github.com/brunokim/chronofold"
	"github.com/brunokim/chronofold/diff"
)

// ReplaceText computes the difference between the elements currently held by
// session's chronofold and want, and applies the minimal set of Remove and
// InsertAfter calls needed to make it read want. It returns the number of
// runes inserted and deleted.
func ReplaceText[A chronofold.AuthorID](session *chronofold.Session[A, rune], want string) (inserted, deleted int) {
	cf := session.Chronofold()
	have := cf.Elements()

	ops := diff.Diff(have, []rune(want))

	liveIndices := elementIndices(cf)

	pos := 0 // index into liveIndices: how many Keep/Delete ops have consumed an existing element
	anchor, _ := cf.FirstIndex()
	for _, op := range ops {
		switch op.Op {
		case diff.Keep:
			if pos < len(liveIndices) {
				anchor = liveIndices[pos]
			}
			pos++
		case diff.Delete:
			if pos < len(liveIndices) {
				idx := liveIndices[pos]
				session.Remove(idx)
				deleted++
			}
			pos++
		case diff.Insert:
			anchor = session.InsertAfter(anchor, op.Char)
			inserted++
		}
	}
	return inserted, deleted
}

// elementIndices returns the log index of every live element, in causal
// order, matching the order diff.Diff walked cf.Elements() in.
func elementIndices[A chronofold.AuthorID](cf *chronofold.Chronofold[A, rune]) []chronofold.LogIndex {
	var out []chronofold.LogIndex
	it := cf.Iter()
	for it.Next() {
		out = append(out, it.Value().Index)
	}
	return out
}
