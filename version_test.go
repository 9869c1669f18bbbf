package chronofold_test

import (
	"testing"

	"github.com/brunokim/chronofold"
	"github.com/stretchr/testify/assert"
)

// Ported from original_source/tests/version.rs's partial_order test.

func ts(index int, author int) chronofold.Timestamp[int] {
	return chronofold.Timestamp[int]{Index: chronofold.LogIndex(index), Author: author}
}

func ver(timestamps ...chronofold.Timestamp[int]) *chronofold.Version[int] {
	v := chronofold.NewVersion[int]()
	for _, t := range timestamps {
		v.Inc(t)
	}
	return v
}

func TestVersionPartialOrder(t *testing.T) {
	empty := ver()
	assert.True(t, empty.Equal(ver()))

	order, comparable := empty.Compare(ver(ts(0, 0)))
	assert.True(t, comparable)
	assert.Equal(t, -1, order)

	order, comparable = ver(ts(0, 0)).Compare(empty)
	assert.True(t, comparable)
	assert.Equal(t, 1, order)

	order, comparable = ver(ts(0, 1)).Compare(ver(ts(1, 1)))
	assert.True(t, comparable)
	assert.Equal(t, -1, order)

	order, comparable = ver(ts(1, 1)).Compare(ver(ts(0, 1)))
	assert.True(t, comparable)
	assert.Equal(t, 1, order)

	a, b := ver(ts(0, 1)), ver(ts(0, 2))
	assert.False(t, a.Equal(b))
	_, comparable = a.Compare(b)
	assert.False(t, comparable)
}

func TestVersionIterNewerOps(t *testing.T) {
	cf := chronofold.New[int, rune](0)
	cf.Session(0).Extend([]rune("foo"))
	v1 := cf.Version().Clone()

	cf.Session(0).PushBack('!')
	cf.Session(1).PushBack('?')

	ops := cf.IterNewerOps(v1)
	assert.Len(t, ops, 2)
	assert.Equal(t, '!', ops[0].Change.Value)
	assert.Equal(t, '?', ops[1].Change.Value)

	v2 := chronofold.NewVersion[int]()
	v2.Inc(ts(1, 3))
	all := cf.IterNewerOps(v2)
	assert.Len(t, all, 6) // root + foo (3) + ! + ?
}
