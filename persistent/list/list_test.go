package list

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"

	"github.com/npillmayer/cons"
	"github.com/npillmayer/cons/maybe"
)

func TestListBasics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.list")
	defer teardown()
	//
	l := Empty[int]()
	assert.True(t, maybe.IsNothing(l.Head()), "head of empty list must be Nothing")

	l = l.Prepend(1).Prepend(2).Prepend(3)
	assert.Equal(t, 3, l.Head().WithDefault(-1))
	assert.Equal(t, 2, l.Tail().Head().WithDefault(-1))
	assert.Equal(t, 1, l.Tail().Tail().Head().WithDefault(-1))
	assert.True(t, maybe.IsNothing(l.Tail().Tail().Tail().Head()))
	assert.True(t, maybe.IsNothing(l.Tail().Tail().Tail().Tail().Head()))
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "[3,2,1]", l.String())
}

func TestListBranchingLeavesOriginalIntact(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.list")
	defer teardown()
	//
	l1 := Empty[int]().Prepend(1).Prepend(2)
	l2 := l1.Prepend(10)
	l3 := l1.Prepend(20)

	assert.Equal(t, []int{2, 1}, cons.Collect[int](l1.Iter()), "original list changed by branching")
	assert.Equal(t, []int{10, 2, 1}, cons.Collect[int](l2.Iter()))
	assert.Equal(t, []int{20, 2, 1}, cons.Collect[int](l3.Iter()))
}

func TestListStructuralSharing(t *testing.T) {
	l1 := Empty[int]().Prepend(1).Prepend(2)
	l2 := l1.Prepend(10)

	// branching must share nodes, not duplicate them
	assert.Same(t, l1.head, l2.head.next, "expected the branches to share the common chain physically")
	// l1's head now has two owners: the list l1 and l2's new head node
	assert.Equal(t, 2, l1.Refs())
	assert.Equal(t, 1, l2.Refs())

	// a tail view is one more owner of the shared node
	tl := l2.Tail()
	assert.Same(t, l1.head, tl.head)
	assert.Equal(t, 3, l1.Refs())
}

func TestListReleaseStopsAtSharedNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.list")
	defer teardown()
	//
	l1 := Empty[int]().Prepend(1).Prepend(2)
	l2 := l1.Prepend(10)
	shared := l1.head

	l2.Release()
	assert.True(t, l2.IsEmpty(), "released list must be empty")
	// l2's private node is gone, but the shared chain survives for l1
	assert.Equal(t, 1, l1.Refs(), "expected release to give back only l2's reference")
	assert.Same(t, shared, l1.head)
	assert.Equal(t, []int{2, 1}, cons.Collect[int](l1.Iter()))

	l1.Release()
	assert.Equal(t, 0, l1.Refs())
}

func TestListCloneIsAnOwner(t *testing.T) {
	l := Empty[int]().Prepend(1)
	c := l.Clone()
	assert.Equal(t, 2, l.Refs())
	c.Release()
	assert.Equal(t, 1, l.Refs())
	assert.Equal(t, 1, l.Head().WithDefault(-1))
}

func TestListIterRestartable(t *testing.T) {
	l := Empty[int]().Prepend(1).Prepend(2).Prepend(3)
	first := cons.Collect[int](l.Iter())
	second := cons.Collect[int](l.Iter())
	assert.Equal(t, first, second, "expected a fresh iterator to restart the walk")

	it := l.Iter()
	cons.Each[int](it, func(int) {})
	for i := 0; i < 3; i++ {
		if _, ok := it.Next(); ok {
			t.Error("expected exhausted iterator to stay exhausted, didn't")
		}
	}
}

func TestListDeepRelease(t *testing.T) {
	l := Empty[int]()
	for i := 0; i < 100_000; i++ {
		next := l.Prepend(i)
		l.Release() // hand the chain over to the longer list
		l = next
	}
	assert.Equal(t, 100_000, l.Len())
	l.Release()
	assert.True(t, l.IsEmpty())
}
