package stack

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/npillmayer/cons"
	"github.com/npillmayer/cons/maybe"
)

func TestStackLIFO(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.stack")
	defer teardown()
	//
	s := New[int]()
	if !maybe.IsNothing(s.Pop()) {
		t.Error("expected pop on empty stack to be Nothing, isn't")
	}
	s.Push(1)
	s.Push(2)
	s.Push(3)
	if s.Len() != 3 {
		t.Errorf("expected stack depth 3, is %d", s.Len())
	}
	for _, want := range []int{3, 2, 1} {
		if got := s.Pop().WithDefault(-1); got != want {
			t.Errorf("expected pop to yield %d, is %d", want, got)
		}
	}
	if !maybe.IsNothing(s.Pop()) {
		t.Error("expected pop on drained stack to be Nothing, isn't")
	}
}

func TestStackPeek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cons.stack")
	defer teardown()
	//
	s := New[int]()
	if !maybe.IsNothing(s.Peek()) {
		t.Error("expected peek on empty stack to be Nothing, isn't")
	}
	if s.PeekMut() != nil {
		t.Error("expected mutable peek on empty stack to be nil, isn't")
	}
	s.Push(7)
	if got := s.Peek().WithDefault(-1); got != 7 {
		t.Errorf("expected peek to yield 7, is %d", got)
	}
	*s.PeekMut() = 42
	if got := s.Pop().WithDefault(-1); got != 42 {
		t.Errorf("expected in-place modification to stick, popped %d", got)
	}
}

func TestStackDrain(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	got := cons.Collect[int](s.Drain())
	if len(got) != 3 || got[0] != 3 || got[1] != 2 || got[2] != 1 {
		t.Errorf("expected drain to yield [3 2 1], is %v", got)
	}
	if !s.Empty() {
		t.Error("expected stack to be empty after drain, isn't")
	}
}

func TestStackIter(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	got := cons.Collect[int](s.Iter())
	if len(got) != 3 || got[0] != 3 {
		t.Errorf("expected iter to yield [3 2 1], is %v", got)
	}
	if s.Len() != 3 {
		t.Error("expected iter not to consume the stack, did")
	}
	it := s.Iter()
	for i := 0; i < 5; i++ {
		it.Next()
	}
	if _, ok := it.Next(); ok {
		t.Error("expected exhausted iterator to stay exhausted, didn't")
	}
}

func TestStackIterMut(t *testing.T) {
	s := New[int]()
	s.Push(1)
	s.Push(2)
	s.Push(3)
	it := s.IterMut()
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		*p *= 10
	}
	got := cons.Collect[int](s.Drain())
	if got[0] != 30 || got[1] != 20 || got[2] != 10 {
		t.Errorf("expected elements scaled in place, got %v", got)
	}
}

func TestStackDeepDrop(t *testing.T) {
	s := New[int]()
	for i := 0; i < 100_000; i++ {
		s.Push(i)
	}
	s.Drop()
	if !s.Empty() || s.Len() != 0 {
		t.Error("expected stack to be empty after drop, isn't")
	}
}
