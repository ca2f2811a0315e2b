package cons_test

import (
	"testing"

	"github.com/npillmayer/cons"
)

type countdown struct {
	n int
}

func (c *countdown) Next() (int, bool) {
	if c.n <= 0 {
		return 0, false
	}
	c.n--
	return c.n + 1, true
}

func TestCollect(t *testing.T) {
	seq := &countdown{n: 3}
	r := cons.Collect[int](seq)
	if len(r) != 3 || r[0] != 3 || r[2] != 1 {
		t.Errorf("expected Collect to produce [3 2 1], is %v", r)
	}
}

func TestEachAfterExhaustion(t *testing.T) {
	seq := &countdown{n: 1}
	cons.Each[int](seq, func(int) {})
	if _, ok := seq.Next(); ok {
		t.Error("expected exhausted sequence to stay exhausted")
	}
}
