package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/cons/result"
)

func TestResultMatch(t *testing.T) {
	x := Ok(7)
	y := Err[int](errors.New("not ok"))

	var v int
	var e error
	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Error("expected Ok(7) not to match Err, did")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Error("expected Err not to match Ok, did")
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Error("expected error to be non-nil, is nil")
	}
}

func TestResultUnwrap(t *testing.T) {
	if v, err := Ok("hello").Unwrap(); err != nil || v != "hello" {
		t.Errorf("expected Ok(hello).Unwrap to be (hello, nil), is (%q, %v)", v, err)
	}
	boom := errors.New("boom")
	if v, err := Err[string](boom).Unwrap(); !errors.Is(err, boom) || v != "" {
		t.Errorf("expected Err.Unwrap to carry the error, is (%q, %v)", v, err)
	}
}

func TestResultMap(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, _ := Map(double, Ok(7)).Unwrap(); v != 14 {
		t.Errorf("expected Map(double, Ok 7) to be 14, is %d", v)
	}
	if IsOk(Map(double, Err[int](errors.New("nope")))) {
		t.Error("expected Map over Err to stay Err, didn't")
	}
}
