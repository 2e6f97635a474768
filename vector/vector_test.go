package vector

import (
	"math/rand"
	"testing"

	"github.com/npillmayer/containers/internal/contract"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"
)

func expectViolation(t *testing.T, what string, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected contract violation, did not panic", what)
		}
		if !contract.IsViolation(r) {
			t.Fatalf("%s: expected contract violation, got %v", what, r)
		}
	}()
	f()
}

func TestEmptyVector(t *testing.T) {
	var v Vector[int]
	if v.Len() != 0 || v.Cap() != 0 || !v.IsEmpty() {
		t.Fatalf("expected zero vector to be empty with capacity 0, is len=%d cap=%d", v.Len(), v.Cap())
	}
	if !v.Begin().Equal(v.End()) {
		t.Errorf("expected Begin() == End() for empty vector")
	}
	if got := v.String(); got != "[]" {
		t.Errorf("expected empty vector to print as [], got %q", got)
	}
}

func TestPushBackGrowth(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	v := New[int]()
	for i := 1; i <= 4; i++ {
		v.PushBack(i)
	}
	if v.Len() != 4 {
		t.Fatalf("expected len 4, got %d", v.Len())
	}
	if v.Cap() != 4 {
		t.Errorf("expected first growth to capacity 4, got %d", v.Cap())
	}
	v.PushBack(5)
	if v.Cap() < 8 {
		t.Errorf("expected capacity >= 8 after fifth push, got %d", v.Cap())
	}
	want := []int{1, 2, 3, 4, 5}
	if got := v.Slice(); !equalInts(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestGrowthInvariant(t *testing.T) {
	v := New[int]()
	prevCap := v.Cap()
	for i := 0; i < 1000; i++ {
		full := v.Len() == v.Cap()
		v.PushBack(i)
		require.LessOrEqual(t, v.Len(), v.Cap())
		require.GreaterOrEqual(t, v.Cap(), prevCap, "capacity must never shrink")
		if full {
			require.GreaterOrEqual(t, v.Cap(), max(4, 2*prevCap))
		} else {
			require.Equal(t, prevCap, v.Cap(), "capacity must not change without growth")
		}
		prevCap = v.Cap()
	}
}

func TestNewFilled(t *testing.T) {
	v := NewFilled(5, "x")
	if v.Len() != 5 || v.Cap() != 5 {
		t.Fatalf("expected len=cap=5, got len=%d cap=%d", v.Len(), v.Cap())
	}
	for i, s := range v.All() {
		if s != "x" {
			t.Errorf("expected v[%d] == \"x\", got %q", i, s)
		}
	}
	if NewFilled(0, 1).Cap() != 0 {
		t.Errorf("expected empty filled vector to have capacity 0")
	}
	expectViolation(t, "NewFilled(-1)", func() { NewFilled(-1, 0) })
}

func TestFromSeq(t *testing.T) {
	src := []int{3, 1, 4, 1, 5}
	v := FromSlice(src...)
	if v.Len() != len(src) {
		t.Fatalf("expected %d elements, got %d", len(src), v.Len())
	}
	w := FromSeq(v.Values())
	if !Equal(v, w) {
		t.Errorf("expected vector built from values to equal source, got %v", w)
	}
	if FromSeq[int](nil).Len() != 0 {
		t.Errorf("expected nil sequence to produce empty vector")
	}
}

func TestAtAndSet(t *testing.T) {
	v := FromSlice(10, 20, 30)
	if v.At(1) != 20 {
		t.Errorf("expected v[1] = 20, got %d", v.At(1))
	}
	v.Set(1, 21)
	*v.Ref(2) = 31
	if got := v.Slice(); !equalInts(got, []int{10, 21, 31}) {
		t.Errorf("unexpected contents after Set/Ref: %v", got)
	}
	if v.Front() != 10 || v.Back() != 31 {
		t.Errorf("unexpected front/back: %d/%d", v.Front(), v.Back())
	}
	expectViolation(t, "At(3)", func() { v.At(3) })
	expectViolation(t, "At(-1)", func() { v.At(-1) })
	expectViolation(t, "Set(3)", func() { v.Set(3, 0) })
	expectViolation(t, "Ref(7)", func() { v.Ref(7) })
}

func TestReserve(t *testing.T) {
	v := FromSlice(1, 2, 3)
	c := v.Cap()
	v.Reserve(c - 1)
	if v.Cap() != c {
		t.Errorf("Reserve below capacity must not change capacity, was %d, is %d", c, v.Cap())
	}
	v.Reserve(100)
	if v.Cap() != 100 {
		t.Errorf("expected capacity of exactly 100, got %d", v.Cap())
	}
	if got := v.Slice(); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("Reserve must preserve contents, got %v", got)
	}
}

func TestResize(t *testing.T) {
	v := FromSlice(1, 2, 3, 4, 5)
	v.Resize(8, 9)
	require.Equal(t, 8, v.Len())
	require.Equal(t, []int{1, 2, 3, 4, 5, 9, 9, 9}, v.Slice())
	c := v.Cap()
	v.Resize(2, 0)
	require.Equal(t, 2, v.Len())
	require.Equal(t, []int{1, 2}, v.Slice())
	require.Equal(t, c, v.Cap(), "truncation must keep capacity")
	// dropped slots are cleared
	for i := 2; i < v.Cap(); i++ {
		require.Zero(t, v.buf[i])
	}
	v.Resize(2, 7)
	require.Equal(t, []int{1, 2}, v.Slice())
	expectViolation(t, "Resize(-1)", func() { v.Resize(-1, 0) })
}

func TestResizeProperty(t *testing.T) {
	rnd := rand.New(rand.NewSource(4711))
	for round := 0; round < 200; round++ {
		v := New[int]()
		for i, k := 0, rnd.Intn(20); i < k; i++ {
			v.PushBack(rnd.Intn(100))
		}
		before := v.Slice()
		n := rnd.Intn(40)
		v.Resize(n, -1)
		require.Equal(t, n, v.Len())
		for i := 0; i < n; i++ {
			if i < len(before) {
				require.Equal(t, before[i], v.At(i))
			} else {
				require.Equal(t, -1, v.At(i))
			}
		}
	}
}

func TestPopBack(t *testing.T) {
	v := FromSlice("a", "b")
	v.PopBack()
	if v.Len() != 1 || v.Back() != "a" {
		t.Errorf("expected [a] after PopBack, got %v", v)
	}
	if v.buf[1] != "" {
		t.Errorf("expected vacated slot to be cleared, is %q", v.buf[1])
	}
	v.PopBack()
	expectViolation(t, "PopBack on empty", func() { v.PopBack() })
	expectViolation(t, "Front on empty", func() { v.Front() })
	expectViolation(t, "Back on empty", func() { v.Back() })
}

func TestInsert(t *testing.T) {
	v := New[int]()
	p := v.Insert(v.End(), 2)
	if p.Offset() != 0 || p.Get() != 2 {
		t.Fatalf("expected inserted element at 0, got %d", p.Offset())
	}
	v.Insert(v.Begin(), 1)
	v.Insert(v.End(), 4)
	p = v.Insert(v.PosAt(2), 3)
	if p.Get() != 3 {
		t.Errorf("expected returned position to hold 3, holds %d", p.Get())
	}
	if got := v.Slice(); !equalInts(got, []int{1, 2, 3, 4}) {
		t.Fatalf("unexpected contents %v", got)
	}
	// vector is full now: growth happens before the shift
	if v.Len() != v.Cap() {
		t.Fatalf("test expects a full vector, len=%d cap=%d", v.Len(), v.Cap())
	}
	p = v.Insert(v.PosAt(1), 9)
	if p.Offset() != 1 || p.Get() != 9 {
		t.Errorf("expected 9 at offset 1 after growing insert, got %d at %d", p.Get(), p.Offset())
	}
	if got := v.Slice(); !equalInts(got, []int{1, 9, 2, 3, 4}) {
		t.Errorf("unexpected contents after growing insert: %v", got)
	}
	other := New[int]()
	expectViolation(t, "foreign position", func() { v.Insert(other.Begin(), 0) })
	expectViolation(t, "position behind end", func() { v.Insert(v.End().Next(), 0) })
}

func TestEraseMiddle(t *testing.T) {
	v := FromSlice(10, 20, 30, 40)
	p := v.Erase(v.PosAt(1))
	if got := v.Slice(); !equalInts(got, []int{10, 30, 40}) {
		t.Fatalf("expected [10 30 40], got %v", got)
	}
	if p.Get() != 30 {
		t.Errorf("expected returned position to refer to 30, refers to %d", p.Get())
	}
}

func TestEraseLastAndAll(t *testing.T) {
	v := FromSlice(1, 2, 3)
	p := v.Erase(v.PosAt(2))
	if !p.IsEnd() {
		t.Errorf("expected End() after erasing the last element, got offset %d", p.Offset())
	}
	for p = v.Begin(); !v.IsEmpty(); {
		p = v.Erase(p)
	}
	if !p.Equal(v.End()) {
		t.Errorf("expected erase loop to end at End()")
	}
	for i := 0; i < v.Cap(); i++ {
		if v.buf[i] != 0 {
			t.Errorf("expected slot %d to be cleared, is %d", i, v.buf[i])
		}
	}
	expectViolation(t, "Erase on empty", func() { v.Erase(v.Begin()) })
	w := FromSlice(1)
	expectViolation(t, "Erase at End()", func() { w.Erase(w.End()) })
	expectViolation(t, "Erase foreign position", func() { w.Erase(v.Begin()) })
}

func TestInsertEraseInverse(t *testing.T) {
	rnd := rand.New(rand.NewSource(99))
	for round := 0; round < 300; round++ {
		b := New[int]()
		for i, k := 0, rnd.Intn(17); i < k; i++ {
			b.PushBack(rnd.Int())
		}
		orig := b.Clone()
		off := rnd.Intn(b.Len() + 1)
		p := b.Insert(b.PosAt(off), -42)
		require.Equal(t, orig.Len()+1, b.Len())
		b.Erase(p)
		require.True(t, Equal(orig, b), "insert followed by erase must restore %v, got %v", orig, b)
	}
}

func TestCopyIndependence(t *testing.T) {
	src := FromSlice(1, 2, 3)
	c := src.Clone()
	if c.Cap() < src.Len() {
		t.Errorf("clone capacity %d must be >= source size %d", c.Cap(), src.Len())
	}
	c.Set(0, 100)
	c.PushBack(4)
	c.Erase(c.PosAt(1))
	if got := src.Slice(); !equalInts(got, []int{1, 2, 3}) {
		t.Errorf("mutating a clone changed the source: %v", got)
	}
	var dst Vector[int]
	dst.PushBack(77)
	dst.Assign(src)
	dst.Set(2, 0)
	if !equalInts(src.Slice(), []int{1, 2, 3}) || !equalInts(dst.Slice(), []int{1, 2, 0}) {
		t.Errorf("assignment is not a deep copy: src=%v dst=%v", src, &dst)
	}
	dst.Assign(&dst)
	if !equalInts(dst.Slice(), []int{1, 2, 0}) {
		t.Errorf("self assignment changed contents: %v", &dst)
	}
}

func TestSwap(t *testing.T) {
	a := FromSlice(1, 2)
	b := FromSlice(7, 8, 9)
	ca, cb := a.Cap(), b.Cap()
	a.Swap(b)
	if !equalInts(a.Slice(), []int{7, 8, 9}) || !equalInts(b.Slice(), []int{1, 2}) {
		t.Errorf("unexpected contents after swap: a=%v b=%v", a, b)
	}
	if a.Cap() != cb || b.Cap() != ca {
		t.Errorf("swap must exchange capacities too")
	}
}

func TestIterationStopsEarly(t *testing.T) {
	v := FromSlice(1, 2, 3, 4)
	var seen []int
	for _, x := range v.All() {
		if x == 3 {
			break
		}
		seen = append(seen, x)
	}
	if !equalInts(seen, []int{1, 2}) {
		t.Errorf("expected iteration to stop at 3, saw %v", seen)
	}
	sum := 0
	for p := v.Begin(); !p.Equal(v.End()); p = p.Next() {
		sum += p.Get()
	}
	if sum != 10 {
		t.Errorf("expected position walk to sum up to 10, got %d", sum)
	}
}

func TestEqualFunc(t *testing.T) {
	a := FromSlice("a", "B")
	b := FromSlice("A", "b")
	fold := func(x, y string) bool { return len(x) == len(y) }
	if !EqualFunc(a, b, fold) {
		t.Errorf("expected EqualFunc to use the given comparison")
	}
	if Equal(a, b) {
		t.Errorf("expected a and b to differ")
	}
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
