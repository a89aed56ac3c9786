package seqkit

import (
	"cmp"
	"slices"

	"go.llib.dev/frameless/port/ds/dsset"
)

// sizeHint is the length the result of a combinator has, when it is the same as that of s.
func sizeHint[E any](s Sequence[E]) Length {
	if n, ok := knownLength(s); ok {
		return n
	}
	return unknownLength
}

// cursor steps through a sequence on behalf of a generator.
// It is only touched from the generator, so it needs no locking.
//
// A generator advances the cursor only after its callbacks returned,
// so a panicking callback leaves the element in place for the next attempt.
type cursor[E any] struct {
	s Sequence[E]
}

func (c *cursor[E]) peek() (E, error) {
	if c.s.IsEmpty() {
		var zero E
		return zero, exhausted(c.s)
	}
	return c.s.Head(), nil
}

func (c *cursor[E]) advance() {
	c.s = c.s.Tail()
}

func (c *cursor[E]) next() (E, error) {
	v, err := c.peek()
	if err != nil {
		return v, err
	}
	c.advance()
	return v, nil
}

// Map returns a lazy sequence of fn applied to the elements of s.
// fn is called at most once per element, and only when that element is needed.
func Map[E, T any](s Sequence[E], fn func(E) T) Sequence[T] {
	s = orEmpty(s)
	if s.IsEmpty() {
		return Empty[T]()
	}
	if c, ok := s.(*Cyclic[E]); ok {
		return mapCyclic(c, fn)
	}
	cur := &cursor[E]{s: s}
	return newLazy(func() (T, error) {
		v, err := cur.peek()
		if err != nil {
			var zero T
			return zero, err
		}
		out := fn(v)
		cur.advance()
		return out, nil
	}, sizeHint(s))
}

// Filter returns a lazy sequence of the elements of s that satisfy pred.
//
// On an infinite s, the search for the next match does not return if there is none,
// except for cyclic views, which are filtered one period long.
func Filter[E any](s Sequence[E], pred func(E) bool) Sequence[E] {
	s = orEmpty(s)
	if s.IsEmpty() {
		return s
	}
	if c, ok := s.(*Cyclic[E]); ok && c.length == Infinite {
		return filterCyclic(c, pred)
	}
	cur := &cursor[E]{s: s}
	return newLazy(func() (E, error) {
		for {
			v, err := cur.peek()
			if err != nil {
				return v, err
			}
			ok := pred(v)
			cur.advance()
			if ok {
				return v, nil
			}
		}
	}, unknownLength)
}

// Distinct returns a lazy sequence of the elements of s without repetitions,
// keeping the first occurrence of each value.
func Distinct[E comparable](s Sequence[E]) Sequence[E] {
	s = orEmpty(s)
	if s.IsEmpty() {
		return s
	}
	if c, ok := s.(*Cyclic[E]); ok {
		s = c.take(c.window())
	}
	var (
		cur  = &cursor[E]{s: s}
		seen dsset.Set[E]
	)
	return newLazy(func() (E, error) {
		for {
			v, err := cur.next()
			if err != nil {
				return v, err
			}
			if seen.Contains(v) {
				continue
			}
			seen.Append(v)
			return v, nil
		}
	}, unknownLength)
}

// Append returns the elements of a followed by the elements of b.
// The elements of a finite a are placed in front of b, which is shared, not copied.
// An infinite a is returned as is, without evaluating anything.
func Append[E any](a, b Sequence[E]) Sequence[E] {
	a, b = orEmpty(a), orEmpty(b)
	if knownInfinite(a) || b.IsEmpty() {
		return a
	}
	if !knownFinite(a) {
		return appendLazy(a, b)
	}
	if a.IsEmpty() {
		return b
	}
	var vs []E
	for v := range Iter(a) {
		vs = append(vs, v)
	}
	return fromSliceLinked(vs, b)
}

// appendLazy defers the walk of an a of unknown length,
// which could be an unbounded generator.
func appendLazy[E any](a, b Sequence[E]) Sequence[E] {
	cur := &cursor[E]{s: a}
	var onB bool
	return newLazy(func() (E, error) {
		if !onB && cur.s.IsEmpty() {
			if err := Err(cur.s); err != nil {
				var zero E
				return zero, err
			}
			cur.s, onB = b, true
		}
		return cur.next()
	}, appendedLength(b))
}

// appendedLength is the length hint of a lazily appended sequence,
// which is only known when b is infinite.
func appendedLength[E any](b Sequence[E]) Length {
	if knownInfinite(b) {
		return Infinite
	}
	return unknownLength
}

// AppendValues returns s followed by vs.
func AppendValues[E any](s Sequence[E], vs ...E) Sequence[E] {
	return Append(s, FromSlice(vs))
}

// Prepend returns vs followed by s, sharing s.
func Prepend[E any](s Sequence[E], vs ...E) Sequence[E] {
	return fromSliceLinked(vs, orEmpty(s))
}

// Concat appends the given sequences one after the other.
func Concat[E any](ss ...Sequence[E]) Sequence[E] {
	out := Empty[E]()
	for i := len(ss) - 1; 0 <= i; i-- {
		out = Append(ss[i], out)
	}
	return out
}

// Take returns the first n elements of s, or s when it is not longer than n.
// Nothing beyond the n-th element is evaluated.
func Take[E any](s Sequence[E], n int) Sequence[E] {
	s = orEmpty(s)
	if n <= 0 {
		return Empty[E]()
	}
	if t, ok := s.(taker[E]); ok {
		return t.take(n)
	}
	known, ok := knownLength(s)
	if ok && known <= Length(n) {
		return s
	}
	hint := unknownLength
	if ok {
		hint = Length(n)
	}
	var (
		cur   = &cursor[E]{s: s}
		taken int
	)
	return newLazy(func() (E, error) {
		if taken == n {
			var zero E
			return zero, ErrDone
		}
		v, err := cur.next()
		if err != nil {
			return v, err
		}
		taken++
		return v, nil
	}, hint)
}

// Drop returns s without its first n elements.
// It walks the tail of s n times, unless the representation can skip ahead directly.
func Drop[E any](s Sequence[E], n int) Sequence[E] {
	s = orEmpty(s)
	if n <= 0 {
		return s
	}
	if d, ok := s.(dropper[E]); ok {
		return d.drop(n)
	}
	for ; 0 < n; n-- {
		if s.IsEmpty() {
			return s
		}
		s = s.Tail()
	}
	return s
}

// lazyDrop is Drop deferred until the first element of the result is needed.
func lazyDrop[E any](s Sequence[E], n int) Sequence[E] {
	if n <= 0 {
		return s
	}
	hint := sizeHint(s)
	if 0 <= hint && hint != Infinite {
		hint = max(hint-Length(n), 0)
	}
	var cur *cursor[E]
	return newLazy(func() (E, error) {
		if cur == nil {
			cur = &cursor[E]{s: Drop(s, n)}
		}
		return cur.next()
	}, hint)
}

// TakeWhile returns the longest prefix of s whose elements satisfy pred.
func TakeWhile[E any](s Sequence[E], pred func(E) bool) Sequence[E] {
	s = orEmpty(s)
	if s.IsEmpty() {
		return s
	}
	var (
		cur  = &cursor[E]{s: s}
		done bool
	)
	return newLazy(func() (E, error) {
		if done {
			var zero E
			return zero, ErrDone
		}
		v, err := cur.peek()
		if err != nil {
			return v, err
		}
		if !pred(v) {
			done = true
			return v, ErrDone
		}
		cur.advance()
		return v, nil
	}, unknownLength)
}

// DropWhile returns s without its longest prefix whose elements satisfy pred.
func DropWhile[E any](s Sequence[E], pred func(E) bool) Sequence[E] {
	s = orEmpty(s)
	for !s.IsEmpty() && pred(s.Head()) {
		s = s.Tail()
	}
	return s
}

// Sorted returns the elements of a finite s in ascending order.
// It panics with ErrCapacityExceeded when s is infinite.
func Sorted[E cmp.Ordered](s Sequence[E]) Sequence[E] {
	return SortedFunc(s, cmp.Compare[E])
}

// SortedFunc returns the elements of a finite s ordered by cmp, keeping the order of equal elements.
// An Array is sorted into a new Array, any other sequence into a Linked one.
func SortedFunc[E any](s Sequence[E], cmp func(a, b E) int) Sequence[E] {
	s = orEmpty(s)
	if st, ok := s.(sorter[E]); ok {
		return st.sortedFunc(cmp)
	}
	vs, err := ToSlice(s)
	if err != nil {
		panic(err)
	}
	slices.SortStableFunc(vs, cmp)
	return fromSliceLinked(vs, Empty[E]())
}

// Pair holds two values, as produced by Zip.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Zip pairs up the elements of a and b, until either of them runs out.
func Zip[A, B any](a Sequence[A], b Sequence[B]) Sequence[Pair[A, B]] {
	a, b = orEmpty(a), orEmpty(b)
	if a.IsEmpty() || b.IsEmpty() {
		return Empty[Pair[A, B]]()
	}
	hint := unknownLength
	if la, ok := knownLength(a); ok {
		if lb, ok := knownLength(b); ok {
			hint = min(la, lb)
		}
	}
	var (
		curA = &cursor[A]{s: a}
		curB = &cursor[B]{s: b}
	)
	return newLazy(func() (Pair[A, B], error) {
		va, err := curA.peek()
		if err != nil {
			return Pair[A, B]{}, err
		}
		vb, err := curB.peek()
		if err != nil {
			return Pair[A, B]{}, err
		}
		curA.advance()
		curB.advance()
		return Pair[A, B]{First: va, Second: vb}, nil
	}, hint)
}

// Unzip splits a sequence of pairs into the sequence of their first and of their second values.
func Unzip[A, B any](s Sequence[Pair[A, B]]) (Sequence[A], Sequence[B]) {
	return Map(s, func(p Pair[A, B]) A { return p.First }),
		Map(s, func(p Pair[A, B]) B { return p.Second })
}

// Partition splits s into the elements that satisfy pred and those that do not.
// A finite s is partitioned at once, any other lazily.
func Partition[E any](s Sequence[E], pred func(E) bool) (Sequence[E], Sequence[E]) {
	s = orEmpty(s)
	if !knownFinite(s) {
		return Filter(s, pred), Filter(s, func(v E) bool { return !pred(v) })
	}
	var in, out []E
	for v := range Iter(s) {
		if pred(v) {
			in = append(in, v)
		} else {
			out = append(out, v)
		}
	}
	return FromSlice(in), FromSlice(out)
}
