package seqkit

import "iter"

// Repeat returns an infinite sequence that cycles through the elements of s.
// An empty or infinite s is returned as is.
func Repeat[E any](s Sequence[E]) Sequence[E] {
	s = orEmpty(s)
	if s.IsEmpty() || knownInfinite(s) {
		return s
	}
	if c, ok := s.(*Cyclic[E]); ok && c.length == Length(c.period) {
		return c.withLength(Infinite)
	}
	p := s.Length()
	if p == Infinite {
		return s
	}
	return &Cyclic[E]{backing: s, period: int(p), cur: s, length: Infinite}
}

// RepeatN returns length elements of s repeated over and over, starting at offset.
// The i-th element of the result is the (offset+i) mod Length(s) element of s.
// length may be Infinite.
//
// An empty s or a zero length gives an empty sequence.
// An infinite s is never repeated, the result is then Take(Drop(s, offset), length).
// RepeatN panics with ErrInvalidArgument when offset is not an index of s or length is negative.
func RepeatN[E any](s Sequence[E], offset int, length Length) Sequence[E] {
	s = orEmpty(s)
	if length < 0 {
		panic(ErrInvalidArgument.F("negative cyclic length: %d", length))
	}
	if s.IsEmpty() || length == 0 {
		return Empty[E]()
	}
	p := s.Length()
	if p == Infinite {
		if offset < 0 {
			panic(ErrInvalidArgument.F("negative cyclic offset: %d", offset))
		}
		return Take(Drop(s, offset), int(length))
	}
	if offset < 0 || Length(offset) >= p {
		panic(ErrInvalidArgument.F("cyclic offset %d is out of [0, %d)", offset, p))
	}
	return &Cyclic[E]{
		backing: s,
		period:  int(p),
		offset:  offset,
		cur:     Drop(s, offset),
		length:  length,
	}
}

// Cyclic is a view that repeats a finite, non-empty backing sequence.
// Its elements are computed with index arithmetic, the backing is never copied.
type Cyclic[E any] struct {
	backing Sequence[E]
	period  int
	offset  int
	// cur is the backing from offset onwards.
	cur    Sequence[E]
	length Length
}

func (*Cyclic[E]) sequence() {}

func (c *Cyclic[E]) Head() E { return c.cur.Head() }

func (c *Cyclic[E]) Tail() Sequence[E] {
	if c.length == 1 {
		return Empty[E]()
	}
	next := &Cyclic[E]{backing: c.backing, period: c.period, length: c.length}
	if c.length != Infinite {
		next.length--
	}
	next.offset = (c.offset + 1) % c.period
	if next.offset == 0 {
		next.cur = c.backing
	} else {
		next.cur = c.cur.Tail()
	}
	return next
}

func (c *Cyclic[E]) Length() Length { return c.length }

func (c *Cyclic[E]) IsEmpty() bool { return c.length == 0 }

func (c *Cyclic[E]) IsFinite() bool { return c.length != Infinite }

func (c *Cyclic[E]) String() string { return format[E](c) }

func (c *Cyclic[E]) MarshalJSON() ([]byte, error) { return marshalJSON[E](c) }

func (c *Cyclic[E]) withLength(n Length) *Cyclic[E] {
	return &Cyclic[E]{backing: c.backing, period: c.period, offset: c.offset, cur: c.cur, length: n}
}

// window is the number of elements after which the view starts to repeat itself.
func (c *Cyclic[E]) window() int {
	if c.length != Infinite && c.length < Length(c.period) {
		return int(c.length)
	}
	return c.period
}

func (c *Cyclic[E]) at(i int) E {
	return nth(c.backing, (c.offset+i%c.period)%c.period)
}

func (c *Cyclic[E]) take(n int) Sequence[E] {
	if n == 0 {
		return Empty[E]()
	}
	if Length(n) >= c.length {
		return c
	}
	return c.withLength(Length(n))
}

func (c *Cyclic[E]) drop(n int) Sequence[E] {
	if n == 0 {
		return c
	}
	if c.length != Infinite && Length(n) >= c.length {
		return Empty[E]()
	}
	next := &Cyclic[E]{backing: c.backing, period: c.period, length: c.length}
	if c.length != Infinite {
		next.length -= Length(n)
	}
	next.offset = (c.offset + n%c.period) % c.period
	next.cur = Drop(c.backing, next.offset)
	return next
}

// indexFunc looks for a match within one period,
// as the rest of the view only repeats it.
func (c *Cyclic[E]) indexFunc(pred func(E) bool) int {
	var (
		cur    = c.cur
		offset = c.offset
	)
	for i, n := 0, c.window(); i < n; i++ {
		if pred(cur.Head()) {
			return i
		}
		if offset++; offset == c.period {
			offset, cur = 0, c.backing
		} else {
			cur = cur.Tail()
		}
	}
	return -1
}

func (c *Cyclic[E]) lastIndexFunc(pred func(E) bool) int {
	if c.length == Infinite {
		panic(ErrUnsupported.F("last index of an infinite sequence"))
	}
	r := c.reverse().(*Cyclic[E]).indexFunc(pred)
	if r < 0 {
		return -1
	}
	return int(c.length) - 1 - r
}

// reverse reverses the backing and moves the offset so the reversed backing,
// read from the new offset, replays the view backwards.
// For a finite view that is its last element, for an infinite one the element before offset.
func (c *Cyclic[E]) reverse() Sequence[E] {
	var (
		p       = c.period
		backing = Reverse(c.backing)
		offset  int
	)
	if c.length == Infinite {
		offset = p - 1 - c.offset
	} else {
		offset = (p - (c.offset+int(c.length%Length(p)))%p) % p
	}
	return &Cyclic[E]{
		backing: backing,
		period:  p,
		offset:  offset,
		cur:     Drop(backing, offset),
		length:  c.length,
	}
}

func (c *Cyclic[E]) values() iter.Seq[E] {
	return func(yield func(E) bool) {
		var (
			cur    = c.cur
			offset = c.offset
		)
		for i := Length(0); c.length == Infinite || i < c.length; i++ {
			if !yield(cur.Head()) {
				return
			}
			if offset++; offset == c.period {
				offset, cur = 0, c.backing
			} else {
				cur = cur.Tail()
			}
		}
	}
}

func mapCyclic[E, T any](c *Cyclic[E], fn func(E) T) Sequence[T] {
	backing := Map(c.backing, fn)
	return &Cyclic[T]{
		backing: backing,
		period:  c.period,
		offset:  c.offset,
		cur:     lazyDrop(backing, c.offset),
		length:  c.length,
	}
}

// filterCyclic filters one period of an infinite view, and repeats the outcome.
// A predicate that holds for none of the elements gives an empty sequence instead of diverging.
func filterCyclic[E any](c *Cyclic[E], pred func(E) bool) Sequence[E] {
	var vs []E
	for v := range c.take(c.period).(*Cyclic[E]).values() {
		if pred(v) {
			vs = append(vs, v)
		}
	}
	return Repeat(FromSlice(vs))
}
