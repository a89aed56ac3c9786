package seqkit

import (
	"iter"
	"sync/atomic"

	"go.llib.dev/frameless/pkg/iterkit"
)

// Linked is an immutable cons cell.
// Linked sequences share their tails, so prepending to a sequence never copies it.
//
// The nil *Linked is the empty sequence.
type Linked[E any] struct {
	head E
	tail Sequence[E]
	// length is zero until it is known, a non-empty cell is at least one long.
	length atomic.Int64
}

// Cons returns a sequence with head in front of tail.
// The tail is shared, not copied.
func Cons[E any](head E, tail Sequence[E]) Sequence[E] {
	return cons(head, tail)
}

func cons[E any](head E, tail Sequence[E]) *Linked[E] {
	tail = orEmpty(tail)
	l := &Linked[E]{head: head, tail: tail}
	if n, ok := knownLength(tail); ok {
		l.length.Store(int64(succ(n)))
	}
	return l
}

// List returns a Linked sequence of the given values.
func List[E any](vs ...E) Sequence[E] {
	return fromSliceLinked(vs, Empty[E]())
}

// Collect drains an iterator into a Linked sequence.
// The iterator must be finite.
func Collect[E any](i iter.Seq[E]) Sequence[E] {
	return fromSliceLinked(iterkit.Collect(i), Empty[E]())
}

func fromSliceLinked[E any](vs []E, tail Sequence[E]) Sequence[E] {
	out := tail
	for i := len(vs) - 1; 0 <= i; i-- {
		out = cons(vs[i], out)
	}
	return out
}

func (*Linked[E]) sequence() {}

func (l *Linked[E]) Head() E {
	if l.IsEmpty() {
		panic(ErrEmpty.F("Head of an empty sequence"))
	}
	return l.head
}

func (l *Linked[E]) Tail() Sequence[E] {
	if l.IsEmpty() {
		panic(ErrEmpty.F("Tail of an empty sequence"))
	}
	return l.tail
}

func (l *Linked[E]) IsEmpty() bool {
	return l == nil || l.tail == nil
}

func (l *Linked[E]) IsFinite() bool { return !l.Length().IsInfinite() }

func (l *Linked[E]) String() string { return format[E](l) }

func (l *Linked[E]) MarshalJSON() ([]byte, error) { return marshalJSON[E](l) }

func (l *Linked[E]) knownLength() (Length, bool) {
	if l.IsEmpty() {
		return 0, true
	}
	if n := l.length.Load(); n != 0 {
		return Length(n), true
	}
	return unknownLength, false
}

func (l *Linked[E]) Length() Length {
	if n, ok := l.knownLength(); ok {
		return n
	}
	// cells with an unknown length are the ones consed onto a lazy tail,
	// so the chain is walked iteratively down to the first known length.
	var (
		pending []*Linked[E]
		cur     Sequence[E] = l
		n       Length
	)
	for {
		cell, ok := cur.(*Linked[E])
		if !ok {
			n = cur.Length()
			break
		}
		if known, ok := cell.knownLength(); ok {
			n = known
			break
		}
		pending = append(pending, cell)
		cur = cell.tail
	}
	for i := len(pending) - 1; 0 <= i; i-- {
		n = succ(n)
		pending[i].length.Store(int64(n))
	}
	return n
}
