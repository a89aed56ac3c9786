package seqkit

import (
	"iter"
	"slices"
)

// Of returns an Array sequence holding a copy of vs.
func Of[E any](vs ...E) Sequence[E] {
	return FromSlice(vs)
}

// FromSlice returns an Array sequence holding a copy of vs.
func FromSlice[E any](vs []E) Sequence[E] {
	if len(vs) == 0 {
		return Empty[E]()
	}
	return &Array[E]{backing: slices.Clone(vs)}
}

// Array is a sequence backed by an immutable slice and an offset into it.
type Array[E any] struct {
	backing []E
	offset  int
}

func (*Array[E]) sequence() {}

func (a *Array[E]) Head() E {
	if a.IsEmpty() {
		panic(ErrEmpty.F("Head of an empty sequence"))
	}
	return a.backing[a.offset]
}

func (a *Array[E]) Tail() Sequence[E] {
	if a.IsEmpty() {
		panic(ErrEmpty.F("Tail of an empty sequence"))
	}
	return a.drop(1)
}

func (a *Array[E]) Length() Length {
	if a == nil {
		return 0
	}
	return Length(len(a.backing) - a.offset)
}

func (a *Array[E]) IsEmpty() bool { return a.Length() == 0 }

func (a *Array[E]) IsFinite() bool { return true }

func (a *Array[E]) String() string { return format[E](a) }

func (a *Array[E]) MarshalJSON() ([]byte, error) { return marshalJSON[E](a) }

func (a *Array[E]) at(i int) E {
	return a.backing[a.offset+i]
}

func (a *Array[E]) take(n int) Sequence[E] {
	if Length(n) >= a.Length() {
		return a
	}
	// the backing is never written, so re-slicing shares it safely
	return &Array[E]{backing: a.backing[:a.offset+n], offset: a.offset}
}

func (a *Array[E]) drop(n int) Sequence[E] {
	if Length(n) >= a.Length() {
		return Empty[E]()
	}
	return &Array[E]{backing: a.backing, offset: a.offset + n}
}

func (a *Array[E]) reverse() Sequence[E] {
	if a.Length() <= 1 {
		return a
	}
	vs := slices.Clone(a.backing[a.offset:])
	slices.Reverse(vs)
	return &Array[E]{backing: vs}
}

func (a *Array[E]) sortedFunc(cmp func(a, b E) int) Sequence[E] {
	if a.IsEmpty() {
		return Empty[E]()
	}
	vs := slices.Clone(a.backing[a.offset:])
	slices.SortStableFunc(vs, cmp)
	return &Array[E]{backing: vs}
}

func (a *Array[E]) values() iter.Seq[E] {
	return func(yield func(E) bool) {
		if a == nil {
			return
		}
		for _, v := range a.backing[a.offset:] {
			if !yield(v) {
				return
			}
		}
	}
}
