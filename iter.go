package seqkit

import "iter"

type ranger[E any] interface {
	values() iter.Seq[E]
}

// Iter returns an iterator over the elements of s.
// Iterating an infinite sequence only ends when the loop breaks.
func Iter[E any](s Sequence[E]) iter.Seq[E] {
	s = orEmpty(s)
	if r, ok := s.(ranger[E]); ok {
		return r.values()
	}
	return func(yield func(E) bool) {
		for cur := s; !cur.IsEmpty(); cur = cur.Tail() {
			if !yield(cur.Head()) {
				return
			}
		}
	}
}

// Iter2 returns an iterator over the indexes and elements of s.
func Iter2[E any](s Sequence[E]) iter.Seq2[int, E] {
	return func(yield func(int, E) bool) {
		var i int
		for v := range Iter(s) {
			if !yield(i, v) {
				return
			}
			i++
		}
	}
}
