// Package seqkit implements ordered sequences that can be finite or infinite,
// eagerly materialised or lazily generated on demand.
//
// A Sequence is one of four representations:
//
//   - Array, backed by a slice and an offset, with O(1) indexing.
//   - Linked, an immutable cons cell chain, where sequences share their tails.
//   - Lazy, a chain of nodes whose values are produced by a generator on first access
//     and then memoised, so every element is computed at most once, even under concurrent access.
//   - Cyclic, a view that repeats a finite backing sequence using index arithmetic.
//
// Operations beyond Head, Tail and Length are package level functions (Map, Filter, Take, Equal, ...),
// which use representation specific shortcuts where one exists.
package seqkit

import (
	"math"
	"strconv"

	"go.llib.dev/frameless/port/ds"
)

// Length is the number of elements in a sequence, or Infinite.
type Length int

// Infinite is the Length of an unbounded sequence.
const Infinite Length = math.MaxInt

const unknownLength Length = -1

// IsInfinite reports whether l is the length of an unbounded sequence.
func (l Length) IsInfinite() bool { return l == Infinite }

func (l Length) String() string {
	if l.IsInfinite() {
		return "∞"
	}
	return strconv.Itoa(int(l))
}

// Sequence is an ordered, possibly infinite container.
//
// Head and Tail panic with ErrEmpty when the sequence is empty.
// The set of implementations is closed, use the constructors of this package to make one.
type Sequence[E any] interface {
	// Head returns the first element.
	Head() E
	// Tail returns the sequence of the elements after the Head.
	Tail() Sequence[E]
	// Length is the number of elements, or Infinite.
	Length() Length
	IsEmpty() bool
	// IsFinite reports whether Length is not Infinite.
	IsFinite() bool
	String() string
	// Values, Lookup and Len make every sequence a ds.ReadOnlySequence,
	// Len is math.MaxInt for an infinite one.
	ds.ReadOnlySequence[E]
	ds.Len

	sequence()
}

var (
	// FormatLimit is the number of elements rendered by the String method of a sequence.
	// The rest is abbreviated with "...".
	FormatLimit = 10
	// MaxSliceLength is the largest sequence ToSlice is willing to materialise.
	MaxSliceLength Length = math.MaxInt32
)

// Empty returns the empty sequence.
func Empty[E any]() Sequence[E] {
	return (*Linked[E])(nil)
}

func orEmpty[E any](s Sequence[E]) Sequence[E] {
	if s == nil {
		return Empty[E]()
	}
	return s
}

// knownLength reports the length of s when it is available without evaluating any lazy element.
func knownLength[E any](s Sequence[E]) (Length, bool) {
	switch s := s.(type) {
	case *Array[E]:
		return s.Length(), true
	case *Cyclic[E]:
		return s.Length(), true
	case *Linked[E]:
		return s.knownLength()
	case *Lazy[E]:
		return s.knownLength()
	default:
		return unknownLength, false
	}
}

func knownInfinite[E any](s Sequence[E]) bool {
	n, ok := knownLength(s)
	return ok && n.IsInfinite()
}

func knownFinite[E any](s Sequence[E]) bool {
	n, ok := knownLength(s)
	return ok && !n.IsInfinite()
}

func succ(n Length) Length {
	if n.IsInfinite() {
		return Infinite
	}
	return n + 1
}

// optional capabilities a representation may have, in the manner of io.WriterTo.
type (
	getter[E any] interface {
		at(i int) E
	}
	taker[E any] interface {
		take(n int) Sequence[E]
	}
	dropper[E any] interface {
		drop(n int) Sequence[E]
	}
	reverser[E any] interface {
		reverse() Sequence[E]
	}
	indexer[E any] interface {
		indexFunc(pred func(E) bool) int
	}
	lastIndexer[E any] interface {
		lastIndexFunc(pred func(E) bool) int
	}
	sorter[E any] interface {
		sortedFunc(cmp func(a, b E) int) Sequence[E]
	}
)
