package seqkit

import (
	"hash/maphash"
)

// nth returns the i-th element without bounds checking.
func nth[E any](s Sequence[E], i int) E {
	if g, ok := s.(getter[E]); ok {
		return g.at(i)
	}
	for ; 0 < i; i-- {
		s = s.Tail()
	}
	return s.Head()
}

// Lookup returns the element at index i,
// or false when i is negative or not smaller than the length of s.
// An infinite sequence is walked only i steps.
func Lookup[E any](s Sequence[E], i int) (E, bool) {
	var zero E
	s = orEmpty(s)
	if i < 0 {
		return zero, false
	}
	if n, ok := knownLength(s); ok {
		if n <= Length(i) {
			return zero, false
		}
		if g, ok := s.(getter[E]); ok {
			return g.at(i), true
		}
	}
	for ; 0 < i; i-- {
		if s.IsEmpty() {
			return zero, false
		}
		s = s.Tail()
	}
	if s.IsEmpty() {
		return zero, false
	}
	return s.Head(), true
}

// Get returns the element at index i, or an ErrIndexOutOfRange error.
func Get[E any](s Sequence[E], i int) (E, error) {
	v, ok := Lookup(s, i)
	if !ok {
		return v, ErrIndexOutOfRange.F("index %d", i)
	}
	return v, nil
}

// At returns the element at index i.
// Like indexing a slice, it panics with ErrIndexOutOfRange when there is no such element.
func At[E any](s Sequence[E], i int) E {
	v, ok := Lookup(s, i)
	if !ok {
		panic(ErrIndexOutOfRange.F("index %d", i))
	}
	return v
}

// First returns the head of s, if s has one.
func First[E any](s Sequence[E]) (E, bool) {
	s = orEmpty(s)
	if s.IsEmpty() {
		var zero E
		return zero, false
	}
	return s.Head(), true
}

// Last returns the last element of a finite sequence.
func Last[E any](s Sequence[E]) (E, error) {
	var zero E
	s = orEmpty(s)
	if s.IsEmpty() {
		return zero, ErrEmpty.F("last element of an empty sequence")
	}
	if knownInfinite(s) {
		return zero, ErrUnsupported.F("last element of an infinite sequence")
	}
	if g, ok := s.(getter[E]); ok {
		return g.at(int(s.Length()) - 1), nil
	}
	for {
		tail := s.Tail()
		if tail.IsEmpty() {
			return s.Head(), nil
		}
		s = tail
	}
}

// Init returns every element of s but the last.
// The Init of an infinite sequence is the sequence itself.
func Init[E any](s Sequence[E]) (Sequence[E], error) {
	s = orEmpty(s)
	if s.IsEmpty() {
		return nil, ErrEmpty.F("init of an empty sequence")
	}
	n := s.Length()
	if n.IsInfinite() {
		return s, nil
	}
	return Take(s, int(n)-1), nil
}

// Contains reports whether v is an element of s.
// Like IndexOf, it only returns for an infinite s that holds v, or for a cyclic view.
func Contains[E comparable](s Sequence[E], v E) bool {
	return IndexOf(s, v) >= 0
}

// ContainsFunc reports whether an element of s satisfies pred.
func ContainsFunc[E any](s Sequence[E], pred func(E) bool) bool {
	return IndexFunc(s, pred) >= 0
}

// IndexOf returns the index of the first occurrence of v in s, or -1.
// On an infinite sequence that never contains v, it does not return,
// except for cyclic views, which are searched one period long.
func IndexOf[E comparable](s Sequence[E], v E) int {
	return IndexFunc(s, func(e E) bool { return e == v })
}

// IndexFunc returns the index of the first element satisfying pred, or -1.
func IndexFunc[E any](s Sequence[E], pred func(E) bool) int {
	s = orEmpty(s)
	if i, ok := s.(indexer[E]); ok {
		return i.indexFunc(pred)
	}
	var i int
	for v := range Iter(s) {
		if pred(v) {
			return i
		}
		i++
	}
	return -1
}

// LastIndexOf returns the index of the last occurrence of v in s, or -1.
// It panics with ErrUnsupported when s is infinite.
func LastIndexOf[E comparable](s Sequence[E], v E) int {
	return LastIndexFunc(s, func(e E) bool { return e == v })
}

// LastIndexFunc returns the index of the last element satisfying pred, or -1.
// It panics with ErrUnsupported when s is infinite.
func LastIndexFunc[E any](s Sequence[E], pred func(E) bool) int {
	s = orEmpty(s)
	if li, ok := s.(lastIndexer[E]); ok {
		return li.lastIndexFunc(pred)
	}
	if knownInfinite(s) {
		panic(ErrUnsupported.F("last index of an infinite sequence"))
	}
	var (
		last = -1
		i    int
	)
	for v := range Iter(s) {
		if pred(v) {
			last = i
		}
		i++
	}
	return last
}

// Equal reports whether a and b hold the same elements in the same order.
func Equal[E comparable](a, b Sequence[E]) bool {
	return EqualFunc(a, b, func(x, y E) bool { return x == y })
}

// EqualFunc reports whether a and b hold pairwise equal elements in the same order.
//
// Sequences of a different known length are unequal without looking at their elements.
// Two infinite cyclic views are compared over the least common multiple of their periods.
// Other infinite sequences are equal only when they continue with the same sequence
// after their linked prefixes, since their elements can't be compared one by one.
// Otherwise both sequences are walked in lockstep,
// until a difference, their ends, or a tail that both of them share.
func EqualFunc[E any](a, b Sequence[E], eq func(x, y E) bool) bool {
	a, b = orEmpty(a), orEmpty(b)
	la, okA := knownLength(a)
	lb, okB := knownLength(b)
	if okA && okB {
		if la != lb {
			return false
		}
		if la.IsInfinite() {
			return equalInfinite(a, b, eq)
		}
	}
	for {
		if a == b {
			return true
		}
		ae, be := a.IsEmpty(), b.IsEmpty()
		if ae || be {
			return ae == be
		}
		if !eq(a.Head(), b.Head()) {
			return false
		}
		a, b = a.Tail(), b.Tail()
	}
}

// equalInfinite compares the finite linked prefixes of a and b,
// then requires that they continue with the same sequence,
// or with cyclic views that repeat the same pattern.
func equalInfinite[E any](a, b Sequence[E], eq func(x, y E) bool) bool {
	for {
		if a == b {
			return true
		}
		ca, cyclicA := a.(*Cyclic[E])
		cb, cyclicB := b.(*Cyclic[E])
		if cyclicA && cyclicB {
			window := lcm(ca.period, cb.period)
			return EqualFunc(ca.take(window), cb.take(window), eq)
		}
		_, linkedA := a.(*Linked[E])
		_, linkedB := b.(*Linked[E])
		if !linkedA && !linkedB {
			return false
		}
		if !eq(a.Head(), b.Head()) {
			return false
		}
		a, b = a.Tail(), b.Tail()
	}
}

func lcm(a, b int) int {
	x, y := a, b
	for y != 0 {
		x, y = y, x%y
	}
	return a / x * b
}

var hashSeed = maphash.MakeSeed()

// Hash returns an order dependent hash of the elements of s,
// equal sequences have equal hashes within the same process.
func Hash[E comparable](s Sequence[E]) (uint64, error) {
	s = orEmpty(s)
	if knownInfinite(s) || !s.IsFinite() {
		return 0, ErrCapacityExceeded.F("hash of an infinite sequence")
	}
	var h uint64 = 1
	for v := range Iter(s) {
		h = 31*h + maphash.Comparable(hashSeed, v)
	}
	return h, nil
}

// ForEach calls fn with every element of s, in order.
func ForEach[E any](s Sequence[E], fn func(E)) {
	for v := range Iter(s) {
		fn(v)
	}
}

// Size is the length of s as an int, math.MaxInt for an infinite sequence.
func Size[E any](s Sequence[E]) int {
	return int(orEmpty(s).Length())
}

// ToSlice materialises a finite sequence.
func ToSlice[E any](s Sequence[E]) ([]E, error) {
	s = orEmpty(s)
	if knownInfinite(s) {
		return nil, ErrCapacityExceeded.F("an infinite sequence can't be made a slice")
	}
	n := s.Length()
	if n.IsInfinite() {
		return nil, ErrCapacityExceeded.F("an infinite sequence can't be made a slice")
	}
	if MaxSliceLength < n {
		return nil, ErrCapacityExceeded.F("sequence of %d elements exceeds MaxSliceLength (%d)", n, MaxSliceLength)
	}
	out := make([]E, 0, n)
	for v := range Iter(s) {
		out = append(out, v)
	}
	return out, nil
}

// Fold combines the elements of a finite, non-empty sequence from the left,
// starting with its head.
func Fold[E any](s Sequence[E], fn func(acc, v E) E) (E, error) {
	s = orEmpty(s)
	if s.IsEmpty() {
		var zero E
		return zero, ErrEmpty.F("fold of an empty sequence")
	}
	if knownInfinite(s) {
		var zero E
		return zero, ErrUnsupported.F("fold of an infinite sequence")
	}
	return FoldLeft(s.Tail(), s.Head(), fn), nil
}

// FoldLeft combines the elements of s from the left, starting with identity.
// It panics with ErrUnsupported when s is infinite.
func FoldLeft[E, T any](s Sequence[E], identity T, fn func(acc T, v E) T) T {
	s = orEmpty(s)
	if knownInfinite(s) {
		panic(ErrUnsupported.F("fold of an infinite sequence"))
	}
	acc := identity
	for v := range Iter(s) {
		acc = fn(acc, v)
	}
	return acc
}

// FoldRight combines the elements of s from the right, starting with identity.
// It panics with ErrUnsupported when s is infinite.
func FoldRight[E, T any](s Sequence[E], identity T, fn func(v E, acc T) T) T {
	s = orEmpty(s)
	if knownInfinite(s) {
		panic(ErrUnsupported.F("fold of an infinite sequence"))
	}
	acc := identity
	for v := range Iter(Reverse(s)) {
		acc = fn(v, acc)
	}
	return acc
}

// All reports whether pred holds for every element of s.
// It is true for an empty sequence.
func All[E any](s Sequence[E], pred func(E) bool) bool {
	return IndexFunc(s, func(v E) bool { return !pred(v) }) < 0
}

// Any reports whether pred holds for at least one element of s.
func Any[E any](s Sequence[E], pred func(E) bool) bool {
	return IndexFunc(s, pred) >= 0
}

// Reverse returns the elements of a finite sequence in reverse order.
// It panics with ErrUnsupported for an infinite sequence, except for cyclic views,
// whose reverse replays the repeated pattern backwards.
func Reverse[E any](s Sequence[E]) Sequence[E] {
	s = orEmpty(s)
	if r, ok := s.(reverser[E]); ok {
		return r.reverse()
	}
	if knownInfinite(s) || !s.IsFinite() {
		panic(ErrUnsupported.F("reverse of an infinite sequence"))
	}
	out := Empty[E]()
	for v := range Iter(s) {
		out = cons(v, out)
	}
	return out
}
