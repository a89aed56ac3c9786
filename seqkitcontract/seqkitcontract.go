// Package seqkitcontract holds the behaviour every seqkit.Sequence representation must have.
package seqkitcontract

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"testing"

	"go.llib.dev/frameless/port/contract"
	"go.llib.dev/frameless/port/ds"
	"go.llib.dev/seqkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
)

// Subject is a sequence under test, along with the elements it is expected to hold.
// For an infinite sequence, Values is the expected prefix of it.
type Subject[E comparable] struct {
	Sequence seqkit.Sequence[E]
	Values   []E
}

// Finite is the contract of a finite sequence.
func Finite[E comparable](make func(tb testing.TB) Subject[E]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[E] {
		return make(t)
	})

	s.Test("length matches the number of elements", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, seqkit.Length(len(sub.Values)), sub.Sequence.Length())
		assert.Equal(t, len(sub.Values), seqkit.Size(sub.Sequence))
		assert.True(t, sub.Sequence.IsFinite())
		assert.Equal(t, len(sub.Values) == 0, sub.Sequence.IsEmpty())
	})

	s.Test("elements can be materialised in order", func(t *testcase.T) {
		sub := subject.Get(t)
		got, err := seqkit.ToSlice(sub.Sequence)
		assert.NoError(t, err)
		assert.Equal(t, len(sub.Values), len(got))
		for i, v := range sub.Values {
			assert.Equal(t, v, got[i])
		}
	})

	s.Test("head and tail walk through the elements", func(t *testcase.T) {
		sub := subject.Get(t)
		cur := sub.Sequence
		for _, v := range sub.Values {
			assert.False(t, cur.IsEmpty())
			assert.Equal(t, v, cur.Head())
			cur = cur.Tail()
		}
		assert.True(t, cur.IsEmpty())
		assert.Equal(t, 0, cur.Length())

		out := assert.Panic(t, func() { cur.Head() })
		err, ok := out.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, seqkit.ErrEmpty))

		out = assert.Panic(t, func() { cur.Tail() })
		err, ok = out.(error)
		assert.True(t, ok)
		assert.True(t, errors.Is(err, seqkit.ErrEmpty))
	})

	s.Test("elements are accessible by their index", func(t *testcase.T) {
		sub := subject.Get(t)
		for i, v := range sub.Values {
			assert.Equal(t, v, seqkit.At(sub.Sequence, i))
			got, err := seqkit.Get(sub.Sequence, i)
			assert.NoError(t, err)
			assert.Equal(t, v, got)
		}

		_, err := seqkit.Get(sub.Sequence, len(sub.Values))
		assert.True(t, errors.Is(err, seqkit.ErrIndexOutOfRange))
		_, ok := seqkit.Lookup(sub.Sequence, -1)
		assert.False(t, ok)

		out := assert.Panic(t, func() { seqkit.At(sub.Sequence, len(sub.Values)) })
		err, _ = out.(error)
		assert.True(t, errors.Is(err, seqkit.ErrIndexOutOfRange))
	})

	s.Test("index of an element is the position of its first occurrence", func(t *testcase.T) {
		sub := subject.Get(t)
		if len(sub.Values) == 0 {
			t.Skip("no elements to look for")
		}
		v := t.Random.Pick(sub.Values).(E)
		assert.Equal(t, slices.Index(sub.Values, v), seqkit.IndexOf(sub.Sequence, v))
		assert.True(t, seqkit.Contains(sub.Sequence, v))

		var last int
		for i, e := range sub.Values {
			if e == v {
				last = i
			}
		}
		assert.Equal(t, last, seqkit.LastIndexOf(sub.Sequence, v))
	})

	s.Test("reverse of the reverse equals the sequence", func(t *testcase.T) {
		sub := subject.Get(t)
		reversed := seqkit.Reverse(sub.Sequence)
		exp := slices.Clone(sub.Values)
		slices.Reverse(exp)
		got, err := seqkit.ToSlice(reversed)
		assert.NoError(t, err)
		assert.Equal(t, len(exp), len(got))
		for i := range exp {
			assert.Equal(t, exp[i], got[i])
		}
		assert.True(t, seqkit.Equal(sub.Sequence, seqkit.Reverse(reversed)))
	})

	s.Test("equal to the array of its elements, with the same hash", func(t *testcase.T) {
		sub := subject.Get(t)
		other := seqkit.FromSlice(sub.Values)
		assert.True(t, seqkit.Equal(sub.Sequence, other))
		assert.True(t, seqkit.Equal(other, sub.Sequence))

		h1, err := seqkit.Hash(sub.Sequence)
		assert.NoError(t, err)
		h2, err := seqkit.Hash(other)
		assert.NoError(t, err)
		assert.Equal(t, h1, h2)

		if 0 < len(sub.Values) {
			assert.False(t, seqkit.Equal(sub.Sequence, seqkit.FromSlice(sub.Values[1:])))
		}
	})

	s.Test("appending the empty sequence is the identity", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, seqkit.Equal(sub.Sequence, seqkit.Append(sub.Sequence, seqkit.Empty[E]())))
		assert.True(t, seqkit.Equal(sub.Sequence, seqkit.Append(seqkit.Empty[E](), sub.Sequence)))
	})

	s.Test("take and drop split the sequence", func(t *testcase.T) {
		sub := subject.Get(t)
		n := t.Random.IntBetween(0, len(sub.Values)+2)
		taken := seqkit.Take(sub.Sequence, n)
		dropped := seqkit.Drop(sub.Sequence, n)
		assert.Equal(t, min(n, len(sub.Values)), seqkit.Size(taken))
		assert.Equal(t, max(len(sub.Values)-n, 0), seqkit.Size(dropped))
		assert.True(t, seqkit.Equal(sub.Sequence, seqkit.Append(taken, dropped)))
	})

	s.Test("String lists the elements", func(t *testcase.T) {
		sub := subject.Get(t)
		str := sub.Sequence.String()
		assert.True(t, strings.HasPrefix(str, "["))
		assert.True(t, strings.HasSuffix(str, "]"))
		if 0 < len(sub.Values) && len(sub.Values) <= seqkit.FormatLimit {
			assert.Equal(t, fmt.Sprint(sub.Values), str)
		}
	})

	s.Describe("as a ds.ReadOnlySequence", func(s *testcase.Spec) {
		s.Test("Values iterates the elements in order", func(t *testcase.T) {
			sub := subject.Get(t)
			var ro ds.ReadOnlySequence[E] = sub.Sequence
			var got []E
			for v := range ro.Values() {
				got = append(got, v)
			}
			assert.Equal(t, len(sub.Values), len(got))
			for i := range sub.Values {
				assert.Equal(t, sub.Values[i], got[i])
			}
		})

		s.Test("Lookup finds elements by their index", func(t *testcase.T) {
			sub := subject.Get(t)
			var ro ds.ReadOnlySequence[E] = sub.Sequence
			for i, v := range sub.Values {
				got, ok := ro.Lookup(i)
				assert.True(t, ok)
				assert.Equal(t, v, got)
			}
			_, ok := ro.Lookup(len(sub.Values))
			assert.False(t, ok)
		})

		s.Test("Len is the number of elements", func(t *testcase.T) {
			sub := subject.Get(t)
			var l ds.Len = sub.Sequence
			assert.Equal(t, len(sub.Values), l.Len())
		})
	})

	s.Test("concurrent reads observe the same elements", func(t *testcase.T) {
		sub := subject.Get(t)
		read := func() {
			got, err := seqkit.ToSlice(sub.Sequence)
			assert.NoError(t, err)
			assert.Equal(t, len(sub.Values), len(got))
		}
		testcase.Race(read, read, read)
	})

	return s.AsSuite("Finite")
}

// Infinite is the contract of an infinite sequence.
func Infinite[E comparable](make func(tb testing.TB) Subject[E]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) Subject[E] {
		return make(t)
	})

	s.Test("length is infinite", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.Equal(t, seqkit.Infinite, sub.Sequence.Length())
		assert.False(t, sub.Sequence.IsFinite())
		assert.False(t, sub.Sequence.IsEmpty())
	})

	s.Test("prefix holds the expected elements", func(t *testcase.T) {
		sub := subject.Get(t)
		got, err := seqkit.ToSlice(seqkit.Take(sub.Sequence, len(sub.Values)))
		assert.NoError(t, err)
		assert.Equal(t, len(sub.Values), len(got))
		for i, v := range sub.Values {
			assert.Equal(t, v, got[i])
			assert.Equal(t, v, seqkit.At(sub.Sequence, i))
		}
	})

	s.Test("it can't be materialised", func(t *testcase.T) {
		sub := subject.Get(t)
		_, err := seqkit.ToSlice(sub.Sequence)
		assert.True(t, errors.Is(err, seqkit.ErrCapacityExceeded))
		_, err = seqkit.Hash(sub.Sequence)
		assert.True(t, errors.Is(err, seqkit.ErrCapacityExceeded))
		_, err = seqkit.Last(sub.Sequence)
		assert.True(t, errors.Is(err, seqkit.ErrUnsupported))

		out := assert.Panic(t, func() { seqkit.LastIndexFunc(sub.Sequence, func(E) bool { return true }) })
		err, _ = out.(error)
		assert.True(t, errors.Is(err, seqkit.ErrUnsupported))
	})

	s.Test("appending to it changes nothing", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, seqkit.Append(sub.Sequence, seqkit.Of(sub.Values...)) == sub.Sequence)
		init, err := seqkit.Init(sub.Sequence)
		assert.NoError(t, err)
		assert.True(t, init == sub.Sequence)
	})

	s.Test("dropping elements keeps it infinite", func(t *testcase.T) {
		sub := subject.Get(t)
		n := t.Random.IntBetween(0, len(sub.Values))
		rest := seqkit.Drop(sub.Sequence, n)
		assert.False(t, rest.IsFinite())
		if n < len(sub.Values) {
			assert.Equal(t, sub.Values[n], rest.Head())
		}
	})

	s.Test("as a ds.ReadOnlySequence it has a length of math.MaxInt", func(t *testcase.T) {
		sub := subject.Get(t)
		var l ds.Len = sub.Sequence
		assert.Equal(t, math.MaxInt, l.Len())
		for i, v := range sub.Values {
			got, ok := sub.Sequence.Lookup(i)
			assert.True(t, ok)
			assert.Equal(t, v, got)
		}
	})

	s.Test("String is abbreviated", func(t *testcase.T) {
		sub := subject.Get(t)
		assert.True(t, strings.HasSuffix(sub.Sequence.String(), " ...]"))
	})

	s.Test("concurrent reads observe the same prefix", func(t *testcase.T) {
		sub := subject.Get(t)
		read := func() {
			for i, v := range sub.Values {
				assert.Equal(t, v, seqkit.At(sub.Sequence, i))
			}
		}
		testcase.Race(read, read, read)
	})

	return s.AsSuite("Infinite")
}
