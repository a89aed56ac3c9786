package seqkit_test

import (
	"errors"
	"strings"
	"testing"

	"go.llib.dev/seqkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

func naturals() seqkit.Sequence[int] {
	return seqkit.Iterate(0, func(v int) int { return v + 1 })
}

func toSlice[E any](tb testing.TB, s seqkit.Sequence[E]) []E {
	tb.Helper()
	vs, err := seqkit.ToSlice(s)
	assert.NoError(tb, err)
	return vs
}

func TestMap(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("only the demanded elements are mapped", func(t *testcase.T) {
		var mapped []int
		seq := seqkit.Map(seqkit.Of(1, 2, 3, 4), func(v int) int {
			mapped = append(mapped, v)
			return v * v
		})
		assert.Equal(t, []int{1, 4}, toSlice(t, seqkit.Take(seq, 2)))
		assert.Equal(t, []int{1, 2}, mapped)
	})

	s.Test("the length of the input is kept", func(t *testcase.T) {
		var calls int
		seq := seqkit.Map(seqkit.Of("a", "bb", "ccc"), func(v string) int { calls++; return len(v) })
		assert.Equal(t, 3, seq.Length())
		assert.Equal(t, 0, calls)
		assert.Equal(t, seqkit.Infinite, seqkit.Map(naturals(), func(v int) int { return -v }).Length())
	})

	s.Test("an element whose function panicked is mapped again on the next access", func(t *testcase.T) {
		var failed bool
		seq := seqkit.Map(seqkit.Of(1, 2, 3), func(v int) int {
			if !failed {
				failed = true
				panic("boom")
			}
			return v * 10
		})
		assert.Panic(t, func() { seq.Head() })
		assert.Equal(t, 10, seq.Head())
		assert.Equal(t, []int{10, 20, 30}, toSlice(t, seq))
	})

	s.Test("mapping the empty sequence", func(t *testcase.T) {
		assert.True(t, seqkit.Map(seqkit.Empty[int](), func(v int) string { return "" }).IsEmpty())
	})
}

func TestFilter(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	assert.Equal(t, []int{0, 2, 4}, toSlice(t, seqkit.Take(seqkit.Filter(naturals(), even), 3)))
	assert.Equal(t, []int{2, 4}, toSlice(t, seqkit.Filter(seqkit.List(1, 2, 3, 4, 5), even)))
	assert.True(t, seqkit.Filter(seqkit.Of(1, 3), even).IsEmpty())

	var failed bool
	seq := seqkit.Filter(seqkit.List(1, 2, 3, 4), func(v int) bool {
		if v == 2 && !failed {
			failed = true
			panic("boom")
		}
		return even(v)
	})
	assert.Panic(t, func() { seq.Head() })
	assert.Equal(t, []int{2, 4}, toSlice(t, seq))
}

func TestDistinct(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("first occurrences are kept in order", func(t *testcase.T) {
		assert.Equal(t, []int{1, 2, 3}, toSlice(t, seqkit.Distinct(seqkit.Of(1, 1, 2, 3, 2))))
	})

	s.Test("every value appears exactly once", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(0, 50), func() int { return t.Random.IntBetween(0, 9) })
		got := toSlice(t, seqkit.Distinct(seqkit.FromSlice(vs)))

		var exp []int
		seen := map[int]struct{}{}
		for _, v := range vs {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			exp = append(exp, v)
		}
		assert.Equal(t, len(exp), len(got))
		for i := range exp {
			assert.Equal(t, exp[i], got[i])
		}
	})

	s.Test("infinite input is processed lazily", func(t *testcase.T) {
		tens := seqkit.Map(naturals(), func(v int) int { return v / 10 })
		assert.Equal(t, []int{0, 1, 2}, toSlice(t, seqkit.Take(seqkit.Distinct(tens), 3)))
	})

	s.Test("a cyclic view has at most one period of distinct values", func(t *testcase.T) {
		seq := seqkit.Repeat(seqkit.Of(1, 2, 1, 3))
		assert.Equal(t, []int{1, 2, 3}, toSlice(t, seqkit.Distinct(seq)))
	})
}

func TestAppend(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("tail of the result is the appended sequence itself", func(t *testcase.T) {
		b := seqkit.List(3, 4)
		seq := seqkit.Append(seqkit.Of(1, 2), b)
		assert.Equal(t, []int{1, 2, 3, 4}, toSlice(t, seq))
		assert.True(t, seqkit.Drop(seq, 2) == b)
	})

	s.Test("empty sequences are the identity", func(t *testcase.T) {
		a := seqkit.Of(1, 2)
		assert.True(t, seqkit.Append(a, seqkit.Empty[int]()) == a)
		assert.True(t, seqkit.Append(seqkit.Empty[int](), a) == a)
	})

	s.Test("appending to an infinite sequence evaluates nothing", func(t *testcase.T) {
		var calls int
		inf := seqkit.Repeatedly(func() int { calls++; return 1 })
		assert.True(t, seqkit.Append(inf, seqkit.Of(1)) == inf)
		assert.Equal(t, 0, calls)
	})

	s.Test("an infinite sequence can be appended", func(t *testcase.T) {
		seq := seqkit.Append(seqkit.Of(-2, -1), naturals())
		assert.Equal(t, seqkit.Infinite, seq.Length())
		assert.Equal(t, []int{-2, -1, 0, 1}, toSlice(t, seqkit.Take(seq, 4)))
	})

	s.Test("a generator of unknown length is not evaluated up front", func(t *testcase.T) {
		var calls int
		gen := seqkit.Generate(func() (int, bool) { calls++; return calls, calls <= 2 })
		seq := seqkit.AppendValues(gen, 7, 8)
		assert.Equal(t, 0, calls)
		assert.Equal(t, []int{1, 2, 7, 8}, toSlice(t, seq))
	})

	s.Test("an infinite tail keeps a lazily appended sequence infinite", func(t *testcase.T) {
		odd := func(v int) bool { return v%2 == 1 }
		seq := seqkit.Append(seqkit.Filter(seqkit.Of(1, 2, 3), odd), seqkit.Repeat(seqkit.Of(9)))
		assert.Equal(t, seqkit.Infinite, seq.Length())
		assert.False(t, seq.IsFinite())
		assert.Equal(t, []int{1, 3, 9, 9}, toSlice(t, seqkit.Take(seq, 4)))
	})

	s.Test("concat and prepend", func(t *testcase.T) {
		seq := seqkit.Concat(seqkit.Of(1), seqkit.Empty[int](), seqkit.List(2, 3), seqkit.Range(4, 6))
		assert.Equal(t, []int{1, 2, 3, 4, 5}, toSlice(t, seq))
		assert.Equal(t, []int{-1, 0, 1, 2, 3, 4, 5}, toSlice(t, seqkit.Prepend(seq, -1, 0)))
		assert.True(t, seqkit.Concat[int]().IsEmpty())
	})
}

func TestTakeDrop(t *testing.T) {
	s := testcase.NewSpec(t)

	s.Test("size of take is the smaller of n and the size", func(t *testcase.T) {
		vs := random.Slice(t.Random.IntBetween(0, 10), t.Random.Int)
		n := t.Random.IntBetween(0, 15)
		for _, seq := range []seqkit.Sequence[int]{seqkit.FromSlice(vs), seqkit.List(vs...), generateFrom(vs)} {
			assert.Equal(t, min(n, len(vs)), seqkit.Size(seqkit.Take(seq, n)))
			assert.Equal(t, max(len(vs)-n, 0), seqkit.Size(seqkit.Drop(seq, n)))
		}
	})

	s.Test("take of an infinite sequence is finite", func(t *testcase.T) {
		seq := seqkit.Take(naturals(), 5)
		assert.True(t, seq.IsFinite())
		assert.Equal(t, 5, seq.Length())
	})

	s.Test("take while and drop while", func(t *testcase.T) {
		small := func(v int) bool { return v < 3 }
		assert.Equal(t, []int{0, 1, 2}, toSlice(t, seqkit.TakeWhile(naturals(), small)))
		assert.Equal(t, 3, seqkit.DropWhile(naturals(), small).Head())
		assert.True(t, seqkit.DropWhile(seqkit.Of(1, 2), small).IsEmpty())
	})

	s.Test("init drops the last element", func(t *testcase.T) {
		init, err := seqkit.Init(seqkit.List(1, 2, 3))
		assert.NoError(t, err)
		assert.Equal(t, []int{1, 2}, toSlice(t, init))

		_, err = seqkit.Init(seqkit.Empty[int]())
		assert.True(t, errors.Is(err, seqkit.ErrEmpty))
	})
}

func TestSorted(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, toSlice(t, seqkit.Sorted(seqkit.List(3, 1, 2))))
	byInitial := func(a, b string) int { return strings.Compare(a[:1], b[:1]) }
	assert.Equal(t, []string{"a1", "a2", "b1", "b2"}, toSlice(t, seqkit.SortedFunc(seqkit.Of("b1", "a1", "b2", "a2"), byInitial)))
	assert.True(t, seqkit.Sorted(seqkit.Empty[int]()).IsEmpty())

	_, isArray := seqkit.Sorted(seqkit.Of(2, 1)).(*seqkit.Array[int])
	assert.True(t, isArray)
	linked, isLinked := seqkit.Sorted(seqkit.Range(0, 3)).(*seqkit.Linked[int])
	assert.True(t, isLinked)
	assert.Equal(t, []int{0, 1, 2}, toSlice[int](t, linked))

	out := assert.Panic(t, func() { seqkit.Sorted(naturals()) })
	err, _ := out.(error)
	assert.True(t, errors.Is(err, seqkit.ErrCapacityExceeded))
}

func TestZip(t *testing.T) {
	zipped := seqkit.Zip(seqkit.Of("a", "b", "c"), naturals())
	assert.Equal(t, 3, zipped.Length())
	assert.Equal(t, seqkit.Pair[string, int]{First: "b", Second: 1}, seqkit.At(zipped, 1))

	letters, numbers := seqkit.Unzip(zipped)
	assert.Equal(t, []string{"a", "b", "c"}, toSlice(t, letters))
	assert.Equal(t, []int{0, 1, 2}, toSlice(t, numbers))
}

func TestPartition(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	in, out := seqkit.Partition(seqkit.Of(1, 2, 3, 4, 5), even)
	assert.Equal(t, []int{2, 4}, toSlice(t, in))
	assert.Equal(t, []int{1, 3, 5}, toSlice(t, out))

	in, out = seqkit.Partition(naturals(), even)
	assert.Equal(t, []int{0, 2, 4}, toSlice(t, seqkit.Take(in, 3)))
	assert.Equal(t, []int{1, 3, 5}, toSlice(t, seqkit.Take(out, 3)))
}
