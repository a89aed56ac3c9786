package seqkit_test

import (
	"iter"
	"testing"

	"go.llib.dev/frameless/pkg/iterkit/iterkitcontract"
	"go.llib.dev/seqkit"
	"go.llib.dev/seqkit/seqkitcontract"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/random"
)

func generateFrom[E any](vs []E, opts ...seqkit.GenerateOption) seqkit.Sequence[E] {
	var i int
	return seqkit.Generate(func() (E, bool) {
		if i == len(vs) {
			var zero E
			return zero, false
		}
		v := vs[i]
		i++
		return v, true
	}, opts...)
}

func TestRepresentations(t *testing.T) {
	values := func(tb testing.TB) []int {
		t := testcase.ToT(&tb)
		return random.Slice(t.Random.IntBetween(0, 12), func() int {
			return t.Random.IntBetween(-5, 5)
		})
	}

	finite := map[string]func(vs []int) seqkit.Sequence[int]{
		"array": seqkit.FromSlice[int],
		"linked": func(vs []int) seqkit.Sequence[int] {
			return seqkit.List(vs...)
		},
		"lazy": func(vs []int) seqkit.Sequence[int] {
			return generateFrom(vs)
		},
		"lazy with size": func(vs []int) seqkit.Sequence[int] {
			return generateFrom(vs, seqkit.WithSize(seqkit.Length(len(vs))))
		},
		"cyclic": func(vs []int) seqkit.Sequence[int] {
			if len(vs) < 2 {
				return seqkit.FromSlice(vs)
			}
			// the view starting at index 1 of the rotated backing replays vs
			rotated := append(append([]int{}, vs[len(vs)-1]), vs[:len(vs)-1]...)
			return seqkit.RepeatN(seqkit.FromSlice(rotated), 1, seqkit.Length(len(vs)))
		},
		"appended": func(vs []int) seqkit.Sequence[int] {
			half := len(vs) / 2
			return seqkit.Append(seqkit.Of(vs[:half]...), generateFrom(vs[half:]))
		},
		"mapped": func(vs []int) seqkit.Sequence[int] {
			return seqkit.Map(seqkit.List(vs...), func(v int) int { return v })
		},
	}
	for name, mk := range finite {
		t.Run(name, seqkitcontract.Finite(func(tb testing.TB) seqkitcontract.Subject[int] {
			vs := values(tb)
			return seqkitcontract.Subject[int]{Sequence: mk(vs), Values: vs}
		}).Test)
	}

	t.Run("taken", seqkitcontract.Finite(func(tb testing.TB) seqkitcontract.Subject[int] {
		t := testcase.ToT(&tb)
		n := t.Random.IntBetween(0, 12)
		vs := make([]int, n)
		for i := range vs {
			vs[i] = i
		}
		return seqkitcontract.Subject[int]{
			Sequence: seqkit.Take(seqkit.Iterate(0, func(v int) int { return v + 1 }), n),
			Values:   vs,
		}
	}).Test)

	naturals := func(n int) []int {
		vs := make([]int, n)
		for i := range vs {
			vs[i] = i
		}
		return vs
	}

	infinite := map[string]func() seqkit.Sequence[int]{
		"iterate": func() seqkit.Sequence[int] {
			return seqkit.Iterate(0, func(v int) int { return v + 1 })
		},
		"unbounded generator": func() seqkit.Sequence[int] {
			var i int
			return seqkit.Generate(func() (int, bool) {
				v := i
				i++
				return v, true
			}, seqkit.Unbounded())
		},
		"linked onto infinite": func() seqkit.Sequence[int] {
			return seqkit.Prepend(seqkit.Iterate(3, func(v int) int { return v + 1 }), 0, 1, 2)
		},
		"mapped": func() seqkit.Sequence[int] {
			return seqkit.Map(seqkit.Iterate(0, func(v int) int { return v + 2 }), func(v int) int { return v / 2 })
		},
	}
	for name, mk := range infinite {
		t.Run(name, seqkitcontract.Infinite(func(tb testing.TB) seqkitcontract.Subject[int] {
			return seqkitcontract.Subject[int]{Sequence: mk(), Values: naturals(15)}
		}).Test)
	}

	t.Run("cyclic", seqkitcontract.Infinite(func(tb testing.TB) seqkitcontract.Subject[int] {
		return seqkitcontract.Subject[int]{
			Sequence: seqkit.RepeatN(seqkit.Of(0, 1, 2, 3), 1, seqkit.Infinite),
			Values:   []int{1, 2, 3, 0, 1, 2, 3, 0, 1, 2, 3, 0},
		}
	}).Test)
}

func TestSequence_Values(t *testing.T) {
	nonEmpty := func(tb testing.TB) []int {
		t := testcase.ToT(&tb)
		return random.Slice(t.Random.IntBetween(1, 7), t.Random.Int)
	}
	for name, mk := range map[string]func(vs []int) seqkit.Sequence[int]{
		"array":  seqkit.FromSlice[int],
		"linked": func(vs []int) seqkit.Sequence[int] { return seqkit.List(vs...) },
		"lazy":   func(vs []int) seqkit.Sequence[int] { return generateFrom(vs) },
		"cyclic": func(vs []int) seqkit.Sequence[int] {
			return seqkit.RepeatN(seqkit.FromSlice(vs), 0, seqkit.Length(2*len(vs)))
		},
	} {
		t.Run(name, iterkitcontract.IterSeq(func(tb testing.TB) iter.Seq[int] {
			return mk(nonEmpty(tb)).Values()
		}).Test)
	}
}
