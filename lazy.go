package seqkit

import (
	"context"
	"errors"
	"iter"
	"sync"
	"sync/atomic"

	"go.llib.dev/frameless/pkg/logger"
	"go.llib.dev/frameless/pkg/logging"
	"go.llib.dev/frameless/port/option"
)

// Generate returns a lazily generated sequence.
// next is called once per element, when that element is first needed,
// and reports with false that there are no more elements.
func Generate[E any](next func() (E, bool), opts ...GenerateOption) Sequence[E] {
	return GenerateErr(context.Background(), func(context.Context) (E, error) {
		v, ok := next()
		if !ok {
			return v, ErrDone
		}
		return v, nil
	}, opts...)
}

// GenerateErr returns a lazily generated sequence.
// next returns ErrDone when there are no more elements.
// Any other error, or the cancellation of ctx, ends the sequence as well,
// but the error is logged and kept, and Err will report it.
func GenerateErr[E any](ctx context.Context, next func(context.Context) (E, error), opts ...GenerateOption) Sequence[E] {
	c := option.ToConfig[GenerateConfig, GenerateOption](opts)
	src := &source[E]{
		ctx:    ctx,
		next:   func() (E, error) { return next(ctx) },
		size:   c.size(),
		origin: true,
	}
	return &Lazy[E]{src: src}
}

// Repeatedly returns an infinite sequence of the values returned by fn.
func Repeatedly[E any](fn func() E) Sequence[E] {
	return newLazy(func() (E, error) { return fn(), nil }, Infinite)
}

// Iterate returns the infinite sequence of seed, fn(seed), fn(fn(seed)), ...
func Iterate[E any](seed E, fn func(E) E) Sequence[E] {
	var (
		cur     = seed
		started bool
	)
	return newLazy(func() (E, error) {
		if started {
			cur = fn(cur)
		}
		started = true
		return cur, nil
	}, Infinite)
}

// Range returns the integers in [start, end).
func Range(start, end int) Sequence[int] {
	if end < start {
		panic(ErrInvalidArgument.F("range end %d is before its start %d", end, start))
	}
	i := start
	return newLazy(func() (int, error) {
		if i == end {
			return 0, ErrDone
		}
		v := i
		i++
		return v, nil
	}, Length(end-start))
}

// RangeClosed returns the integers in [first, last].
func RangeClosed(first, last int) Sequence[int] {
	return Range(first, last+1)
}

// FromIter adapts an iterator into a lazy sequence.
// The iterator is pulled only as far as the sequence is consumed.
// The returned stop function releases the iterator early,
// it is called automatically once the iterator is exhausted.
func FromIter[E any](i iter.Seq[E], opts ...GenerateOption) (Sequence[E], func()) {
	next, stop := iter.Pull(i)
	return Generate(func() (E, bool) {
		v, ok := next()
		if !ok {
			stop()
		}
		return v, ok
	}, opts...), stop
}

// Err returns the fault that terminated a sequence made with GenerateErr,
// or a sequence derived from one.
// It returns nil when the sequence is not lazily generated,
// when it is not exhausted yet, or when it ended with ErrDone.
func Err[E any](s Sequence[E]) error {
	if l, ok := s.(*Lazy[E]); ok {
		return l.src.getErr()
	}
	return nil
}

// GenerateConfig is the configuration of a generated sequence, set through GenerateOption values.
type GenerateConfig struct {
	// Size is the exact number of elements the generator yields, when SizeKnown is set.
	Size      Length
	SizeKnown bool
}

func (c GenerateConfig) size() Length {
	if !c.SizeKnown {
		return unknownLength
	}
	return c.Size
}

type GenerateOption option.Option[GenerateConfig]

// WithSize declares the number of elements the generator yields,
// so the Length of the sequence is known without running the generator.
func WithSize(n Length) GenerateOption {
	return option.Func[GenerateConfig](func(c *GenerateConfig) {
		c.Size = n
		c.SizeKnown = 0 <= n
	})
}

// Unbounded declares that the generator never runs out of elements.
func Unbounded() GenerateOption {
	return WithSize(Infinite)
}

type source[E any] struct {
	ctx  context.Context
	next func() (E, error)
	// size is unknownLength unless the number of generated elements is known in advance.
	size Length
	// origin is false for the internal sources of combinators,
	// which only pass on the faults of their input.
	origin bool

	faulted atomic.Bool
	mutex   sync.Mutex
	err     error
}

func newLazy[E any](next func() (E, error), size Length) *Lazy[E] {
	return &Lazy[E]{src: &source[E]{next: next, size: size}}
}

func (src *source[E]) pull() (E, error) {
	if src.ctx != nil {
		if err := src.ctx.Err(); err != nil {
			var zero E
			return zero, err
		}
	}
	return src.next()
}

func (src *source[E]) fail(pos Length, err error) {
	if errors.Is(err, ErrDone) {
		return
	}
	src.mutex.Lock()
	src.err = err
	src.mutex.Unlock()
	src.faulted.Store(true)
	if !src.origin {
		return
	}
	ctx := src.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	logger.Warn(ctx, "lazy sequence generator failed, the sequence ends here",
		logging.ErrField(err),
		logging.Field("position", int(pos)))
}

// sizeHint is the declared size of the source.
// It is withdrawn once the source faulted or its context is done,
// as the sequence then ends earlier than declared.
func (src *source[E]) sizeHint() Length {
	if src.faulted.Load() {
		return unknownLength
	}
	if src.ctx != nil && src.ctx.Err() != nil {
		return unknownLength
	}
	return src.size
}

func (src *source[E]) getErr() error {
	src.mutex.Lock()
	defer src.mutex.Unlock()
	return src.err
}

// exhausted is what a combinator's generator returns when its input sequence ran out.
func exhausted[E any](s Sequence[E]) error {
	if err := Err(s); err != nil {
		return err
	}
	return ErrDone
}

const (
	unresolved uint32 = iota
	resolvedValue
	resolvedEmpty
)

// Lazy is a node of a lazily generated sequence.
//
// A node starts unresolved, and on the first access of Head, Tail or IsEmpty
// it calls the generator exactly once, under the node's lock.
// It then either holds a value and an unresolved successor node,
// or it becomes the empty end of the sequence.
// Both outcomes are final, and resolved nodes are read without locking.
type Lazy[E any] struct {
	src *source[E]
	// pos is the index of the node in its chain.
	pos Length

	state atomic.Uint32
	mutex sync.Mutex
	head  E
	tail  *Lazy[E]

	lengthKnown atomic.Bool
	length      atomic.Int64
}

func (*Lazy[E]) sequence() {}

func (l *Lazy[E]) resolve() uint32 {
	if state := l.state.Load(); state != unresolved {
		return state
	}
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if state := l.state.Load(); state != unresolved {
		return state
	}
	v, err := l.src.pull()
	if err != nil {
		l.src.fail(l.pos, err)
		l.setLength(0)
		l.state.Store(resolvedEmpty)
		return resolvedEmpty
	}
	l.head = v
	l.tail = &Lazy[E]{src: l.src, pos: l.pos + 1}
	l.state.Store(resolvedValue)
	return resolvedValue
}

func (l *Lazy[E]) Head() E {
	if l.resolve() == resolvedEmpty {
		panic(ErrEmpty.F("Head of an empty sequence"))
	}
	return l.head
}

func (l *Lazy[E]) Tail() Sequence[E] {
	if l.resolve() == resolvedEmpty {
		panic(ErrEmpty.F("Tail of an empty sequence"))
	}
	return l.tail
}

func (l *Lazy[E]) IsEmpty() bool {
	if n, ok := l.knownLength(); ok && n == 0 {
		return true
	}
	return l.resolve() == resolvedEmpty
}

func (l *Lazy[E]) IsFinite() bool { return !l.Length().IsInfinite() }

func (l *Lazy[E]) String() string { return format[E](l) }

func (l *Lazy[E]) MarshalJSON() ([]byte, error) { return marshalJSON[E](l) }

func (l *Lazy[E]) knownLength() (Length, bool) {
	if l.lengthKnown.Load() {
		return Length(l.length.Load()), true
	}
	switch size := l.src.sizeHint(); {
	case size == Infinite:
		return Infinite, true
	case 0 <= size:
		return max(size-l.pos, 0), true
	default:
		return unknownLength, false
	}
}

func (l *Lazy[E]) setLength(n Length) {
	l.length.Store(int64(n))
	l.lengthKnown.Store(true)
}

// Length evaluates the whole remaining sequence, unless its length is known in advance.
// It does not return for an infinite generator that was not declared Unbounded.
func (l *Lazy[E]) Length() Length {
	if n, ok := l.knownLength(); ok {
		return n
	}
	var n Length
	for cur := l; ; cur = cur.tail {
		if known, ok := cur.knownLength(); ok {
			if known == Infinite {
				n = Infinite
			} else {
				n += known
			}
			break
		}
		if cur.resolve() == resolvedEmpty {
			break
		}
		n++
	}
	l.setLength(n)
	return n
}
