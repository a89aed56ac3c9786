package seqkit

import (
	"iter"

	"go.llib.dev/frameless/port/ds"
)

var (
	_ ds.ReadOnlySequence[int] = (*Array[int])(nil)
	_ ds.ReadOnlySequence[int] = (*Linked[int])(nil)
	_ ds.ReadOnlySequence[int] = (*Lazy[int])(nil)
	_ ds.ReadOnlySequence[int] = (*Cyclic[int])(nil)
	_ ds.Len                   = (*Array[int])(nil)
	_ ds.Len                   = (*Linked[int])(nil)
	_ ds.Len                   = (*Lazy[int])(nil)
	_ ds.Len                   = (*Cyclic[int])(nil)
)

func (a *Array[E]) Values() iter.Seq[E]        { return Iter[E](a) }
func (a *Array[E]) Lookup(index int) (E, bool) { return Lookup[E](a, index) }
func (a *Array[E]) Len() int                   { return Size[E](a) }

func (l *Linked[E]) Values() iter.Seq[E]        { return Iter[E](l) }
func (l *Linked[E]) Lookup(index int) (E, bool) { return Lookup[E](l, index) }
func (l *Linked[E]) Len() int                   { return Size[E](l) }

func (l *Lazy[E]) Values() iter.Seq[E]        { return Iter[E](l) }
func (l *Lazy[E]) Lookup(index int) (E, bool) { return Lookup[E](l, index) }
func (l *Lazy[E]) Len() int                   { return Size[E](l) }

func (c *Cyclic[E]) Values() iter.Seq[E]        { return Iter[E](c) }
func (c *Cyclic[E]) Lookup(index int) (E, bool) { return Lookup[E](c, index) }
func (c *Cyclic[E]) Len() int                   { return Size[E](c) }
