/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package view

import (
	"iter"

	"github.com/botobag/rangeview/iterator"
)

// Forward is a view over the half-open range [begin, end) that traverses the elements in their
// original order. It holds the two markers and nothing else; the elements stay with the caller.
type Forward[M Marker[M, T], T any] struct {
	begin M
	end   M
}

// NewForward returns a view over [begin, end).
func NewForward[M Marker[M, T], T any](begin, end M) Forward[M, T] {
	return Forward[M, T]{
		begin: begin,
		end:   end,
	}
}

// ForwardSlice returns a view over all elements of s. A fixed-size array a is passed as a[:].
func ForwardSlice[T any](s []T) Forward[SliceMarker[T], T] {
	return NewForward[SliceMarker[T], T](SliceBegin(s), SliceEnd(s))
}

// ForwardOf returns a view over the markers handed out by c.
func ForwardOf[M Marker[M, T], T any](c Container[M]) Forward[M, T] {
	return NewForward[M, T](c.Begin(), c.End())
}

// TryForwardOf is like ForwardOf for containers whose markers may not be available. Errors from
// c are returned as is.
func TryForwardOf[M Marker[M, T], T any](c FallibleContainer[M]) (Forward[M, T], error) {
	begin, err := c.Begin()
	if err != nil {
		return Forward[M, T]{}, err
	}
	end, err := c.End()
	if err != nil {
		return Forward[M, T]{}, err
	}
	return NewForward[M, T](begin, end), nil
}

// Begin returns the position of the first element.
func (v Forward[M, T]) Begin() ForwardPosition[M, T] {
	return ForwardPosition[M, T]{v.begin}
}

// End returns the position one past the last element.
func (v Forward[M, T]) End() ForwardPosition[M, T] {
	return ForwardPosition[M, T]{v.end}
}

// CBegin is the read-only form of Begin.
func (v Forward[M, T]) CBegin() ConstForwardPosition[M, T] {
	return ConstForwardPosition[M, T]{v.Begin()}
}

// CEnd is the read-only form of End.
func (v Forward[M, T]) CEnd() ConstForwardPosition[M, T] {
	return ConstForwardPosition[M, T]{v.End()}
}

// All returns a sequence of pointers to the elements in order.
func (v Forward[M, T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for pos, end := v.Begin(), v.End(); pos.NotEqual(end); pos.Advance() {
			if !yield(pos.Ref()) {
				return
			}
		}
	}
}

// Values returns a sequence of copies of the elements in order.
func (v Forward[M, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos, end := v.CBegin(), v.CEnd(); pos.NotEqual(end); pos.Advance() {
			if !yield(pos.Value()) {
				return
			}
		}
	}
}

// Iterator returns an iterator over the elements in the view.
func (v Forward[M, T]) Iterator() *ForwardIterator[M, T] {
	return &ForwardIterator[M, T]{
		pos: v.Begin(),
		end: v.End(),
	}
}

// ForwardPosition is a position in a Forward view.
type ForwardPosition[M Marker[M, T], T any] struct {
	marker M
}

// Ref returns a pointer to the element at the position.
func (pos *ForwardPosition[M, T]) Ref() *T {
	return pos.marker.Ref()
}

// Marker returns the underlying marker.
func (pos *ForwardPosition[M, T]) Marker() M {
	return pos.marker
}

// Advance moves pos one step forward and returns it.
func (pos *ForwardPosition[M, T]) Advance() *ForwardPosition[M, T] {
	pos.marker = pos.marker.Next()
	return pos
}

// PostAdvance moves pos one step forward and returns the position it had before the move.
func (pos *ForwardPosition[M, T]) PostAdvance() ForwardPosition[M, T] {
	prior := *pos
	pos.Advance()
	return prior
}

// Retreat moves pos one step back and returns it. It panics if the underlying marker type has no
// Prev method.
func (pos *ForwardPosition[M, T]) Retreat() *ForwardPosition[M, T] {
	pos.marker = prev(pos.marker)
	return pos
}

// PostRetreat moves pos one step back and returns the position it had before the move.
func (pos *ForwardPosition[M, T]) PostRetreat() ForwardPosition[M, T] {
	prior := *pos
	pos.Retreat()
	return prior
}

// NotEqual reports whether pos and other refer to different positions.
func (pos *ForwardPosition[M, T]) NotEqual(other ForwardPosition[M, T]) bool {
	return !pos.marker.Equal(other.marker)
}

// ConstForwardPosition is a ForwardPosition that only hands out copies of elements.
type ConstForwardPosition[M Marker[M, T], T any] struct {
	pos ForwardPosition[M, T]
}

// Value returns a copy of the element at the position.
func (pos *ConstForwardPosition[M, T]) Value() T {
	return *pos.pos.Ref()
}

// Marker returns the underlying marker.
func (pos *ConstForwardPosition[M, T]) Marker() M {
	return pos.pos.marker
}

// Advance moves pos one step forward and returns it.
func (pos *ConstForwardPosition[M, T]) Advance() *ConstForwardPosition[M, T] {
	pos.pos.Advance()
	return pos
}

// PostAdvance moves pos one step forward and returns the position it had before the move.
func (pos *ConstForwardPosition[M, T]) PostAdvance() ConstForwardPosition[M, T] {
	return ConstForwardPosition[M, T]{pos.pos.PostAdvance()}
}

// Retreat moves pos one step back and returns it.
func (pos *ConstForwardPosition[M, T]) Retreat() *ConstForwardPosition[M, T] {
	pos.pos.Retreat()
	return pos
}

// PostRetreat moves pos one step back and returns the position it had before the move.
func (pos *ConstForwardPosition[M, T]) PostRetreat() ConstForwardPosition[M, T] {
	return ConstForwardPosition[M, T]{pos.pos.PostRetreat()}
}

// NotEqual reports whether pos and other refer to different positions.
func (pos *ConstForwardPosition[M, T]) NotEqual(other ConstForwardPosition[M, T]) bool {
	return pos.pos.NotEqual(other.pos)
}

// ForwardIterator follows the convention documented in package iterator.
type ForwardIterator[M Marker[M, T], T any] struct {
	pos ForwardPosition[M, T]
	end ForwardPosition[M, T]
}

// Next returns the next element in the iteration. It returns iterator.Done when the end of the
// view was reached.
func (it *ForwardIterator[M, T]) Next() (*T, error) {
	if !it.pos.NotEqual(it.end) {
		return nil, iterator.Done
	}
	pos := it.pos.PostAdvance()
	return pos.Ref(), nil
}
