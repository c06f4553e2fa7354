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

// Reverse is a view over the half-open range [begin, end) that traverses the elements from the
// last one to the first one.
//
// A reverse traversal cannot use "one before begin" as its terminal position: for many marker
// types (an index of -1, the nil element of a linked list) that position is either invalid or
// indistinguishable from end. Reverse therefore never steps a marker outside [begin, end). Its
// terminal position is begin itself, and each ReversePosition carries a flag recording whether
// the element at begin still has to be visited. See ReversePosition.NotEqual.
type Reverse[M BidiMarker[M, T], T any] struct {
	begin ReversePosition[M, T]
	end   ReversePosition[M, T]
}

// NewReverse returns a reverse view over [begin, end). If begin equals end the view is empty and
// end is never stepped back.
func NewReverse[M BidiMarker[M, T], T any](begin, end M) Reverse[M, T] {
	if begin.Equal(end) {
		return Reverse[M, T]{
			begin: ReversePosition[M, T]{marker: begin},
			end:   ReversePosition[M, T]{marker: begin},
		}
	}
	return Reverse[M, T]{
		begin: ReversePosition[M, T]{marker: end.Prev(), more: true},
		end:   ReversePosition[M, T]{marker: begin, more: true},
	}
}

// ReverseSlice returns a reverse view over all elements of s. A fixed-size array a is passed as
// a[:].
func ReverseSlice[T any](s []T) Reverse[SliceMarker[T], T] {
	return NewReverse[SliceMarker[T], T](SliceBegin(s), SliceEnd(s))
}

// ReverseOf returns a reverse view over the markers handed out by c.
func ReverseOf[M BidiMarker[M, T], T any](c Container[M]) Reverse[M, T] {
	return NewReverse[M, T](c.Begin(), c.End())
}

// TryReverseOf is like ReverseOf for containers whose markers may not be available. Errors from
// c are returned as is.
func TryReverseOf[M BidiMarker[M, T], T any](c FallibleContainer[M]) (Reverse[M, T], error) {
	begin, err := c.Begin()
	if err != nil {
		return Reverse[M, T]{}, err
	}
	end, err := c.End()
	if err != nil {
		return Reverse[M, T]{}, err
	}
	return NewReverse[M, T](begin, end), nil
}

// Begin returns the position of the last element of the underlying range.
func (v Reverse[M, T]) Begin() ReversePosition[M, T] {
	return v.begin
}

// End returns the terminal position of the reverse traversal.
func (v Reverse[M, T]) End() ReversePosition[M, T] {
	return v.end
}

// CBegin is the read-only form of Begin.
func (v Reverse[M, T]) CBegin() ConstReversePosition[M, T] {
	return ConstReversePosition[M, T]{v.begin}
}

// CEnd is the read-only form of End.
func (v Reverse[M, T]) CEnd() ConstReversePosition[M, T] {
	return ConstReversePosition[M, T]{v.end}
}

// All returns a sequence of pointers to the elements, last one first.
func (v Reverse[M, T]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for pos, end := v.Begin(), v.End(); pos.NotEqual(end); pos.Advance() {
			if !yield(pos.Ref()) {
				return
			}
		}
	}
}

// Values returns a sequence of copies of the elements, last one first.
func (v Reverse[M, T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for pos, end := v.CBegin(), v.CEnd(); pos.NotEqual(end); pos.Advance() {
			if !yield(pos.Value()) {
				return
			}
		}
	}
}

// Iterator returns an iterator over the elements in the view, last one first.
func (v Reverse[M, T]) Iterator() *ReverseIterator[M, T] {
	return &ReverseIterator[M, T]{
		pos: v.Begin(),
		end: v.End(),
	}
}

// ReversePosition is a position in a Reverse view. Advancing it steps the underlying marker back
// and retreating it steps the marker forward.
type ReversePosition[M BidiMarker[M, T], T any] struct {
	marker M

	// more is set while the traversal has one more element to visit once marker has reached the
	// terminal position. NotEqual clears it.
	more bool
}

// Ref returns a pointer to the element at the position.
func (pos *ReversePosition[M, T]) Ref() *T {
	return pos.marker.Ref()
}

// Marker returns the underlying marker.
func (pos *ReversePosition[M, T]) Marker() M {
	return pos.marker
}

// Advance moves pos one step toward the first element of the underlying range and returns it. It
// leaves the marker in place once NotEqual has reported the last step.
func (pos *ReversePosition[M, T]) Advance() *ReversePosition[M, T] {
	if pos.more {
		pos.marker = pos.marker.Prev()
	}
	return pos
}

// PostAdvance is like Advance but returns the position pos had before the move.
func (pos *ReversePosition[M, T]) PostAdvance() ReversePosition[M, T] {
	prior := *pos
	pos.Advance()
	return prior
}

// Retreat moves pos one step toward the last element of the underlying range and returns it.
func (pos *ReversePosition[M, T]) Retreat() *ReversePosition[M, T] {
	if pos.more {
		pos.marker = pos.marker.Next()
	}
	return pos
}

// PostRetreat is like Retreat but returns the position pos had before the move.
func (pos *ReversePosition[M, T]) PostRetreat() ReversePosition[M, T] {
	prior := *pos
	pos.Retreat()
	return prior
}

// NotEqual reports whether pos has not yet reached other.
//
// NotEqual has a side effect. When both markers are equal and pos still has its flag set, the
// flag is cleared and NotEqual returns true one more time, so the loop
//
//	for pos, end := v.Begin(), v.End(); pos.NotEqual(end); pos.Advance() { ... }
//
// visits the element at the terminal position before it stops. Only the next call returns false.
func (pos *ReversePosition[M, T]) NotEqual(other ReversePosition[M, T]) bool {
	if !pos.marker.Equal(other.marker) {
		return true
	}
	if pos.more {
		pos.more = false
		return true
	}
	return false
}

// ConstReversePosition is a ReversePosition that only hands out copies of elements.
type ConstReversePosition[M BidiMarker[M, T], T any] struct {
	pos ReversePosition[M, T]
}

// Value returns a copy of the element at the position.
func (pos *ConstReversePosition[M, T]) Value() T {
	return *pos.pos.Ref()
}

// Marker returns the underlying marker.
func (pos *ConstReversePosition[M, T]) Marker() M {
	return pos.pos.marker
}

// Advance is the read-only form of ReversePosition.Advance.
func (pos *ConstReversePosition[M, T]) Advance() *ConstReversePosition[M, T] {
	pos.pos.Advance()
	return pos
}

// PostAdvance is the read-only form of ReversePosition.PostAdvance.
func (pos *ConstReversePosition[M, T]) PostAdvance() ConstReversePosition[M, T] {
	return ConstReversePosition[M, T]{pos.pos.PostAdvance()}
}

// Retreat is the read-only form of ReversePosition.Retreat.
func (pos *ConstReversePosition[M, T]) Retreat() *ConstReversePosition[M, T] {
	pos.pos.Retreat()
	return pos
}

// PostRetreat is the read-only form of ReversePosition.PostRetreat.
func (pos *ConstReversePosition[M, T]) PostRetreat() ConstReversePosition[M, T] {
	return ConstReversePosition[M, T]{pos.pos.PostRetreat()}
}

// NotEqual is the read-only form of ReversePosition.NotEqual. It clears the flag the same way.
func (pos *ConstReversePosition[M, T]) NotEqual(other ConstReversePosition[M, T]) bool {
	return pos.pos.NotEqual(other.pos)
}

// ReverseIterator follows the convention documented in package iterator.
type ReverseIterator[M BidiMarker[M, T], T any] struct {
	pos ReversePosition[M, T]
	end ReversePosition[M, T]
}

// Next returns the next element in the iteration. It returns iterator.Done once the first element
// of the underlying range was returned.
func (it *ReverseIterator[M, T]) Next() (*T, error) {
	if !it.pos.NotEqual(it.end) {
		return nil, iterator.Done
	}
	elem := it.pos.Ref()
	it.pos.Advance()
	return elem, nil
}
