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

// SliceMarker is a position in a slice.
type SliceMarker[T any] struct {
	s []T
	i int
}

var _ BidiMarker[SliceMarker[int], int] = SliceMarker[int]{}

// SliceBegin returns the marker of the first element in s.
func SliceBegin[T any](s []T) SliceMarker[T] {
	return SliceMarker[T]{s: s}
}

// SliceEnd returns the marker one past the last element in s.
func SliceEnd[T any](s []T) SliceMarker[T] {
	return SliceMarker[T]{s: s, i: len(s)}
}

// SliceAt returns the marker of s[i]. i may be len(s).
func SliceAt[T any](s []T, i int) SliceMarker[T] {
	return SliceMarker[T]{s: s, i: i}
}

// Index returns the index of the position in the slice.
func (m SliceMarker[T]) Index() int {
	return m.i
}

// Ref implements Marker.
func (m SliceMarker[T]) Ref() *T {
	return &m.s[m.i]
}

// Next implements Marker.
func (m SliceMarker[T]) Next() SliceMarker[T] {
	m.i++
	return m
}

// Prev implements BidiMarker.
func (m SliceMarker[T]) Prev() SliceMarker[T] {
	m.i--
	return m
}

// Equal implements Marker. Only indices are compared; m and other must be taken from the same
// slice.
func (m SliceMarker[T]) Equal(other SliceMarker[T]) bool {
	return m.i == other.i
}

// Slice makes a slice satisfy Container.
type Slice[T any] []T

var _ Container[SliceMarker[int]] = Slice[int](nil)

// Begin implements Container.
func (s Slice[T]) Begin() SliceMarker[T] {
	return SliceBegin([]T(s))
}

// End implements Container.
func (s Slice[T]) End() SliceMarker[T] {
	return SliceEnd([]T(s))
}
