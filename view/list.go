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
	"container/list"
)

// ListMarker is a position in a container/list.List. The end position is represented by a nil
// element. Stepping back from end lands on the last element.
//
// Note that the element before the front of a list is also nil, so a list has no position "one
// before begin" that differs from end. Reverse never needs one.
type ListMarker struct {
	list *list.List
	elem *list.Element
}

var _ BidiMarker[ListMarker, any] = ListMarker{}

// Element returns the list element at the position or nil at end.
func (m ListMarker) Element() *list.Element {
	return m.elem
}

// Ref implements Marker. It returns a pointer to the Value field of the element.
func (m ListMarker) Ref() *any {
	return &m.elem.Value
}

// Next implements Marker.
func (m ListMarker) Next() ListMarker {
	m.elem = m.elem.Next()
	return m
}

// Prev implements BidiMarker.
func (m ListMarker) Prev() ListMarker {
	if m.elem == nil {
		m.elem = m.list.Back()
	} else {
		m.elem = m.elem.Prev()
	}
	return m
}

// Equal implements Marker.
func (m ListMarker) Equal(other ListMarker) bool {
	return m.elem == other.elem
}

// List makes a container/list.List satisfy Container.
type List struct {
	l *list.List
}

var _ Container[ListMarker] = List{}

// NewList wraps l.
func NewList(l *list.List) List {
	return List{l}
}

// Begin implements Container.
func (l List) Begin() ListMarker {
	return ListMarker{list: l.l, elem: l.l.Front()}
}

// End implements Container.
func (l List) End() ListMarker {
	return ListMarker{list: l.l}
}

// ForwardList returns a view over the elements of l.
func ForwardList(l *list.List) Forward[ListMarker, any] {
	return ForwardOf[ListMarker, any](NewList(l))
}

// ReverseList returns a reverse view over the elements of l.
func ReverseList(l *list.List) Reverse[ListMarker, any] {
	return ReverseOf[ListMarker, any](NewList(l))
}
