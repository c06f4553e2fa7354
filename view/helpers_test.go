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

package view_test

import (
	"container/list"

	"github.com/botobag/rangeview/view"
)

// node is an element of a singly linked list; nodeMarker is a forward-only marker over it.
type node struct {
	value int
	next  *node
}

type nodeMarker struct {
	n *node
}

func (m nodeMarker) Ref() *int { return &m.n.value }
func (m nodeMarker) Next() nodeMarker { return nodeMarker{m.n.next} }
func (m nodeMarker) Equal(other nodeMarker) bool { return m.n == other.n }

func chain(values ...int) *node {
	var head *node
	for i := len(values) - 1; i >= 0; i-- {
		head = &node{value: values[i], next: head}
	}
	return head
}

// brittleMarker panics when stepped back.
type brittleMarker struct {
	i int
}

func (m brittleMarker) Ref() *int { return new(int) }
func (m brittleMarker) Next() brittleMarker { return brittleMarker{m.i + 1} }
func (m brittleMarker) Prev() brittleMarker { panic("retreat failed") }
func (m brittleMarker) Equal(other brittleMarker) bool { return m.i == other.i }

// cursor is a FallibleContainer over a slice.
type cursor struct {
	values   []int
	beginErr error
	endErr   error
}

func (c cursor) Begin() (view.SliceMarker[int], error) {
	if c.beginErr != nil {
		return view.SliceMarker[int]{}, c.beginErr
	}
	return view.SliceBegin(c.values), nil
}

func (c cursor) End() (view.SliceMarker[int], error) {
	if c.endErr != nil {
		return view.SliceMarker[int]{}, c.endErr
	}
	return view.SliceEnd(c.values), nil
}

func newIntList(values ...int) *list.List {
	l := list.New()
	for _, value := range values {
		l.PushBack(value)
	}
	return l
}

func listInts(l *list.List) []int {
	var result []int
	for e := l.Front(); e != nil; e = e.Next() {
		result = append(result, e.Value.(int))
	}
	return result
}
