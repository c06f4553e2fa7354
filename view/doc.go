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

// Package view adapts sequences into forward and reverse views. A view wraps a pair of markers
// [begin, end) taken from a sequence owned by the caller. It never copies, allocates, or mutates
// the elements on its own.
//
//	numbers := []int{1, 2, 3, 4, 5}
//
//	for n := range view.ForwardSlice(numbers).Values() {
//		// 1, 2, 3, 4, 5
//	}
//
//	for n := range view.ReverseSlice(numbers).Values() {
//		// 5, 4, 3, 2, 1
//	}
//
// Sub-ranges are built from markers:
//
//	first3 := view.NewReverse[view.SliceMarker[int], int](
//		view.SliceAt(numbers, 0), view.SliceAt(numbers, 3)) // 3, 2, 1
//
// Any type implementing Marker (or BidiMarker for reverse views) can be adapted. Sequences that
// hand out their own markers implement Container, or FallibleContainer if doing so may fail. Only
// the FallibleContainer constructors return an error; every other constructor cannot fail.
//
// Views are not safe for concurrent traversal that mutates elements. Read-only traversal is as
// safe as the underlying sequence.
package view
