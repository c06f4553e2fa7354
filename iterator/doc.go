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

// Package iterator documents the iterator convention shared by the views in rangeview. The
// pattern draws significant inspiration from the Iterator Guidelines established for Google Cloud
// Client Libraries for Go [0].
//
// A view is "iterable": it provides a method named Iterator which returns an iterator over its
// elements. The iterator has one method Next for stepping over individual elements. Next returns
// Done when the traversal is complete. For example, with a reverse view over a slice,
//
//	iter := view.ReverseSlice(numbers).Iterator()
//	for {
//		n, err := iter.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			handleError(err)
//		}
//		process(*n)
//	}
//
// Views never produce errors of their own, so err is either nil or Done. The convention is kept
// so that a view can be handed to code written against any iterator that follows it.
//
// Most callers want range-over-func instead:
//
//	for n := range view.ReverseSlice(numbers).All() {
//		process(*n)
//	}
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
