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

// Marker is a position into a sequence. A marker taken from a sequence is valid on the half-open
// range [begin, end) of that sequence plus end itself, which may be compared against but not
// dereferenced.
//
// M is the concrete marker type and T the element type. Markers are values: Next returns a new
// marker and leaves the receiver untouched.
type Marker[M any, T any] interface {
	// Ref returns a pointer to the element at the position. Writes through the pointer are visible
	// to every other marker referencing the same element.
	Ref() *T

	// Next returns the marker one step toward end.
	Next() M

	// Equal reports whether the two markers refer to the same position. Both markers must come
	// from the same sequence.
	Equal(other M) bool
}

// BidiMarker is a Marker that can also step toward begin.
type BidiMarker[M any, T any] interface {
	Marker[M, T]

	// Prev returns the marker one step toward begin. Calling Prev on the marker at begin is a
	// precondition violation.
	Prev() M
}

// Container is implemented by sequences that hand out their own begin and end markers and cannot
// fail doing so.
type Container[M any] interface {
	Begin() M
	End() M
}

// FallibleContainer is implemented by sequences whose begin and end markers may not be available,
// for example a cursor that has to be opened first.
type FallibleContainer[M any] interface {
	Begin() (M, error)
	End() (M, error)
}

// retreater is used to find out whether a forward-only Marker is also able to step back.
type retreater[M any] interface {
	Prev() M
}

func prev[M any](m M) M {
	r, ok := any(m).(retreater[M])
	if !ok {
		panic("view: marker does not support retreat")
	}
	return r.Prev()
}
