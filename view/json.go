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
	"encoding/json"
	"iter"

	jsoniter "github.com/json-iterator/go"
)

var (
	_ json.Marshaler = Forward[SliceMarker[int], int]{}
	_ json.Marshaler = Reverse[SliceMarker[int], int]{}
)

// MarshalJSON implements json.Marshaler. The view is encoded as an array of its elements in
// traversal order.
func (v Forward[M, T]) MarshalJSON() ([]byte, error) {
	return marshalValues(v.Values())
}

// MarshalJSON implements json.Marshaler. The view is encoded as an array of its elements in
// traversal order, that is, last element first.
func (v Reverse[M, T]) MarshalJSON() ([]byte, error) {
	return marshalValues(v.Values())
}

func marshalValues[T any](values iter.Seq[T]) ([]byte, error) {
	config := jsoniter.ConfigCompatibleWithStandardLibrary
	stream := config.BorrowStream(nil)
	defer config.ReturnStream(stream)

	stream.WriteArrayStart()
	first := true
	for value := range values {
		if first {
			first = false
		} else {
			stream.WriteMore()
		}
		stream.WriteVal(value)
		if stream.Error != nil {
			return nil, stream.Error
		}
	}
	stream.WriteArrayEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	// The buffer goes back to the pool with the stream.
	result := make([]byte, len(stream.Buffer()))
	copy(result, stream.Buffer())
	return result, nil
}
