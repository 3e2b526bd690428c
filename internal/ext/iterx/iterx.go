// Copyright 2024-2026 Tolerant Labs, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package iterx contains extensions to Go's package iter.
package iterx

import "iter"

// First retrieves the first element of an iterator.
func First[T any](seq iter.Seq[T]) (v T, ok bool) {
	for x := range seq {
		return x, true
	}
	return v, false
}

// Filter returns a sequence of the elements of seq for which p returns true.
func Filter[T any](seq iter.Seq[T], p func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range seq {
			if p(x) && !yield(x) {
				return
			}
		}
	}
}

// FilterMap returns a sequence that applies f to each element of seq,
// yielding only those results for which f returns true.
func FilterMap[T, U any](seq iter.Seq[T], f func(T) (U, bool)) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range seq {
			if u, ok := f(x); ok && !yield(u) {
				return
			}
		}
	}
}

// Count counts the elements of seq, exhausting it.
func Count[T any](seq iter.Seq[T]) int {
	var n int
	for range seq {
		n++
	}
	return n
}
