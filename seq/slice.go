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

package seq

// Slice implements [Indexer][T] using an ordinary slice as the backing
// storage, and using the given function to convert the raw values on access.
type Slice[T, E any] struct {
	Slice []E
	Wrap  func(int, E) T
}

// NewSlice constructs a new [Slice].
//
// This function exists because Go currently will not infer type parameters of
// a type.
func NewSlice[T, E any](slice []E, wrap func(int, E) T) Slice[T, E] {
	return Slice[T, E]{slice, wrap}
}

// Len implements [Indexer].
func (s Slice[T, _]) Len() int {
	return len(s.Slice)
}

// At implements [Indexer].
func (s Slice[T, _]) At(idx int) T {
	return s.Wrap(idx, s.Slice[idx])
}

// Empty returns an [Indexer] with no elements.
func Empty[T any]() Indexer[T] {
	return Slice[T, T]{}
}
