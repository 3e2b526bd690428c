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

// Package interval provides a point-queryable collection of nested,
// half-open intervals.
package interval

import (
	"fmt"
	"iter"

	"github.com/tidwall/btree"
	"golang.org/x/exp/constraints" //nolint:exptostd // Tries to replace w/ cmp.
)

// Endpoint is a type that may be used as an interval endpoint.
type Endpoint = constraints.Integer

// Entry is an interval stored in a [Nested], along with its value.
//
// Start is inclusive, End is exclusive.
type Entry[K Endpoint, V any] struct {
	Start, End K
	Value      V
}

// Nested is a collection of half-open intervals that form a laminar family:
// any two intervals are either disjoint or one contains the other. Spans of
// a syntax tree have this property, since sibling spans partition their
// parent's span.
//
// Intervals are arranged into layers of mutually disjoint intervals, keyed
// by their (exclusive) ends in a btree, so a point query within a layer is
// a single seek. An interval's layer equals its nesting depth among the
// intervals inserted before it, which makes [Nested.Innermost] a
// deepest-layer-first scan. Containers must therefore be inserted before
// the intervals they contain (for a syntax tree: pre-order).
type Nested[K Endpoint, V any] struct {
	// Keys in each tree are the ends of the intervals.
	sets []*btree.Map[K, *Entry[K, V]]
	len  int
}

// Len returns the number of intervals in this collection.
func (n *Nested[K, V]) Len() int {
	return n.len
}

// Depth returns the number of nesting layers in this collection.
func (n *Nested[K, V]) Depth() int {
	return len(n.sets)
}

// Clear resets this collection without discarding allocated memory
// (where possible).
func (n *Nested[K, V]) Clear() {
	for _, set := range n.sets {
		set.Clear()
	}
	n.len = 0
}

// Insert adds a new interval to the collection.
//
// Panics if start >= end (empty intervals can contain no point, so they do
// not belong in this structure) or if [start, end) partially overlaps an
// interval already present.
func (n *Nested[K, V]) Insert(start, end K, value V) {
	if start >= end {
		panic(fmt.Sprintf("interval: inserted empty interval [%#v, %#v)", start, end))
	}

	var found *btree.Map[K, *Entry[K, V]]
	for _, set := range n.sets {
		// Within a layer, intervals are disjoint, so the least end at or
		// after ours is the only candidate for a container.
		if next := set.Iter(); next.Seek(end) && next.Value().Start < end {
			if next.Value().Start <= start {
				continue // Properly nested inside it; try a deeper layer.
			}
			panic(fmt.Sprintf(
				"interval: inserted [%#v, %#v), which partially overlaps [%#v, %#v)",
				start, end, next.Value().Start, next.Value().End,
			))
		}

		// No container in this layer. The interval just before our end, if
		// any, must lie entirely to our left; anything else violates either
		// the laminar-family contract or containers-first insertion order.
		prev := set.Iter()
		var havePrev bool
		if prev.Seek(end) {
			havePrev = prev.Prev()
		} else {
			havePrev = prev.Last()
		}
		if havePrev && prev.Value().End > start {
			panic(fmt.Sprintf(
				"interval: inserted [%#v, %#v), which overlaps [%#v, %#v)",
				start, end, prev.Value().Start, prev.Value().End,
			))
		}

		found = set
		break
	}

	if found == nil {
		found = new(btree.Map[K, *Entry[K, V]])
		n.sets = append(n.sets, found)
	}

	found.Set(end, &Entry[K, V]{Start: start, End: end, Value: value})
	n.len++
}

// Innermost returns the most deeply nested interval containing p, if any.
func (n *Nested[K, V]) Innermost(p K) (Entry[K, V], bool) {
	for i := len(n.sets) - 1; i >= 0; i-- {
		iter := n.sets[i].Iter()
		if !iter.Seek(p) {
			continue
		}
		// An interval whose exclusive end equals p does not contain it.
		if iter.Key() == p && !iter.Next() {
			continue
		}
		if iter.Value().Start <= p {
			return *iter.Value(), true
		}
	}
	return Entry[K, V]{}, false
}

// Entries returns an iterator over all intervals in the collection, from the
// outermost layer inward; within a layer, intervals are yielded in ascending
// order.
func (n *Nested[K, V]) Entries() iter.Seq[Entry[K, V]] {
	return func(yield func(Entry[K, V]) bool) {
		for _, set := range n.sets {
			done := false
			set.Scan(func(_ K, value *Entry[K, V]) bool {
				done = !yield(*value)
				return !done
			})
			if done {
				return
			}
		}
	}
}
