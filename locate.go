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

package syntax

import (
	"slices"

	"github.com/tolerantlabs/syntax/internal/interval"
)

// NodeAt returns the innermost descendant of root whose span
// [FullStart, EndPosition) contains offset, or nil if no node's span does.
//
// The scan is linear in the number of descendant nodes: they are listed in
// pre-order and scanned backward, so among nodes whose spans contain the
// offset (always a chain of ancestors), the deepest one is found first.
// Callers issuing many queries against one tree should build an [Index]
// instead.
func NodeAt(root *Node, offset int) *Node {
	nodes := slices.Collect(root.DescendantNodes(nil))
	for _, n := range slices.Backward(nodes) {
		// Token-less nodes have no position at all; they cannot match.
		if n.FirstToken().IsZero() {
			continue
		}
		if n.FullStart() <= offset && offset < n.EndPosition() {
			return n
		}
	}
	return nil
}

// Index answers point-location queries against one frozen tree in
// logarithmic time. It returns exactly what [NodeAt] would, at the cost of
// an O(n) build; use it when queries are batched.
type Index struct {
	root  *Node
	spans interval.Nested[int, *Node]
}

// NewIndex builds a point-location index over root's descendants.
func NewIndex(root *Node) *Index {
	idx := &Index{root: root}
	for n := range root.DescendantNodes(nil) {
		if n.FirstToken().IsZero() {
			continue
		}
		start, end := n.FullStart(), n.EndPosition()
		if start < end {
			// Empty spans can contain no offset; NodeAt never returns such
			// a node, so the index need not store it.
			idx.spans.Insert(start, end, n)
		}
	}
	return idx
}

// Root returns the node this index was built over.
func (i *Index) Root() *Node {
	return i.root
}

// Len returns the number of indexed nodes.
func (i *Index) Len() int {
	return i.spans.Len()
}

// Locate returns the innermost descendant of the index's root whose span
// contains offset, or nil if no node's span does.
func (i *Index) Locate(offset int) *Node {
	entry, ok := i.spans.Innermost(offset)
	if !ok {
		return nil
	}
	return entry.Value
}
