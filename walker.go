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
	"iter"

	"github.com/tolerantlabs/syntax/internal/ext/iterx"
	"github.com/tolerantlabs/syntax/token"
)

// Cursor is an iterator over a subtree in document order (pre-order,
// left-to-right, tokens and nodes interleaved as they appear in source).
// Unlike a plain range func, it supports peeking.
//
// A Cursor holds an explicit stack of per-depth child positions rather than
// suspending a goroutine, so pausing and resuming one is free, and any
// number of cursors may walk the same frozen tree at once. The
// subtree's own node is not yielded; traversal starts at its children.
type Cursor struct {
	// pred decides, once per visited node, whether to descend into it. A nil
	// pred descends unconditionally.
	pred  func(*Node) bool
	stack []frame

	peeked  Element
	hasPeek bool
}

// frame is the remaining-children position within one node: the slot being
// read and, for repeated slots, the index within its list.
type frame struct {
	node *Node
	slot int
	idx  int
}

// NewCursor returns a cursor over the children and descendants of n.
//
// pred is evaluated once per visited node (never per token) to decide
// whether to descend into that node's children; when it returns false the
// node's whole subtree is skipped, tokens included. A nil pred means
// unconditional descent. Descent into n itself is unconditional.
func NewCursor(n *Node, pred func(*Node) bool) *Cursor {
	return &Cursor{pred: pred, stack: []frame{{node: n}}}
}

// Next returns the next element in document order, or the zero [Element]
// when the traversal is exhausted.
func (c *Cursor) Next() Element {
	if c.hasPeek {
		c.hasPeek = false
		return c.peeked
	}

	for len(c.stack) > 0 {
		e, ok := c.stack[len(c.stack)-1].advance()
		if !ok {
			c.stack = c.stack[:len(c.stack)-1]
			continue
		}

		if child := e.AsNode(); child != nil && (c.pred == nil || c.pred(child)) {
			c.stack = append(c.stack, frame{node: child})
		}
		return e
	}
	return Element{}
}

// Peek returns what [Cursor.Next] would return, without advancing.
func (c *Cursor) Peek() Element {
	if !c.hasPeek {
		c.peeked = c.Next()
		c.hasPeek = true
	}
	return c.peeked
}

// Done returns whether the traversal is exhausted.
func (c *Cursor) Done() bool {
	return c.Peek().IsZero()
}

// advance produces the frame's next present child, in slot order with list
// slots flattened in place and absent children skipped.
func (f *frame) advance() (Element, bool) {
	for f.slot < len(f.node.slots) {
		if f.node.shape.slots[f.slot].Repeated {
			list := f.node.slots[f.slot].list
			if f.idx < len(list) {
				e := list[f.idx]
				f.idx++
				return e, true
			}
		} else if f.idx == 0 {
			f.idx = 1
			if e := f.node.slots[f.slot].elem; !e.IsZero() {
				return e, true
			}
			continue
		}
		f.slot++
		f.idx = 0
	}
	return Element{}, false
}

// Children returns the direct children of n, in slot order, list slots
// flattened in place, absent children skipped.
//
// Like all traversals in this package, the result is lazy and fresh per
// call: ranging over it twice walks the tree twice.
func (n *Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		f := frame{node: n}
		for {
			e, ok := f.advance()
			if !ok || !yield(e) {
				return
			}
		}
	}
}

// ChildNodes returns the direct children of n that are nodes.
func (n *Node) ChildNodes() iter.Seq[*Node] {
	return iterx.FilterMap(n.Children(), func(e Element) (*Node, bool) {
		return e.AsNode(), e.IsNode()
	})
}

// ChildTokens returns the direct children of n that are tokens.
func (n *Node) ChildTokens() iter.Seq[token.Token] {
	return iterx.FilterMap(n.Children(), func(e Element) (token.Token, bool) {
		return e.AsToken(), e.IsToken()
	})
}

// Descendants returns every node and token under n in document order; n
// itself is not included. A node is always yielded before its descendants.
//
// pred is evaluated once per yielded node to decide whether to descend into
// it; false skips that node's entire subtree, tokens included. A nil pred
// descends unconditionally.
func (n *Node) Descendants(pred func(*Node) bool) iter.Seq[Element] {
	return func(yield func(Element) bool) {
		c := NewCursor(n, pred)
		for {
			e := c.Next()
			if e.IsZero() || !yield(e) {
				return
			}
		}
	}
}

// DescendantNodes is [Node.Descendants] filtered to nodes.
//
// pred still controls descent for every visited node, so a node for which
// pred returns false is yielded but its subtree is not.
func (n *Node) DescendantNodes(pred func(*Node) bool) iter.Seq[*Node] {
	return iterx.FilterMap(n.Descendants(pred), func(e Element) (*Node, bool) {
		return e.AsNode(), e.IsNode()
	})
}

// DescendantTokens is [Node.Descendants] filtered to tokens.
func (n *Node) DescendantTokens(pred func(*Node) bool) iter.Seq[token.Token] {
	return iterx.FilterMap(n.Descendants(pred), func(e Element) (token.Token, bool) {
		return e.AsToken(), e.IsToken()
	})
}
