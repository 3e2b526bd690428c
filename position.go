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
	"fmt"

	"github.com/tolerantlabs/syntax/source"
	"github.com/tolerantlabs/syntax/token"
)

// Interior nodes store no spans of their own; every position below is
// derived from the node's children on demand.

// FirstToken returns the first token in this node's subtree, in document
// order, or the zero token if the subtree contains none.
func (n *Node) FirstToken() token.Token {
	for e := range n.Children() {
		if e.IsToken() {
			return e.AsToken()
		}
		if t := e.AsNode().FirstToken(); !t.IsZero() {
			return t
		}
	}
	return token.Zero
}

// FullStart returns the byte offset where this node's first token's leading
// trivia begins.
//
// Panics if the subtree contains no tokens; a node with no tokens has no
// position, and asking for one means the producer built a malformed tree.
func (n *Node) FullStart() int {
	return n.mustFirstToken().FullStart
}

// Start returns the byte offset where this node's first token's significant
// text begins.
//
// Panics if the subtree contains no tokens.
func (n *Node) Start() int {
	return n.mustFirstToken().Start
}

func (n *Node) mustFirstToken() token.Token {
	t := n.FirstToken()
	if t.IsZero() {
		panic(fmt.Sprintf("syntax: %s contains no tokens and has no position", n))
	}
	return t
}

// Width returns this node's trimmed width: its full width minus the leading
// trivia of its first token.
//
// It is computed as a sum over direct children in slot order, where the
// first child contributes its trimmed width and every later child its full
// width. Trivia between siblings is interior to the node and counts; only
// the trivia before the node's first token is excluded, since that belongs
// to whatever wraps this node.
func (n *Node) Width() int {
	var w int
	first := true
	for e := range n.Children() {
		if first {
			w += e.Width()
			first = false
		} else {
			w += e.FullWidth()
		}
	}
	return w
}

// FullWidth returns this node's trivia-inclusive width: the sum of the full
// widths of its direct children.
func (n *Node) FullWidth() int {
	var w int
	for e := range n.Children() {
		w += e.FullWidth()
	}
	return w
}

// EndPosition returns the byte offset one past this node's span, trailing
// trivia included: the full start of whatever comes next in the file.
//
// For a node with a following node sibling, that is the sibling's full
// start. The last node child of any parent extends to wherever the parent
// ends, terminating at the end-of-file token's full start; the root itself
// ends at the end-of-file token's end, which is the end of the buffer.
//
// Panics if this node is neither attached to a parent nor the tree's root:
// such a node is detached, and a detached node is a malformed tree, not an
// answerable query.
func (n *Node) EndPosition() int {
	if n.parent == nil {
		if !n.IsRoot() {
			panic(fmt.Sprintf("syntax: EndPosition of %s, which is neither attached nor the root", n))
		}
		return n.tree.eof.End()
	}

	// Locate n by identity among the parent's direct node children; its end
	// is the next such sibling's full start.
	var seen bool
	for sibling := range n.parent.ChildNodes() {
		if sibling == n {
			seen = true
			continue
		}
		if seen {
			return sibling.FullStart()
		}
	}
	if !seen {
		panic(fmt.Sprintf("syntax: %s is not among its parent's children; the tree is malformed", n))
	}

	if n.parent.parent == nil {
		// The parent is the topmost node. Whether or not it is the root is
		// checked by its own EndPosition; the last child stops short of the
		// end-of-file token's trailing trivia.
		if !n.parent.IsRoot() {
			panic(fmt.Sprintf("syntax: %s is unreachable from the tree's root; the tree is malformed or unfinished", n))
		}
		return n.tree.eof.FullStart
	}
	return n.parent.EndPosition()
}

// Span returns this node's span in the source file: trimmed start to
// [Node.EndPosition].
func (n *Node) Span() source.Span {
	return n.tree.file.Span(n.Start(), n.EndPosition())
}

// FullSpan returns this node's span including its leading trivia.
func (n *Node) FullSpan() source.Span {
	return n.tree.file.Span(n.FullStart(), n.EndPosition())
}
