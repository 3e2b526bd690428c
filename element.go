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

	"github.com/tolerantlabs/syntax/token"
)

// Element is either a [*Node] or a [token.Token]: the value a child slot
// holds and the item a tree traversal yields.
//
// This type is used in lieu of an interface so that tokens, which are plain
// values, do not escape to the heap every time a traversal yields one. The
// zero Element denotes an absent child.
type Element struct {
	node *Node
	tok  token.Token
}

// NodeOf wraps a node as an [Element]. A nil node produces the zero Element.
func NodeOf(n *Node) Element {
	if n == nil {
		return Element{}
	}
	return Element{node: n}
}

// TokenOf wraps a token as an [Element]. The zero token produces the zero
// Element.
func TokenOf(t token.Token) Element {
	return Element{tok: t}
}

// IsZero returns whether this is the zero Element, i.e. an absent child.
func (e Element) IsZero() bool {
	return e.node == nil && e.tok.IsZero()
}

// IsNode returns whether this element holds a node.
func (e Element) IsNode() bool {
	return e.node != nil
}

// IsToken returns whether this element holds a token.
func (e Element) IsToken() bool {
	return e.node == nil && !e.tok.IsZero()
}

// AsNode returns the node this element holds, or nil if it holds a token or
// is zero.
func (e Element) AsNode() *Node {
	return e.node
}

// AsToken returns the token this element holds, or the zero token if it
// holds a node or is zero.
func (e Element) AsToken() token.Token {
	if e.node != nil {
		return token.Zero
	}
	return e.tok
}

// FullWidth returns the trivia-inclusive width of this element, or 0 for the
// zero Element.
func (e Element) FullWidth() int {
	if e.node != nil {
		return e.node.FullWidth()
	}
	return e.tok.FullWidth()
}

// Width returns the trimmed width of this element, or 0 for the zero
// Element.
func (e Element) Width() int {
	if e.node != nil {
		return e.node.Width()
	}
	return e.tok.Width()
}

// String implements [fmt.Stringer].
func (e Element) String() string {
	switch {
	case e.node != nil:
		return fmt.Sprintf("Element(%s)", e.node)
	case !e.tok.IsZero():
		return fmt.Sprintf("Element(%s)", e.tok)
	default:
		return "Element(<absent>)"
	}
}
