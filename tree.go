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

	"github.com/tolerantlabs/syntax/kind"
	"github.com/tolerantlabs/syntax/source"
	"github.com/tolerantlabs/syntax/token"
)

// Tree owns one parsed file: its source buffer, its root node, and the
// designated end-of-file token that carries any trailing trivia.
//
// A Tree is the only mutable piece of this package, and only between
// [NewTree] and [Tree.Finish]. Exactly one goroutine (the parser) may build
// a tree; once Finish returns, the tree is frozen and every operation on it
// is read-only and safe to run concurrently.
type Tree struct {
	schema *Schema
	file   *source.File
	root   *Node
	eof    token.Token
	frozen bool
}

// NewTree returns an empty, unfrozen tree over the given file.
func NewTree(schema *Schema, file *source.File) *Tree {
	if schema == nil {
		panic("syntax: NewTree called with a nil schema")
	}
	return &Tree{schema: schema, file: file}
}

// Schema returns the schema this tree was built against.
func (t *Tree) Schema() *Schema {
	return t.schema
}

// File returns the source file this tree was parsed from.
func (t *Tree) File() *source.File {
	return t.file
}

// Text returns the file's full text.
func (t *Tree) Text() string {
	return t.file.Text()
}

// Root returns the root node, or nil before [Tree.Finish].
func (t *Tree) Root() *Node {
	return t.root
}

// EOF returns the end-of-file token, or the zero token before
// [Tree.Finish].
func (t *Tree) EOF() token.Token {
	return t.eof
}

// SlotValue names a child slot and carries its value, for [Tree.NewNode].
type SlotValue struct {
	name     string
	elem     Element
	list     []Element
	repeated bool
}

// Put assigns a single child to the named scalar slot. A zero element means
// the slot is absent, same as omitting it.
func Put(name string, e Element) SlotValue {
	return SlotValue{name: name, elem: e}
}

// PutNode is shorthand for Put(name, NodeOf(n)).
func PutNode(name string, n *Node) SlotValue {
	return Put(name, NodeOf(n))
}

// PutToken is shorthand for Put(name, TokenOf(t)).
func PutToken(name string, t token.Token) SlotValue {
	return Put(name, TokenOf(t))
}

// PutList assigns an ordered list of children to the named repeated slot.
func PutList(name string, elems ...Element) SlotValue {
	return SlotValue{name: name, list: elems, repeated: true}
}

// slotValue is a slot's value at rest. Whether elem or list is meaningful
// is decided by the shape's Repeated flag for that slot.
type slotValue struct {
	elem Element
	list []Element
}

// NewNode creates a node of the given kind and attaches the given children,
// wiring each child node's parent back-reference.
//
// Children must be attached in left-to-right source order per slot; slots
// not mentioned are absent (scalar) or empty (repeated). Panics if the tree
// is frozen, k has no shape in the schema, a value names an unknown slot or
// the same slot twice, a scalar value is given for a repeated slot or vice
// versa, a list entry is zero, or a child node already has a parent or
// belongs to another tree.
func (t *Tree) NewNode(k kind.Node, values ...SlotValue) *Node {
	if t.frozen {
		panic("syntax: attempted to build a node in a frozen tree")
	}
	shape := t.schema.Shape(k)
	if shape == nil {
		panic(fmt.Sprintf("syntax: no shape declared for node kind %s", t.schema.registry.NodeName(k)))
	}

	n := &Node{
		tree:  t,
		kind:  k,
		shape: shape,
		slots: make([]slotValue, len(shape.slots)),
	}

	seen := make(map[string]bool, len(values))
	for _, v := range values {
		i, ok := shape.Index(v.name)
		if !ok {
			panic(fmt.Sprintf("syntax: %s has no slot %q", n, v.name))
		}
		if seen[v.name] {
			panic(fmt.Sprintf("syntax: slot %q of %s set twice", v.name, n))
		}
		seen[v.name] = true

		if v.repeated != shape.slots[i].Repeated {
			if v.repeated {
				panic(fmt.Sprintf("syntax: slot %q of %s is scalar, but was given a list", v.name, n))
			}
			panic(fmt.Sprintf("syntax: slot %q of %s is repeated, but was given a single child", v.name, n))
		}

		if v.repeated {
			for j, e := range v.list {
				if e.IsZero() {
					panic(fmt.Sprintf("syntax: entry %d of slot %q of %s is absent; list entries must not be", j, v.name, n))
				}
				t.attach(n, e)
			}
			n.slots[i].list = v.list
		} else {
			t.attach(n, v.elem)
			n.slots[i].elem = v.elem
		}
	}

	return n
}

// attach wires e's parent back-reference to parent. Attaching is the
// one-time mutation point of the tree model: after it, e is reachable from
// exactly one parent.
func (t *Tree) attach(parent *Node, e Element) {
	child := e.AsNode()
	if child == nil {
		return // Tokens are plain values; parentage lives in the slot.
	}
	if child.tree != t {
		panic(fmt.Sprintf("syntax: attached %s to a node from a different tree", child))
	}
	if child.parent != nil {
		panic(fmt.Sprintf("syntax: attached %s twice; each node must have exactly one parent", child))
	}
	child.parent = parent
}

// Finish designates the root node and the end-of-file token, and freezes
// the tree.
//
// The end-of-file token's leading trivia carries any trailing whitespace
// and comments of the file, so that the whole buffer remains recoverable.
// Panics if the tree is already frozen, root is nil or from another tree,
// or root already has a parent.
func (t *Tree) Finish(root *Node, eof token.Token) {
	if t.frozen {
		panic("syntax: Finish called twice")
	}
	if root == nil {
		panic("syntax: Finish called with a nil root")
	}
	if root.tree != t {
		panic("syntax: Finish called with a root from a different tree")
	}
	if root.parent != nil {
		panic(fmt.Sprintf("syntax: Finish called with %s, which has a parent", root))
	}

	t.root = root
	t.eof = eof
	t.frozen = true
}
