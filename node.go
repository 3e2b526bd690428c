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
	"iter"

	"github.com/tolerantlabs/syntax/kind"
	"github.com/tolerantlabs/syntax/seq"
)

// Node is an interior element of the syntax tree: a tagged variant over
// grammar kinds, holding an ordered, named set of children as declared by
// its kind's [Shape].
//
// Nodes hold a back-reference to their parent (nil at the root) and to the
// [Tree] that owns them, which is how text operations reach the source
// buffer in O(1). The back-references are used purely for navigation, never
// for lifetime management; dropping the tree drops every node with it.
type Node struct {
	tree   *Tree
	parent *Node
	shape  *Shape
	kind   kind.Node
	slots  []slotValue
}

// Kind returns this node's kind tag.
func (n *Node) Kind() kind.Node {
	return n.kind
}

// KindName resolves this node's kind through the schema's registry.
func (n *Node) KindName() string {
	return n.tree.schema.registry.NodeName(n.kind)
}

// Tree returns the tree that owns this node.
func (n *Node) Tree() *Tree {
	return n.tree
}

// Parent returns the node this node is attached to, or nil for the root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Shape returns the child descriptor for this node's kind.
func (n *Node) Shape() *Shape {
	return n.shape
}

// IsRoot returns whether this node is its tree's designated root.
func (n *Node) IsRoot() bool {
	return n.tree.root == n
}

// Root walks parent links up to the topmost node.
//
// Panics if the topmost node is not the tree's designated root, which means
// this node was never attached into the finished tree.
func (n *Node) Root() *Node {
	top := n
	for top.parent != nil {
		top = top.parent
	}
	if !top.IsRoot() {
		panic(fmt.Sprintf("syntax: %s is unreachable from the tree's root; the tree is malformed or unfinished", n))
	}
	return top
}

// Child returns the value of the named scalar slot; the zero [Element]
// means the slot is absent.
//
// Panics if this node's shape does not declare name, or declares it
// repeated.
func (n *Node) Child(name string) Element {
	i, ok := n.shape.Index(name)
	if !ok {
		panic(fmt.Sprintf("syntax: %s has no slot %q", n, name))
	}
	if n.shape.slots[i].Repeated {
		panic(fmt.Sprintf("syntax: slot %q of %s is repeated; use ChildList", name, n))
	}
	return n.slots[i].elem
}

// ChildList returns the ordered children of the named repeated slot.
//
// Panics if this node's shape does not declare name, or declares it scalar.
func (n *Node) ChildList(name string) seq.Indexer[Element] {
	i, ok := n.shape.Index(name)
	if !ok {
		panic(fmt.Sprintf("syntax: %s has no slot %q", n, name))
	}
	if !n.shape.slots[i].Repeated {
		panic(fmt.Sprintf("syntax: slot %q of %s is scalar; use Child", name, n))
	}
	return seq.NewSlice(n.slots[i].list, func(_ int, e Element) Element { return e })
}

// SlotEntry is one named slot of a node together with its value, as yielded
// by [Node.Slots].
type SlotEntry struct {
	// Slot is the descriptor: name and whether the slot is repeated.
	Slot Slot

	elem Element
	list []Element
}

// Element returns the scalar value of this slot; zero if the slot is absent
// or repeated.
func (s SlotEntry) Element() Element {
	return s.elem
}

// List returns the list value of this slot; empty if the slot is scalar.
func (s SlotEntry) List() seq.Indexer[Element] {
	return seq.NewSlice(s.list, func(_ int, e Element) Element { return e })
}

// Slots returns this node's named children in declaration order: the
// uniform (name, child) view every variant exposes, regardless of kind.
func (n *Node) Slots() iter.Seq[SlotEntry] {
	return func(yield func(SlotEntry) bool) {
		for i, slot := range n.shape.slots {
			entry := SlotEntry{Slot: slot}
			if slot.Repeated {
				entry.list = n.slots[i].list
			} else {
				entry.elem = n.slots[i].elem
			}
			if !yield(entry) {
				return
			}
		}
	}
}

// Ancestor returns the nearest ancestor of the given kind, or nil if no
// such ancestor exists. The search does not consider n itself.
func (n *Node) Ancestor(k kind.Node) *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.kind == k {
			return p
		}
	}
	return nil
}

// AncestorOrSelf returns the nearest of n and its ancestors for which p
// returns true, or nil if there is none.
func (n *Node) AncestorOrSelf(p func(*Node) bool) *Node {
	for cur := n; cur != nil; cur = cur.parent {
		if p(cur) {
			return cur
		}
	}
	return nil
}

// String implements [fmt.Stringer].
func (n *Node) String() string {
	if n == nil {
		return "Node(<nil>)"
	}
	return fmt.Sprintf("Node(%s)", n.KindName())
}
