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
	"github.com/tolerantlabs/syntax/seq"
)

// Slot describes one named child slot of a node variant.
//
// A scalar slot holds a single optional child; a repeated slot holds an
// ordered list of children. Slot order is declaration order, which must
// match source order, since position and text arithmetic walk slots in
// order.
type Slot struct {
	Name     string
	Repeated bool
}

// Single returns a scalar slot descriptor.
func Single(name string) Slot {
	return Slot{Name: name}
}

// List returns a repeated slot descriptor.
func List(name string) Slot {
	return Slot{Name: name, Repeated: true}
}

// Shape is the per-variant child descriptor: the ordered set of named child
// slots a node kind declares. Shapes are computed once per variant when the
// [Schema] is built, never per node.
type Shape struct {
	kind  kind.Node
	slots []Slot
	index map[string]int
}

// Kind returns the node kind this shape describes.
func (s *Shape) Kind() kind.Node {
	return s.kind
}

// Slots returns the ordered slot descriptors.
func (s *Shape) Slots() seq.Indexer[Slot] {
	return seq.NewSlice(s.slots, func(_ int, s Slot) Slot { return s })
}

// Index returns the position of the named slot, if the shape declares it.
func (s *Shape) Index(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Schema maps node kinds to their [Shape]s for one grammar. It also carries
// the grammar's [kind.Registry], so that anything holding a node can resolve
// kind names.
//
// Schemas are immutable once built; lookups are safe from any goroutine.
type Schema struct {
	registry *kind.Registry
	shapes   map[kind.Node]*Shape
}

// Registry returns the kind registry this schema was built against.
func (s *Schema) Registry() *kind.Registry {
	return s.registry
}

// Shape returns the shape declared for k, or nil if k has none.
func (s *Schema) Shape(k kind.Node) *Shape {
	return s.shapes[k]
}

// SchemaBuilder accumulates variant declarations and produces an immutable
// [Schema]. Builders are not safe for concurrent use.
type SchemaBuilder struct {
	registry *kind.Registry
	shapes   map[kind.Node]*Shape
}

// NewSchemaBuilder returns a builder for a schema over the given registry.
func NewSchemaBuilder(registry *kind.Registry) *SchemaBuilder {
	return &SchemaBuilder{
		registry: registry,
		shapes:   make(map[kind.Node]*Shape),
	}
}

// Variant declares the ordered child slots for a node kind.
//
// Panics if k is zero or already declared, or if two slots share a name.
func (b *SchemaBuilder) Variant(k kind.Node, slots ...Slot) *SchemaBuilder {
	if k.IsZero() {
		panic("syntax: declared variant for the zero node kind")
	}
	if _, ok := b.shapes[k]; ok {
		panic(fmt.Sprintf("syntax: variant %s declared twice", b.registry.NodeName(k)))
	}

	index := make(map[string]int, len(slots))
	for i, slot := range slots {
		if slot.Name == "" {
			panic(fmt.Sprintf("syntax: variant %s declares a slot with an empty name", b.registry.NodeName(k)))
		}
		if _, ok := index[slot.Name]; ok {
			panic(fmt.Sprintf("syntax: variant %s declares slot %q twice", b.registry.NodeName(k), slot.Name))
		}
		index[slot.Name] = i
	}

	b.shapes[k] = &Shape{kind: k, slots: slots, index: index}
	return b
}

// Build produces the immutable schema for everything declared so far.
//
// The builder must not be used after calling Build.
func (b *SchemaBuilder) Build() *Schema {
	s := &Schema{registry: b.registry, shapes: b.shapes}
	*b = SchemaBuilder{}
	return s
}
