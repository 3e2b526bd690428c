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
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/tolerantlabs/syntax/kind"
	"github.com/tolerantlabs/syntax/token"
)

// MarshalOptions configures [Marshal]. Options are an explicit parameter,
// not process-wide state, so different callers of the same tree can render
// it differently.
type MarshalOptions struct {
	// CompactTokens renders each token as {kind, textLength} instead of the
	// full {kind, fullStart, start, length} record.
	CompactTokens bool
}

// Marshal renders an element as a structured record: for a node, a
// single-key mapping from its kind name to the ordered mapping of slot
// names to recursively rendered children (list slots as sequences, absent
// children as null); for a token, a record of its kind name and offsets.
//
// The result is a [yaml.Node] because the slot mapping is ordered and Go
// maps are not. It marshals to YAML directly and converts losslessly to
// JSON-style output. Serialization is purely structural: it never touches
// the source buffer.
func Marshal(reg *kind.Registry, e Element, opts MarshalOptions) *yaml.Node {
	c := codec{reg: reg, opts: opts}
	return c.element(e)
}

// MarshalText is [Marshal] rendered as YAML text.
func MarshalText(reg *kind.Registry, e Element, opts MarshalOptions) (string, error) {
	out, err := yaml.Marshal(Marshal(reg, e, opts))
	return string(out), err
}

// Marshal renders this node using its own tree's registry.
func (n *Node) Marshal(opts MarshalOptions) *yaml.Node {
	return Marshal(n.tree.schema.registry, NodeOf(n), opts)
}

type codec struct {
	reg  *kind.Registry
	opts MarshalOptions
}

func (c codec) element(e Element) *yaml.Node {
	switch {
	case e.IsNode():
		return c.node(e.AsNode())
	case e.IsToken():
		return c.token(e.AsToken())
	default:
		return scalarNull()
	}
}

func (c codec) node(n *Node) *yaml.Node {
	slots := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for entry := range n.Slots() {
		var value *yaml.Node
		if entry.Slot.Repeated {
			value = &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
			for _, e := range entry.list {
				value.Content = append(value.Content, c.element(e))
			}
		} else {
			value = c.element(entry.elem)
		}
		slots.Content = append(slots.Content, scalarStr(entry.Slot.Name), value)
	}

	return &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: []*yaml.Node{scalarStr(c.reg.NodeName(n.Kind())), slots},
	}
}

func (c codec) token(t token.Token) *yaml.Node {
	record := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	record.Content = append(record.Content,
		scalarStr("kind"), scalarStr(c.reg.TokenName(t.Kind)))

	if c.opts.CompactTokens {
		record.Content = append(record.Content,
			scalarStr("textLength"), scalarInt(t.Width()))
	} else {
		record.Content = append(record.Content,
			scalarStr("fullStart"), scalarInt(t.FullStart),
			scalarStr("start"), scalarInt(t.Start),
			scalarStr("length"), scalarInt(t.Length))
	}
	return record
}

func scalarStr(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

func scalarInt(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

func scalarNull() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}
