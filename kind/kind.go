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

// Package kind defines the small integer tags that identify grammar
// productions and lexical categories, and the registry that resolves them to
// human-readable names.
//
// This package does not define any particular grammar's kinds; each grammar
// declares its own via a [Builder] at startup and passes the resulting
// [Registry] to the packages that consume it. A Registry is immutable once
// built, so lookups are safe from any number of goroutines.
package kind

import "fmt"

// Token identifies a lexical category, such as an identifier or a string
// literal. The zero value is reserved to mean "no kind".
type Token uint32

// Node identifies a grammar production, such as a statement or expression
// form. The zero value is reserved to mean "no kind".
type Node uint32

// IsZero returns whether this is the reserved zero kind.
func (k Token) IsZero() bool { return k == 0 }

// IsZero returns whether this is the reserved zero kind.
func (k Node) IsZero() bool { return k == 0 }

// Registry is a bidirectional mapping between kind tags and their names, for
// both token and node kinds.
//
// Registries are constructed with a [Builder] and are read-only thereafter.
type Registry struct {
	tokenNames []string
	nodeNames  []string
	tokens     map[string]Token
	nodes      map[string]Node
}

// TokenName returns the name registered for k.
//
// Returns a debug placeholder for unregistered or zero kinds, since this
// function is mostly used for rendering diagnostics and serialized trees,
// where failing is worse than being ugly.
func (r *Registry) TokenName(k Token) string {
	if r != nil && int(k) > 0 && int(k) <= len(r.tokenNames) {
		return r.tokenNames[k-1]
	}
	return fmt.Sprintf("kind.Token(%d)", uint32(k))
}

// NodeName returns the name registered for k.
//
// Returns a debug placeholder for unregistered or zero kinds.
func (r *Registry) NodeName(k Node) string {
	if r != nil && int(k) > 0 && int(k) <= len(r.nodeNames) {
		return r.nodeNames[k-1]
	}
	return fmt.Sprintf("kind.Node(%d)", uint32(k))
}

// TokenByName looks up a token kind by its registered name.
func (r *Registry) TokenByName(name string) (Token, bool) {
	if r == nil {
		return 0, false
	}
	k, ok := r.tokens[name]
	return k, ok
}

// NodeByName looks up a node kind by its registered name.
func (r *Registry) NodeByName(name string) (Node, bool) {
	if r == nil {
		return 0, false
	}
	k, ok := r.nodes[name]
	return k, ok
}

// TokenCount returns the number of registered token kinds.
func (r *Registry) TokenCount() int {
	if r == nil {
		return 0
	}
	return len(r.tokenNames)
}

// NodeCount returns the number of registered node kinds.
func (r *Registry) NodeCount() int {
	if r == nil {
		return 0
	}
	return len(r.nodeNames)
}

// Builder accumulates kind registrations and produces an immutable [Registry].
//
// The zero value is ready to use. Builders are not safe for concurrent use.
type Builder struct {
	tokenNames []string
	nodeNames  []string
	tokens     map[string]Token
	nodes      map[string]Node
}

// Token registers a new token kind with the given name and returns its tag.
//
// Panics if name is empty or already registered as a token kind.
func (b *Builder) Token(name string) Token {
	if name == "" {
		panic("syntax/kind: registered token kind with empty name")
	}
	if b.tokens == nil {
		b.tokens = make(map[string]Token)
	}
	if _, ok := b.tokens[name]; ok {
		panic(fmt.Sprintf("syntax/kind: token kind %q registered twice", name))
	}

	b.tokenNames = append(b.tokenNames, name)
	k := Token(len(b.tokenNames))
	b.tokens[name] = k
	return k
}

// Node registers a new node kind with the given name and returns its tag.
//
// Panics if name is empty or already registered as a node kind.
func (b *Builder) Node(name string) Node {
	if name == "" {
		panic("syntax/kind: registered node kind with empty name")
	}
	if b.nodes == nil {
		b.nodes = make(map[string]Node)
	}
	if _, ok := b.nodes[name]; ok {
		panic(fmt.Sprintf("syntax/kind: node kind %q registered twice", name))
	}

	b.nodeNames = append(b.nodeNames, name)
	k := Node(len(b.nodeNames))
	b.nodes[name] = k
	return k
}

// Build produces the immutable registry for everything registered so far.
//
// The builder must not be used after calling Build.
func (b *Builder) Build() *Registry {
	r := &Registry{
		tokenNames: b.tokenNames,
		nodeNames:  b.nodeNames,
		tokens:     b.tokens,
		nodes:      b.nodes,
	}
	*b = Builder{}
	return r
}
