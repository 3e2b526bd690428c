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

package syntax_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/tolerantlabs/syntax"
	"github.com/tolerantlabs/syntax/internal/treetest"
)

// names flattens a traversal into kind names, "tok:" prefixed for tokens.
func names(p *program, elems []syntax.Element) []string {
	out := make([]string, len(elems))
	for i, e := range elems {
		if e.IsToken() {
			out[i] = "tok:" + p.grammar.Registry.TokenName(e.AsToken().Kind)
		} else {
			out[i] = e.AsNode().KindName()
		}
	}
	return out
}

func nodeNames(nodes []*syntax.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.KindName()
	}
	return out
}

func TestChildren(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)

	assert.Equal(t,
		[]string{"NameRef", "tok:Punct", "Call", "tok:Punct"},
		names(p, slices.Collect(p.stmt1.Children())))
	assert.Equal(t,
		[]string{"NumberLit", "tok:Punct", "NameRef"},
		names(p, slices.Collect(p.args.Children())),
		"list slots flatten in place")

	assert.Equal(t,
		[]string{"NameRef", "Call"},
		nodeNames(slices.Collect(p.stmt1.ChildNodes())))

	toks := slices.Collect(p.stmt1.ChildTokens())
	require.Len(t, toks, 2)
	assert.Equal(t, "=", toks[0].Text(programText))
	assert.Equal(t, ";", toks[1].Text(programText))
}

func TestChildrenSkipsAbsent(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)
	g := p.grammar

	// A statement missing its Value and Semicolon, as a tolerant parser
	// would produce for "x =".
	tree := syntax.NewTree(g.Schema, p.tree.File())
	lex := treetest.NewLexer(programText)
	partial := tree.NewNode(g.Statement,
		syntax.PutNode("Name", tree.NewNode(g.NameRef,
			syntax.PutToken("Name", lex.Next(g.Ident, 1)))),
		syntax.PutToken("Equals", lex.Next(g.Punct, 1)))

	assert.Equal(t,
		[]string{"NameRef", "tok:Punct"},
		names(p, slices.Collect(partial.Children())),
		"absent scalar slots do not appear as children")
}

func TestDescendantsOrder(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)

	assert.Equal(t,
		[]string{
			"Statement",
			"NameRef", "tok:Ident", "tok:Punct",
			"Call",
			"NameRef", "tok:Ident", "tok:Punct",
			"ArgList",
			"NumberLit", "tok:Number", "tok:Punct",
			"NameRef", "tok:Ident", "tok:Punct", "tok:Punct",
			"Statement",
			"NameRef", "tok:Ident", "tok:Punct",
			"NumberLit", "tok:Number", "tok:Punct",
		},
		names(p, slices.Collect(p.root.Descendants(nil))),
		"document order: node before its contents, tokens in source order")
}

func TestDescendantsRestartable(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)

	walk := p.root.Descendants(nil)
	first := names(p, slices.Collect(walk))
	second := names(p, slices.Collect(walk))
	assert.Equal(t, first, second, "ranging twice must yield identical sequences")

	// Partial consumption of one pass must not disturb another.
	var partial []string
	for e := range walk {
		partial = append(partial, names(p, []syntax.Element{e})[0])
		if len(partial) == 5 {
			break
		}
	}
	assert.Equal(t, first[:5], partial)
	assert.Equal(t, first, names(p, slices.Collect(walk)))
}

func TestDescendantsPredicate(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)
	g := p.grammar

	t.Run("always false", func(t *testing.T) {
		t.Parallel()
		got := slices.Collect(p.root.DescendantNodes(func(*syntax.Node) bool { return false }))
		assert.Equal(t, []string{"Statement", "Statement"}, nodeNames(got),
			"an always-false predicate stops at direct node children")
	})

	t.Run("skip call subtrees", func(t *testing.T) {
		t.Parallel()
		got := slices.Collect(p.root.DescendantNodes(func(n *syntax.Node) bool {
			return n.Kind() != g.Call
		}))
		assert.Equal(t,
			[]string{"Statement", "NameRef", "Call", "Statement", "NameRef", "NumberLit"},
			nodeNames(got),
			"a skipped node is yielded, its contents are not")
	})

	t.Run("tokens under skipped nodes", func(t *testing.T) {
		t.Parallel()
		var got []string
		for tok := range p.root.DescendantTokens(func(n *syntax.Node) bool {
			return n.Kind() != g.Call
		}) {
			got = append(got, tok.Text(programText))
		}
		assert.Equal(t, []string{"x", "=", ";", "y", "=", "2", ";"}, got,
			"skipping a subtree skips its tokens too")
	})

	t.Run("predicate call count", func(t *testing.T) {
		t.Parallel()
		calls := 0
		for range p.root.Descendants(func(*syntax.Node) bool { calls++; return true }) {
		}
		assert.Equal(t, 10, calls, "one predicate call per visited node, none per token")
	})
}

func TestCursor(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)

	c := syntax.NewCursor(p.args, nil)
	require.False(t, c.Done())
	assert.Same(t, p.oneLit, c.Peek().AsNode())
	assert.Same(t, p.oneLit, c.Next().AsNode(), "Peek must not consume")

	want := []string{"tok:Number", "tok:Punct", "NameRef", "tok:Ident"}
	for _, w := range want {
		assert.Equal(t, w, names(p, []syntax.Element{c.Next()})[0])
	}
	assert.True(t, c.Done())
	assert.True(t, c.Next().IsZero(), "an exhausted cursor keeps returning zero")
}

func TestConcurrentTraversals(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)
	want := names(p, slices.Collect(p.root.Descendants(nil)))

	var eg errgroup.Group
	for i := range 8 {
		eg.Go(func() error {
			got := names(p, slices.Collect(p.root.Descendants(nil)))
			if !slices.Equal(want, got) {
				return fmt.Errorf("walker %d diverged: %v", i, got)
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait(), "a frozen tree must support concurrent independent walks")
}
