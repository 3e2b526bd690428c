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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tolerantlabs/syntax"
)

func TestNodeAt(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)

	tests := []struct {
		offset int
		want   *syntax.Node
		what   string
	}{
		{0, p.xRef, "start of x"},
		{2, p.xRef, "trivia after x still belongs to xRef's span"},
		{3, p.fRef, "trivia before f"},
		{4, p.fRef, "f itself"},
		{6, p.oneLit, "the argument 1"},
		{7, p.oneLit, "the comma is inside oneLit's span"},
		{9, p.yArg, "the argument y"},
		{11, p.yArg, "trailing punctuation of the call"},
		{13, p.yRef, "inside the comment, owned by the next statement"},
		{22, p.yRef, "y on the second line"},
		{26, p.twoLit, "the literal 2"},
		{27, p.twoLit, "its semicolon"},
	}
	for _, tt := range tests {
		assert.Same(t, tt.want, syntax.NodeAt(p.root, tt.offset),
			"offset %d: %s", tt.offset, tt.what)
	}

	assert.Nil(t, syntax.NodeAt(p.root, 28),
		"the EOF token's trivia is under no descendant")
	assert.Nil(t, syntax.NodeAt(p.root, -1))
	assert.Nil(t, syntax.NodeAt(p.root, 100))
}

func TestNodeAtInnermost(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)

	// Soundness: for every offset the result's span contains it, and no
	// descendant of the result also contains it.
	end := p.root.EndPosition()
	for offset := 0; offset < end; offset++ {
		n := syntax.NodeAt(p.root, offset)
		if n == nil {
			continue
		}
		require.LessOrEqual(t, n.FullStart(), offset)
		require.Greater(t, n.EndPosition(), offset)
		for inner := range n.DescendantNodes(nil) {
			require.False(t,
				inner.FullStart() <= offset && offset < inner.EndPosition(),
				"offset %d: %v is not innermost, %v also contains it", offset, n, inner)
		}
	}
}

func TestNodeAtSubtree(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)

	assert.Same(t, p.oneLit, syntax.NodeAt(p.call, 6))
	assert.Nil(t, syntax.NodeAt(p.call, 20),
		"offsets outside the subtree find nothing")
}

func TestIndexMatchesNodeAt(t *testing.T) {
	t.Parallel()

	p := buildProgram(t)
	idx := syntax.NewIndex(p.root)
	assert.Same(t, p.root, idx.Root())
	assert.Equal(t, 10, idx.Len())

	for offset := -1; offset <= p.root.EndPosition()+1; offset++ {
		assert.Same(t, syntax.NodeAt(p.root, offset), idx.Locate(offset),
			"offset %d", offset)
	}
}
