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

import "strings"

// Text returns this node's trimmed text: the concatenation of its tokens in
// document order, where the first token contributes its trimmed text and
// every later token its full text. This is the same first/rest asymmetry as
// [Node.Width], for the same reason: the trivia before the node's first
// token belongs to whatever wraps the node, but trivia between its own
// tokens is interior and is preserved.
func (n *Node) Text() string {
	src := n.tree.Text()

	var sb strings.Builder
	first := true
	for t := range n.DescendantTokens(nil) {
		if first {
			sb.WriteString(t.Text(src))
			first = false
		} else {
			sb.WriteString(t.FullText(src))
		}
	}
	return sb.String()
}

// FullText returns this node's text including all trivia: the concatenation
// of the full text of every token in its subtree, in document order.
//
// Concatenating the FullText of a root's every token reproduces the
// original buffer, minus only the end-of-file token's trailing trivia.
func (n *Node) FullText() string {
	src := n.tree.Text()

	var sb strings.Builder
	for t := range n.DescendantTokens(nil) {
		sb.WriteString(t.FullText(src))
	}
	return sb.String()
}

// LeadingTrivia returns the whitespace and comment bytes before this node's
// first token.
//
// Panics if the subtree contains no tokens.
func (n *Node) LeadingTrivia() string {
	return n.mustFirstToken().LeadingTrivia(n.tree.Text())
}
