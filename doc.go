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

// Package syntax is the tree representation layer underlying a tolerant
// source-code parser: the generic node/token model that grammar-specific
// productions plug into.
//
// The tree is lossless. Every byte of the input, including whitespace and
// comments ("trivia"), is attributed to exactly one token, so the original
// source can always be recovered by walking the tree; trimmed (trivia-free)
// text and positions are derived on demand. Grammars are not hard-coded:
// a grammar declares its token and node kinds in a [kind.Registry], the
// ordered child slots of each node variant in a [Schema], and then builds
// trees through a [Tree]; traversal, position arithmetic, text
// materialization and serialization are shared by every grammar.
//
// # Construction and immutability
//
// The external parser builds a tree bottom-up: it creates leaf tokens from
// the lexer's output, assembles nodes with [Tree.NewNode] (which wires each
// child's parent back-reference), and seals the result with [Tree.Finish].
// After Finish the tree is immutable, so any number of goroutines may
// traverse, measure, materialize, or serialize it concurrently without
// synchronization.
//
// # Positions
//
// A token records where its leading trivia begins (full start), where its
// significant text begins (start), and its total length. Interior nodes
// store no spans of their own; a node's positions are derived from its
// children, with one asymmetry used throughout: the leading trivia of the
// very first token in a subtree belongs to whatever wraps that subtree, so
// trimmed widths and trimmed text count the first child's trimmed
// contribution and every later child's full contribution.
//
// # Errors
//
// Operations on a well-formed tree do not fail. Malformed trees (a detached
// node, construction after [Tree.Finish], a child attached twice) indicate a
// bug in the producer and cause a panic with a "syntax:" prefix. Ordinary
// empty outcomes, such as an ancestor search finding nothing or a point
// query landing outside every node, return zero values instead.
package syntax
