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

// Package treetest provides shared fixtures for testing the tree layer: a
// small statement-language grammar, a deterministic token maker, and text
// diffing for round-trip failures.
package treetest

import (
	"fmt"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/tolerantlabs/syntax"
	"github.com/tolerantlabs/syntax/kind"
	"github.com/tolerantlabs/syntax/token"
)

// Grammar is a tiny statement language used across the tree layer's tests:
//
//	file      := statement* EOF
//	statement := ident "=" expr ";"
//	expr      := ident | number | call
//	call      := ident "(" expr ("," expr)* ")"
type Grammar struct {
	Registry *kind.Registry
	Schema   *syntax.Schema

	// Token kinds.
	Ident, Number, Punct, EndOfFile kind.Token

	// Node kinds.
	File, Statement, NameRef, NumberLit, Call, ArgList kind.Node
}

// NewGrammar declares the fixture grammar's kinds and schema.
func NewGrammar() *Grammar {
	g := new(Grammar)

	var kinds kind.Builder
	g.Ident = kinds.Token("Ident")
	g.Number = kinds.Token("Number")
	g.Punct = kinds.Token("Punct")
	g.EndOfFile = kinds.Token("EndOfFile")
	g.File = kinds.Node("File")
	g.Statement = kinds.Node("Statement")
	g.NameRef = kinds.Node("NameRef")
	g.NumberLit = kinds.Node("NumberLit")
	g.Call = kinds.Node("Call")
	g.ArgList = kinds.Node("ArgList")
	g.Registry = kinds.Build()

	g.Schema = syntax.NewSchemaBuilder(g.Registry).
		Variant(g.File, syntax.List("Statements")).
		Variant(g.Statement,
			syntax.Single("Name"),
			syntax.Single("Equals"),
			syntax.Single("Value"),
			syntax.Single("Semicolon")).
		Variant(g.NameRef, syntax.Single("Name")).
		Variant(g.NumberLit, syntax.Single("Value")).
		Variant(g.Call,
			syntax.Single("Callee"),
			syntax.Single("Open"),
			syntax.Single("Args"),
			syntax.Single("Close")).
		Variant(g.ArgList, syntax.List("Items")).
		Build()

	return g
}

// Lexer is a deterministic token maker over a fixed text: each call
// consumes leading spaces, tabs, newlines, and #-to-end-of-line comments as
// trivia, then the requested number of significant bytes.
//
// It is not a real lexer; tests use it so that token offsets are derived
// from the text they assert against, rather than written out by hand.
type Lexer struct {
	text string
	pos  int
}

// NewLexer returns a Lexer at the start of text.
func NewLexer(text string) *Lexer {
	return &Lexer{text: text}
}

// Next consumes trivia and then n significant bytes, producing a token of
// the given kind. Panics if fewer than n bytes remain.
func (l *Lexer) Next(k kind.Token, n int) token.Token {
	fullStart := l.pos
	l.skipTrivia()
	start := l.pos

	if start+n > len(l.text) {
		panic(fmt.Sprintf("treetest: lexed past the end of %q", l.text))
	}
	l.pos = start + n

	return token.Token{
		Kind:      k,
		FullStart: fullStart,
		Start:     start,
		Length:    l.pos - fullStart,
	}
}

// EOF consumes all remaining text as trivia and produces the zero-width
// end-of-file token holding it.
func (l *Lexer) EOF(k kind.Token) token.Token {
	fullStart := l.pos
	l.pos = len(l.text)
	return token.Token{
		Kind:      k,
		FullStart: fullStart,
		Start:     len(l.text),
		Length:    len(l.text) - fullStart,
	}
}

func (l *Lexer) skipTrivia() {
	for l.pos < len(l.text) {
		switch l.text[l.pos] {
		case ' ', '\t', '\n', '\r':
			l.pos++
		case '#':
			if nl := strings.IndexByte(l.text[l.pos:], '\n'); nl != -1 {
				l.pos += nl + 1
			} else {
				l.pos = len(l.text)
			}
		default:
			return
		}
	}
}

// Diff returns a unified diff of two texts, for failure messages in
// round-trip tests. Returns "" if they are equal.
func Diff(want, got string) string {
	if want == got {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	})
	if err != nil {
		return fmt.Sprintf("diff failed: %v", err)
	}
	return diff
}
