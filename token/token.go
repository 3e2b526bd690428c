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

// Package token defines the leaf record of the syntax tree: a lexical unit
// described entirely by its position and length within a source buffer.
//
// A token stores no text of its own. Every byte of the input, including the
// whitespace and comments ("trivia") that precede a token's significant text,
// is attributed to exactly one token, so concatenating the full text of every
// token in document order reproduces the original buffer losslessly.
package token

import (
	"fmt"

	"github.com/tolerantlabs/syntax/kind"
	"github.com/tolerantlabs/syntax/source"
)

// Zero is the zero [Token], used to denote the absence of a token.
var Zero Token

// Token is a lexical element of a source file.
//
// The bytes in [FullStart, Start) are the token's leading trivia; the bytes
// in [Start, FullStart+Length) are its significant text. The producer must
// ensure FullStart <= Start <= FullStart+Length; tokens violating that
// contract produce unspecified results rather than errors.
//
// Tokens are immutable values and are compared by value. They are leaves:
// they have no children and no parent pointer of their own; parentage is
// tracked by the node whose child slot holds them.
type Token struct {
	Kind kind.Token

	// FullStart is the byte offset where this token's leading trivia begins.
	FullStart int
	// Start is the byte offset where this token's significant text begins.
	Start int
	// Length is the byte length of this token including its leading trivia.
	Length int
}

// IsZero returns whether this is the zero token.
func (t Token) IsZero() bool {
	return t == Token{}
}

// End returns the byte offset one past the last byte of this token.
func (t Token) End() int {
	return t.FullStart + t.Length
}

// Width returns the byte length of this token's significant text, excluding
// leading trivia.
func (t Token) Width() int {
	return t.End() - t.Start
}

// FullWidth returns the byte length of this token including leading trivia.
func (t Token) FullWidth() int {
	return t.Length
}

// Text returns this token's significant text within the given buffer.
//
// The buffer must be the one this token's offsets were computed against.
func (t Token) Text(text string) string {
	return text[t.Start:t.End()]
}

// FullText returns this token's text within the given buffer, including its
// leading trivia.
func (t Token) FullText(text string) string {
	return text[t.FullStart:t.End()]
}

// LeadingTrivia returns the whitespace and comment bytes that precede this
// token's significant text.
func (t Token) LeadingTrivia(text string) string {
	return text[t.FullStart:t.Start]
}

// Span returns the span of this token's significant text in the given file.
func (t Token) Span(file *source.File) source.Span {
	return file.Span(t.Start, t.End())
}

// FullSpan returns the span of this token in the given file, including its
// leading trivia.
func (t Token) FullSpan(file *source.File) source.Span {
	return file.Span(t.FullStart, t.End())
}

// String implements [fmt.Stringer].
func (t Token) String() string {
	return fmt.Sprintf("{%v %d:%d+%d}", uint32(t.Kind), t.FullStart, t.Start, t.Length)
}
