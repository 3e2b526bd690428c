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

// Package source models the immutable text buffer a syntax tree is built
// over, and converts absolute byte offsets into user-displayable locations.
//
// Every offset and length stored on a token is an absolute byte offset into
// exactly one [File]. Files are immutable, so they may be shared freely
// between goroutines.
package source

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf16"
)

// File is a source file a tree was parsed from.
//
// It carries book-keeping information for resolving byte offsets into
// line/column locations. A nil *File behaves like an empty file with path "".
type File struct {
	path, text string

	once sync.Once
	// A prefix sum of the line lengths of text. Given a byte offset, the line
	// it falls on is recovered with a binary search on this slice.
	//
	// Alternatively, this slice can be read as the index after each \n in the
	// original file.
	lineIndex []int
}

// NewFile constructs a new source file.
//
// path does not need to name a real file; it is only used for display and for
// telling files apart.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's path.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span is a shorthand for creating a new [Span] in this file.
func (f *File) Span(start, end int) Span {
	if f == nil {
		return Span{}
	}
	return Span{f, start, end}
}

// Line returns the given 1-indexed line, including its trailing newline.
func (f *File) Line(line int) string {
	start, end := f.LineOffsets(line)
	return f.text[start:end]
}

// LineOffsets returns the byte offsets of the given 1-indexed line, including
// its trailing newline.
func (f *File) LineOffsets(line int) (start, end int) {
	lines := f.lines()
	start = lines[line-1]
	if line < len(lines) {
		return start, lines[line]
	}
	return start, len(f.text)
}

// LineCount returns the number of lines in this file. An empty file has one
// line.
func (f *File) LineCount() int {
	if f == nil {
		return 1
	}
	return len(f.lines())
}

// Location resolves a byte offset into a full [Location], measuring columns
// in the given units.
//
// This operation is O(log n) in the number of lines.
func (f *File) Location(offset int, units LengthUnit) Location {
	if f == nil && offset == 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}

	lines := f.lines()

	// Find the smallest index such that lines[line] <= offset.
	line, exact := slices.BinarySearch(lines, offset)
	if !exact {
		line--
	}

	chunk := f.Text()[lines[line]:offset]
	var column int
	switch units {
	case ByteLength:
		column = len(chunk)
	case RuneLength:
		for range chunk {
			column++
		}
	case UTF16Length:
		for _, r := range chunk {
			column += utf16.RuneLen(r)
		}
	case TermWidth:
		column = stringWidth(0, chunk)
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: column + 1,
	}
}

func (f *File) lines() []int {
	// Compute the prefix sum on-demand.
	f.once.Do(func() {
		var next int
		text := f.Text()
		for {
			// We add 1 to the return value of IndexByte because we want the
			// index immediately *after* the newline byte.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]

			f.lineIndex = append(f.lineIndex, next)
			next += newline
		}
		f.lineIndex = append(f.lineIndex, next)
	})
	return f.lineIndex
}
