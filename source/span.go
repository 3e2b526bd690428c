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

package source

import "fmt"

// Spanner is any type with a [Span].
type Spanner interface {
	// Should return the zero Span to indicate that it does not contribute
	// span information.
	Span() Span
}

// Span is a byte range within a [File].
type Span struct {
	// The file this span refers to.
	*File

	// The start and end byte offsets for this span; start is inclusive, end
	// is exclusive.
	Start, End int
}

// IsZero returns whether this is the zero span.
func (s Span) IsZero() bool {
	return s.File == nil
}

// Len returns the length of this span, in bytes.
func (s Span) Len() int {
	return s.End - s.Start
}

// Text returns the text this span refers to.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// StartLoc returns the start location for this span, with columns measured
// in terminal cells.
func (s Span) StartLoc() Location {
	return s.File.Location(s.Start, TermWidth)
}

// EndLoc returns the end location for this span, with columns measured in
// terminal cells.
func (s Span) EndLoc() Location {
	return s.File.Location(s.End, TermWidth)
}

// Span implements [Spanner].
func (s Span) Span() Span {
	return s
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	start := s.StartLoc()
	return fmt.Sprintf("%q:%d:%d[%d:%d]", s.Path(), start.Line, start.Column, s.Start, s.End)
}

// Location is a user-displayable location within a source file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	//
	// The units of measurement for column depend on the [LengthUnit] used
	// when constructing it. Because these are 1-indexed, a zero Line can be
	// used as a sentinel.
	Line, Column int
}
