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

import (
	"strings"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size all tabstops are rendered as when measuring
// columns in [TermWidth] units.
const TabstopWidth int = 4

// LengthUnit selects the units columns are measured in when resolving a
// [Location].
type LengthUnit byte

const (
	// ByteLength measures columns in raw bytes.
	ByteLength LengthUnit = iota
	// RuneLength measures columns in Unicode scalar values.
	RuneLength
	// UTF16Length measures columns in UTF-16 code units, which is what
	// LSP-style editor protocols expect.
	UTF16Length
	// TermWidth measures columns in terminal cells, accounting for wide
	// glyphs and tabstops.
	TermWidth
)

// stringWidth calculates the rendered width of text if placed at the given
// column, accounting for tabstops.
func stringWidth(column int, text string) int {
	// We can't just use uniseg.StringWidth, because that doesn't respect
	// tabstops correctly.
	for text != "" {
		nextTab := strings.IndexByte(text, '\t')
		haveTab := nextTab != -1
		next := text
		if haveTab {
			next, text = text[:nextTab], text[nextTab+1:]
		} else {
			text = ""
		}

		column += uniseg.StringWidth(next)
		if haveTab {
			column += TabstopWidth - (column % TabstopWidth)
		}
	}
	return column
}
