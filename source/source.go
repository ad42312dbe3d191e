// Copyright 2024-2026 The Typst Go Authors
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

// Package source resolves byte offsets and spans in source text into
// human-displayable line and column locations for diagnostics.
package source

import (
	"slices"
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/rivo/uniseg"

	"github.com/mrArkwright/typst/syntax"
)

// TabstopWidth is the width all tabstops are rendered as.
const TabstopWidth = 4

// File is a source file handed to the parser.
type File struct {
	// Name is the path the file was loaded from. It is only used for
	// display and deduplication; it need not exist on disk.
	Name string

	// Text is the complete source text.
	Text string
}

// Location is a user-displayable location within a source file.
type Location struct {
	// Offset is the byte offset for this location.
	Offset int

	// Line and Column are 1-indexed. Column is not simply a rune count: it
	// accounts for Unicode width, so `A` is one column wide and `貓` is
	// two. A zero Line can serve as a sentinel.
	Line, Column int

	// UTF16 is the UTF-16 code unit offset from the start of the line, for
	// the benefit of LSP implementations.
	UTF16 int
}

// Index computes [Location]s from byte offsets in O(log n), after a lazily
// built O(n) line table.
//
// An Index is safe for concurrent use.
type Index struct {
	file File

	once sync.Once
	// A prefix sum of the line lengths of the text: the byte offset at
	// which each line starts. Binary searching it recovers the line an
	// offset falls on.
	lines []int
}

// NewIndex returns an index for the given file. The line table is built on
// first use.
func NewIndex(file File) *Index {
	return &Index{file: file}
}

// File returns the file this index indexes.
func (i *Index) File() File {
	return i.file
}

// Search builds full location information for the given byte offset.
func (i *Index) Search(offset int) Location {
	i.once.Do(func() {
		var next int
		text := i.file.Text
		for {
			// Work with the index immediately after each newline byte.
			newline := strings.IndexByte(text, '\n') + 1
			if newline == 0 {
				break
			}
			text = text[newline:]

			i.lines = append(i.lines, next)
			next += newline
		}
		i.lines = append(i.lines, next)
	})

	// Find the greatest line index such that lines[line] <= offset.
	line, exact := slices.BinarySearch(i.lines, offset)
	if !exact {
		line--
	}

	chunk := i.file.Text[i.lines[line]:offset]

	var utf16Col int
	for _, r := range chunk {
		utf16Col += utf16.RuneLen(r)
	}

	return Location{
		Offset: offset,
		Line:   line + 1,
		Column: width(chunk) + 1,
		UTF16:  utf16Col,
	}
}

// SpanLocations resolves both endpoints of a span.
func (i *Index) SpanLocations(span syntax.Span) (start, end Location) {
	return i.Search(span.Start), i.Search(span.End)
}

// width measures the displayed width of a chunk of text, expanding
// tabstops to the next multiple of [TabstopWidth].
func width(chunk string) (w int) {
	for chunk != "" {
		nextTab := strings.IndexByte(chunk, '\t')
		if nextTab < 0 {
			return w + uniseg.StringWidth(chunk)
		}
		w += uniseg.StringWidth(chunk[:nextTab])
		w += TabstopWidth - w%TabstopWidth
		chunk = chunk[nextTab+1:]
	}
	return w
}
