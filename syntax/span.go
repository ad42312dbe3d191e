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

package syntax

import "fmt"

// Span is a half-open byte range [Start, End) into the source text a tree
// was parsed from.
//
// Spans exist for the benefit of diagnostics; the printer ignores them
// entirely, and tests compare trees with spans masked out.
type Span struct {
	Start, End int
}

// NewSpan returns the span for the given offsets.
//
// Panics if start > end.
func NewSpan(start, end int) Span {
	if start > end {
		panic(fmt.Sprintf("syntax: span start (%d) > end (%d)", start, end))
	}
	return Span{Start: start, End: end}
}

// Len returns the number of bytes this span covers.
func (s Span) Len() int {
	return s.End - s.Start
}

// Contains reports whether the given offset lies within this span.
//
// Consistent with the half-open representation, an offset equal to End is
// not contained.
func (s Span) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End
}

// Join returns the smallest span that contains both s and t.
func (s Span) Join(t Span) Span {
	return Span{
		Start: min(s.Start, t.Start),
		End:   max(s.End, t.End),
	}
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// JoinSpans joins a collection of spans, returning the smallest span that
// contains all of them. Returns the zero span if spans is empty.
func JoinSpans(spans ...Span) Span {
	var joined Span
	for i, span := range spans {
		if i == 0 {
			joined = span
		} else {
			joined = joined.Join(span)
		}
	}
	return joined
}
