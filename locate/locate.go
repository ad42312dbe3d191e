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

// Package locate answers "which expression is at this byte offset" over a
// syntax tree, for hover, completion and diagnostic tooling.
package locate

import (
	"iter"

	"github.com/tidwall/btree"

	"github.com/mrArkwright/typst/syntax"
)

// entry records one expression span; its end is the btree key.
type entry struct {
	start int
	expr  syntax.Expr
}

// Index is a position index over one tree.
//
// Expression spans nest but never partially overlap, so the index keeps
// one ordered map per nesting depth; within a depth all spans are
// disjoint, which makes every query a single seek. An Index is immutable
// after construction and safe for concurrent use.
type Index struct {
	// Keys in each tree are the (exclusive) ends of the spans.
	depths []*btree.Map[int, entry]
}

// NewIndex builds an index over every expression in the tree, including
// expressions nested inside template literals.
func NewIndex(tree syntax.Tree) *Index {
	ix := new(Index)
	depth := 0
	syntax.WalkExprsEnterAndExit(tree,
		func(e syntax.Expr) bool {
			if depth == len(ix.depths) {
				ix.depths = append(ix.depths, new(btree.Map[int, entry]))
			}
			span := syntax.SpanOf(e)
			ix.depths[depth].Set(span.End, entry{start: span.Start, expr: e})
			depth++
			return true
		},
		func(syntax.Expr) bool {
			depth--
			return true
		},
	)
	return ix
}

// Innermost returns the deepest expression whose span contains the given
// byte offset, or false if no expression covers it.
func (ix *Index) Innermost(offset int) (syntax.Expr, syntax.Span, bool) {
	for depth := len(ix.depths) - 1; depth >= 0; depth-- {
		if e, span, ok := ix.at(depth, offset); ok {
			return e, span, true
		}
	}
	return nil, syntax.Span{}, false
}

// Enclosing iterates over the expressions containing the given offset,
// innermost first.
func (ix *Index) Enclosing(offset int) iter.Seq2[syntax.Expr, syntax.Span] {
	return func(yield func(syntax.Expr, syntax.Span) bool) {
		for depth := len(ix.depths) - 1; depth >= 0; depth-- {
			if e, span, ok := ix.at(depth, offset); ok {
				if !yield(e, span) {
					return
				}
			}
		}
	}
}

func (ix *Index) at(depth, offset int) (syntax.Expr, syntax.Span, bool) {
	it := ix.depths[depth].Iter()

	// Seek the least span end greater than the offset, then check that the
	// span actually starts before it.
	if !it.Seek(offset + 1) {
		return nil, syntax.Span{}, false
	}
	e := it.Value()
	if offset < e.start {
		return nil, syntax.Span{}, false
	}
	return e.expr, syntax.Span{Start: e.start, End: it.Key()}, true
}
