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

// Tree is the abstract syntax tree: an ordered sequence of top-level nodes.
//
// A tree is immutable after the parser has built it. Because a slice shares
// its backing array, handing a Tree to an [ExprTemplate] or to another
// consumer is O(1) and safe for concurrent readers.
type Tree []Node

// Node is a node in the markup portion of the tree.
//
// Node is a closed set: it is implemented exactly by [Text], [Space],
// [Linebreak], [Parbreak], [Strong], [Emph], [*Heading], [*Raw] and
// [NodeExpr].
type Node interface {
	markupNode()
}

func (Text) markupNode()      {}
func (Space) markupNode()     {}
func (Linebreak) markupNode() {}
func (Parbreak) markupNode()  {}
func (Strong) markupNode()    {}
func (Emph) markupNode()      {}
func (*Heading) markupNode()  {}
func (*Raw) markupNode()      {}
func (NodeExpr) markupNode()  {}

// Text is a consecutive run of plain text.
type Text struct {
	Value string
}

// Space is whitespace containing less than two newlines.
type Space struct{}

// Linebreak is a forced line break: `\`.
type Linebreak struct{}

// Parbreak is a paragraph break: a blank line.
type Parbreak struct{}

// Strong toggles strong text: `*`.
type Strong struct{}

// Emph toggles emphasized text: `_`.
type Emph struct{}

// Heading is a section heading: `= Introduction`.
type Heading struct {
	Span Span

	// Level is the nesting depth of the heading, starting at 1. It equals
	// the number of equals signs introducing the heading.
	Level int

	// Body is the heading's contents, including the whitespace following
	// the equals signs.
	Body Tree
}

// Raw is a raw block with optional syntax highlighting: `` `...` ``.
//
// Raw content is stored line by line, with the fence and any language tag
// stripped.
type Raw struct {
	Span Span

	// Lang is the language tag, or nil if the block has none.
	Lang *Ident

	// Lines is the raw text, split at newlines.
	Lines []string

	// Block is whether the raw block is block-level, which keeps the fences
	// on their own lines.
	Block bool
}

// NodeExpr is an expression in markup position, such as a block `{...}` or
// a bracketed call `#[...]`.
type NodeExpr struct {
	Expr Expr
}
