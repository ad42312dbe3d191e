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

package pretty

import (
	"strings"

	"github.com/mrArkwright/typst/syntax"
)

// Print returns the canonical source text for the tree.
//
// Feeding the result back through the parser yields a tree that is
// structurally identical to the input, up to spans. Printing is a pure
// traversal: it never fails on well-formed trees and any number of
// goroutines may print the same tree concurrently.
func Print(tree syntax.Tree) string {
	var p Printer
	p.Tree(tree)
	return p.String()
}

// PrintExpr returns the canonical source text for a single expression.
func PrintExpr(expr syntax.Expr) string {
	var p Printer
	p.Expr(expr)
	return p.String()
}

// PrintNode returns the canonical source text for a single markup node.
func PrintNode(node syntax.Node) string {
	var p Printer
	p.Node(node)
	return p.String()
}

// Printer accumulates printed source text.
//
// The zero value is ready to use. A Printer is useful over the package
// level functions when assembling output from several trees or nodes.
type Printer struct {
	buf strings.Builder
}

// String returns the text printed so far.
func (p *Printer) String() string {
	return p.buf.String()
}

// Tree prints every node of the tree.
func (p *Printer) Tree(tree syntax.Tree) {
	for _, node := range tree {
		p.Node(node)
	}
}

func (p *Printer) str(s string) {
	p.buf.WriteString(s)
}

func (p *Printer) push(b byte) {
	p.buf.WriteByte(b)
}

// join prints items separated by sep.
func join[T any](p *Printer, items []T, sep string, print func(T)) {
	for i, item := range items {
		if i > 0 {
			p.str(sep)
		}
		print(item)
	}
}
