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

// Node prints a markup node in its canonical form.
func (p *Printer) Node(node syntax.Node) {
	switch n := node.(type) {
	case syntax.Text:
		p.str(n.Value)
	case syntax.Space:
		p.push(' ')
	case syntax.Linebreak:
		p.push('\\')
	case syntax.Parbreak:
		p.str("\n\n")
	case syntax.Strong:
		p.push('*')
	case syntax.Emph:
		p.push('_')
	case *syntax.Heading:
		p.str(strings.Repeat("=", n.Level))
		p.Tree(n.Body)
	case *syntax.Raw:
		p.raw(n)
	case syntax.NodeExpr:
		// In markup position a call renders in its bracketed surface form;
		// the parenthesized form is for expression positions.
		if call, ok := n.Expr.(*syntax.ExprCall); ok {
			p.bracketedCall(call, false)
		} else {
			p.Expr(n.Expr)
		}
	default:
		panic("pretty: invalid node")
	}
}

func (p *Printer) raw(raw *syntax.Raw) {
	// Language tags and multiline content need a three-backtick fence, and
	// backtick runs in the content push the fence further out.
	backticks := 1
	if raw.Lang != nil || raw.Block || len(raw.Lines) > 1 {
		backticks = 3
	}
	for _, line := range raw.Lines {
		// Lines are joined with newlines, so runs never span lines.
		run := 0
		for _, r := range line {
			if r == '`' {
				run++
				backticks = max(backticks, 3, run+1)
			} else {
				run = 0
			}
		}
	}

	p.str(strings.Repeat("`", backticks))

	if raw.Lang != nil {
		p.str(raw.Lang.Name)
	}

	// Separate the content from the fence so the parser does not trim it
	// away again.
	if raw.Block {
		p.push('\n')
	} else if backticks >= 3 {
		p.push(' ')
	}

	join(p, raw.Lines, "\n", p.str)

	if raw.Block {
		p.push('\n')
	} else if last, ok := lastLine(raw.Lines); ok && strings.HasSuffix(last, "`") {
		p.push(' ')
	}

	p.str(strings.Repeat("`", backticks))
}

func lastLine(lines []string) (string, bool) {
	if len(lines) == 0 {
		return "", false
	}
	return lines[len(lines)-1], true
}
