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

import "github.com/mrArkwright/typst/syntax"

// Expr prints an expression in its canonical form.
func (p *Printer) Expr(expr syntax.Expr) {
	switch e := expr.(type) {
	case *syntax.Lit:
		p.lit(e)

	case *syntax.Ident:
		p.str(e.Name)

	case *syntax.ExprArray:
		p.push('(')
		join(p, e.Items, ", ", p.Expr)
		if len(e.Items) == 1 {
			// A trailing comma disambiguates a one-element array from a
			// parenthesized group.
			p.push(',')
		}
		p.push(')')

	case *syntax.ExprDict:
		p.push('(')
		if len(e.Items) == 0 {
			// An explicit colon disambiguates an empty dictionary from an
			// empty array.
			p.push(':')
		} else {
			join(p, e.Items, ", ", p.named)
		}
		p.push(')')

	case *syntax.ExprTemplate:
		p.template(e)

	case *syntax.ExprGroup:
		// Explicit grouping is preserved verbatim, never minimized.
		p.push('(')
		p.Expr(e.Expr)
		p.push(')')

	case *syntax.ExprBlock:
		p.push('{')
		if len(e.Exprs) > 1 {
			p.push(' ')
		}
		join(p, e.Exprs, "; ", p.Expr)
		if len(e.Exprs) > 1 {
			p.push(' ')
		}
		p.push('}')

	case *syntax.ExprUnary:
		p.str(e.Op.String())
		if e.Op == syntax.UnOpNot {
			p.push(' ')
		}
		p.Expr(e.Expr)

	case *syntax.ExprBinary:
		// Grouping that deviates from precedence must be present as
		// explicit group nodes; no parentheses are re-derived here.
		p.Expr(e.Lhs)
		p.push(' ')
		p.str(e.Op.String())
		p.push(' ')
		p.Expr(e.Rhs)

	case *syntax.ExprCall:
		p.Expr(e.Callee)
		p.push('(')
		join(p, e.Args.Items, ", ", p.arg)
		p.push(')')

	case *syntax.ExprLet:
		p.str("#let ")
		p.str(e.Binding.Name)
		if e.Init != nil {
			p.str(" = ")
			p.Expr(e.Init)
		}

	case *syntax.ExprIf:
		p.str("#if ")
		p.Expr(e.Condition)
		p.push(' ')
		p.Expr(e.IfBody)
		if e.ElseBody != nil {
			p.str(" #else ")
			p.Expr(e.ElseBody)
		}

	case *syntax.ExprFor:
		p.str("#for ")
		p.forPattern(e.Pattern)
		p.str(" #in ")
		p.Expr(e.Iter)
		p.push(' ')
		p.Expr(e.Body)

	default:
		panic("pretty: invalid expression")
	}
}

// template prints a template expression. A template whose entire content is
// one function call renders in the call's bracketed form instead of as a
// bracket around a parenthesized call.
func (p *Printer) template(t *syntax.ExprTemplate) {
	if len(t.Tree) == 1 {
		if node, ok := t.Tree[0].(syntax.NodeExpr); ok {
			if call, ok := node.Expr.(*syntax.ExprCall); ok {
				p.bracketedCall(call, false)
				return
			}
		}
	}
	p.push('[')
	p.Tree(t.Tree)
	p.push(']')
}

// bracketedCall prints a function call in bracketed form, folding trailing
// call and template arguments into chains and bodies.
func (p *Printer) bracketedCall(call *syntax.ExprCall, chained bool) {
	if chained {
		p.str(" | ")
	} else {
		p.str("#[")
	}

	p.Expr(call.Callee)

	writeArgs := func(items []syntax.Arg) {
		if len(items) > 0 {
			p.push(' ')
			join(p, items, ", ", p.arg)
		}
	}

	items := call.Args.Items
	if n := len(items); n > 0 {
		if pos, ok := items[n-1].(syntax.ArgPos); ok {
			switch trailing := pos.Expr.(type) {
			case *syntax.ExprCall:
				// The trailing call folds into a chain:
				// `#[v 1, #[f 2]]` prints as `#[v 1 | f 2]`.
				//
				// Checked before the body case on purpose; a trailing
				// argument eligible for both resolves as a chain.
				writeArgs(items[:n-1])
				p.bracketedCall(trailing, true)
				return

			case *syntax.ExprTemplate:
				// The trailing template becomes an attached body:
				// `#[v 1 [Hi]]` prints as `#[v 1][Hi]`.
				writeArgs(items[:n-1])
				p.push(']')
				p.template(trailing)
				return
			}
		}
	}

	writeArgs(items)
	p.push(']')
}

func (p *Printer) arg(arg syntax.Arg) {
	switch a := arg.(type) {
	case syntax.ArgPos:
		p.Expr(a.Expr)
	case syntax.ArgNamed:
		p.named(a.Named)
	default:
		panic("pretty: invalid argument")
	}
}

func (p *Printer) named(n syntax.Named) {
	p.str(n.Name.Name)
	p.str(": ")
	p.Expr(n.Expr)
}

func (p *Printer) forPattern(pat syntax.ForPattern) {
	switch pt := pat.(type) {
	case syntax.ValuePattern:
		p.str(pt.V.Name)
	case syntax.KeyValuePattern:
		p.str(pt.Key.Name)
		p.str(", ")
		p.str(pt.Value.Name)
	default:
		panic("pretty: invalid for pattern")
	}
}
