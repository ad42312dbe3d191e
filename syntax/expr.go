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

// Expr is an expression.
//
// Expr is a closed set: it is implemented exactly by [*Lit], [*Ident],
// [*ExprArray], [*ExprDict], [*ExprTemplate], [*ExprGroup], [*ExprBlock],
// [*ExprUnary], [*ExprBinary], [*ExprCall], [*ExprLet], [*ExprIf] and
// [*ExprFor]. Consumers dispatch with a type switch; adding a variant is
// intended to break every switch until it handles the new case.
//
// Sub-expressions are exclusively owned by their parent and never shared,
// with one exception: a template's tree may be shared between arbitrarily
// many owners (see [ExprTemplate]). Trees are immutable once the parser has
// built them, so any number of goroutines may traverse them concurrently.
type Expr interface {
	exprNode()
}

func (*Lit) exprNode()          {}
func (*Ident) exprNode()        {}
func (*ExprArray) exprNode()    {}
func (*ExprDict) exprNode()     {}
func (*ExprTemplate) exprNode() {}
func (*ExprGroup) exprNode()    {}
func (*ExprBlock) exprNode()    {}
func (*ExprUnary) exprNode()    {}
func (*ExprBinary) exprNode()   {}
func (*ExprCall) exprNode()     {}
func (*ExprLet) exprNode()      {}
func (*ExprIf) exprNode()       {}
func (*ExprFor) exprNode()      {}

// SpanOf returns the source span of an expression.
func SpanOf(expr Expr) Span {
	switch e := expr.(type) {
	case *Lit:
		return e.Span
	case *Ident:
		return e.Span
	case *ExprArray:
		return e.Span
	case *ExprDict:
		return e.Span
	case *ExprTemplate:
		return e.Span
	case *ExprGroup:
		return e.Span
	case *ExprBlock:
		return e.Span
	case *ExprUnary:
		return e.Span
	case *ExprBinary:
		return e.Span
	case *ExprCall:
		return e.Span
	case *ExprLet:
		return e.Span
	case *ExprIf:
		return e.Span
	case *ExprFor:
		return e.Span
	default:
		panic("syntax: invalid expression")
	}
}

// ExprArray is an array expression: `(1, "hi", 12cm)`.
type ExprArray struct {
	Span  Span
	Items []Expr
}

// ExprDict is a dictionary expression: `(color: #f79143, pattern: dashed)`.
type ExprDict struct {
	Span  Span
	Items []Named
}

// Named is a pair of a name and an expression: `pattern: dashed`.
type Named struct {
	Name Ident
	Expr Expr
}

// Span returns the pair's span, the join of the name's and the
// expression's spans.
func (n Named) Span() Span {
	return n.Name.Span.Join(SpanOf(n.Expr))
}

// ExprTemplate is a template expression: `[*Hi* there!]`.
//
// The tree is shared rather than owned: expression values clone frequently
// during evaluation, and a slice handle to an immutable tree makes those
// clones O(1). The tree is never mutated after construction and never
// contains itself.
type ExprTemplate struct {
	Span Span
	Tree Tree
}

// ExprGroup is a grouped expression: `(1 + 2)`.
type ExprGroup struct {
	Span Span
	Expr Expr
}

// ExprBlock is a block expression: `{ #let x = 1; x + 2 }`.
type ExprBlock struct {
	Span  Span
	Exprs []Expr

	// Scoping is whether evaluating the block opens a new scope.
	Scoping bool
}

// ExprUnary is a unary operation: `-x`.
type ExprUnary struct {
	Span Span
	Op   UnOp
	Expr Expr
}

// ExprBinary is a binary operation: `a + b`.
//
// Grouping is structural: the printer emits no parentheses of its own, so
// any grouping that deviates from operator precedence must be encoded with
// explicit [ExprGroup] nodes.
type ExprBinary struct {
	Span Span
	Lhs  Expr
	Op   BinOp
	Rhs  Expr
}

// ExprCall is an invocation of a function: `foo(...)`, `#[foo ...]`.
type ExprCall struct {
	Span   Span
	Callee Expr
	Args   Args
}

// Args is the argument list of a call: `12, draw: false`.
//
// For a bracketed invocation with a body, the body is not included in the
// span for the sake of clearer error messages.
type Args struct {
	Span  Span
	Items []Arg
}

// Arg is a single argument to a call: `12` or `draw: false`.
//
// Implemented by [ArgPos] and [ArgNamed].
type Arg interface {
	argNode()
}

// ArgPos is a positional argument.
type ArgPos struct {
	Expr Expr
}

// ArgNamed is a named argument.
type ArgNamed struct {
	Named Named
}

func (ArgPos) argNode()   {}
func (ArgNamed) argNode() {}

// SpanOfArg returns the source span of an argument.
func SpanOfArg(arg Arg) Span {
	switch a := arg.(type) {
	case ArgPos:
		return SpanOf(a.Expr)
	case ArgNamed:
		return a.Named.Span()
	default:
		panic("syntax: invalid argument")
	}
}

// ExprLet is a let expression: `#let x = 1`.
type ExprLet struct {
	Span    Span
	Binding Ident

	// Init is the initializer, or nil if the binding is declared without
	// one.
	Init Expr
}

// ExprIf is an if expression: `#if x { y } #else { z }`.
type ExprIf struct {
	Span      Span
	Condition Expr
	IfBody    Expr

	// ElseBody is nil if there is no else branch.
	ElseBody Expr
}

// ExprFor is a for expression: `#for x #in y { z }`.
type ExprFor struct {
	Span    Span
	Pattern ForPattern
	Iter    Expr
	Body    Expr
}

// ForPattern is the binding pattern of a for loop.
//
// Implemented by [ValuePattern] and [KeyValuePattern].
type ForPattern interface {
	forPattern()
}

// ValuePattern binds each value: `#for v #in array`.
type ValuePattern struct {
	V Ident
}

// KeyValuePattern binds keys and values: `#for k, v #in dict`.
type KeyValuePattern struct {
	Key, Value Ident
}

func (ValuePattern) forPattern()    {}
func (KeyValuePattern) forPattern() {}

// SpanOfPattern returns the source span of a for pattern.
func SpanOfPattern(pat ForPattern) Span {
	switch p := pat.(type) {
	case ValuePattern:
		return p.V.Span
	case KeyValuePattern:
		return p.Key.Span.Join(p.Value.Span)
	default:
		panic("syntax: invalid for pattern")
	}
}
