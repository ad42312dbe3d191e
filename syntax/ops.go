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

// UnOp is a unary operator.
type UnOp uint8

const (
	// UnOpPos is the plus operator: `+`.
	UnOpPos UnOp = iota + 1
	// UnOpNeg is the negation operator: `-`.
	UnOpNeg
	// UnOpNot is the boolean `not`.
	UnOpNot
)

// UnOpFromToken classifies a token as a unary operator.
//
// Returns false if the token is not one; this is the expected outcome for
// most tokens and not an error.
func UnOpFromToken(t Token) (UnOp, bool) {
	switch t {
	case TokenPlus:
		return UnOpPos, true
	case TokenHyph:
		return UnOpNeg, true
	case TokenNot:
		return UnOpNot, true
	default:
		return 0, false
	}
}

// Precedence returns the operator's precedence; higher binds tighter.
func (op UnOp) Precedence() int {
	switch op {
	case UnOpPos, UnOpNeg:
		return 8
	case UnOpNot:
		return 4
	default:
		panic("syntax: invalid unary operator")
	}
}

// String returns the operator's surface spelling.
func (op UnOp) String() string {
	switch op {
	case UnOpPos:
		return "+"
	case UnOpNeg:
		return "-"
	case UnOpNot:
		return "not"
	default:
		panic("syntax: invalid unary operator")
	}
}

// BinOp is a binary operator.
type BinOp uint8

const (
	// BinOpAdd is the addition operator: `+`.
	BinOpAdd BinOp = iota + 1
	// BinOpSub is the subtraction operator: `-`.
	BinOpSub
	// BinOpMul is the multiplication operator: `*`.
	BinOpMul
	// BinOpDiv is the division operator: `/`.
	BinOpDiv
	// BinOpAnd is the short-circuiting boolean `and`.
	BinOpAnd
	// BinOpOr is the short-circuiting boolean `or`.
	BinOpOr
	// BinOpEq is the equality operator: `==`.
	BinOpEq
	// BinOpNeq is the inequality operator: `!=`.
	BinOpNeq
	// BinOpLt is the less-than operator: `<`.
	BinOpLt
	// BinOpLeq is the less-than or equal operator: `<=`.
	BinOpLeq
	// BinOpGt is the greater-than operator: `>`.
	BinOpGt
	// BinOpGeq is the greater-than or equal operator: `>=`.
	BinOpGeq
	// BinOpAssign is the assignment operator: `=`.
	BinOpAssign
	// BinOpAddAssign is the add-assign operator: `+=`.
	BinOpAddAssign
	// BinOpSubAssign is the subtract-assign operator: `-=`.
	BinOpSubAssign
	// BinOpMulAssign is the multiply-assign operator: `*=`.
	BinOpMulAssign
	// BinOpDivAssign is the divide-assign operator: `/=`.
	BinOpDivAssign
)

// BinOpFromToken classifies a token as a binary operator.
//
// Returns false if the token is not one; this is the expected outcome for
// most tokens and not an error.
func BinOpFromToken(t Token) (BinOp, bool) {
	switch t {
	case TokenPlus:
		return BinOpAdd, true
	case TokenHyph:
		return BinOpSub, true
	case TokenStar:
		return BinOpMul, true
	case TokenSlash:
		return BinOpDiv, true
	case TokenAnd:
		return BinOpAnd, true
	case TokenOr:
		return BinOpOr, true
	case TokenEqEq:
		return BinOpEq, true
	case TokenBangEq:
		return BinOpNeq, true
	case TokenLt:
		return BinOpLt, true
	case TokenLtEq:
		return BinOpLeq, true
	case TokenGt:
		return BinOpGt, true
	case TokenGtEq:
		return BinOpGeq, true
	case TokenEq:
		return BinOpAssign, true
	case TokenPlusEq:
		return BinOpAddAssign, true
	case TokenHyphEq:
		return BinOpSubAssign, true
	case TokenStarEq:
		return BinOpMulAssign, true
	case TokenSlashEq:
		return BinOpDivAssign, true
	default:
		return 0, false
	}
}

// Precedence returns the operator's precedence; higher binds tighter.
//
// Invariant: all operators sharing a precedence level share the same
// associativity. The parser's precedence climbing relies on this.
func (op BinOp) Precedence() int {
	switch op {
	case BinOpMul, BinOpDiv:
		return 7
	case BinOpAdd, BinOpSub:
		return 6
	case BinOpEq, BinOpNeq, BinOpLt, BinOpLeq, BinOpGt, BinOpGeq:
		return 5
	case BinOpAnd:
		return 3
	case BinOpOr:
		return 2
	case BinOpAssign, BinOpAddAssign, BinOpSubAssign, BinOpMulAssign, BinOpDivAssign:
		return 1
	default:
		panic("syntax: invalid binary operator")
	}
}

// Associativity returns the operator's associativity.
func (op BinOp) Associativity() Associativity {
	switch op {
	case BinOpAssign, BinOpAddAssign, BinOpSubAssign, BinOpMulAssign, BinOpDivAssign:
		return AssocRight
	default:
		return AssocLeft
	}
}

// String returns the operator's surface spelling.
func (op BinOp) String() string {
	switch op {
	case BinOpAdd:
		return "+"
	case BinOpSub:
		return "-"
	case BinOpMul:
		return "*"
	case BinOpDiv:
		return "/"
	case BinOpAnd:
		return "and"
	case BinOpOr:
		return "or"
	case BinOpEq:
		return "=="
	case BinOpNeq:
		return "!="
	case BinOpLt:
		return "<"
	case BinOpLeq:
		return "<="
	case BinOpGt:
		return ">"
	case BinOpGeq:
		return ">="
	case BinOpAssign:
		return "="
	case BinOpAddAssign:
		return "+="
	case BinOpSubAssign:
		return "-="
	case BinOpMulAssign:
		return "*="
	case BinOpDivAssign:
		return "/="
	default:
		panic("syntax: invalid binary operator")
	}
}

// Associativity is the associativity of a binary operator.
type Associativity uint8

const (
	// AssocLeft means `a + b + c` groups as `(a + b) + c`.
	AssocLeft Associativity = iota
	// AssocRight means `a = b = c` groups as `a = (b = c)`.
	AssocRight
)

// String implements [fmt.Stringer].
func (a Associativity) String() string {
	if a == AssocRight {
		return "right"
	}
	return "left"
}

// UnOps lists every unary operator, in declaration order.
func UnOps() []UnOp {
	return []UnOp{UnOpPos, UnOpNeg, UnOpNot}
}

// BinOps lists every binary operator, in declaration order.
func BinOps() []BinOp {
	return []BinOp{
		BinOpAdd, BinOpSub, BinOpMul, BinOpDiv,
		BinOpAnd, BinOpOr,
		BinOpEq, BinOpNeq, BinOpLt, BinOpLeq, BinOpGt, BinOpGeq,
		BinOpAssign, BinOpAddAssign, BinOpSubAssign, BinOpMulAssign, BinOpDivAssign,
	}
}
