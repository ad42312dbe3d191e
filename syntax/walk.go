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

// WalkExprs calls visit for every expression in the tree in pre-order,
// descending into heading bodies and template trees. If visit returns
// false, the expression's children are skipped.
func WalkExprs(tree Tree, visit func(Expr) bool) {
	WalkExprsEnterAndExit(tree, visit, nil)
}

// WalkExprsEnterAndExit is like [WalkExprs], but additionally calls exit
// after each expression's children have been visited. exit is called even
// when enter pruned the children; it may be nil.
func WalkExprsEnterAndExit(tree Tree, enter, exit func(Expr) bool) {
	for _, node := range tree {
		walkNode(node, enter, exit)
	}
}

func walkNode(node Node, enter, exit func(Expr) bool) {
	switch n := node.(type) {
	case *Heading:
		WalkExprsEnterAndExit(n.Body, enter, exit)
	case NodeExpr:
		walkExpr(n.Expr, enter, exit)
	}
}

func walkExpr(expr Expr, enter, exit func(Expr) bool) {
	if enter(expr) {
		switch e := expr.(type) {
		case *Lit, *Ident:
			// Leaves.
		case *ExprArray:
			for _, item := range e.Items {
				walkExpr(item, enter, exit)
			}
		case *ExprDict:
			for _, named := range e.Items {
				walkExpr(named.Expr, enter, exit)
			}
		case *ExprTemplate:
			WalkExprsEnterAndExit(e.Tree, enter, exit)
		case *ExprGroup:
			walkExpr(e.Expr, enter, exit)
		case *ExprBlock:
			for _, inner := range e.Exprs {
				walkExpr(inner, enter, exit)
			}
		case *ExprUnary:
			walkExpr(e.Expr, enter, exit)
		case *ExprBinary:
			walkExpr(e.Lhs, enter, exit)
			walkExpr(e.Rhs, enter, exit)
		case *ExprCall:
			walkExpr(e.Callee, enter, exit)
			for _, arg := range e.Args.Items {
				switch a := arg.(type) {
				case ArgPos:
					walkExpr(a.Expr, enter, exit)
				case ArgNamed:
					walkExpr(a.Named.Expr, enter, exit)
				}
			}
		case *ExprLet:
			if e.Init != nil {
				walkExpr(e.Init, enter, exit)
			}
		case *ExprIf:
			walkExpr(e.Condition, enter, exit)
			walkExpr(e.IfBody, enter, exit)
			if e.ElseBody != nil {
				walkExpr(e.ElseBody, enter, exit)
			}
		case *ExprFor:
			walkExpr(e.Iter, enter, exit)
			walkExpr(e.Body, enter, exit)
		default:
			panic("syntax: invalid expression")
		}
	}
	if exit != nil {
		exit(expr)
	}
}
