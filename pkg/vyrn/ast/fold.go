// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ast

import (
	"strconv"
	"strings"
)

// FoldBooleans rewrites a tree, replacing every boolean subexpression whose
// operands are all known constants with the boolean literal it denotes.
// Arithmetic chains are left untouched.  This pass reproduces, bit for bit,
// the truth table of the eager evaluation found in one lineage of the parser:
// alongside the usual connectives, the relational operators double as logical
// implication variants whenever both operands are themselves booleans, whilst
// comparisons between numeric operands compare numerically.
func FoldBooleans(node Node) Node {
	switch n := node.(type) {
	case *Program:
		return &Program{foldAll(n.Statements)}
	case *Function:
		return &Function{n.Name, n.Params, foldAll(n.Body)}
	case *Class:
		return &Class{n.Name, foldAll(n.Members)}
	case *If:
		return &If{FoldBooleans(n.Condition), foldAll(n.Then), foldAll(n.Else)}
	case *Return:
		return &Return{FoldBooleans(n.Expr)}
	case *Declaration:
		return &Declaration{n.Const, n.Type, n.Name, FoldBooleans(n.Value), n.IsReference}
	case *Assignment:
		if n.Expr == nil {
			return n
		}
		//
		return &Assignment{n.Target, n.Source, n.IsReference, FoldBooleans(n.Expr)}
	case *MultiOpBool:
		return foldBoolChain(n)
	case *BinaryOp:
		return foldComparison(n)
	case *UnaryOp:
		return foldNegation(n)
	}
	// Leaves and arithmetic chains pass through unchanged.
	return node
}

func foldAll(nodes []Node) []Node {
	folded := make([]Node, len(nodes))
	//
	for i, n := range nodes {
		folded[i] = FoldBooleans(n)
	}
	//
	return folded
}

// foldBoolChain folds an n-ary boolean chain whose operands all fold to
// boolean constants, associating to the left.
func foldBoolChain(chain *MultiOpBool) Node {
	operands := foldAll(chain.Operands)
	//
	acc, ok := boolConstant(operands[0])
	//
	for i := 1; ok && i < len(operands); i++ {
		var rhs bool
		//
		if rhs, ok = boolConstant(operands[i]); ok {
			acc, ok = ApplyBoolOp(chain.Operators[i-1], acc, rhs)
		}
	}
	//
	if ok {
		return BoolLiteral(acc)
	}
	//
	return &MultiOpBool{operands, chain.Operators}
}

// foldComparison folds an equality or relational comparison.  Two boolean
// operands select the logical reading of the operator; two numeric operands
// compare numerically.  This disambiguation by operand type is intentional
// language behaviour.
func foldComparison(op *BinaryOp) Node {
	left := FoldBooleans(op.Left)
	right := FoldBooleans(op.Right)
	//
	if lb, ok := boolConstant(left); ok {
		if rb, ok := boolConstant(right); ok {
			if value, ok := ApplyBoolOp(op.Op, lb, rb); ok {
				return BoolLiteral(value)
			}
		}
	}
	//
	if lf, ok := numericConstant(left); ok {
		if rf, ok := numericConstant(right); ok {
			if value, ok := applyComparison(op.Op, lf, rf); ok {
				return BoolLiteral(value)
			}
		}
	}
	//
	return &BinaryOp{op.Op, left, right}
}

func foldNegation(op *UnaryOp) Node {
	operand := FoldBooleans(op.Operand)
	//
	if op.Op == "!" {
		if value, ok := boolConstant(operand); ok {
			return BoolLiteral(!value)
		}
	}
	//
	return &UnaryOp{op.Op, operand}
}

// ApplyBoolOp realises the boolean truth table for two boolean operands.
// Observe that the relational operators are read as implication variants
// here; callers must have established that both operands are booleans before
// selecting this reading.  The second result reports whether the operator was
// recognised.
func ApplyBoolOp(op string, left bool, right bool) (bool, bool) {
	switch op {
	case "||":
		return left || right, true
	case "!||":
		return !(left || right), true
	case "&&":
		return left && right, true
	case "!&&":
		return !(left && right), true
	case "xor":
		return left != right, true
	case "nxor":
		return left == right, true
	case "==":
		return left == right, true
	case "!=":
		return left != right, true
	case "=>":
		return !left || right, true
	case "!=>":
		return left && !right, true
	case "<":
		return !left && right, true
	case "<=":
		return !left || right, true
	case ">":
		return left && !right, true
	case ">=":
		return left || !right, true
	}
	//
	return false, false
}

func applyComparison(op string, left float64, right float64) (bool, bool) {
	switch op {
	case "<":
		return left < right, true
	case ">":
		return left > right, true
	case "<=":
		return left <= right, true
	case ">=":
		return left >= right, true
	case "==":
		return left == right, true
	case "!=":
		return left != right, true
	}
	//
	return false, false
}

// boolConstant extracts the value of a boolean literal, if that is what the
// node is.
func boolConstant(node Node) (bool, bool) {
	if lit, ok := node.(*Literal); ok && !lit.IsReference {
		switch lit.Text {
		case "true":
			return true, true
		case "false":
			return false, true
		}
	}
	//
	return false, false
}

// numericConstant extracts the value of a numeric literal, normalising the
// comma decimal separator.
func numericConstant(node Node) (float64, bool) {
	lit, ok := node.(*Literal)
	if !ok || lit.IsReference {
		return 0, false
	}
	//
	value, err := strconv.ParseFloat(strings.ReplaceAll(lit.Text, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	//
	return value, true
}
