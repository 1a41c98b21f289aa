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
package eval

import (
	"errors"
	"fmt"
	"math"

	"github.com/vyrn-lang/vyrnc/pkg/vyrn/ast"
)

// Eval walks a tree and computes its value within a given environment.  The
// first fault aborts the walk: unlike compilation, evaluation treats semantic
// faults as hard errors.
func Eval(node ast.Node, env *Environment) (Value, error) {
	switch n := node.(type) {
	case *ast.Program:
		return evalSequence(n.Statements, env)
	case *ast.Literal:
		if n.IsReference {
			return env.Lookup(n.Text)
		}
		//
		return ParseLiteral(n.Text), nil
	case *ast.VariableRef:
		return env.Lookup(n.Name)
	case *ast.BinaryOp:
		return evalBinary(n, env)
	case *ast.MultiOp:
		return evalChain(n.Operands, n.Operators, env)
	case *ast.MultiOpBool:
		return evalChain(n.Operands, n.Operators, env)
	case *ast.UnaryOp:
		return evalUnary(n, env)
	case *ast.Declaration:
		return evalDeclaration(n, env)
	case *ast.Assignment:
		return evalAssignment(n, env)
	case *ast.Log:
		if n.IsVariable {
			return env.Lookup(n.Variable)
		}
		//
		return ParseLiteral(n.Value.Text), nil
	case *ast.If:
		return evalIf(n, env)
	}
	//
	return Value{}, errors.New("Unknown AST node type")
}

func evalSequence(statements []ast.Node, env *Environment) (Value, error) {
	var (
		value Value
		err   error
	)
	//
	for _, stmt := range statements {
		if value, err = Eval(stmt, env); err != nil {
			return Value{}, err
		}
	}
	//
	return value, nil
}

func evalDeclaration(node *ast.Declaration, env *Environment) (Value, error) {
	value, err := Eval(node.Value, env)
	if err != nil {
		return Value{}, err
	}
	//
	if err := env.Define(node.Name, value, node.Const); err != nil {
		return Value{}, err
	}
	//
	return value, nil
}

func evalAssignment(node *ast.Assignment, env *Environment) (Value, error) {
	var (
		value Value
		err   error
	)
	//
	switch {
	case node.Expr != nil:
		value, err = Eval(node.Expr, env)
	case node.IsReference:
		value, err = env.Lookup(node.Source)
	default:
		value = ParseLiteral(node.Source)
	}
	//
	if err != nil {
		return Value{}, err
	}
	//
	if err := env.Assign(node.Target, value); err != nil {
		return Value{}, err
	}
	//
	return value, nil
}

func evalIf(node *ast.If, env *Environment) (Value, error) {
	condition, err := Eval(node.Condition, env)
	if err != nil {
		return Value{}, err
	}
	//
	if condition.Type != BOOL {
		return Value{}, errors.New("Unsupported binary operation or type mismatch")
	}
	//
	if condition.Bool {
		return evalSequence(node.Then, env)
	}
	//
	return evalSequence(node.Else, env)
}

func evalBinary(node *ast.BinaryOp, env *Environment) (Value, error) {
	left, err := Eval(node.Left, env)
	if err != nil {
		return Value{}, err
	}
	//
	right, err := Eval(node.Right, env)
	if err != nil {
		return Value{}, err
	}
	//
	return applyBinary(node.Op, left, right)
}

// evalChain folds an n-ary operator chain, associating to the left.
func evalChain(operands []ast.Node, operators []string, env *Environment) (Value, error) {
	acc, err := Eval(operands[0], env)
	if err != nil {
		return Value{}, err
	}
	//
	for i := 1; i < len(operands); i++ {
		rhs, err := Eval(operands[i], env)
		if err != nil {
			return Value{}, err
		}
		//
		if acc, err = applyBinary(operators[i-1], acc, rhs); err != nil {
			return Value{}, err
		}
	}
	//
	return acc, nil
}

func evalUnary(node *ast.UnaryOp, env *Environment) (Value, error) {
	operand, err := Eval(node.Operand, env)
	if err != nil {
		return Value{}, err
	}
	//
	switch {
	case node.Op == "!" && operand.Type == BOOL:
		return BoolValue(!operand.Bool), nil
	case node.Op == "-" && operand.Type == INT:
		return IntValue(-operand.Int), nil
	case node.Op == "-" && operand.Type == FLOAT:
		return FloatValue(-operand.Float), nil
	case node.Op == "sqrt" && operand.Type == INT:
		return FloatValue(math.Sqrt(float64(operand.Int))), nil
	case node.Op == "sqrt" && operand.Type == FLOAT:
		return FloatValue(math.Sqrt(operand.Float)), nil
	}
	//
	return Value{}, fmt.Errorf("Unsupported unary operation: %s", node.Op)
}

// applyBinary applies a binary operator to two computed values.  Integer
// operands support arithmetic and numeric comparison; boolean operands select
// the logical reading of every operator, including the implication variants
// of the relational forms.
func applyBinary(op string, left Value, right Value) (Value, error) {
	if left.Type == INT && right.Type == INT {
		switch op {
		case "+":
			return IntValue(left.Int + right.Int), nil
		case "-":
			return IntValue(left.Int - right.Int), nil
		case "*":
			return IntValue(left.Int * right.Int), nil
		case "/":
			if right.Int == 0 {
				return Value{}, errors.New("Division by zero")
			}
			//
			return IntValue(left.Int / right.Int), nil
		case "<":
			return BoolValue(left.Int < right.Int), nil
		case ">":
			return BoolValue(left.Int > right.Int), nil
		case "<=":
			return BoolValue(left.Int <= right.Int), nil
		case ">=":
			return BoolValue(left.Int >= right.Int), nil
		case "==":
			return BoolValue(left.Int == right.Int), nil
		case "!=":
			return BoolValue(left.Int != right.Int), nil
		}
	}
	//
	if left.Type == BOOL && right.Type == BOOL {
		if value, ok := ast.ApplyBoolOp(op, left.Bool, right.Bool); ok {
			return BoolValue(value), nil
		}
	}
	//
	return Value{}, errors.New("Unsupported binary operation or type mismatch")
}
