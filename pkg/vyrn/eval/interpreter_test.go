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
	"testing"

	"github.com/vyrn-lang/vyrnc/pkg/util/source"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/parser"
)

func TestEval_00(t *testing.T) {
	checkEval(t, "2 + 3 * 4;", IntValue(14))
}

func TestEval_01(t *testing.T) {
	checkEval(t, "(2 + 3) * 4;", IntValue(20))
}

func TestEval_02(t *testing.T) {
	checkEval(t, "let int x = 10; x / 2;", IntValue(5))
}

func TestEval_03(t *testing.T) {
	checkEval(t, "10 / 4;", IntValue(2))
}

func TestEval_04(t *testing.T) {
	checkEvalErr(t, "1 / 0;", "Division by zero")
}

func TestEval_05(t *testing.T) {
	// Unlike compilation, redeclaration is a hard fault here.
	checkEvalErr(t, "let int x = 1; let int x = 2;", "Variable already declared: x")
}

func TestEval_06(t *testing.T) {
	checkEvalErr(t, "x + 1;", "Variable not defined: x")
}

func TestEval_07(t *testing.T) {
	checkEvalErr(t, "const int c = 1; c = 2;", "Cannot assign to constant variable: c")
}

func TestEval_08(t *testing.T) {
	checkEval(t, "let int x = 1; x = x + 1; x;", IntValue(2))
}

func TestEval_09(t *testing.T) {
	checkEval(t, "1 < 2;", BoolValue(true))
}

func TestEval_10(t *testing.T) {
	checkEval(t, "let bool b = true !&& false; b;", BoolValue(true))
}

func TestEval_11(t *testing.T) {
	checkEval(t, "true xor true;", BoolValue(false))
}

func TestEval_12(t *testing.T) {
	checkEval(t, "true => false;", BoolValue(false))
}

func TestEval_13(t *testing.T) {
	// On boolean operands the relational operators read as implications.
	checkEval(t, "false < true;", BoolValue(true))
}

func TestEval_14(t *testing.T) {
	checkEval(t, "!false;", BoolValue(true))
}

func TestEval_15(t *testing.T) {
	checkEval(t, "-(2 + 3);", IntValue(-5))
}

func TestEval_16(t *testing.T) {
	checkEval(t, "sqrt(9);", FloatValue(3))
}

func TestEval_17(t *testing.T) {
	// Arithmetic is integer-only: mixing in a float faults.
	checkEvalErr(t, "let float f = 1.5; f + 1;", "Unsupported binary operation or type mismatch")
}

func TestEval_18(t *testing.T) {
	checkEval(t, "let int x = 1; if (x < 10) { x = 2; } x;", IntValue(2))
}

func TestEval_19(t *testing.T) {
	checkEval(t, "let int x = 1; if (x > 10) { x = 2; } else { x = 3; } x;", IntValue(3))
}

func TestParseLiteral_00(t *testing.T) {
	checkValue(t, ParseLiteral("true"), BoolValue(true))
	checkValue(t, ParseLiteral("false"), BoolValue(false))
}

func TestParseLiteral_01(t *testing.T) {
	checkValue(t, ParseLiteral("42"), IntValue(42))
}

func TestParseLiteral_02(t *testing.T) {
	checkValue(t, ParseLiteral("3.25"), FloatValue(3.25))
}

func TestParseLiteral_03(t *testing.T) {
	// A comma separator fails the float probe and lands on the string arm.
	checkValue(t, ParseLiteral("3,25"), StringValue("3,25"))
}

func TestParseLiteral_04(t *testing.T) {
	checkValue(t, ParseLiteral("hello"), StringValue("hello"))
}

func TestValueString(t *testing.T) {
	checks := []struct {
		value    Value
		expected string
	}{
		{IntValue(-3), "-3"},
		{FloatValue(2.5), "2.5"},
		{BoolValue(true), "true"},
		{StringValue("hi"), "hi"},
	}
	//
	for _, c := range checks {
		if got := c.value.String(); got != c.expected {
			t.Errorf("got %q, expected %q", got, c.expected)
		}
	}
}

// ==================================================================
// Framework
// ==================================================================

// evalProgram parses and evaluates a sequence of statements, returning the
// value of the last.
func evalProgram(t *testing.T, input string) (Value, error) {
	t.Helper()
	//
	srcfile := source.NewSourceFile("test", []byte(input))
	//
	program, errs := parser.Parse(srcfile)
	if len(errs) != 0 {
		t.Fatalf("unexpected syntax errors: %v", errs)
	}
	//
	return Eval(program, NewEnvironment())
}

func checkEval(t *testing.T, input string, expected Value) {
	t.Helper()
	//
	value, err := evalProgram(t, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	//
	checkValue(t, value, expected)
}

func checkEvalErr(t *testing.T, input string, msg string) {
	t.Helper()
	//
	if _, err := evalProgram(t, input); err == nil {
		t.Fatal("expected an error")
	} else if err.Error() != msg {
		t.Errorf("got %q, expected %q", err.Error(), msg)
	}
}

func checkValue(t *testing.T, got Value, expected Value) {
	t.Helper()
	//
	if got != expected {
		t.Errorf("got %v, expected %v", got, expected)
	}
}
