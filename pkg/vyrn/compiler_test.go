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
package vyrn

import (
	"slices"
	"strings"
	"testing"

	"github.com/vyrn-lang/vyrnc/pkg/util/source"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/codegen"
)

func TestCompile_00(t *testing.T) {
	result := compile(t, "let int x = 10;")
	//
	if result.HasErrors() {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	//
	checkContains(t, result.Output, "int x = 10;")
}

func TestCompile_01(t *testing.T) {
	// The output is a complete translation unit.
	result := compile(t, "log(1);")
	//
	if !strings.HasPrefix(result.Output, codegen.Prologue) {
		t.Error("output must open with the prologue")
	}
	//
	if !strings.HasSuffix(result.Output, codegen.Epilogue) {
		t.Error("output must close with the epilogue")
	}
}

func TestCompile_02(t *testing.T) {
	// A syntax error poisons only its own statement.
	result := compile(t, "let int x = 1; let int = oops; let int y = 2;")
	//
	if len(result.Errors) != 1 {
		t.Fatalf("got %d errors, expected 1", len(result.Errors))
	}
	//
	checkContains(t, result.Output, "int x = 1;")
	checkContains(t, result.Output, "int y = 2;")
}

func TestCompile_03(t *testing.T) {
	// Folding is on by default.
	result := compile(t, "let bool b = true !&& false;")
	checkContains(t, result.Output, "bool b = true;")
}

func TestCompile_04(t *testing.T) {
	// Folding can be switched off.
	srcfile := source.NewSourceFile("test", []byte("let bool b = true !&& false;"))
	result := CompileSource(srcfile, CompilationConfig{Fold: false})
	//
	checkContains(t, result.Output, "bool b = (true !&& false);")
}

func TestCompile_05(t *testing.T) {
	// The symbol table survives the run.
	result := compile(t, "let int x = 1; const int c = 2;")
	//
	if result.Table.Len() != 2 || !result.Table.IsConst("c") {
		t.Error("expected x and constant c in the table")
	}
}

func TestCompile_06(t *testing.T) {
	// Semantic faults do not count as errors; they live in the output.
	result := compile(t, "ghost = 1;")
	//
	if result.HasErrors() {
		t.Fatal("semantic faults must not surface as syntax errors")
	}
	//
	checkContains(t, result.Output, "// Error: variable 'ghost' is not declared")
}

func TestEvaluate_00(t *testing.T) {
	result := evaluate(t, "let int x = 2 + 3 * 4; log(x);")
	//
	if result.Err != nil {
		t.Fatalf("unexpected error: %v", result.Err)
	}
	//
	if !slices.Equal(result.Logs, []string{"14"}) {
		t.Errorf("got %v, expected [14]", result.Logs)
	}
}

func TestEvaluate_01(t *testing.T) {
	// The evaluator does not fold, yet the truth table agrees.
	result := evaluate(t, "let bool b = true xor true; log(b);")
	//
	if !slices.Equal(result.Logs, []string{"false"}) {
		t.Errorf("got %v, expected [false]", result.Logs)
	}
}

func TestEvaluate_02(t *testing.T) {
	// The first runtime fault aborts the run.
	result := evaluate(t, "log(1); let int x = 1 / 0; log(2);")
	//
	if result.Err == nil || result.Err.Error() != "Division by zero" {
		t.Fatalf("got %v, expected division fault", result.Err)
	}
	//
	if !slices.Equal(result.Logs, []string{"1"}) {
		t.Errorf("got %v, expected the run to stop after the first log", result.Logs)
	}
}

func TestEvaluate_03(t *testing.T) {
	// Syntax errors still isolate per statement.
	result := evaluate(t, "let int = 1; log(42);")
	//
	if len(result.SyntaxErrors) != 1 || result.Err != nil {
		t.Fatalf("got %v / %v", result.SyntaxErrors, result.Err)
	}
	//
	if !slices.Equal(result.Logs, []string{"42"}) {
		t.Errorf("got %v, expected [42]", result.Logs)
	}
}

func TestEvaluate_04(t *testing.T) {
	// Where compilation merely warns, evaluation faults.
	result := evaluate(t, "let int x = 1; let int x = 2;")
	//
	if result.Err == nil || result.Err.Error() != "Variable already declared: x" {
		t.Errorf("got %v, expected redeclaration fault", result.Err)
	}
}

// ==================================================================
// Framework
// ==================================================================

func compile(t *testing.T, input string) Result {
	t.Helper()
	return CompileSource(source.NewSourceFile("test", []byte(input)), DefaultConfig())
}

func evaluate(t *testing.T, input string) EvalResult {
	t.Helper()
	return EvaluateSource(source.NewSourceFile("test", []byte(input)))
}

func checkContains(t *testing.T, output string, expected string) {
	t.Helper()
	//
	if !strings.Contains(output, expected) {
		t.Errorf("output missing %q:\n%s", expected, output)
	}
}
