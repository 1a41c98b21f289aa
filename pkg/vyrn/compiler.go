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
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/vyrn-lang/vyrnc/pkg/util/source"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/ast"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/codegen"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/eval"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/lexer"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/parser"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/sema"
)

// CompilationConfig packages the knobs of the compilation pipeline.
type CompilationConfig struct {
	// Fold determines whether constant boolean subexpressions are folded to
	// their literal value before code generation.
	Fold bool
}

// DefaultConfig returns the configuration used when nothing is overridden:
// boolean folding enabled.
func DefaultConfig() CompilationConfig {
	return CompilationConfig{Fold: true}
}

// Result packages the outcome of compiling a source file down to C++.
type Result struct {
	// Output is the complete generated translation unit.
	Output string
	// Errors are the syntax errors encountered, at most one per statement.
	Errors []source.SyntaxError
	// Table is the symbol table accumulated during generation.
	Table *sema.Table
}

// HasErrors checks whether any syntax errors arose during compilation.
func (r *Result) HasErrors() bool {
	return len(r.Errors) != 0
}

// CompileSource translates a source file into a C++ translation unit.
// Statements are isolated from one another: the token stream is split on
// top-level semicolons and each fragment is parsed on its own, so a syntax
// error poisons only its own statement.  Generation always runs to
// completion, with semantic faults surfacing as comments in the output.
func CompileSource(srcfile *source.File, config CompilationConfig) Result {
	tokens := lexer.NewLexer(srcfile).Collect()
	fragments := parser.SplitStatements(tokens)
	//
	log.Debugf("compiling %s (%d statements)", srcfile.Filename(), len(fragments))
	//
	generator := codegen.NewGenerator()
	//
	var (
		out  strings.Builder
		errs []source.SyntaxError
	)
	//
	out.WriteString(codegen.Prologue)
	//
	for _, fragment := range fragments {
		node, ferrs := parser.ParseStatement(srcfile, fragment)
		if len(ferrs) != 0 {
			errs = append(errs, ferrs...)
			continue
		}
		//
		if config.Fold {
			node = ast.FoldBooleans(node)
		}
		//
		out.WriteString(generator.Generate(node, 0))
	}
	//
	out.WriteString(codegen.Epilogue)
	//
	return Result{Output: out.String(), Errors: errs, Table: generator.Table()}
}

// EvalResult packages the outcome of evaluating a source file directly.
type EvalResult struct {
	// Logs are the rendered values of the log statements, in order.
	Logs []string
	// SyntaxErrors are the syntax errors encountered, at most one per
	// statement.
	SyntaxErrors []source.SyntaxError
	// Err is the runtime fault which aborted evaluation, if any.
	Err error
	// Env is the final environment.
	Env *eval.Environment
}

// EvaluateSource evaluates a source file with the tree-walking interpreter.
// Statements are isolated against syntax errors exactly as in compilation,
// but the first runtime fault is fatal and aborts the remainder of the run.
// Trees are evaluated lazily, without prior boolean folding.
func EvaluateSource(srcfile *source.File) EvalResult {
	tokens := lexer.NewLexer(srcfile).Collect()
	fragments := parser.SplitStatements(tokens)
	//
	log.Debugf("evaluating %s (%d statements)", srcfile.Filename(), len(fragments))
	//
	env := eval.NewEnvironment()
	//
	result := EvalResult{Env: env}
	//
	for _, fragment := range fragments {
		node, ferrs := parser.ParseStatement(srcfile, fragment)
		if len(ferrs) != 0 {
			result.SyntaxErrors = append(result.SyntaxErrors, ferrs...)
			continue
		}
		//
		value, err := eval.Eval(node, env)
		if err != nil {
			result.Err = err
			return result
		}
		//
		if _, ok := node.(*ast.Log); ok {
			result.Logs = append(result.Logs, value.String())
		}
	}
	//
	return result
}
