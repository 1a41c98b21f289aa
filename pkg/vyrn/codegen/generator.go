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
package codegen

import (
	"fmt"
	"strings"

	"github.com/vyrn-lang/vyrnc/pkg/vyrn/ast"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/sema"
)

// Prologue opens the generated translation unit.  Boolean values print as
// words and floats print at full precision.
const Prologue = "#include <iostream>\n#include <string>\n#include <iomanip>\n#include <cmath>\n" +
	"int main() {\nstd::cout << std::boolalpha;\nstd::cout << std::setprecision(21);\n"

// Epilogue closes the generated translation unit.
const Epilogue = "\n    return 0;\n}\n"

// Generator translates statements into C++ one at a time, accumulating a
// symbol table as it goes.  Semantic faults (redeclaration, assignment to an
// undeclared name or to a constant) never abort generation: they surface as
// comments in the output and the run continues.
type Generator struct {
	out   strings.Builder
	table *sema.Table
}

// NewGenerator constructs a generator with an empty symbol table.
func NewGenerator() *Generator {
	return &Generator{table: sema.NewTable()}
}

// Table returns the symbol table accumulated so far.
func (g *Generator) Table() *sema.Table {
	return g.table
}

// Generate produces the C++ rendering of a single statement at a given
// indentation level.
func (g *Generator) Generate(node ast.Node, indentLevel int) string {
	g.out.Reset()
	g.generateNode(node, indentLevel)
	//
	return g.out.String()
}

func (g *Generator) generateNode(node ast.Node, indentLevel int) {
	switch n := node.(type) {
	case *ast.Declaration:
		g.generateDeclaration(n, indentLevel)
	case *ast.Log:
		g.generateLog(n, indentLevel)
	case *ast.Assignment:
		g.generateAssign(n, indentLevel)
	case *ast.Function:
		g.generateFunction(n, indentLevel)
	case *ast.Class:
		g.generateClass(n, indentLevel)
	case *ast.If:
		g.generateIf(n, indentLevel)
	case *ast.Return:
		g.indent(indentLevel)
		g.out.WriteString("return " + g.renderExpr(n.Expr) + ";\n")
	case *ast.MultiOp:
		g.indent(indentLevel)
		g.out.WriteString("// Multi-op expression not evaluated at compile time (should be evaluated in parser)\n")
	case *ast.MultiOpBool:
		g.indent(indentLevel)
		g.out.WriteString("// Multi-op bool expression not evaluated at compile time (should be evaluated in parser)\n")
	default:
		g.indent(indentLevel)
		g.out.WriteString("// Unknown node\n")
	}
}

func (g *Generator) generateDeclaration(node *ast.Declaration, indentLevel int) {
	g.indent(indentLevel)
	//
	kind := sema.VARIABLE
	if node.Const {
		kind = sema.CONSTANT
	}
	//
	if g.table.IsDeclared(node.Name, node.Const) {
		kindName := "variable"
		if node.Const {
			kindName = "constant"
		}
		//
		g.out.WriteString(fmt.Sprintf("// Warning: %s '%s' already declared\n", kindName, node.Name))
		g.indent(indentLevel)
	} else {
		g.table.Declare(node.Name, sema.Symbol{
			Type:        node.Type,
			Value:       literalText(node.Value),
			IsReference: node.IsReference,
			Kind:        kind,
		})
	}
	// The declaration line is emitted even after a warning.
	if node.Const {
		g.out.WriteString("const ")
	}
	//
	g.out.WriteString(convertType(node.Type) + " " + node.Name + " = ")
	//
	switch value := node.Value.(type) {
	case *ast.Literal:
		if node.Type == "string" && !node.IsReference {
			g.out.WriteString("\"" + value.Text + "\"")
		} else if node.IsReference {
			g.out.WriteString(value.Text)
		} else {
			g.out.WriteString(formatLiteral(value))
		}
	default:
		g.out.WriteString(g.renderExpr(node.Value))
	}
	//
	g.out.WriteString(";\n")
}

func (g *Generator) generateAssign(node *ast.Assignment, indentLevel int) {
	g.indent(indentLevel)
	//
	if !g.table.Exists(node.Target) {
		g.out.WriteString(fmt.Sprintf("// Error: variable '%s' is not declared\n", node.Target))
		return
	} else if g.table.IsConst(node.Target) {
		g.out.WriteString(fmt.Sprintf("// Error: cannot assign to constant '%s'\n", node.Target))
		return
	}
	//
	g.out.WriteString(node.Target + " = ")
	//
	switch {
	case node.Expr != nil:
		g.out.WriteString(g.renderExpr(node.Expr))
	case node.IsReference:
		g.out.WriteString(node.Source)
		g.table.Update(node.Target, node.Source)
	default:
		symbol, _ := g.table.Lookup(node.Target)
		// Bare string sources pick up their quotes here.
		if symbol.Type == "string" && !strings.Contains(node.Source, "\"") {
			g.out.WriteString("\"" + node.Source + "\"")
		} else {
			g.out.WriteString(formatLiteral(&ast.Literal{Text: node.Source}))
		}
		//
		g.table.Update(node.Target, node.Source)
	}
	//
	g.out.WriteString(";\n")
}

func (g *Generator) generateLog(node *ast.Log, indentLevel int) {
	g.indent(indentLevel)
	//
	g.out.WriteString("std::cout << ")
	//
	if node.IsVariable {
		if g.table.Exists(node.Variable) {
			g.out.WriteString(node.Variable)
		} else {
			g.out.WriteString(fmt.Sprintf("\"[Undefined variable: %s]\"", node.Variable))
		}
	} else {
		g.out.WriteString(formatLiteral(node.Value))
	}
	//
	g.out.WriteString(" << std::endl;\n")
}

// generateFunction renders a function as a generic lambda, so that untyped
// parameters remain polymorphic in the generated program.
func (g *Generator) generateFunction(node *ast.Function, indentLevel int) {
	g.indent(indentLevel)
	//
	var params []string
	//
	for _, param := range node.Params {
		params = append(params, "auto "+param)
	}
	//
	g.out.WriteString(fmt.Sprintf("auto %s = [&](%s) {\n", node.Name, strings.Join(params, ", ")))
	//
	for _, stmt := range node.Body {
		g.generateNode(stmt, indentLevel+1)
	}
	//
	g.indent(indentLevel)
	g.out.WriteString("};\n")
}

func (g *Generator) generateClass(node *ast.Class, indentLevel int) {
	g.indent(indentLevel)
	g.out.WriteString(fmt.Sprintf("struct %s {\n", node.Name))
	//
	for _, member := range node.Members {
		g.generateNode(member, indentLevel+1)
	}
	//
	g.indent(indentLevel)
	g.out.WriteString("};\n")
}

func (g *Generator) generateIf(node *ast.If, indentLevel int) {
	g.indent(indentLevel)
	g.out.WriteString(fmt.Sprintf("if (%s) {\n", g.renderExpr(node.Condition)))
	//
	for _, stmt := range node.Then {
		g.generateNode(stmt, indentLevel+1)
	}
	//
	g.indent(indentLevel)
	//
	if node.Else != nil {
		g.out.WriteString("} else {\n")
		//
		for _, stmt := range node.Else {
			g.generateNode(stmt, indentLevel+1)
		}
		//
		g.indent(indentLevel)
	}
	//
	g.out.WriteString("}\n")
}

// renderExpr produces the C++ source text of an expression.  Operator chains
// are parenthesised as a whole, so "2 + 3 * 4" renders as "(2 + (3 * 4))".
func (g *Generator) renderExpr(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Literal:
		if n.IsReference {
			return n.Text
		}
		//
		return formatLiteral(n)
	case *ast.VariableRef:
		return n.Name
	case *ast.MultiOp:
		return g.renderChain(n.Operands, n.Operators)
	case *ast.MultiOpBool:
		return g.renderChain(n.Operands, n.Operators)
	case *ast.BinaryOp:
		return "(" + g.renderExpr(n.Left) + " " + n.Op + " " + g.renderExpr(n.Right) + ")"
	case *ast.UnaryOp:
		if n.Op == "sqrt" {
			return "std::sqrt(" + g.renderExpr(n.Operand) + ")"
		}
		//
		return "(" + n.Op + g.renderExpr(n.Operand) + ")"
	case *ast.Assignment:
		if n.Expr != nil {
			return n.Target + " = " + g.renderExpr(n.Expr)
		}
		//
		return n.Target + " = " + n.Source
	}
	//
	return "/* unsupported expr */"
}

func (g *Generator) renderChain(operands []ast.Node, operators []string) string {
	var expr strings.Builder
	//
	expr.WriteString("(")
	//
	for i, operand := range operands {
		if i != 0 {
			expr.WriteString(" " + operators[i-1] + " ")
		}
		//
		expr.WriteString(g.renderExpr(operand))
	}
	//
	expr.WriteString(")")
	//
	return expr.String()
}

func (g *Generator) indent(level int) {
	for i := 0; i < level; i++ {
		g.out.WriteString("    ")
	}
}

// formatLiteral renders a literal as C++ source: strings are quoted, booleans
// are spelled out and floats have their decimal comma normalised.
func formatLiteral(node *ast.Literal) string {
	switch node.Type {
	case "string":
		if !node.IsReference {
			return "\"" + node.Text + "\""
		}
		//
		return node.Text
	case "bool":
		if node.Text == "true" {
			return "true"
		}
		//
		return "false"
	case "float":
		return strings.ReplaceAll(node.Text, ",", ".")
	}
	//
	return node.Text
}

// convertType maps a surface type onto its C++ spelling.
func convertType(typeName string) string {
	if typeName == "string" {
		return "std::string"
	}
	//
	return typeName
}

// literalText extracts the raw text of a literal initialiser, or the rendered
// form of any other expression.
func literalText(node ast.Node) string {
	if lit, ok := node.(*ast.Literal); ok {
		return lit.Text
	}
	//
	return ""
}
