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

// Node is the interface implemented by all nodes of the abstract syntax tree.
// The set of implementations is closed, and backends dispatch over it
// exhaustively, reporting an unsupported marker for anything they do not
// lower.  Every node exclusively owns its children; the tree is never cyclic.
type Node interface {
	node()
}

// Literal is a leaf holding a value as it appeared in the source text.  The
// raw text is deliberately not pre-converted, so that backends decide numeric
// formatting and interpretation for themselves.  When IsReference holds, the
// text is the name of a variable rather than a value.
type Literal struct {
	// Declared (or shape-inferred) type of this literal, one of "int",
	// "float", "bool" or "string".
	Type string
	// Raw text of the literal.
	Text string
	// Indicates the text names a variable rather than holding a value.
	IsReference bool
}

// Declaration represents a "let" or "const" statement introducing a typed
// name with an initial value.
type Declaration struct {
	// Indicates a const (immutable) declaration.
	Const bool
	// Declared type name.
	Type string
	// Name being introduced.
	Name string
	// Initialiser, either a literal or an expression tree.
	Value Node
	// Indicates the initialiser references another variable.
	IsReference bool
}

// Assignment represents "name = source".  The source is either the name of
// another variable, a bare literal text, or a boolean expression tree.
type Assignment struct {
	// Name of the variable being assigned.
	Target string
	// Raw source text (variable name or literal) when Expr is nil.
	Source string
	// Indicates Source names a variable.
	IsReference bool
	// Expression source, when the right-hand side was an expression.
	Expr Node
}

// Log represents the "log(...)" printing statement, whose argument is either
// a variable name or a literal.
type Log struct {
	// Name of the variable being logged, when IsVariable holds.
	Variable string
	// Indicates a variable is being logged rather than a literal.
	IsVariable bool
	// Literal being logged, when IsVariable does not hold.
	Value *Literal
}

// MultiOp is a flattened n-ary arithmetic chain, such as "a + b - c".  The
// operators slice is always exactly one shorter than the operands slice, and
// evaluation associates to the left.
type MultiOp struct {
	Operands  []Node
	Operators []string
}

// MultiOpBool is a flattened n-ary boolean chain, such as "a && b !&& c".
// The operators slice is always exactly one shorter than the operands slice,
// and evaluation associates to the left.
type MultiOpBool struct {
	Operands  []Node
	Operators []string
}

// BinaryOp represents a single binary operation over two operands, used for
// equality and relational comparisons.
type BinaryOp struct {
	Op    string
	Left  Node
	Right Node
}

// UnaryOp represents a prefix operation ("-", "!") or the special-cased
// "sqrt" call recognised at the primary level.
type UnaryOp struct {
	Op      string
	Operand Node
}

// VariableRef is the use of a variable by name within an expression.
type VariableRef struct {
	Name string
}

// Program is the root of a parsed compilation unit.
type Program struct {
	Statements []Node
}

// Function represents a named function declaration with its parameter names
// and body.
type Function struct {
	Name   string
	Params []string
	Body   []Node
}

// Class represents a named class declaration containing member declarations.
type Class struct {
	Name    string
	Members []Node
}

// If represents a conditional with an optional else branch.
type If struct {
	Condition Node
	Then      []Node
	Else      []Node
}

// Return represents a return statement within a function body.
type Return struct {
	Expr Node
}

func (*Literal) node()     {}
func (*Declaration) node() {}
func (*Assignment) node()  {}
func (*Log) node()         {}
func (*MultiOp) node()     {}
func (*MultiOpBool) node() {}
func (*BinaryOp) node()    {}
func (*UnaryOp) node()     {}
func (*VariableRef) node() {}
func (*Program) node()     {}
func (*Function) node()    {}
func (*Class) node()       {}
func (*If) node()          {}
func (*Return) node()      {}

// BoolLiteral constructs the boolean literal "true" or "false".
func BoolLiteral(value bool) *Literal {
	if value {
		return &Literal{"bool", "true", false}
	}
	//
	return &Literal{"bool", "false", false}
}
