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
package parser

import (
	"fmt"
	"strings"

	"github.com/vyrn-lang/vyrnc/pkg/util/source"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/ast"
	"github.com/vyrn-lang/vyrnc/pkg/vyrn/lexer"
)

// Parse a complete source file into a program.  The parser performs no local
// recovery: the first syntax error aborts the parse and is returned with the
// position of the offending token.  Callers wanting statement-level isolation
// should split the token stream first (see SplitStatements).
func Parse(srcfile *source.File) (*ast.Program, []source.SyntaxError) {
	tokens := lexer.NewLexer(srcfile).Collect()
	//
	parser := &Parser{srcfile, tokens, 0}
	//
	return parser.parseProgram()
}

// ParseStatement parses a single statement from a given token fragment.  The
// fragment must be terminated by an END_OF token; a trailing semicolon is
// optional.  Anything left over after the statement is an error.
func ParseStatement(srcfile *source.File, tokens []lexer.Token) (ast.Node, []source.SyntaxError) {
	parser := &Parser{srcfile, tokens, 0}
	//
	node, errs := parser.parseDeclaration()
	// Check all tokens were consumed
	if len(errs) == 0 && !parser.Done() {
		return nil, parser.syntaxErrors(parser.lookahead(), "unknown token")
	}
	//
	return node, errs
}

// SplitStatements splits a token stream into independent statement fragments
// at every semicolon occurring outside braces and parentheses, and after
// every top-level block (unless an "else" continues it).  Each fragment is
// terminated with the stream's END_OF token, so that fragments can be parsed
// in isolation: one fragment's syntax error then never aborts the remaining
// fragments.
func SplitStatements(tokens []lexer.Token) [][]lexer.Token {
	var (
		fragments [][]lexer.Token
		fragment  []lexer.Token
		depth     int
	)
	//
	eof := tokens[len(tokens)-1]
	//
	flush := func() {
		if len(fragment) != 0 {
			fragments = append(fragments, append(fragment, eof))
			fragment = nil
		}
	}
	//
	for i, token := range tokens {
		switch {
		case token.Kind == lexer.END_OF:
			continue
		case token.Kind == lexer.SYMBOL && (token.Text == "{" || token.Text == "("):
			depth++
		case token.Kind == lexer.SYMBOL && (token.Text == "}" || token.Text == ")"):
			depth--
			// A top-level closing brace ends the statement, except when the
			// block continues with an else branch.
			if depth == 0 && token.Text == "}" && !followsElse(tokens, i+1) {
				fragment = append(fragment, token)
				flush()
				//
				continue
			}
		case token.Kind == lexer.SYMBOL && token.Text == ";" && depth == 0:
			flush()
			continue
		}
		//
		fragment = append(fragment, token)
	}
	//
	flush()
	//
	return fragments
}

func followsElse(tokens []lexer.Token, index int) bool {
	return index < len(tokens) &&
		tokens[index].Kind == lexer.KEYWORD && tokens[index].Text == "else"
}

// Parser provides a single-lookahead recursive-descent parser over a token
// stream, climbing the precedence ladder for expressions.
type Parser struct {
	srcfile *source.File
	tokens  []lexer.Token
	// Position within the tokens
	index int
}

// Done determines whether or not the parser has consumed all the available
// tokens.
func (p *Parser) Done() bool {
	return p.lookahead().Kind == lexer.END_OF
}

// ============================================================================
// Statements
// ============================================================================

func (p *Parser) parseProgram() (*ast.Program, []source.SyntaxError) {
	var statements []ast.Node
	//
	for !p.Done() {
		stmt, errs := p.parseDeclaration()
		if len(errs) != 0 {
			return &ast.Program{Statements: statements}, errs
		}
		//
		statements = append(statements, stmt)
	}
	//
	return &ast.Program{Statements: statements}, nil
}

func (p *Parser) parseDeclaration() (ast.Node, []source.SyntaxError) {
	switch {
	case p.match(lexer.KEYWORD, "class"):
		return p.parseClass()
	case p.match(lexer.KEYWORD, "func"):
		return p.parseFunction()
	case p.match(lexer.KEYWORD, "let"):
		return p.parseVarDecl(false)
	case p.match(lexer.KEYWORD, "const"):
		return p.parseVarDecl(true)
	}
	//
	return p.parseStatement()
}

func (p *Parser) parseVarDecl(isConst bool) (ast.Node, []source.SyntaxError) {
	if p.lookahead().Kind != lexer.TYPE {
		return nil, p.syntaxErrors(p.lookahead(), "expected type")
	}
	//
	typeName := p.accept().Text
	//
	name, errs := p.expect(lexer.IDENTIFIER, "")
	if len(errs) != 0 {
		return nil, p.syntaxErrors(name, "expected identifier")
	}
	//
	if _, errs := p.expect(lexer.SYMBOL, "="); len(errs) != 0 {
		return nil, errs
	}
	//
	value, isRef, errs := p.parseValue(typeName)
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if errs := p.endOfStatement(); len(errs) != 0 {
		return nil, errs
	}
	//
	return &ast.Declaration{
		Const:       isConst,
		Type:        typeName,
		Name:        name.Text,
		Value:       value,
		IsReference: isRef,
	}, nil
}

// parseValue parses the initialiser of a declaration, dispatching on the
// declared type: int and float take an arithmetic expression, bool takes a
// literal or a full boolean expression, and string takes a quoted literal or
// a bare identifier treated as a reference.
func (p *Parser) parseValue(typeName string) (ast.Node, bool, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch typeName {
	case "int", "float":
		expr, errs := p.parseAdditive()
		if len(errs) != 0 {
			return nil, false, errs
		}
		// A bare variable initialiser is a reference.
		if ref, ok := expr.(*ast.VariableRef); ok {
			return &ast.Literal{Type: typeName, Text: ref.Name, IsReference: true}, true, nil
		}
		//
		return expr, false, nil
	case "bool":
		// A lone literal short-circuits the expression grammar.
		if token.Kind == lexer.BOOLEAN && p.atStatementEnd(1) {
			p.accept()
			return &ast.Literal{Type: "bool", Text: token.Text}, false, nil
		}
		//
		expr, errs := p.parseExpression()
		//
		return expr, false, errs
	case "string":
		switch token.Kind {
		case lexer.STRING:
			p.accept()
			return &ast.Literal{Type: "string", Text: token.Text}, false, nil
		case lexer.IDENTIFIER:
			p.accept()
			return &ast.Literal{Type: "string", Text: token.Text, IsReference: true}, true, nil
		}
		//
		return nil, false, p.syntaxErrors(token, "expected string or variable")
	}
	//
	return nil, false, p.syntaxErrors(token, fmt.Sprintf("unknown type '%s'", typeName))
}

func (p *Parser) parseStatement() (ast.Node, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch {
	case p.match(lexer.KEYWORD, "return"):
		expr, errs := p.parseExpression()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		if errs := p.endOfStatement(); len(errs) != 0 {
			return nil, errs
		}
		//
		return &ast.Return{Expr: expr}, nil
	case p.match(lexer.KEYWORD, "if"):
		return p.parseIf()
	case token.Kind == lexer.IDENTIFIER && token.Text == "log" && p.follows(1, lexer.SYMBOL, "("):
		return p.parseLog()
	case token.Kind == lexer.IDENTIFIER && p.follows(1, lexer.SYMBOL, "="):
		return p.parseAssign()
	}
	// Bare expression statement
	expr, errs := p.parseExpression()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if errs := p.endOfStatement(); len(errs) != 0 {
		return nil, errs
	}
	//
	return expr, nil
}

// parseLog parses "log(x)" where the argument is a variable name or a
// literal.  Numeric literals are typed by the presence of a decimal
// separator.
func (p *Parser) parseLog() (ast.Node, []source.SyntaxError) {
	p.accept() // log
	//
	if _, errs := p.expect(lexer.SYMBOL, "("); len(errs) != 0 {
		return nil, errs
	}
	//
	var node *ast.Log
	//
	token := p.lookahead()
	//
	switch token.Kind {
	case lexer.IDENTIFIER:
		p.accept()
		node = &ast.Log{Variable: token.Text, IsVariable: true}
	case lexer.NUMBER:
		p.accept()
		node = &ast.Log{Value: numberLiteral(token.Text)}
	case lexer.STRING:
		p.accept()
		node = &ast.Log{Value: &ast.Literal{Type: "string", Text: token.Text}}
	case lexer.BOOLEAN:
		p.accept()
		node = &ast.Log{Value: &ast.Literal{Type: "bool", Text: token.Text}}
	default:
		return nil, p.syntaxErrors(token, "invalid value for log")
	}
	//
	if _, errs := p.expect(lexer.SYMBOL, ")"); len(errs) != 0 {
		return nil, errs
	}
	//
	if errs := p.endOfStatement(); len(errs) != 0 {
		return nil, errs
	}
	//
	return node, nil
}

// parseAssign parses "name = source" where the source is a variable name, a
// bare literal, or a boolean expression.
func (p *Parser) parseAssign() (ast.Node, []source.SyntaxError) {
	target := p.accept()
	p.accept() // =
	//
	var node *ast.Assignment
	//
	token := p.lookahead()
	//
	switch {
	case token.Kind == lexer.IDENTIFIER && p.atStatementEnd(1):
		p.accept()
		node = &ast.Assignment{Target: target.Text, Source: token.Text, IsReference: true}
	case (token.Kind == lexer.NUMBER || token.Kind == lexer.STRING) && p.atStatementEnd(1):
		p.accept()
		node = &ast.Assignment{Target: target.Text, Source: token.Text}
	case token.Kind == lexer.BOOLEAN && p.atStatementEnd(1):
		p.accept()
		node = &ast.Assignment{Target: target.Text, Source: token.Text}
	default:
		expr, errs := p.parseExpression()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		node = &ast.Assignment{Target: target.Text, Expr: expr}
	}
	//
	if errs := p.endOfStatement(); len(errs) != 0 {
		return nil, errs
	}
	//
	return node, nil
}

func (p *Parser) parseIf() (ast.Node, []source.SyntaxError) {
	if _, errs := p.expect(lexer.SYMBOL, "("); len(errs) != 0 {
		return nil, errs
	}
	//
	condition, errs := p.parseExpression()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if _, errs := p.expect(lexer.SYMBOL, ")"); len(errs) != 0 {
		return nil, errs
	}
	//
	thenBranch, errs := p.parseBlock()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	var elseBranch []ast.Node
	//
	if p.match(lexer.KEYWORD, "else") {
		if elseBranch, errs = p.parseBlock(); len(errs) != 0 {
			return nil, errs
		}
	}
	//
	return &ast.If{Condition: condition, Then: thenBranch, Else: elseBranch}, nil
}

func (p *Parser) parseFunction() (ast.Node, []source.SyntaxError) {
	name, errs := p.expect(lexer.IDENTIFIER, "")
	if len(errs) != 0 {
		return nil, p.syntaxErrors(name, "expected function name")
	}
	//
	if _, errs := p.expect(lexer.SYMBOL, "("); len(errs) != 0 {
		return nil, errs
	}
	//
	var params []string
	//
	if !p.match(lexer.SYMBOL, ")") {
		for {
			param, errs := p.expect(lexer.IDENTIFIER, "")
			if len(errs) != 0 {
				return nil, p.syntaxErrors(param, "expected parameter name")
			}
			//
			params = append(params, param.Text)
			//
			if !p.match(lexer.SYMBOL, ",") {
				break
			}
		}
		//
		if _, errs := p.expect(lexer.SYMBOL, ")"); len(errs) != 0 {
			return nil, errs
		}
	}
	//
	body, errs := p.parseBlock()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return &ast.Function{Name: name.Text, Params: params, Body: body}, nil
}

func (p *Parser) parseClass() (ast.Node, []source.SyntaxError) {
	name, errs := p.expect(lexer.IDENTIFIER, "")
	if len(errs) != 0 {
		return nil, p.syntaxErrors(name, "expected class name")
	}
	//
	if _, errs := p.expect(lexer.SYMBOL, "{"); len(errs) != 0 {
		return nil, errs
	}
	//
	var members []ast.Node
	//
	for !p.match(lexer.SYMBOL, "}") {
		if p.Done() {
			return nil, p.syntaxErrors(p.lookahead(), "expected '}'")
		}
		//
		member, errs := p.parseDeclaration()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		members = append(members, member)
	}
	//
	return &ast.Class{Name: name.Text, Members: members}, nil
}

// parseBlock parses "{ statement* }".
func (p *Parser) parseBlock() ([]ast.Node, []source.SyntaxError) {
	if _, errs := p.expect(lexer.SYMBOL, "{"); len(errs) != 0 {
		return nil, errs
	}
	//
	var statements []ast.Node
	//
	for !p.match(lexer.SYMBOL, "}") {
		if p.Done() {
			return nil, p.syntaxErrors(p.lookahead(), "expected '}'")
		}
		//
		stmt, errs := p.parseStatement()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		statements = append(statements, stmt)
	}
	//
	return statements, nil
}

// ============================================================================
// Expressions
// ============================================================================

// orOperators are the loosest-binding boolean connectives, folded into a
// single n-ary chain.
var orOperators = []string{"||", "!||", "xor", "nxor", "=>", "!=>"}

// andOperators bind tighter than the disjunctive connectives.
var andOperators = []string{"&&", "!&&"}

var equalityOperators = []string{"==", "!="}

var relationalOperators = []string{"<", ">", "<=", ">="}

// parseExpression parses at the loosest level: assignment.
func (p *Parser) parseExpression() (ast.Node, []source.SyntaxError) {
	expr, errs := p.parseOr()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	if p.match(lexer.SYMBOL, "=") {
		value, errs := p.parseExpression()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		if ref, ok := expr.(*ast.VariableRef); ok {
			return &ast.Assignment{Target: ref.Name, Expr: value}, nil
		}
		//
		return nil, p.syntaxErrors(p.lookahead(), "invalid assignment target")
	}
	//
	return expr, nil
}

func (p *Parser) parseOr() (ast.Node, []source.SyntaxError) {
	return p.parseBoolChain(orOperators, p.parseAnd)
}

func (p *Parser) parseAnd() (ast.Node, []source.SyntaxError) {
	return p.parseBoolChain(andOperators, p.parseEquality)
}

// parseBoolChain folds a run of same-level boolean connectives into a
// flattened n-ary chain, associating to the left.
func (p *Parser) parseBoolChain(operators []string,
	next func() (ast.Node, []source.SyntaxError)) (ast.Node, []source.SyntaxError) {
	first, errs := next()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	operands := []ast.Node{first}
	//
	var ops []string
	//
	for p.followsOneOf(lexer.BOOL_OP, operators) {
		ops = append(ops, p.accept().Text)
		//
		operand, errs := next()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		operands = append(operands, operand)
	}
	//
	if len(ops) == 0 {
		return first, nil
	}
	//
	return &ast.MultiOpBool{Operands: operands, Operators: ops}, nil
}

func (p *Parser) parseEquality() (ast.Node, []source.SyntaxError) {
	return p.parseBinaryChain(equalityOperators, p.parseRelational)
}

func (p *Parser) parseRelational() (ast.Node, []source.SyntaxError) {
	return p.parseBinaryChain(relationalOperators, p.parseAdditive)
}

// parseBinaryChain folds a run of same-level comparison operators into
// left-associative binary nodes.
func (p *Parser) parseBinaryChain(operators []string,
	next func() (ast.Node, []source.SyntaxError)) (ast.Node, []source.SyntaxError) {
	expr, errs := next()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	for p.followsOneOf(lexer.BOOL_OP, operators) {
		op := p.accept().Text
		//
		right, errs := next()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		expr = &ast.BinaryOp{Op: op, Left: expr, Right: right}
	}
	//
	return expr, nil
}

func (p *Parser) parseAdditive() (ast.Node, []source.SyntaxError) {
	return p.parseArithChain([]string{"+", "-"}, p.parseMultiplicative)
}

func (p *Parser) parseMultiplicative() (ast.Node, []source.SyntaxError) {
	return p.parseArithChain([]string{"*", "/", "%"}, p.parseUnary)
}

// parseArithChain folds a run of same-level arithmetic operators into a
// flattened n-ary chain, associating to the left.
func (p *Parser) parseArithChain(operators []string,
	next func() (ast.Node, []source.SyntaxError)) (ast.Node, []source.SyntaxError) {
	first, errs := next()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	operands := []ast.Node{first}
	//
	var ops []string
	//
	for p.followsOneOf(lexer.SYMBOL, operators) {
		ops = append(ops, p.accept().Text)
		//
		operand, errs := next()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		operands = append(operands, operand)
	}
	//
	if len(ops) == 0 {
		return first, nil
	}
	//
	return &ast.MultiOp{Operands: operands, Operators: ops}, nil
}

func (p *Parser) parseUnary() (ast.Node, []source.SyntaxError) {
	switch {
	case p.match(lexer.BOOL_OP, "!"):
		operand, errs := p.parseUnary()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return &ast.UnaryOp{Op: "!", Operand: operand}, nil
	case p.match(lexer.SYMBOL, "-"):
		operand, errs := p.parseUnary()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return &ast.UnaryOp{Op: "-", Operand: operand}, nil
	}
	//
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (ast.Node, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case lexer.SYMBOL:
		if p.match(lexer.SYMBOL, "(") {
			expr, errs := p.parseExpression()
			if len(errs) != 0 {
				return nil, errs
			}
			//
			if _, errs := p.expect(lexer.SYMBOL, ")"); len(errs) != 0 {
				return nil, errs
			}
			//
			return expr, nil
		}
	case lexer.NUMBER:
		p.accept()
		return numberLiteral(token.Text), nil
	case lexer.STRING:
		p.accept()
		return &ast.Literal{Type: "string", Text: token.Text}, nil
	case lexer.BOOLEAN:
		p.accept()
		return &ast.Literal{Type: "bool", Text: token.Text}, nil
	case lexer.IDENTIFIER:
		p.accept()
		// The sqrt call is recognised syntactically at the primary level.
		if token.Text == "sqrt" && p.match(lexer.SYMBOL, "(") {
			expr, errs := p.parseExpression()
			if len(errs) != 0 {
				return nil, errs
			}
			//
			if _, errs := p.expect(lexer.SYMBOL, ")"); len(errs) != 0 {
				return nil, errs
			}
			//
			return &ast.UnaryOp{Op: "sqrt", Operand: expr}, nil
		}
		//
		return &ast.VariableRef{Name: token.Text}, nil
	}
	//
	return nil, p.syntaxErrors(token, "expected number, variable, parenthesis or sqrt")
}

// numberLiteral types a numeric lexeme by the presence of a decimal
// separator.
func numberLiteral(text string) *ast.Literal {
	if strings.ContainsAny(text, ".,") {
		return &ast.Literal{Type: "float", Text: text}
	}
	//
	return &ast.Literal{Type: "int", Text: text}
}

// ============================================================================
// Helpers
// ============================================================================

// lookahead returns the current token.  This must exist because END_OF is
// always appended at the end of the token stream.
func (p *Parser) lookahead() lexer.Token {
	return p.tokens[p.index]
}

// peek returns the token n positions ahead, saturating at END_OF.
func (p *Parser) peek(n int) lexer.Token {
	if p.index+n < len(p.tokens) {
		return p.tokens[p.index+n]
	}
	//
	return p.tokens[len(p.tokens)-1]
}

// accept consumes and returns the current token.  The END_OF token is never
// consumed, so the parser idles there.
func (p *Parser) accept() lexer.Token {
	token := p.lookahead()
	//
	if token.Kind != lexer.END_OF {
		p.index++
	}
	//
	return token
}

// match consumes the current token if it has the given kind and (when
// non-empty) text.
func (p *Parser) match(kind uint, text string) bool {
	token := p.lookahead()
	//
	if token.Kind != kind || (text != "" && token.Text != text) {
		return false
	}
	//
	p.index++
	//
	return true
}

// follows checks whether the token n positions ahead has the given kind and
// text.
func (p *Parser) follows(n int, kind uint, text string) bool {
	token := p.peek(n)
	return token.Kind == kind && token.Text == text
}

// followsOneOf checks whether the current token has the given kind and one of
// the given texts.
func (p *Parser) followsOneOf(kind uint, texts []string) bool {
	token := p.lookahead()
	//
	if token.Kind != kind {
		return false
	}
	//
	for _, text := range texts {
		if token.Text == text {
			return true
		}
	}
	//
	return false
}

// atStatementEnd checks whether the token n positions ahead terminates a
// statement (a semicolon or the end of the stream).
func (p *Parser) atStatementEnd(n int) bool {
	token := p.peek(n)
	//
	return token.Kind == lexer.END_OF || (token.Kind == lexer.SYMBOL && token.Text == ";")
}

// endOfStatement consumes a statement terminator: either a semicolon or the
// end of the stream (fragments carry no trailing semicolon).
func (p *Parser) endOfStatement() []source.SyntaxError {
	if p.match(lexer.SYMBOL, ";") || p.Done() {
		return nil
	}
	//
	return p.syntaxErrors(p.lookahead(), "expected ';'")
}

// expect consumes the current token provided it has the given kind and (when
// non-empty) text, or fails with a positioned syntax error.
func (p *Parser) expect(kind uint, text string) (lexer.Token, []source.SyntaxError) {
	token := p.lookahead()
	//
	if token.Kind != kind || (text != "" && token.Text != text) {
		return token, p.syntaxErrors(token, fmt.Sprintf("unexpected token '%s'", token.Text))
	}
	//
	p.index++
	//
	return token, nil
}

func (p *Parser) syntaxErrors(token lexer.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
