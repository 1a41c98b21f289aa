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
package lexer

import (
	"github.com/vyrn-lang/vyrnc/pkg/util/source"
)

// END_OF signals "end of file".
const END_OF uint = 0

// WHITESPACE signals whitespace.
const WHITESPACE uint = 1

// LINE_COMMENT signals a "//" comment running to the end of the line.
const LINE_COMMENT uint = 2

// BLOCK_COMMENT signals a "/* ... */" comment, possibly spanning lines.
const BLOCK_COMMENT uint = 3

// IDENTIFIER signals an identifier (variable name, function name, etc).
const IDENTIFIER uint = 4

// KEYWORD signals a reserved keyword.
const KEYWORD uint = 5

// TYPE signals a primitive type name.
const TYPE uint = 6

// NUMBER signals a number (integer or floating point).
const NUMBER uint = 7

// STRING signals a string literal.
const STRING uint = 8

// BOOLEAN signals a boolean literal (true or false).
const BOOLEAN uint = 9

// BOOL_OP signals a boolean or comparison operator.
const BOOL_OP uint = 10

// SYMBOL signals a punctuation symbol or non-boolean operator.
const SYMBOL uint = 11

// UNKNOWN signals an unknown or invalid character.
const UNKNOWN uint = 12

// kindNames maps token kinds onto printable names.
var kindNames = []string{
	"EndOfFile", "Whitespace", "LineComment", "BlockComment", "Identifier",
	"Keyword", "Type", "Number", "String", "Boolean", "BooleanOperator",
	"Symbol", "Unknown",
}

// KindName returns a printable name for a given token kind.
func KindName(kind uint) string {
	if kind < uint(len(kindNames)) {
		return kindNames[kind]
	}
	//
	return "Invalid"
}

// Token associates a classified piece of the source text with the position at
// which it starts.  Line and column numbers count from 1.  For string tokens,
// the text excludes the enclosing quotes.
type Token struct {
	Kind   uint
	Text   string
	Span   source.Span
	Line   int
	Column int
}

// keywords is the set of reserved keywords.
var keywords = map[string]bool{
	"let":    true,
	"const":  true,
	"func":   true,
	"class":  true,
	"if":     true,
	"else":   true,
	"return": true,
}

// types is the set of supported primitive type names.
var types = map[string]bool{
	"int":    true,
	"float":  true,
	"bool":   true,
	"string": true,
}

// wordOperators is the set of boolean operators spelled as words.
var wordOperators = map[string]bool{
	"xor":  true,
	"nxor": true,
}

// LexRule associates a scanner with the token kind it produces.
type LexRule struct {
	scanner Scanner
	kind    uint
}

// Rule constructs a new lexing rule mapping matched characters to a kind.
func Rule(scanner Scanner, kind uint) LexRule {
	return LexRule{scanner, kind}
}

var whitespace = Many(Or(Unit(' '), Unit('\t'), Unit('\r'), Unit('\n')))

var digit = Within('0', '9')

// Numbers are a maximal run of digits and separator characters beginning with
// a digit.  Separator well-formedness is deliberately not validated here; that
// burden falls on whoever consumes the token.
var number = And(digit, Many(Or(digit, Unit('.'), Unit(','))))

var wordStart = Or(
	Unit('_'),
	Within('a', 'z'),
	Within('A', 'Z'))

var wordRest = Many(Or(
	Unit('_'),
	Within('0', '9'),
	Within('a', 'z'),
	Within('A', 'Z')))

var word = And(wordStart, wordRest)

// Lexing rules, tried in order at each position.  The order is load-bearing:
// three-character operators must be attempted before their two-character
// prefixes, which in turn precede single characters, and comment rules must
// precede the bare '/' symbol.
var rules = []LexRule{
	Rule(whitespace, WHITESPACE),
	Rule(SequenceNullableLast(Unit('/', '/'), Until('\n')), LINE_COMMENT),
	Rule(BlockComment(), BLOCK_COMMENT),
	Rule(Or(Unit('!', '&', '&'), Unit('!', '|', '|'), Unit('!', '=', '>')), BOOL_OP),
	Rule(Or(
		Unit('&', '&'),
		Unit('|', '|'),
		Unit('=', '='),
		Unit('!', '='),
		Unit('<', '='),
		Unit('>', '='),
		Unit('=', '>')), BOOL_OP),
	Rule(word, IDENTIFIER),
	Rule(Quoted('"'), STRING),
	Rule(number, NUMBER),
	Rule(Or(Unit('<'), Unit('>'), Unit('!')), BOOL_OP),
	Rule(Or(
		Unit('('), Unit(')'), Unit('{'), Unit('}'),
		Unit(','), Unit(';'), Unit(':'), Unit('.'),
		Unit('='), Unit('+'), Unit('-'), Unit('*'), Unit('/'), Unit('%')), SYMBOL),
	Rule(Any(), UNKNOWN),
}

// Lexer tokenises a given source file into a stream of classified,
// position-tagged tokens.  The lexer is total: unrecognised characters become
// UNKNOWN tokens rather than errors, and once the end of the input is reached
// it keeps returning END_OF tokens.
type Lexer struct {
	srcfile *source.File
	index   int
	line    int
	column  int
}

// NewLexer constructs a new lexer over the given source file.
func NewLexer(srcfile *source.File) *Lexer {
	return &Lexer{srcfile, 0, 1, 1}
}

// SourceFile returns the source file being tokenised.
func (p *Lexer) SourceFile() *source.File {
	return p.srcfile
}

// Next returns the next token, skipping whitespace and comments.  At the end
// of the input it returns an END_OF token, and keeps doing so if called again.
func (p *Lexer) Next() Token {
	items := p.srcfile.Contents()
	//
	for p.index < len(items) {
		kind, n := p.scan(items[p.index:])
		//
		span := source.NewSpan(p.index, p.index+int(n))
		line, column := p.line, p.column
		p.advance(items, int(n))
		// Whitespace and comments never surface as tokens.
		if kind == WHITESPACE || kind == LINE_COMMENT || kind == BLOCK_COMMENT {
			continue
		}
		//
		return p.tokenise(kind, span, line, column)
	}
	//
	return Token{END_OF, "", source.NewSpan(len(items), len(items)), p.line, p.column}
}

// Collect tokenises the entire input in one go, producing an array of tokens
// terminated by a single END_OF token.
func (p *Lexer) Collect() []Token {
	var tokens []Token
	//
	for {
		token := p.Next()
		tokens = append(tokens, token)
		//
		if token.Kind == END_OF {
			return tokens
		}
	}
}

// scan applies the lexing rules in order at the current position.  The
// catch-all rule guarantees a match for any non-empty input.
func (p *Lexer) scan(items []rune) (uint, uint) {
	for _, r := range rules {
		if n := r.scanner(items); n > 0 {
			return r.kind, n
		}
	}
	// Unreachable given the catch-all rule.
	panic("no applicable lexing rule")
}

// advance consumes n characters, updating line and column tracking across any
// embedded newlines (e.g. within block comments).
func (p *Lexer) advance(items []rune, n int) {
	for i := 0; i < n; i++ {
		if items[p.index+i] == '\n' {
			p.line++
			p.column = 1
		} else {
			p.column++
		}
	}
	//
	p.index += n
}

// tokenise builds the token for a scanned span, reclassifying words against
// the keyword, type, literal and word-operator sets, and stripping the quotes
// from string literals.
func (p *Lexer) tokenise(kind uint, span source.Span, line int, column int) Token {
	text := p.srcfile.Text(span)
	//
	switch kind {
	case IDENTIFIER:
		switch {
		case keywords[text]:
			kind = KEYWORD
		case types[text]:
			kind = TYPE
		case text == "true" || text == "false":
			kind = BOOLEAN
		case wordOperators[text]:
			kind = BOOL_OP
		}
	case STRING:
		text = stripQuotes(text)
	}
	//
	return Token{kind, text, span, line, column}
}

// stripQuotes removes the opening quote and, when present, the closing quote
// of a string lexeme.  Unterminated strings have no closing quote to remove.
func stripQuotes(text string) string {
	runes := []rune(text)
	//
	if len(runes) >= 2 && runes[len(runes)-1] == '"' {
		return string(runes[1 : len(runes)-1])
	}
	//
	return string(runes[1:])
}
