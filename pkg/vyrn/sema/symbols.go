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
package sema

// Kind distinguishes mutable variables from constants.  A symbol's kind never
// changes after creation.
type Kind uint

// VARIABLE is a symbol declared with "let".
const VARIABLE Kind = 0

// CONSTANT is a symbol declared with "const".
const CONSTANT Kind = 1

// Symbol holds what is known about a declared name.
type Symbol struct {
	// Declared type of the symbol.
	Type string
	// Last known value text of the symbol.
	Value string
	// Indicates the symbol was initialised from another variable.
	IsReference bool
	// Whether the symbol is a variable or a constant.
	Kind Kind
}

// Table is a flat symbol table tracking every name declared within one
// compilation unit.  There is no scoping beyond the single table, and entries
// are never deleted.
type Table struct {
	symbols map[string]Symbol
}

// NewTable constructs an empty symbol table.
func NewTable() *Table {
	return &Table{make(map[string]Symbol)}
}

// Declare registers a new symbol.  When the name already exists, the original
// binding is kept (a symbol's kind never changes once created) and false is
// returned so the caller can raise a diagnostic; the table is never
// overwritten.
func (t *Table) Declare(name string, symbol Symbol) bool {
	if t.Exists(name) {
		return false
	}
	//
	t.symbols[name] = symbol
	//
	return true
}

// IsDeclared checks whether a given name is declared with the given
// constness.
func (t *Table) IsDeclared(name string, wantConst bool) bool {
	symbol, ok := t.symbols[name]
	if !ok {
		return false
	}
	//
	return (wantConst && symbol.Kind == CONSTANT) || (!wantConst && symbol.Kind == VARIABLE)
}

// Exists checks whether a given name is declared at all, regardless of
// constness.
func (t *Table) Exists(name string) bool {
	_, ok := t.symbols[name]
	return ok
}

// IsConst checks whether a given name is declared as a constant.
func (t *Table) IsConst(name string) bool {
	symbol, ok := t.symbols[name]
	//
	return ok && symbol.Kind == CONSTANT
}

// Lookup returns the symbol registered under a given name, if any.
func (t *Table) Lookup(name string) (Symbol, bool) {
	symbol, ok := t.symbols[name]
	return symbol, ok
}

// Update records a new value text against an existing name.  Constness is not
// checked here; that is the caller's responsibility.
func (t *Table) Update(name string, value string) {
	if symbol, ok := t.symbols[name]; ok {
		symbol.Value = value
		t.symbols[name] = symbol
	}
}

// Len returns the number of declared symbols.
func (t *Table) Len() int {
	return len(t.symbols)
}
