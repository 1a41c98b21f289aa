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

import (
	"testing"
)

func TestTable_00(t *testing.T) {
	table := NewTable()
	//
	if !table.Declare("x", Symbol{Type: "int", Value: "1", Kind: VARIABLE}) {
		t.Fatal("first declaration must succeed")
	}
	//
	if !table.Exists("x") || table.IsConst("x") {
		t.Error("x should be a declared variable")
	}
}

func TestTable_01(t *testing.T) {
	// Redeclaration keeps the original binding.
	table := NewTable()
	table.Declare("x", Symbol{Type: "int", Value: "1", Kind: VARIABLE})
	//
	if table.Declare("x", Symbol{Type: "float", Value: "2", Kind: CONSTANT}) {
		t.Fatal("redeclaration must fail")
	}
	//
	symbol, _ := table.Lookup("x")
	if symbol.Type != "int" || symbol.Kind != VARIABLE {
		t.Error("original binding must survive redeclaration")
	}
}

func TestTable_02(t *testing.T) {
	// IsDeclared matches on constness.
	table := NewTable()
	table.Declare("c", Symbol{Type: "int", Value: "1", Kind: CONSTANT})
	//
	if table.IsDeclared("c", false) {
		t.Error("constant should not answer as a variable")
	}
	//
	if !table.IsDeclared("c", true) {
		t.Error("constant should answer as a constant")
	}
}

func TestTable_03(t *testing.T) {
	table := NewTable()
	table.Declare("x", Symbol{Type: "int", Value: "1", Kind: VARIABLE})
	table.Update("x", "2")
	//
	symbol, ok := table.Lookup("x")
	if !ok || symbol.Value != "2" {
		t.Errorf("got %v, expected updated value", symbol)
	}
}

func TestTable_04(t *testing.T) {
	table := NewTable()
	//
	if table.Exists("missing") || table.IsConst("missing") {
		t.Error("missing names must not answer")
	}
	//
	if _, ok := table.Lookup("missing"); ok {
		t.Error("lookup of missing name must fail")
	}
}
