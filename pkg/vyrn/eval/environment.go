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
	"fmt"
)

// Binding couples a runtime value with its constness.
type Binding struct {
	Value Value
	Const bool
}

// Environment maps variable names onto their current bindings.  Unlike the
// compilation symbol table, redeclaration here is a hard fault rather than a
// warning.
type Environment struct {
	bindings map[string]Binding
}

// NewEnvironment constructs an empty environment.
func NewEnvironment() *Environment {
	return &Environment{bindings: make(map[string]Binding)}
}

// Lookup the value bound to a given name, or fail when the name is undefined.
func (e *Environment) Lookup(name string) (Value, error) {
	binding, ok := e.bindings[name]
	if !ok {
		return Value{}, fmt.Errorf("Variable not defined: %s", name)
	}
	//
	return binding.Value, nil
}

// Define a new binding.  Redeclaration is a hard fault.
func (e *Environment) Define(name string, value Value, isConst bool) error {
	if _, ok := e.bindings[name]; ok {
		return fmt.Errorf("Variable already declared: %s", name)
	}
	//
	e.bindings[name] = Binding{value, isConst}
	//
	return nil
}

// Assign a new value to an existing binding.  Undefined names and constants
// are both hard faults.
func (e *Environment) Assign(name string, value Value) error {
	binding, ok := e.bindings[name]
	//
	if !ok {
		return fmt.Errorf("Variable not defined: %s", name)
	} else if binding.Const {
		return fmt.Errorf("Cannot assign to constant variable: %s", name)
	}
	//
	e.bindings[name] = Binding{value, false}
	//
	return nil
}

// IsDefined checks whether a given name has a binding.
func (e *Environment) IsDefined(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// Len returns the number of bindings in this environment.
func (e *Environment) Len() int {
	return len(e.bindings)
}
