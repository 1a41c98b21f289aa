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
	"strconv"
)

// INT is the type of integer values.
const INT uint = 0

// FLOAT is the type of floating-point values.
const FLOAT uint = 1

// BOOL is the type of boolean values.
const BOOL uint = 2

// STRING is the type of string values.
const STRING uint = 3

// Value is a tagged runtime value.  Exactly one of the payload fields is
// meaningful, as selected by the type tag.
type Value struct {
	Type  uint
	Int   int64
	Float float64
	Bool  bool
	Str   string
}

// IntValue constructs an integer value.
func IntValue(value int64) Value {
	return Value{Type: INT, Int: value}
}

// FloatValue constructs a floating-point value.
func FloatValue(value float64) Value {
	return Value{Type: FLOAT, Float: value}
}

// BoolValue constructs a boolean value.
func BoolValue(value bool) Value {
	return Value{Type: BOOL, Bool: value}
}

// StringValue constructs a string value.
func StringValue(value string) Value {
	return Value{Type: STRING, Str: value}
}

// String renders this value for display.  Booleans print as words and floats
// print at full precision.
func (v Value) String() string {
	switch v.Type {
	case INT:
		return strconv.FormatInt(v.Int, 10)
	case FLOAT:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case BOOL:
		return strconv.FormatBool(v.Bool)
	}
	//
	return v.Str
}

// ParseLiteral probes a literal lexeme in a fixed order: the boolean words
// first, then a fully-consuming integer, then a fully-consuming float, and
// anything left over is a string.  Observe that a float written with a comma
// separator fails the float probe and lands on the string arm.
func ParseLiteral(text string) Value {
	switch text {
	case "true":
		return BoolValue(true)
	case "false":
		return BoolValue(false)
	}
	//
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return IntValue(value)
	}
	//
	if value, err := strconv.ParseFloat(text, 64); err == nil {
		return FloatValue(value)
	}
	//
	return StringValue(text)
}
