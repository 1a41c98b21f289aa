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
package source

import (
	"testing"
)

func TestLocation_00(t *testing.T) {
	checkLocation(t, "abc", 0, 1, 1)
}

func TestLocation_01(t *testing.T) {
	checkLocation(t, "abc", 2, 1, 3)
}

func TestLocation_02(t *testing.T) {
	checkLocation(t, "a\nbc", 2, 2, 1)
}

func TestLocation_03(t *testing.T) {
	checkLocation(t, "a\nbc", 3, 2, 2)
}

func TestLocation_04(t *testing.T) {
	// Beyond the end reports one past the final character.
	checkLocation(t, "ab", 5, 1, 3)
}

func TestSyntaxError(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("let x\nlet y"))
	err := srcfile.SyntaxError(NewSpan(6, 9), "oops")
	//
	if err.Error() != "2:1:oops" {
		t.Errorf("got %q, expected \"2:1:oops\"", err.Error())
	}
	//
	if line := err.FirstEnclosingLine(); line.String() != "let y" || line.Number() != 2 {
		t.Errorf("got line %d %q", line.Number(), line.String())
	}
}

func TestText(t *testing.T) {
	srcfile := NewSourceFile("test", []byte("hello world"))
	//
	if text := srcfile.Text(NewSpan(6, 11)); text != "world" {
		t.Errorf("got %q, expected \"world\"", text)
	}
}

// ==================================================================
// Framework
// ==================================================================

func checkLocation(t *testing.T, input string, index int, line int, column int) {
	t.Helper()
	//
	srcfile := NewSourceFile("test", []byte(input))
	//
	l, c := srcfile.Location(index)
	if l != line || c != column {
		t.Errorf("index %d: got %d:%d, expected %d:%d", index, l, c, line, column)
	}
}
