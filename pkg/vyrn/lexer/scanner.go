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

// Scanner looks at a given sequence of characters, starting from the
// beginning, and attempts to consume one or more of them.  A return of zero
// means the scanner did not match.
type Scanner func(items []rune) uint

// Or combines zero or more scanners such that the resulting scanner succeeds
// if any of the scanners succeeds.  Observe, however, that there is an
// implicit left-to-right order of evaluation.
func Or(scanners ...Scanner) Scanner {
	return func(items []rune) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// And combines zero or more scanners such that the resulting scanner succeeds
// if all of the scanners succeed at the current position, consuming the
// longest match amongst them.
func And(scanners ...Scanner) Scanner {
	return func(items []rune) uint {
		n := uint(0)

		for _, scanner := range scanners {
			m := scanner(items)
			if m == 0 {
				// fail
				return 0
			}
			//
			n = max(n, m)
		}
		//
		return n
	}
}

// Unit accepts a given sequence of characters.  That is, for this scanner to
// match, it must match all the given characters (one after the other) in their
// given order.
func Unit(chars ...rune) Scanner {
	return func(items []rune) uint {
		if len(items) >= len(chars) {
			for i := 0; i < len(chars); i++ {
				if items[i] != chars[i] {
					// fail
					return 0
				}
			}
			// success
			return uint(len(chars))
		}
		// fail
		return 0
	}
}

// Within accepts any character within a given range.
func Within(lowest rune, highest rune) Scanner {
	return func(items []rune) uint {
		if len(items) != 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches zero or more of a given item.
func Many(acceptor Scanner) Scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if n := acceptor(items[index:]); n != 0 {
				index += n
				continue
			}
			//
			break
		}
		// done
		return index
	}
}

// Until matches everything up to (but excluding) a particular character, or
// the end of the input if that character never occurs.
func Until(item rune) Scanner {
	return func(items []rune) uint {
		index := uint(0)
		//
		for index < uint(len(items)) {
			if items[index] == item {
				break
			}
			// continue match
			index = index + 1
		}
		// done
		return index
	}
}

// SequenceNullableLast matches all the scanners in order, each consuming the
// input right after the previous one ends.  Only the final scanner is allowed
// a match length of zero.
func SequenceNullableLast(scanners ...Scanner) Scanner {
	return func(items []rune) uint {
		n, i := uint(0), 0
		for i = range scanners {
			if n == uint(len(items)) {
				break
			}

			m := scanners[i](items[n:])
			if m == 0 {
				break
			}

			n += m
		}

		if i < len(scanners)-1 { // if we ended prematurely
			return 0
		}

		return n
	}
}

// Quoted matches a string literal opened by a given delimiter and consumed
// verbatim until the matching close delimiter.  Escape sequences are not
// processed.  An unterminated literal consumes the remainder of the input.
func Quoted(delimiter rune) Scanner {
	return func(items []rune) uint {
		if len(items) == 0 || items[0] != delimiter {
			return 0
		}
		//
		for i := 1; i < len(items); i++ {
			if items[i] == delimiter {
				return uint(i + 1)
			}
		}
		// Unterminated, consume everything.
		return uint(len(items))
	}
}

// BlockComment matches a comment opened by "/*" and closed by "*/", possibly
// spanning multiple lines.  An unterminated comment consumes the remainder of
// the input.
func BlockComment() Scanner {
	return func(items []rune) uint {
		if len(items) < 2 || items[0] != '/' || items[1] != '*' {
			return 0
		}
		//
		for i := 2; i+1 < len(items); i++ {
			if items[i] == '*' && items[i+1] == '/' {
				return uint(i + 2)
			}
		}
		// Unterminated, consume everything.
		return uint(len(items))
	}
}

// Any matches any single character.  Used as the catch-all rule which makes
// the lexer total.
func Any() Scanner {
	return func(items []rune) uint {
		if len(items) != 0 {
			return 1
		}
		//
		return 0
	}
}
