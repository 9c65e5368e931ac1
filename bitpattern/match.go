// This file is part of corsim0.
//
// corsim0 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// corsim0 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with corsim0.  If not, see <https://www.gnu.org/licenses/>.

package bitpattern

import (
	"math/bits"
	"strings"
)

// Coded is the set of types that can be matched against a pattern.
type Coded interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bits in the Coded type T.
func Width[T Coded]() int {
	var v T
	return bits.Len64(uint64(^v))
}

// accumulate the code and mask of a pattern. the pattern should have already
// been stripped of spaces. the length is the number of literal and wildcard
// characters.
//
// the | character is a group break. the bit following a group break is not
// shifted and so shares its position with the bit before the break. patterns
// given to GuardedMatch() are split on the | character before they reach
// this function.
func accumulate(pattern string) (code uint64, mask uint64, length int) {
	var shift bool
	for _, c := range pattern {
		if c == '|' {
			shift = false
			continue
		}

		if shift {
			code <<= 1
			mask <<= 1
		}
		shift = true
		length++

		switch c {
		case '0':
			mask |= 1
		case '1':
			code |= 1
			mask |= 1
		}
	}

	return code, mask, length
}

// UpperMatch returns true if the most significant bits of the value match the
// pattern. An empty pattern never matches. A pattern with more bits than the
// value never matches.
func UpperMatch[T Coded](value T, pattern string) bool {
	pattern = strings.ReplaceAll(pattern, " ", "")
	if pattern == "" {
		return false
	}

	code, mask, length := accumulate(pattern)

	w := Width[T]()
	if length > w {
		return false
	}

	code <<= w - length
	mask <<= w - length

	return uint64(value)&mask == code
}

// LowerMatch returns true if the least significant bits of the value match the
// pattern. An empty pattern never matches.
func LowerMatch[T Coded](value T, pattern string) bool {
	pattern = strings.ReplaceAll(pattern, " ", "")
	if pattern == "" {
		return false
	}

	code, mask, _ := accumulate(pattern)

	return uint64(value)&mask == code
}

// GuardedMatch returns true if any of the allow patterns match the value and
// none of the exclude patterns match. Patterns in each list are separated by
// the | character. Exclude patterns are tested first.
//
// An empty exclude list never excludes a value because an empty pattern never
// matches.
func GuardedMatch[T Coded](value T, allow string, exclude string) bool {
	for _, ex := range strings.Split(exclude, "|") {
		if UpperMatch(value, ex) {
			return false
		}
	}
	for _, al := range strings.Split(allow, "|") {
		if UpperMatch(value, al) {
			return true
		}
	}
	return false
}
