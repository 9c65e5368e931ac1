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

// Package bitpattern matches fixed width unsigned values against string
// patterns and extracts named fields from them. It allows the bit diagrams of
// an instruction set manual to be written as data:
//
//	bitpattern.UpperMatch(opcode, "01001")            // LDR (literal)
//	bitpattern.Capture(opcode, "01001 ttt iiiiiiii")  // fields t and i
//
// In a pattern, the characters 0 and 1 are literal bits and every other
// character is a wildcard. Spaces are ignored and can be used to group bits
// for readability. The | character is a group break and also contributes no
// bits to the pattern.
//
// UpperMatch() tests the pattern against the most significant bits of the
// value and LowerMatch() against the least significant bits. GuardedMatch()
// accepts lists of patterns separated by | and tests a value against an allow
// list and an exclude list.
//
// Capture() extracts fields from a value. The format must have exactly as many
// characters (not counting spaces) as the value has bits. Any character other
// than 0, 1, _ and | names a field. Each occurrence of a field character adds
// one bit to the field, most significant bit first.
//
// A Table is a prioritised list of guarded patterns, each with a handler. The
// first entry to match is the one used.
package bitpattern
