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

package status

// Condition is a 4bit condition code as used by conditional branches and IT
// blocks.
type Condition uint8

// List of condition codes. The value 0b1111 is not a valid condition.
const (
	EQ Condition = iota
	NE
	CS
	CC
	MI
	PL
	VS
	VC
	HI
	LS
	GE
	LT
	GT
	LE
	AL
	Undefined
)

var mnemonics = [...]string{"eq", "ne", "cs", "cc", "mi", "pl", "vs", "vc", "hi", "ls", "ge", "lt", "gt", "le", "al"}

// String returns the mnemonic suffix for the condition.
func (cond Condition) String() string {
	if int(cond&0x0f) < len(mnemonics) {
		return mnemonics[cond&0x0f]
	}
	return "*undefined*"
}

// Condition returns true if the flags pass the condition. Only the lower four
// bits of the condition are used. The undefined condition is never passed.
//
// Conditional execution information from "A6.3 Conditional execution" in
// "ARMv6-M Architecture Reference Manual".
func (f Flags) Condition(cond Condition) bool {
	switch cond & 0x0f {
	case EQ:
		return f.Zero
	case NE:
		return !f.Zero
	case CS:
		return f.Carry
	case CC:
		return !f.Carry
	case MI:
		return f.Negative
	case PL:
		return !f.Negative
	case VS:
		return f.Overflow
	case VC:
		return !f.Overflow
	case HI:
		// unsigned higher
		return f.Carry && !f.Zero
	case LS:
		// unsigned lower or same
		return !f.Carry || f.Zero
	case GE:
		return f.Negative == f.Overflow
	case LT:
		return f.Negative != f.Overflow
	case GT:
		return !f.Zero && f.Negative == f.Overflow
	case LE:
		return f.Zero || f.Negative != f.Overflow
	case AL:
		return true
	}
	return false
}
