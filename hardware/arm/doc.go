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

// Package arm implements an ARMv6-M core, of the type found in the Cortex-M0.
//
// Instructions are decoded with the bitpattern package. The decode tables are
// ordered lists of bit patterns and the first matching pattern selects the
// handler for the instruction. The order of the tables is therefore
// significant.
//
// Only a small number of instructions are fully emulated:
//
//	LDR (literal), ADD (SP plus immediate), ADD/SUB (SP immediate), PUSH, B,
//	B.W, BL, BX and NOP (16bit and 32bit)
//
// All other instructions are decoded to a named group that is not specified.
// When the CPU encounters an instruction that is not specified the Execute()
// function returns zero cycles and the reason can be retrieved with the
// Fault() function. The CPU state is not changed in that case.
//
// Only the Thumb instruction set is supported. This means that the BX
// instruction ignores bit 0 of the target address rather than using it to
// select the instruction set.
//
// Instructions inside an IT block are only executed if the condition for the
// instruction passes. The IT instruction itself is not specified but the IT
// state can be set directly in the EPSR.
package arm
