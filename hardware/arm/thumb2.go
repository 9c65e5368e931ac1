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

package arm

import (
	"github.com/jetsetilly/corsim0/bitpattern"
	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/logger"
)

// decodeThumb2 returns the decode table for 32bit instructions. most groups
// of instruction are not specified and will halt the CPU
//
// "A5.3 32-bit Thumb instruction encoding" in "ARMv7-M Architecture Reference
// Manual". ARMv6-M only supports a small subset of the 32bit instructions
func (cpu *CPU) decodeThumb2() bitpattern.Table[uint32, int] {
	return bitpattern.Table[uint32, int]{
		Entries: []bitpattern.Entry[uint32, int]{
			// op1 == 0b01
			{Allow: "111 01 00**0**", Handler: cpu.unspecified32("load/store multiple")},
			{Allow: "111 01 00**1**", Handler: cpu.unspecified32("load/store dual or exclusive, table branch")},
			{Allow: "111 01 01*****", Handler: cpu.unspecified32("data processing (shifted register)")},
			{Allow: "111 01 1", Handler: cpu.unspecified32("coprocessor")},

			// op1 == 0b10
			{Allow: "111 10 *0***** **** 0", Handler: cpu.unspecified32("data processing (modified immediate)")},
			{Allow: "111 10 *1***** **** 0", Handler: cpu.unspecified32("data processing (plain binary immediate)")},
			{Allow: "111 10 ******* **** 1", Handler: cpu.thumb2BranchMisc},

			// op1 == 0b11
			{Allow: "111 11 000***0", Handler: cpu.unspecified32("store single data item")},
			{Allow: "111 11 00**001", Handler: cpu.unspecified32("load byte, memory hints")},
			{Allow: "111 11 00**011", Handler: cpu.thumb2LoadHalfword},
			{Allow: "111 11 00**101", Handler: cpu.unspecified32("load word")},
			{Allow: "111 11 00**111", Handler: cpu.unspecified32("undefined")},
			{Allow: "111 11 010", Handler: cpu.unspecified32("data processing (register)")},
			{Allow: "111 11 0110", Handler: cpu.unspecified32("multiply, multiply accumulate, absolute difference")},
			{Allow: "111 11 0111", Handler: cpu.unspecified32("long multiply, long multiply accumulate, divide")},
			{Allow: "111 11 001***0", Handler: cpu.unspecified32("undefined")},
			{Allow: "111 1", Handler: cpu.unspecified32("coprocessor")},
		},
		Terminal: func(_ uint32) int {
			return cpu.halt(curated.Errorf(DecodeBug, cpu.location()))
		},
	}
}

// thumb2BranchMisc dispatches the branch and miscellaneous control group on
// the op and op1 fields. the two fields are concatenated into a ten bit
// sub-opcode (op in bits 9 to 3 and op1 in bits 2 to 0)
//
// "A5.3.4 Branches and miscellaneous control" in "ARMv7-M Architecture
// Reference Manual"
func (cpu *CPU) thumb2BranchMisc(opcode uint32) int {
	_, sub, err := bitpattern.CaptureUpper(opcode, "111 10 aaaaaaa **** 1 bbb")
	if err != nil {
		return cpu.halt(curated.Errorf(DecodeBug, cpu.location()))
	}

	switch {
	case bitpattern.LowerMatch(sub, "******* 1*1"):
		return cpu.thumb2BranchWithLink(opcode)
	case bitpattern.LowerMatch(sub, "******* 0*1"):
		return cpu.thumb2Branch(opcode)
	case bitpattern.LowerMatch(sub, "1111111 010"):
		return cpu.unspecified("permanently undefined")
	case bitpattern.LowerMatch(sub, "011100* 0*0"):
		return cpu.unspecified("move to special register")
	case bitpattern.LowerMatch(sub, "0111010 0*0"):
		return cpu.thumb2Hint(opcode)
	case bitpattern.LowerMatch(sub, "0111011 0*0"):
		return cpu.unspecified("miscellaneous control")
	case bitpattern.LowerMatch(sub, "011111* 0*0"):
		return cpu.unspecified("move from special register")
	case bitpattern.LowerMatch(sub, "*111*** 0*0"):
		return cpu.unspecified("undefined branch or miscellaneous control")
	case bitpattern.LowerMatch(sub, "******* 0*0"):
		return cpu.unspecified("conditional branch")
	}

	// op1 is 1x0
	return cpu.unspecified("undefined branch or miscellaneous control")
}

// branchOffset returns the sign extended offset of the T4 encoding of B and
// the T1 encoding of BL. the two encodings share the same layout
func branchOffset(opcode uint32) (uint32, error) {
	f, err := bitpattern.Capture(opcode, "11110 s iiiiiiiiii __ j _ k aaaaaaaaaaa")
	if err != nil {
		return 0, err
	}

	s := f['s']
	i1 := ^(f['j'] ^ s) & 0x01
	i2 := ^(f['k'] ^ s) & 0x01

	imm32 := s<<24 | i1<<23 | i2<<22 | f['i']<<12 | f['a']<<1

	// sign extend from bit 24
	if s == 0x01 {
		imm32 |= 0xfe000000
	}

	return imm32, nil
}

// "A6.7.12 B" T4 encoding in "ARMv7-M Architecture Reference Manual"
func (cpu *CPU) thumb2Branch(opcode uint32) int {
	imm32, err := branchOffset(opcode)
	if err != nil {
		return cpu.halt(curated.Errorf(DecodeBug, cpu.location()))
	}

	cpu.state.PC += 4
	cpu.state.PC += imm32

	logger.Logf(cpu.trace, logTag, "b.w #%+d ; %08x", int32(imm32), cpu.state.PC)

	return 1
}

// "A6.7.13 BL" in "ARMv6-M Architecture Reference Manual"
func (cpu *CPU) thumb2BranchWithLink(opcode uint32) int {
	imm32, err := branchOffset(opcode)
	if err != nil {
		return cpu.halt(curated.Errorf(DecodeBug, cpu.location()))
	}

	cpu.state.PC += 4
	cpu.state.LR = cpu.state.PC | 0x01
	cpu.state.PC += imm32

	logger.Logf(cpu.trace, logTag, "bl #%+d ; %08x", int32(imm32), cpu.state.PC)

	return 1
}

// "A5.3.4 Branches and miscellaneous control" hint instructions. op1 (bits 10
// to 8) selects between the change processor state instruction and the hints.
// the hint is selected by op2 (bits 7 to 0)
func (cpu *CPU) thumb2Hint(opcode uint32) int {
	if opcode&0x0700 != 0x0000 {
		return cpu.unspecified("change processor state")
	}

	op2 := uint8(opcode)
	switch {
	case op2 == 0x00:
		return cpu.thumb2NOP(opcode)
	case op2 == 0x01:
		return cpu.unspecified("yield")
	case op2 == 0x02:
		return cpu.unspecified("wait for event")
	case op2 == 0x03:
		return cpu.unspecified("wait for interrupt")
	case op2 == 0x04:
		return cpu.unspecified("send event")
	case bitpattern.UpperMatch(op2, "1111"):
		return cpu.unspecified("debug hint")
	}

	return cpu.unpredictable("hint")
}

// "A5.3.8 Load halfword, memory hints" in "ARMv7-M Architecture Reference
// Manual". when the destination register is the PC the instruction is a
// memory hint. memory hints that are not allocated behave as a NOP
func (cpu *CPU) thumb2LoadHalfword(opcode uint32) int {
	f, err := bitpattern.Capture(opcode, "11111 00 aa 011 nnnn tttt bbbbbb ******")
	if err != nil {
		return cpu.halt(curated.Errorf(DecodeBug, cpu.location()))
	}

	if f['t'] == 0x0f {
		return cpu.thumb2NOP(opcode)
	}

	return cpu.unspecified("load halfword")
}

// "A6.7.47 NOP" T2 encoding in "ARMv7-M Architecture Reference Manual"
func (cpu *CPU) thumb2NOP(_ uint32) int {
	logger.Log(cpu.trace, logTag, "nop.w")
	cpu.state.PC += 4
	return 1
}
