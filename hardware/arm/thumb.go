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
	"math/bits"

	"github.com/jetsetilly/corsim0/bitpattern"
	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware/arm/status"
	"github.com/jetsetilly/corsim0/logger"
)

// decodeThumb returns the decode table for 16bit instructions. the table is
// ordered from the longest prefix to the shortest
//
// "A5.2 16-bit Thumb instruction encoding" in "ARMv6-M Architecture Reference
// Manual"
func (cpu *CPU) decodeThumb() bitpattern.Table[uint16, int] {
	return bitpattern.Table[uint16, int]{
		Entries: []bitpattern.Entry[uint16, int]{
			// 8bit groups
			{Allow: "11011110", Handler: cpu.unspecified16("permanently undefined")},
			{Allow: "11011111", Handler: cpu.unspecified16("supervisor call")},
			{Allow: "01000111", Handler: cpu.thumbBranchExchange},

			// 6bit groups
			{Allow: "000110", Handler: cpu.unspecified16("add/subtract register")},
			{Allow: "000111", Handler: cpu.unspecified16("add/subtract immediate")},
			{Allow: "010000", Handler: cpu.unspecified16("data processing")},
			{Allow: "010001", Handler: cpu.unspecified16("special data processing")},

			// 5bit groups
			{Allow: "01001", Handler: cpu.thumbLoadLiteral},
			{Allow: "01100", Handler: cpu.unspecified16("store word immediate offset")},
			{Allow: "01101", Handler: cpu.unspecified16("load word immediate offset")},
			{Allow: "01110", Handler: cpu.unspecified16("store byte immediate offset")},
			{Allow: "01111", Handler: cpu.unspecified16("load byte immediate offset")},
			{Allow: "10000", Handler: cpu.unspecified16("store halfword immediate offset")},
			{Allow: "10001", Handler: cpu.unspecified16("load halfword immediate offset")},
			{Allow: "10010", Handler: cpu.unspecified16("store to stack")},
			{Allow: "10011", Handler: cpu.unspecified16("load from stack")},
			{Allow: "10100", Handler: cpu.unspecified16("add to pc")},
			{Allow: "10101", Handler: cpu.thumbAddSPImmediate},
			{Allow: "11000", Handler: cpu.unspecified16("store multiple")},
			{Allow: "11001", Handler: cpu.unspecified16("load multiple")},
			{Allow: "11100", Handler: cpu.thumbBranch},

			// 4bit groups
			{Allow: "0101", Handler: cpu.unspecified16("load/store register offset")},
			{Allow: "1011", Handler: cpu.thumbMisc},
			{Allow: "1101", Handler: cpu.unspecified16("conditional branch")},

			// 3bit groups
			{Allow: "000", Handler: cpu.unspecified16("shift by immediate, move register")},
			{Allow: "001", Handler: cpu.unspecified16("add/subtract/compare/move immediate")},
		},
		Terminal: func(_ uint16) int {
			return cpu.halt(curated.Errorf(DecodeError, cpu.location()))
		},
	}
}

// "A6.7.27 LDR (literal)" in "ARMv6-M Architecture Reference Manual"
func (cpu *CPU) thumbLoadLiteral(opcode uint16) int {
	rt := int(opcode>>8) & 0x07
	imm32 := uint32(opcode&0xff) << 2
	addr := (cpu.state.PC & 0xfffffffc) + imm32

	logger.Logf(cpu.trace, logTag, "ldr r%d, [pc, #%d] ; %08x", rt, imm32, addr)

	v, err := cpu.bus.Read32(addr)
	if err != nil {
		return cpu.halt(curated.Errorf(BusFault, err))
	}

	return cpu.loadRegister(rt, v)
}

// loadRegister completes a load into register rt. a load into the PC is a
// jump and a load into the LR replaces the active stack pointer
func (cpu *CPU) loadRegister(rt int, v uint32) int {
	switch rt {
	case rPC:
		if v&0x03 != 0 {
			return cpu.unpredictable("unaligned jump")
		}
		cpu.state.PC = v
	case rLR:
		cpu.state.SetSP(v)
		cpu.state.PC += 2
	default:
		cpu.state.Set(rt, v)
		cpu.state.PC += 2
	}
	return 1
}

// "A6.7.3 ADD (SP plus immediate)" T1 encoding in "ARMv6-M Architecture
// Reference Manual"
func (cpu *CPU) thumbAddSPImmediate(opcode uint16) int {
	rd := int(opcode>>8) & 0x07
	imm32 := uint32(opcode&0xff) << 2

	logger.Logf(cpu.trace, logTag, "add r%d, sp, #%d", rd, imm32)

	r := status.AddWithCarry(cpu.state.SP(), imm32, 0)
	cpu.state.R[rd] = r.Result
	cpu.state.APSR = r.APSR()
	cpu.state.PC += 2
	return 1
}

// "A6.7.12 B" T2 encoding in "ARMv6-M Architecture Reference Manual"
func (cpu *CPU) thumbBranch(opcode uint16) int {
	imm32 := uint32(opcode&0x07ff) << 1

	// sign extend
	if imm32&0x800 == 0x800 {
		imm32 |= 0xfffff000
	}

	cpu.state.PC += 2
	cpu.state.PC += imm32

	logger.Logf(cpu.trace, logTag, "b #%+d ; %08x", int32(imm32), cpu.state.PC)

	return 1
}

// "A6.7.18 BX" in "ARMv6-M Architecture Reference Manual". the BLX form of the
// instruction shares the same prefix and is distinguished by bit 7
func (cpu *CPU) thumbBranchExchange(opcode uint16) int {
	if opcode&0x0080 == 0x0080 {
		return cpu.unspecified("branch with link and exchange")
	}

	rm := int(opcode>>3) & 0x0f

	cpu.state.PC += 2
	if rm == rPC {
		logger.Log(cpu.trace, logTag, "bx pc ; ignored")
		return 1
	}

	// only the thumb instruction set is supported so bit 0 of the target
	// address is ignored rather than being used to select the instruction set
	cpu.state.PC = cpu.state.Get(rm) & 0xfffffffe

	logger.Logf(cpu.trace, logTag, "bx r%d ; %08x", rm, cpu.state.PC)

	return 1
}

// thumbMisc dispatches the miscellaneous 16bit instructions
//
// "A5.2.5 Miscellaneous 16-bit instructions" in "ARMv6-M Architecture
// Reference Manual"
func (cpu *CPU) thumbMisc(opcode uint16) int {
	return cpu.misc.Dispatch(opcode)
}

func (cpu *CPU) decodeThumbMisc() bitpattern.Table[uint16, int] {
	return bitpattern.Table[uint16, int]{
		Entries: []bitpattern.Entry[uint16, int]{
			{Allow: "1011 0000", Handler: cpu.thumbAdjustSP},
			{Allow: "1011 0010", Handler: cpu.unspecified16("sign/zero extend")},
			{Allow: "1011 0001|1011 0011", Handler: cpu.unspecified16("compare and branch on zero")},
			{Allow: "1011 1001|1011 1011", Handler: cpu.unspecified16("compare and branch on non-zero")},
			{Allow: "1011 010", Handler: cpu.thumbPush},
			{Allow: "1011 110", Handler: cpu.unspecified16("pop")},
			{Allow: "1011 1110", Handler: cpu.unspecified16("breakpoint")},
			{Allow: "1011 1111 **** 0000", Handler: cpu.thumbHint},
			{Allow: "1011 1111", Handler: cpu.unspecified16("if-then")},
			{Allow: "1011 0110", Handler: cpu.unspecified16("change processor state")},
		},
		Terminal: func(_ uint16) int {
			return cpu.unpredictable("miscellaneous instruction")
		},
	}
}

// "A6.7.4 ADD (SP plus immediate)" T2 encoding and "A6.7.66 SUB (SP minus
// immediate)" in "ARMv6-M Architecture Reference Manual"
func (cpu *CPU) thumbAdjustSP(opcode uint16) int {
	imm32 := uint32(opcode&0x7f) << 2

	var r status.Flags
	if opcode&0x80 == 0x80 {
		logger.Logf(cpu.trace, logTag, "sub sp, sp, #%d", imm32)
		r = status.AddWithCarry(cpu.state.SP(), ^imm32, 1)
	} else {
		logger.Logf(cpu.trace, logTag, "add sp, sp, #%d", imm32)
		r = status.AddWithCarry(cpu.state.SP(), imm32, 0)
	}

	cpu.state.SetSP(r.Result)
	cpu.state.APSR = r.APSR()
	cpu.state.PC += 2
	return 1
}

// "A6.7.50 PUSH" in "ARMv6-M Architecture Reference Manual"
//
// the M bit (bit 8) selects the LR for pushing. it is not part of the
// register list and is not supported
func (cpu *CPU) thumbPush(opcode uint16) int {
	regList := uint8(opcode & 0xff)
	if regList == 0 {
		return cpu.unpredictable("empty register list")
	}

	count := uint32(bits.OnesCount8(regList))

	addr := cpu.state.SP() - 4*count
	cpu.state.SetSP(addr)

	for i := 0; i <= 7; i++ {
		if regList&(1<<i) != 0 {
			logger.Logf(cpu.trace, logTag, "push r%d to %08x", i, addr)
			cpu.bus.Write32(addr, cpu.state.R[i])
			addr += 4
		}
	}

	cpu.state.PC += 2
	return 1
}

// "A5.2.5 Miscellaneous 16-bit instructions" hint sub-table
func (cpu *CPU) thumbHint(opcode uint16) int {
	return cpu.hints.Dispatch(opcode)
}

func (cpu *CPU) decodeThumbHints() bitpattern.Table[uint16, int] {
	return bitpattern.Table[uint16, int]{
		Entries: []bitpattern.Entry[uint16, int]{
			{Allow: "1011 1111 0000 0000", Handler: cpu.thumbNOP},
			{Allow: "1011 1111 0001 0000", Handler: cpu.unspecified16("yield")},
			{Allow: "1011 1111 0010 0000", Handler: cpu.unspecified16("wait for event")},
			{Allow: "1011 1111 0011 0000", Handler: cpu.unspecified16("wait for interrupt")},
			{Allow: "1011 1111 0100 0000", Handler: cpu.unspecified16("send event")},
			{Allow: "1011 1111 1111 0000", Handler: cpu.unspecified16("debug hint")},
		},
		Terminal: func(_ uint16) int {
			return cpu.unpredictable("hint")
		},
	}
}

// "A6.7.47 NOP" in "ARMv6-M Architecture Reference Manual"
func (cpu *CPU) thumbNOP(_ uint16) int {
	logger.Log(cpu.trace, logTag, "nop")
	cpu.state.PC += 2
	return 1
}
