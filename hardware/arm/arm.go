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
	"fmt"

	"github.com/jetsetilly/corsim0/bitpattern"
	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware/arm/architecture"
	"github.com/jetsetilly/corsim0/hardware/arm/status"
	"github.com/jetsetilly/corsim0/logger"
)

// the tag used for all log entries made by the CPU
const logTag = "ARMv6-M"

// Sentinel error patterns returned by the Fault() and Reset() functions.
const (
	Unspecified   = "arm: %s is not specified (%s)"
	Unpredictable = "arm: unpredictable %s (%s)"
	DecodeError   = "arm: undefined instruction (%s)"
	DecodeBug     = "arm: decode tree has no entry (%s)"
	BusFault      = "arm: bus: %v"
	ResetFault    = "arm: reset: %v"
)

// Bus is the interface to the memory system required by the CPU.
// memory.SystemMap satisfies the interface.
type Bus interface {
	Read8(address uint32) (uint8, error)
	Read16(address uint32) (uint16, error)
	Read32(address uint32) (uint32, error)
	Write8(address uint32, value uint8)
	Write16(address uint32, value uint16)
	Write32(address uint32, value uint32)
}

// Snapshot is a copy of the CPU state as returned by the Dump() function.
type Snapshot struct {
	Registers

	// number of cycles since the last reset
	Cycles uint64
}

// CPU is the ARMv6-M core.
type CPU struct {
	mmap architecture.Map
	bus  Bus

	state  Registers
	cycles uint64

	// the opcode being executed and the address it was fetched from
	opcode        uint32
	is32bit       bool
	instructionPC uint32

	// the reason the most recent call to Execute() returned zero
	fault error

	// permission for the instruction trace
	trace logger.Permission

	thumb16 bitpattern.Table[uint16, int]
	thumb32 bitpattern.Table[uint32, int]
	misc    bitpattern.Table[uint16, int]
	hints   bitpattern.Table[uint16, int]
}

// NewCPU is the preferred method of initialisation for the CPU type. The trace
// argument controls the instruction trace. It can be nil in which case there
// is no trace.
//
// The CPU should be reset with Reset() before the first call to Execute().
func NewCPU(mmap architecture.Map, bus Bus, trace logger.Permission) *CPU {
	if trace == nil {
		trace = logger.Deny
	}

	cpu := &CPU{
		mmap:  mmap,
		bus:   bus,
		trace: trace,
	}
	cpu.thumb16 = cpu.decodeThumb()
	cpu.misc = cpu.decodeThumbMisc()
	cpu.hints = cpu.decodeThumbHints()
	cpu.thumb32 = cpu.decodeThumb2()
	cpu.resetRegisters()

	return cpu
}

func (cpu *CPU) String() string {
	return fmt.Sprintf("%s PC: %08x SP: %08x", cpu.mmap.ARMArchitecture, cpu.state.PC, cpu.state.SP())
}

func (cpu *CPU) resetRegisters() {
	cpu.state = Registers{
		CPUID: cpu.mmap.CPUID,
		CCR:   cpu.mmap.CCR,
	}
	cpu.cycles = 0
	cpu.fault = nil
}

// Reset the CPU. All registers are set to their reset values before the
// stack pointer and program counter are loaded from the vector table.
func (cpu *CPU) Reset() error {
	logger.Log(cpu.trace, logTag, "reset")

	cpu.resetRegisters()

	sp, err := cpu.bus.Read32(cpu.state.VTOR)
	if err != nil {
		return curated.Errorf(ResetFault, err)
	}
	pc, err := cpu.bus.Read32(cpu.state.VTOR + 4)
	if err != nil {
		return curated.Errorf(ResetFault, err)
	}

	cpu.state.SetSP(sp & 0xfffffffc)
	cpu.state.PC = pc & 0xfffffffe

	return nil
}

// Dump returns a copy of the CPU state.
func (cpu *CPU) Dump() Snapshot {
	return Snapshot{
		Registers: cpu.state,
		Cycles:    cpu.cycles,
	}
}

// SetRegisters replaces the entire register state of the CPU.
func (cpu *CPU) SetRegisters(r Registers) {
	cpu.state = r
}

// SetRegister sets the value of a single register. See Registers.Get() for
// the meaning of registers 13 to 15.
func (cpu *CPU) SetRegister(n int, v uint32) bool {
	if n < 0 || n >= NumRegisters {
		return false
	}
	cpu.state.Set(n, v)
	return true
}

// Fault returns the reason the most recent call to Execute() returned zero
// cycles. Returns nil if the instruction completed.
func (cpu *CPU) Fault() error {
	return cpu.fault
}

// is32bitThumb2 returns true if the halfword is the first half of a 32bit
// instruction
func is32bitThumb2(opcode uint16) bool {
	return bitpattern.GuardedMatch(opcode, "111**", "11100")
}

// Execute a single instruction and return the number of cycles it took.
// Returns zero if the instruction could not be completed. In that case the
// state of the CPU is unchanged and Fault() gives the reason.
func (cpu *CPU) Execute() int {
	cpu.fault = nil
	cpu.instructionPC = cpu.state.PC

	hi, err := cpu.bus.Read16(cpu.state.PC)
	if err != nil {
		return cpu.halt(curated.Errorf(BusFault, err))
	}

	cpu.is32bit = is32bitThumb2(hi)
	cpu.opcode = uint32(hi)
	if cpu.is32bit {
		lo, err := cpu.bus.Read16(cpu.state.PC + 2)
		if err != nil {
			return cpu.halt(curated.Errorf(BusFault, err))
		}
		cpu.opcode = cpu.opcode<<16 | uint32(lo)
	}

	logger.Logf(cpu.trace, logTag, "%08x: %s", cpu.instructionPC, cpu.opcodeString())

	// instructions in an IT block are skipped if the condition fails
	it := status.DecodeIT(cpu.state.EPSR)
	if it.InBlock() && !it.Pass(status.FromAPSR(cpu.state.APSR)) {
		logger.Logf(cpu.trace, logTag, "%s failed. skipping instruction", it)
		if cpu.is32bit {
			cpu.state.PC += 4
		} else {
			cpu.state.PC += 2
		}
		cpu.state.EPSR = it.Advance(cpu.state.EPSR)
		cpu.cycles++
		return 1
	}

	var cycles int
	if cpu.is32bit {
		cycles = cpu.thumb32.Dispatch(cpu.opcode)
	} else {
		cycles = cpu.thumb16.Dispatch(hi)
	}

	if cycles == 0 {
		return 0
	}

	if it.InBlock() {
		cpu.state.EPSR = it.Advance(cpu.state.EPSR)
	}

	cpu.cycles += uint64(cycles)
	return cycles
}

// opcodeString returns the current opcode in a form suitable for the trace
// and for error messages
func (cpu *CPU) opcodeString() string {
	if cpu.is32bit {
		return fmt.Sprintf("%08x", cpu.opcode)
	}
	return fmt.Sprintf("%04x", cpu.opcode)
}

func (cpu *CPU) location() string {
	return fmt.Sprintf("%s at %08x", cpu.opcodeString(), cpu.instructionPC)
}

// halt records the fault and returns zero cycles. the fault is always logged
// regardless of the trace permission
func (cpu *CPU) halt(fault error) int {
	cpu.fault = fault
	logger.Log(logger.Allow, logTag, fault)
	return 0
}

func (cpu *CPU) unspecified(name string) int {
	return cpu.halt(curated.Errorf(Unspecified, name, cpu.location()))
}

func (cpu *CPU) unpredictable(detail string) int {
	return cpu.halt(curated.Errorf(Unpredictable, detail, cpu.location()))
}

// unspecified16 and unspecified32 return handlers suitable for decode tables
func (cpu *CPU) unspecified16(name string) func(uint16) int {
	return func(_ uint16) int {
		return cpu.unspecified(name)
	}
}

func (cpu *CPU) unspecified32(name string) func(uint32) int {
	return func(_ uint32) int {
		return cpu.unspecified(name)
	}
}
