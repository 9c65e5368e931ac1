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
	"strings"
)

// register names.
const (
	rSP = 13 + iota
	rLR
	rPC
	NumRegisters
)

// Registers of the ARMv6-M core. Only the general purpose registers are
// addressed by number and then only through the Get() and Set() functions.
type Registers struct {
	// general purpose registers r0 to r12
	R [13]uint32

	// the two banked stack pointers. the active stack pointer is selected by
	// the SPSEL bit of the CONTROL register
	MSP uint32
	PSP uint32

	LR uint32
	PC uint32

	APSR uint32
	IPSR uint32
	EPSR uint32

	// CONTROL register
	NPRIV bool
	SPSEL bool

	// PRIMASK register
	PM bool

	// system control registers
	ACTLR uint32
	CPUID uint32
	ICSR  uint32
	VTOR  uint32
	AIRCR uint32
	SCR   uint32
	CCR   uint32
	SHPR2 uint32
	SHPR3 uint32
	SHCSR uint32
	DFSR  uint32
}

// SP returns the value of the active stack pointer.
func (r Registers) SP() uint32 {
	if r.SPSEL {
		return r.PSP
	}
	return r.MSP
}

// SetSP sets the value of the active stack pointer.
func (r *Registers) SetSP(v uint32) {
	if r.SPSEL {
		r.PSP = v
	} else {
		r.MSP = v
	}
}

// Get returns the value of register n. Register 13 is the active stack
// pointer, register 14 is the link register and register 15 is the program
// counter.
func (r *Registers) Get(n int) uint32 {
	switch n {
	case rSP:
		return r.SP()
	case rLR:
		return r.LR
	case rPC:
		return r.PC
	}
	return r.R[n]
}

// Set the value of register n. See Get() for the meaning of registers 13, 14
// and 15.
func (r *Registers) Set(n int, v uint32) {
	switch n {
	case rSP:
		r.SetSP(v)
	case rLR:
		r.LR = v
	case rPC:
		r.PC = v
	default:
		r.R[n] = v
	}
}

// nibbles formats the value as binary digits in groups of four
func nibbles(v uint32) string {
	s := fmt.Sprintf("%032b", v)
	var b strings.Builder
	for i := 0; i < len(s); i += 4 {
		if i > 0 {
			b.WriteRune(' ')
		}
		b.WriteString(s[i : i+4])
	}
	return b.String()
}

// String returns the registers one per line. The active stack pointer is
// marked with a '>' character.
func (r Registers) String() string {
	var s strings.Builder

	line := func(marker string, name string, v uint32) {
		s.WriteString(fmt.Sprintf("%s%-10s %08x  %s\n", marker, name, v, nibbles(v)))
	}

	for n, v := range r.R {
		line("  ", fmt.Sprintf("r%02d:", n), v)
	}

	msp, psp := " >", "  "
	if r.SPSEL {
		msp, psp = psp, msp
	}
	line(msp, "r13 (msp):", r.MSP)
	line(psp, "r13 (psp):", r.PSP)
	line("  ", "r14 (lr):", r.LR)
	line("  ", "r15 (pc):", r.PC)
	line("  ", "apsr:", r.APSR)
	line("  ", "ipsr:", r.IPSR)
	line("  ", "epsr:", r.EPSR)

	return s.String()
}
