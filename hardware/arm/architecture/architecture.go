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

// Package architecture defines the Map type that is used to specify the
// differences between the machines that the ARM core can be part of.
package architecture

import (
	"github.com/jetsetilly/corsim0/logger"
)

// Machine names the memory map of a machine.
type Machine string

// List of valid Machine values.
const (
	CortexM0 Machine = "CortexM0"
)

// ARMArchitecture defines the features of the ARM core.
type ARMArchitecture string

// List of valid ARMArchitecture values.
const (
	ARMv6_M ARMArchitecture = "ARMv6-M"
)

// Map of the differences between machines.
type Map struct {
	Machine         Machine
	ARMArchitecture ARMArchitecture

	ROMOrigin uint32
	ROMSize   uint32

	RAMOrigin uint32
	RAMSize   uint32

	// reset values of the system control registers. all other registers
	// reset to zero
	CPUID uint32
	CCR   uint32
}

// NewMap is the preferred method of initialisation for the Map type.
func NewMap(machine Machine) Map {
	mmap := Map{
		Machine: machine,
	}

	switch mmap.Machine {
	default:
		logger.Logf(logger.Allow, "ARM Architecture", "unknown machine (%s) defaulting to %s", machine, CortexM0)
		mmap.Machine = CortexM0
		fallthrough

	case CortexM0:
		mmap.ARMArchitecture = ARMv6_M

		mmap.ROMOrigin = 0x00000000
		mmap.ROMSize = 0x00020000
		mmap.RAMOrigin = 0x10000000
		mmap.RAMSize = 0x00020000

		// implementer ARM, variant 0, architecture ARMv6-M, part number
		// Cortex-M0, revision 0
		mmap.CPUID = 0x410cc200

		// the ARMv6-M configuration and control register is read-only with
		// all bits set
		mmap.CCR = 0xffffffff
	}

	return mmap
}
