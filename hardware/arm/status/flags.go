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

// Package status models the flags of the ARMv6-M program status registers.
// The Flags type holds the condition flags of the APSR, the AddWithCarry()
// function is the basis of the arithmetic instructions and the ITState type
// decodes the if-then execution state held in the EPSR.
package status

import (
	"strings"
)

// bit positions of the flags in the APSR.
const (
	bitN = 31
	bitZ = 30
	bitC = 29
	bitV = 28
	bitQ = 27
)

// the bits of the APSR that are not flags.
const reservedMask = 0x07ffffff

// Flags are the condition flags of the APSR. They can be created from an APSR
// value with FromAPSR() and converted back with the APSR() function. Flags
// returned by AddWithCarry() also have the Result field set.
type Flags struct {
	Negative   bool
	Zero       bool
	Carry      bool
	Overflow   bool
	Saturation bool

	// the bits of the APSR value that are not flags. preserved by the APSR()
	// function
	Reserved uint32

	// the result of the most recent arithmetic operation
	Result uint32
}

// FromAPSR decodes the flags from the APSR value.
func FromAPSR(apsr uint32) Flags {
	return Flags{
		Negative:   apsr&(1<<bitN) != 0,
		Zero:       apsr&(1<<bitZ) != 0,
		Carry:      apsr&(1<<bitC) != 0,
		Overflow:   apsr&(1<<bitV) != 0,
		Saturation: apsr&(1<<bitQ) != 0,
		Reserved:   apsr & reservedMask,
	}
}

func bit(b bool, pos int) uint32 {
	if b {
		return 1 << pos
	}
	return 0
}

// APSR returns the flags packed into an APSR value.
func (f Flags) APSR() uint32 {
	return bit(f.Negative, bitN) | bit(f.Zero, bitZ) | bit(f.Carry, bitC) |
		bit(f.Overflow, bitV) | bit(f.Saturation, bitQ) | f.Reserved&reservedMask
}

// Merge the condition flags with an existing APSR value. The reserved bits of
// the existing value are kept.
func (f Flags) Merge(apsr uint32) uint32 {
	f.Reserved = apsr & reservedMask
	return f.APSR()
}

func (f Flags) String() string {
	s := strings.Builder{}
	flag := func(b bool, set rune, clear rune) {
		if b {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}
	flag(f.Negative, 'N', 'n')
	flag(f.Zero, 'Z', 'z')
	flag(f.Carry, 'C', 'c')
	flag(f.Overflow, 'V', 'v')
	flag(f.Saturation, 'Q', 'q')
	return s.String()
}
