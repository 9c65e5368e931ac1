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

import "fmt"

// the bits of the EPSR that hold the ITSTATE. bits 7:6 of ITSTATE are in EPSR
// bits 26:25 and bits 5:0 are in EPSR bits 15:10
const (
	epsrITUpper = 0x06000000
	epsrITLower = 0x0000fc00
	epsrITMask  = epsrITUpper | epsrITLower
)

// ITState is the if-then execution state as held in the EPSR.
//
// The ITSTATE is split into a three bit base condition and a five bit
// encoding. The top bit of the encoding is the lowest bit of the condition
// for the next instruction. The lower four bits indicate the number of
// instructions remaining in the block: the position of the lowest set bit
// moves from bit 0 (four instructions) towards bit 3 (one instruction).
type ITState struct {
	cond   uint8
	encode uint8
}

// DecodeIT decodes the ITSTATE from the EPSR value.
func DecodeIT(epsr uint32) ITState {
	itstate := uint8((epsr>>25)&0x03)<<6 | uint8((epsr>>10)&0x3f)

	return ITState{
		cond:   (itstate >> 5) & 0x07,
		encode: itstate & 0x1f,
	}
}

// InBlock returns true if the next instruction is part of an IT block.
func (it ITState) InBlock() bool {
	return it.encode&0x0f != 0
}

// LastInBlock returns true if the next instruction is the last instruction in
// an IT block.
func (it ITState) LastInBlock() bool {
	return it.encode&0x0f == 0x08
}

// Advance the IT state by one instruction. The state is reset at the end of the
// block. Returns the EPSR value with the updated ITSTATE. Bits of the EPSR that
// are not part of the ITSTATE are left unchanged.
func (it *ITState) Advance(epsr uint32) uint32 {
	if it.LastInBlock() {
		it.cond = 0
		it.encode = 0
	} else {
		it.encode = (it.encode << 1) & 0x1f
	}
	return it.EPSR(epsr)
}

// EPSR returns the EPSR value with the ITSTATE bits replaced by the state.
func (it ITState) EPSR(epsr uint32) uint32 {
	itstate := uint32(it.cond)<<5 | uint32(it.encode)
	epsr &^= epsrITMask
	epsr |= ((itstate >> 6) & 0x03) << 25
	epsr |= (itstate & 0x3f) << 10
	return epsr
}

// Condition returns the condition code for the next instruction in the block.
// The base condition is combined with the top bit of the encoding.
func (it ITState) Condition() Condition {
	return Condition(it.cond<<1 | (it.encode>>4)&0x01)
}

// Pass returns true if the flags pass the condition for the next instruction
// in the block.
func (it ITState) Pass(f Flags) bool {
	return f.Condition(it.Condition())
}

func (it ITState) String() string {
	if !it.InBlock() {
		return "IT: idle"
	}
	return fmt.Sprintf("IT: %s %05b", it.Condition(), it.encode)
}
