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

// AddWithCarry adds the two values and the carry and returns the result along
// with the N, Z, C and V flags. The carryIn value should be 0 or 1.
//
// Subtraction is performed by inverting the second operand and setting the
// carry:
//
//	AddWithCarry(a, ^b, 1)
//
// The carry flag is the unsigned carry out of bit 31 and the overflow flag is
// set if the signed result does not fit in 32bits.
func AddWithCarry(a uint32, b uint32, carryIn uint32) Flags {
	usum := uint64(a) + uint64(b) + uint64(carryIn&1)
	ssum := int64(int32(a)) + int64(int32(b)) + int64(carryIn&1)
	result := uint32(usum)

	return Flags{
		Result:   result,
		Negative: result&0x80000000 == 0x80000000,
		Zero:     result == 0,
		Carry:    uint64(result) != usum,
		Overflow: int64(int32(result)) != ssum,
	}
}
