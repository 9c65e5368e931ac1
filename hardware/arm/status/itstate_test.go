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

package status_test

import (
	"testing"

	"github.com/jetsetilly/corsim0/hardware/arm/status"
	"github.com/jetsetilly/corsim0/test"
)

// epsr returns an EPSR value with the ITSTATE set to the value
func epsr(itstate uint32) uint32 {
	return (itstate>>6)&0x03<<25 | (itstate&0x3f)<<10
}

func TestITIdle(t *testing.T) {
	it := status.DecodeIT(0)
	test.ExpectFailure(t, it.InBlock())
	test.ExpectFailure(t, it.LastInBlock())
	test.ExpectEquality(t, it.String(), "IT: idle")

	// the thumb bit is not part of the ITSTATE
	it = status.DecodeIT(0x01000000)
	test.ExpectFailure(t, it.InBlock())
}

func TestITBlock(t *testing.T) {
	// first condition CS with two instructions in the block
	it := status.DecodeIT(epsr(0b0010_0100))
	test.ExpectSuccess(t, it.InBlock())
	test.ExpectFailure(t, it.LastInBlock())
	test.ExpectEquality(t, it.Condition(), status.CS)

	e := it.Advance(0)
	test.ExpectSuccess(t, it.InBlock())
	test.ExpectSuccess(t, it.LastInBlock())
	test.ExpectEquality(t, it.Condition(), status.CS)
	test.ExpectEquality(t, e, epsr(0b0010_1000))

	// the last instruction ends the block
	e = it.Advance(e)
	test.ExpectFailure(t, it.InBlock())
	test.ExpectEquality(t, e, 0)
}

func TestITThenElse(t *testing.T) {
	// ITE EQ. the second instruction uses the inverse condition
	it := status.DecodeIT(epsr(0b0000_1100))
	test.ExpectEquality(t, it.Condition(), status.EQ)
	it.Advance(0)
	test.ExpectSuccess(t, it.LastInBlock())
	test.ExpectEquality(t, it.Condition(), status.NE)
}

func TestITLength(t *testing.T) {
	// the position of the lowest set bit in the mask decides the length of the
	// block
	for mask, length := range map[uint32]int{
		0b0001: 4,
		0b0010: 3,
		0b0100: 2,
		0b1000: 1,
	} {
		it := status.DecodeIT(epsr(0b0001_0000 | mask))
		count := 0
		for it.InBlock() {
			count++
			it.Advance(0)
			if count > 4 {
				t.Fatalf("IT block did not end")
			}
		}
		test.ExpectEquality(t, count, length, mask)
	}
}

func TestITPreservesEPSR(t *testing.T) {
	it := status.DecodeIT(epsr(0b1110_1000) | 0x01000000)
	test.ExpectSuccess(t, it.LastInBlock())
	e := it.Advance(0x01000000 | epsr(0b1110_1000))
	test.ExpectEquality(t, e, 0x01000000)
}

func TestITPass(t *testing.T) {
	it := status.DecodeIT(epsr(0b0101_1000))
	test.ExpectEquality(t, it.Condition(), status.PL)
	test.ExpectSuccess(t, it.Pass(status.Flags{}))
	test.ExpectFailure(t, it.Pass(status.Flags{Negative: true}))
}
