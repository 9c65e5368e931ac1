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

package hardware_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware"
	"github.com/jetsetilly/corsim0/hardware/arm"
	"github.com/jetsetilly/corsim0/hardware/preferences"
	"github.com/jetsetilly/corsim0/test"
)

// image returns a program image with the vector table and the code placed at
// address 0x10
func image(code ...uint16) []byte {
	b := []byte{
		0x00, 0x01, 0x00, 0x10, // SP = 0x10000100
		0x11, 0x00, 0x00, 0x00, // PC = 0x00000010 (with thumb bit)
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	for _, c := range code {
		b = append(b, uint8(c), uint8(c>>8))
	}
	return b
}

func newMachine(t *testing.T) *hardware.Machine {
	t.Helper()
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "test.prefs"))
	test.DemandSuccess(t, err)
	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)
	return m
}

func TestNoPreferences(t *testing.T) {
	_, err := hardware.NewMachine(nil)
	test.ExpectSuccess(t, curated.Is(err, hardware.NoPreferences))
}

func TestRunToHalt(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadImage(bytes.NewReader(image(0xbf00, 0xbf00, 0x0000))))

	d := m.CPU.Dump()
	test.ExpectEquality(t, d.PC, 0x10)
	test.ExpectEquality(t, d.SP(), 0x10000100)

	res, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Steps, 2)
	test.ExpectEquality(t, res.Cycles, 2)
	test.ExpectFailure(t, res.Limited)
	test.ExpectSuccess(t, curated.Is(res.Fault, arm.Unspecified))
	test.ExpectEquality(t, m.CPU.Dump().PC, 0x14)
}

func TestStepLimit(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.Prefs.StepLimit.Set(10))

	// b . (branch to self)
	test.DemandSuccess(t, m.LoadImage(bytes.NewReader(image(0xe7ff))))

	res, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Steps, 10)
	test.ExpectSuccess(t, res.Limited)
	test.ExpectSuccess(t, res.Fault)
	test.ExpectEquality(t, m.CPU.Dump().PC, 0x10)
}

func TestContinueCheck(t *testing.T) {
	m := newMachine(t)
	test.DemandSuccess(t, m.LoadImage(bytes.NewReader(image(0xe7ff))))

	res, err := m.Run(func() (bool, error) {
		return false, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, res.Steps, hardware.PerformanceBrake)
	test.ExpectFailure(t, res.Limited)
}

func TestImageTooLarge(t *testing.T) {
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "test.prefs"))
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.ROMSize.Set(16))
	m, err := hardware.NewMachine(p)
	test.DemandSuccess(t, err)

	err = m.LoadImage(bytes.NewReader(make([]byte, 17)))
	test.ExpectSuccess(t, curated.Is(err, hardware.ImageTooLarge))

	// an image that fits exactly is fine
	test.ExpectSuccess(t, m.LoadImage(bytes.NewReader(image())))
}

func TestMemoryLayout(t *testing.T) {
	m := newMachine(t)
	test.ExpectEquality(t, len(m.Mem.Devices()), 2)
	test.ExpectEquality(t, m.Mem.Resolve(0x00000000), m.ROM)
	test.ExpectEquality(t, m.Mem.Resolve(0x0001ffff), m.ROM)
	test.ExpectEquality(t, m.Mem.Resolve(0x10000000), m.RAM)
	test.ExpectEquality(t, m.Mem.Resolve(0x1001ffff), m.RAM)
	test.ExpectEquality(t, m.Mem.Resolve(0x00020000), nil)
}
