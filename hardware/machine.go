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

package hardware

import (
	"io"

	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware/arm"
	"github.com/jetsetilly/corsim0/hardware/arm/architecture"
	"github.com/jetsetilly/corsim0/hardware/memory"
	"github.com/jetsetilly/corsim0/hardware/preferences"
)

// Sentinel error patterns.
const (
	ImageTooLarge = "hardware: image is larger than the ROM (%d bytes)"
	NoPreferences = "hardware: no preferences"
)

// Machine is the main container for the emulated components of the machine.
type Machine struct {
	Prefs *preferences.Preferences
	Map   architecture.Map

	Mem *memory.SystemMap
	ROM *memory.Device
	RAM *memory.Device

	CPU *arm.CPU
}

// NewMachine creates a new Machine and everything associated with the
// hardware. The machine is not reset and the ROM is empty until an image is
// loaded with LoadImage().
func NewMachine(prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		return nil, curated.Errorf(NoPreferences)
	}

	m := &Machine{
		Prefs: prefs,
		Map:   prefs.Map(),
		Mem:   memory.NewSystemMap(),
	}

	m.ROM = memory.NewDevice("ROM", m.Map.ROMOrigin, m.Map.ROMSize, memory.ReadOnly)
	m.RAM = memory.NewDevice("RAM", m.Map.RAMOrigin, m.Map.RAMSize, memory.ReadWrite)

	// the ROM is registered first and so takes priority if the preferences
	// cause the two devices to overlap
	m.Mem.Register(m.ROM)
	m.Mem.Register(m.RAM)

	m.CPU = arm.NewCPU(m.Map, m.Mem, &prefs.TraceGate)

	return m, nil
}

// LoadImage copies the image into the ROM and resets the machine. Any data
// previously in the ROM is removed.
func (m *Machine) LoadImage(r io.Reader) error {
	// read one byte more than the ROM can hold so that an image that is too
	// large can be detected
	data, err := io.ReadAll(io.LimitReader(r, int64(m.ROM.Size())+1))
	if err != nil {
		return err
	}
	if len(data) > int(m.ROM.Size()) {
		return curated.Errorf(ImageTooLarge, m.ROM.Size())
	}

	m.ROM.Clear()
	if err := m.ROM.Load(data); err != nil {
		return err
	}

	return m.Reset()
}

// Reset the CPU. The contents of memory are not changed.
func (m *Machine) Reset() error {
	return m.CPU.Reset()
}

// Step executes a single instruction. Returns the number of cycles taken by
// the instruction. A value of zero indicates that the CPU has halted and the
// reason can be found with CPU.Fault().
func (m *Machine) Step() int {
	return m.CPU.Execute()
}
