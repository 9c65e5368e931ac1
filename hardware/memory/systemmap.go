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

package memory

import (
	"github.com/jetsetilly/corsim0/curated"
)

// Sentinel error patterns for bus reads.
const (
	NoDevice     = "memory: no device at %08x"
	AccessDenied = "memory: %s of %08x denied by %s"
)

// SystemMap is the bus connecting the CPU to the memory mapped devices.
type SystemMap struct {
	devices []*Device
}

// NewSystemMap is the preferred method of initialisation for the SystemMap
// type.
func NewSystemMap() *SystemMap {
	return &SystemMap{}
}

// Register a device with the bus. A device registered earlier takes priority
// over a device registered later when the two overlap.
func (mp *SystemMap) Register(dev *Device) {
	mp.devices = append(mp.devices, dev)
}

// Devices returns the list of devices in the order they were registered.
func (mp *SystemMap) Devices() []*Device {
	return mp.devices
}

// Resolve returns the device that contains the address. Returns nil if no
// device contains the address.
func (mp *SystemMap) Resolve(address uint32) *Device {
	for _, dev := range mp.devices {
		if dev.Contains(address) {
			return dev
		}
	}
	return nil
}

// access is the common check for all reads and writes. the returned slice
// is the area of the device's memory being accessed
func (mp *SystemMap) access(event string, address uint32, n int, write bool) ([]uint8, error) {
	dev := mp.Resolve(address)
	if dev == nil {
		return nil, curated.Errorf(NoDevice, address)
	}

	if write && !dev.Permission.Write || !write && !dev.Permission.Read {
		return nil, curated.Errorf(AccessDenied, event, address, dev.Name)
	}

	if !dev.covers(address, n) {
		return nil, curated.Errorf(AccessDenied, event, address, dev.Name)
	}

	idx := address - dev.Origin
	return dev.data[idx : idx+uint32(n)], nil
}

// Read8 reads a single byte from the bus.
func (mp *SystemMap) Read8(address uint32) (uint8, error) {
	b, err := mp.access("read 8bit", address, 1, false)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Read16 reads a 16bit value from the bus.
func (mp *SystemMap) Read16(address uint32) (uint16, error) {
	b, err := mp.access("read 16bit", address, 2, false)
	if err != nil {
		return 0, err
	}
	return uint16(b[0]) | uint16(b[1])<<8, nil
}

// Read32 reads a 32bit value from the bus.
func (mp *SystemMap) Read32(address uint32) (uint32, error) {
	b, err := mp.access("read 32bit", address, 4, false)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// Write8 writes a single byte to the bus. A write that is not allowed is
// ignored.
func (mp *SystemMap) Write8(address uint32, value uint8) {
	b, err := mp.access("write 8bit", address, 1, true)
	if err != nil {
		return
	}
	b[0] = value
}

// Write16 writes a 16bit value to the bus. A write that is not allowed is
// ignored.
func (mp *SystemMap) Write16(address uint32, value uint16) {
	b, err := mp.access("write 16bit", address, 2, true)
	if err != nil {
		return
	}
	b[0] = uint8(value)
	b[1] = uint8(value >> 8)
}

// Write32 writes a 32bit value to the bus. A write that is not allowed is
// ignored.
func (mp *SystemMap) Write32(address uint32, value uint32) {
	b, err := mp.access("write 32bit", address, 4, true)
	if err != nil {
		return
	}
	b[0] = uint8(value)
	b[1] = uint8(value >> 8)
	b[2] = uint8(value >> 16)
	b[3] = uint8(value >> 24)
}

// debugAccess is like access() but ignores the device permission
func (mp *SystemMap) debugAccess(event string, address uint32, n int) ([]uint8, error) {
	dev := mp.Resolve(address)
	if dev == nil {
		return nil, curated.Errorf(NoDevice, address)
	}
	if !dev.covers(address, n) {
		return nil, curated.Errorf(AccessDenied, event, address, dev.Name)
	}
	idx := address - dev.Origin
	return dev.data[idx : idx+uint32(n)], nil
}

// Peek returns the byte at the address, ignoring device permissions.
func (mp *SystemMap) Peek(address uint32) (uint8, error) {
	b, err := mp.debugAccess("peek", address, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// PeekWord returns the 32bit value at the address, ignoring device
// permissions.
func (mp *SystemMap) PeekWord(address uint32) (uint32, error) {
	b, err := mp.debugAccess("peek", address, 4)
	if err != nil {
		return 0, err
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24, nil
}

// Poke writes the byte to the address, ignoring device permissions. Unlike
// the Write*() functions an error is returned if the poke fails.
func (mp *SystemMap) Poke(address uint32, value uint8) error {
	b, err := mp.debugAccess("poke", address, 1)
	if err != nil {
		return err
	}
	b[0] = value
	return nil
}

// PokeWord writes the 32bit value to the address, ignoring device
// permissions.
func (mp *SystemMap) PokeWord(address uint32, value uint32) error {
	b, err := mp.debugAccess("poke", address, 4)
	if err != nil {
		return err
	}
	b[0] = uint8(value)
	b[1] = uint8(value >> 8)
	b[2] = uint8(value >> 16)
	b[3] = uint8(value >> 24)
	return nil
}
