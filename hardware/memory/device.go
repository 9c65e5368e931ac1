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
	"fmt"

	"github.com/jetsetilly/corsim0/curated"
)

// Permission of a device. Peek() and Poke() ignore the permission.
type Permission struct {
	Read  bool
	Write bool
}

// Commonly used permissions.
var (
	ReadOnly  = Permission{Read: true}
	ReadWrite = Permission{Read: true, Write: true}
)

func (p Permission) String() string {
	s := []byte("--")
	if p.Read {
		s[0] = 'r'
	}
	if p.Write {
		s[1] = 'w'
	}
	return string(s)
}

// Sentinel error patterns for the Load() function.
const (
	LoadTooLarge = "memory: %d bytes too large for %s (%d bytes)"
)

// Device is a contiguous area of memory mapped into the address space.
type Device struct {
	Name       string
	Origin     uint32
	Permission Permission

	data []uint8
}

// NewDevice is the preferred method of initialisation for the Device type.
// The memory of the new device is zeroed.
func NewDevice(name string, origin uint32, size uint32, perm Permission) *Device {
	return &Device{
		Name:       name,
		Origin:     origin,
		Permission: perm,
		data:       make([]uint8, size),
	}
}

// Size of the device in bytes.
func (dev *Device) Size() uint32 {
	return uint32(len(dev.data))
}

// Memtop is the highest address of the device. The Memtop of a zero sized
// device is meaningless.
func (dev *Device) Memtop() uint32 {
	return dev.Origin + dev.Size() - 1
}

func (dev *Device) String() string {
	return fmt.Sprintf("%-8s %08x-%08x %s", dev.Name, dev.Origin, dev.Memtop(), dev.Permission)
}

// Contains returns true if the address is inside the device.
func (dev *Device) Contains(address uint32) bool {
	return address >= dev.Origin && address-dev.Origin < dev.Size()
}

// covers returns true if an access of n bytes from address fits entirely
// inside the device. calculated with 64bit values so that an access near the
// top of the address space can not wrap around
func (dev *Device) covers(address uint32, n int) bool {
	if !dev.Contains(address) {
		return false
	}
	return uint64(address-dev.Origin)+uint64(n) <= uint64(dev.Size())
}

// Load copies data into the device starting at the origin. The permission
// of the device is ignored and any memory after the data is left unchanged.
func (dev *Device) Load(data []uint8) error {
	if len(data) > len(dev.data) {
		return curated.Errorf(LoadTooLarge, len(data), dev.Name, len(dev.data))
	}
	copy(dev.data, data)
	return nil
}

// Clear the memory of the device.
func (dev *Device) Clear() {
	clear(dev.data)
}
