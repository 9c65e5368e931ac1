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

// Package memory implements the system bus of the emulated processor. The bus
// is an ordered list of devices, each occupying a range of the 32bit address
// space:
//
//	    CPU ---- SystemMap ---- ROM  (00000000 - 0001ffff)  r-
//	                      |
//	                      \---- RAM  (10000000 - 1001ffff)  rw
//
// An address is resolved to the first registered device that contains it.
// Devices that overlap are allowed but the device registered earliest always
// wins. Devices should only be registered when the machine is being built.
//
// Reads from the bus return an error when there is no device at the address
// (NoDevice) or when the device does not permit the access (AccessDenied). An
// access is denied if the permission of the device does not allow it or if
// the access does not fit entirely inside the device. For example, a 32bit
// read from the last byte of a device is denied even if another device
// follows immediately.
//
// Writes are checked in the same way but a failed write is silently ignored.
//
// Values wider than a byte are little-endian.
//
// The Peek() and Poke() functions ignore device permissions. They are
// intended for debuggers and loaders and should not be used to emulate the
// CPU's access to memory.
package memory
