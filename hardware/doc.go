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

// Package hardware is the base package for the emulated machine. The Machine
// type collates the CPU and the memory system and is the type that should be
// used by drivers.
//
// The machine has two memory devices. A read-only ROM that contains the
// program image and the vector table, and a read-write RAM that is zeroed on
// creation. The locations and sizes of the devices are defined by the
// preferences.
//
// A program image is loaded into the ROM with LoadImage(). The image should
// start with the vector table, the first word of which is the initial stack
// pointer and the second word the reset address.
package hardware
