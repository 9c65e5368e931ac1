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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The first argument
// is a pattern and it is the pattern that identifies the error. The memory
// package for example defines:
//
//	const NoDevice = "memory: no device at address %08x"
//
// and callers can test for that condition, regardless of the address that
// caused it, with:
//
//	if curated.Is(err, memory.NoDevice) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. The IsAny() function answers whether the error was created
// by curated.Errorf() at all. An error that is not curated is an unexpected
// error.
//
// The Error() implementation normalises the error chain so that adjacent
// duplicate parts are collapsed. This means that a function can wrap an error
// with its own prefix without worrying if the prefix is already present:
//
//	curated.Errorf("monitor: %v", curated.Errorf("monitor: unknown command"))
//
// produces "monitor: unknown command".
package curated
