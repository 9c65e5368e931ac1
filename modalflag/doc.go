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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// Arguments are first given with NewArgs() and are then parsed with Parse().
// Between the two, flags are added in the same way as the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	trace := md.AddBool("trace", false, "log every instruction")
//	p, err := md.Parse()
//
// A mode is a special command line argument that puts the program into a
// different mode of operation, each with its own flags and arguments. The
// possible modes are given with AddSubModes(), the first of which is the
// default mode:
//
//	md.AddSubModes("RUN", "MONITOR")
//
// After Parse() the selected mode is available through the Mode() function.
// Calling NewMode() prepares the Modes instance for the flags of the selected
// mode and the next call to Parse() starts with the arguments after the mode
// argument. Mode comparisons are case insensitive.
package modalflag
