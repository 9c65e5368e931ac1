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

// Package monitor is an interactive, line oriented interface to the emulated
// machine. Commands are read from a Terminal and executed one at a time, so
// that stepping, running and inspection of the machine never overlap.
//
// Numeric arguments to commands are expressions. Expressions are evaluated
// with starlark and the names r0 to r12, sp, msp, psp, lr, pc and vtor refer
// to the current values of the CPU registers. For example:
//
//	PEEK sp+4
//	POKE 0x10000000 pc|1
//
// Arguments are separated by whitespace so an expression must not contain
// any spaces.
//
// Two terminal implementations are provided. PlainTerminal works with any
// io.Reader and io.Writer and is suitable for scripts and tests. Console
// provides line editing when standard input is a real terminal.
package monitor
