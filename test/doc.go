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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectFailure() and ExpectSuccess() functions test for failure and
// success under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// The nil value is considered a success. Consequently ExpectFailure() will
// fail and ExpectSuccess() will succeed when presented with nil. This is
// because of how errors usually work, nil indicating no error.
//
// The ExpectEquality() and ExpectInequality() functions compare like-typed
// variables. The Demand*() functions are the same as their Expect*()
// counterparts except that they are fatal to the test.
//
// The CompareWriter and RingWriter types implement the io.Writer interface
// and should be used to capture output from the package being tested.
package test
