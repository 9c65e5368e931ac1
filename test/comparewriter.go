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

package test

import "strings"

// CompareWriter collects everything written to it so that the output of a
// logger or flag parser can be checked after the fact.
type CompareWriter struct {
	sb strings.Builder
}

// Write implements the io.Writer interface. It never fails.
func (cw *CompareWriter) Write(p []byte) (int, error) {
	return cw.sb.Write(p)
}

// Clear forgets all collected output.
func (cw *CompareWriter) Clear() {
	cw.sb.Reset()
}

// Compare returns true if the collected output is exactly s.
func (cw *CompareWriter) Compare(s string) bool {
	return cw.sb.String() == s
}

// Lines returns the collected output split into lines. A trailing newline
// does not produce an empty final entry.
func (cw *CompareWriter) Lines() []string {
	s := strings.TrimSuffix(cw.sb.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func (cw *CompareWriter) String() string {
	return cw.sb.String()
}
