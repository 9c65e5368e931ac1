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

package bitpattern

import (
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/corsim0/curated"
)

// Sentinal error patterns.
const (
	FormatMismatch = "bitpattern: format has %d bits but value has %d"
	FormatTooLong  = "bitpattern: format has %d bits which is more than the %d of the value"
)

// Fields are the named fields extracted from a value by Capture() and
// CaptureUpper(). Fields that do not appear in the format are not present in
// the map.
type Fields[T Coded] map[rune]T

// Capture the fields named in the format from the value. The format must have
// exactly as many bits as the value, otherwise a FormatMismatch error is
// returned.
//
// The characters 0, 1, _ and | do not name a field. The bit position still
// advances past them.
func Capture[T Coded](value T, format string) (Fields[T], error) {
	format = strings.ReplaceAll(format, " ", "")

	w := Width[T]()
	if n := utf8.RuneCountInString(format); n != w {
		return nil, curated.Errorf(FormatMismatch, n, w)
	}

	f := make(Fields[T])
	bit := w - 1
	for _, c := range format {
		switch c {
		case '0', '1', '_', '|':
		default:
			f[c] = f[c]<<1 | T((uint64(value)>>bit)&1)
		}
		if bit > 0 {
			bit--
		}
	}

	return f, nil
}

// CaptureUpper is like Capture() except that the format may be shorter than
// the value. The format is aligned with the most significant bits of the
// value. The * character is a wildcard that does not name a field.
//
// In addition to the named fields, the concatenation of every captured bit, in
// the order they appear in the format, is returned. This is useful for
// building a sub-opcode to be tested with LowerMatch().
func CaptureUpper[T Coded](value T, format string) (Fields[T], T, error) {
	format = strings.ReplaceAll(format, " ", "")

	w := Width[T]()
	if n := utf8.RuneCountInString(format); n > w {
		return nil, 0, curated.Errorf(FormatTooLong, n, w)
	}

	f := make(Fields[T])
	var captured T
	bit := w - 1
	for _, c := range format {
		switch c {
		case '0', '1', '_', '*', '|':
		default:
			b := T((uint64(value) >> bit) & 1)
			f[c] = f[c]<<1 | b
			captured = captured<<1 | b
		}
		if bit > 0 {
			bit--
		}
	}

	return f, captured, nil
}
