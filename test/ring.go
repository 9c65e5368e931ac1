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

import "fmt"

// RingWriter keeps only the last size bytes written to it. The tail of a long
// instruction trace can be examined without holding the whole trace.
type RingWriter struct {
	tail []byte
	size int
}

// NewRingWriter returns a RingWriter holding at most size bytes.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ring writer: size must be positive (%d)", size)
	}
	return &RingWriter{
		tail: make([]byte, 0, size*2),
		size: size,
	}, nil
}

// Write implements the io.Writer interface.
func (r *RingWriter) Write(p []byte) (int, error) {
	if len(p) >= r.size {
		r.tail = append(r.tail[:0], p[len(p)-r.size:]...)
		return len(p), nil
	}
	r.tail = append(r.tail, p...)
	if over := len(r.tail) - r.size; over > 0 {
		r.tail = append(r.tail[:0], r.tail[over:]...)
	}
	return len(p), nil
}

// Reset discards the held bytes.
func (r *RingWriter) Reset() {
	r.tail = r.tail[:0]
}

func (r *RingWriter) String() string {
	return string(r.tail)
}
