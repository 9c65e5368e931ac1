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

package monitor

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Style is used to distinguish the different types of output sent to the
// terminal.
type Style int

// List of valid styles.
const (
	StyleFeedback Style = iota
	StyleHelp
	StyleMachineInfo
	StyleLog
	StyleError
)

// Terminal defines the operations required by the monitor for input and
// output.
type Terminal interface {
	// TermRead returns the next line of input without the line ending. Should
	// return io.EOF when there is no more input.
	TermRead(prompt string) (string, error)

	// TermPrintLine prints the string as a single line of output. Styles can
	// be ignored by the implementation.
	TermPrintLine(style Style, s string)

	// CleanUp is called when the monitor exits.
	CleanUp()
}

// PlainTerminal is the simplest Terminal implementation. The prompt is only
// printed if the terminal is created with echoPrompt set.
type PlainTerminal struct {
	input      *bufio.Scanner
	output     io.Writer
	echoPrompt bool
}

// NewPlainTerminal is the preferred method of initialisation for the
// PlainTerminal type.
func NewPlainTerminal(input io.Reader, output io.Writer, echoPrompt bool) *PlainTerminal {
	return &PlainTerminal{
		input:      bufio.NewScanner(input),
		output:     output,
		echoPrompt: echoPrompt,
	}
}

// TermRead implements the Terminal interface.
func (pt *PlainTerminal) TermRead(prompt string) (string, error) {
	if pt.echoPrompt {
		io.WriteString(pt.output, prompt)
	}

	if !pt.input.Scan() {
		if err := pt.input.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return strings.TrimRight(pt.input.Text(), "\r"), nil
}

// TermPrintLine implements the Terminal interface.
func (pt *PlainTerminal) TermPrintLine(style Style, s string) {
	if style == StyleError {
		s = fmt.Sprintf("* %s", s)
	}
	io.WriteString(pt.output, s)
	io.WriteString(pt.output, "\n")
}

// CleanUp implements the Terminal interface.
func (pt *PlainTerminal) CleanUp() {
}

// terminalWriter sends everything written to it to the terminal one line at a
// time. An incomplete final line is held until the next write or flush().
type terminalWriter struct {
	term    Terminal
	style   Style
	partial strings.Builder
}

func (w *terminalWriter) Write(p []byte) (int, error) {
	w.partial.Write(p)
	s := w.partial.String()
	w.partial.Reset()

	lines := strings.Split(s, "\n")
	for _, l := range lines[:len(lines)-1] {
		w.term.TermPrintLine(w.style, l)
	}
	w.partial.WriteString(lines[len(lines)-1])

	return len(p), nil
}

func (w *terminalWriter) flush() {
	if w.partial.Len() > 0 {
		w.term.TermPrintLine(w.style, w.partial.String())
		w.partial.Reset()
	}
}
