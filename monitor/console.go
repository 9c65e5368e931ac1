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
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console is a Terminal for interactive use. It provides line editing and a
// command history when standard input is a real terminal.
//
// The terminal is only put into raw mode while waiting for input. This means
// that an interrupt signal from the keyboard reaches the process while the
// machine is running.
type Console struct {
	input  *os.File
	output io.Writer

	// term is nil if input is not a real terminal
	term *term.Terminal

	// fallback for when the input is not a real terminal
	plain *PlainTerminal
}

// NewConsole creates a Console using the standard input and output of the
// process.
func NewConsole() *Console {
	con := &Console{
		input:  os.Stdin,
		output: os.Stdout,
	}

	if term.IsTerminal(int(con.input.Fd())) {
		con.term = term.NewTerminal(struct {
			io.Reader
			io.Writer
		}{con.input, con.output}, "")
	} else {
		con.plain = NewPlainTerminal(con.input, con.output, false)
	}

	return con
}

// IsRealTerminal returns true if the console supports line editing.
func (con *Console) IsRealTerminal() bool {
	return con.term != nil
}

// TermRead implements the Terminal interface.
func (con *Console) TermRead(prompt string) (string, error) {
	if con.term == nil {
		return con.plain.TermRead(prompt)
	}

	fd := int(con.input.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return "", fmt.Errorf("console: %w", err)
	}
	defer term.Restore(fd, state)

	con.term.SetPrompt(prompt)
	return con.term.ReadLine()
}

// TermPrintLine implements the Terminal interface.
func (con *Console) TermPrintLine(style Style, s string) {
	if con.term == nil {
		con.plain.TermPrintLine(style, s)
		return
	}

	switch style {
	case StyleError:
		s = fmt.Sprintf("%s* %s%s", con.term.Escape.Red, s, con.term.Escape.Reset)
	case StyleHelp:
		s = fmt.Sprintf("%s%s%s", con.term.Escape.Cyan, s, con.term.Escape.Reset)
	case StyleLog:
		s = fmt.Sprintf("%s%s%s", con.term.Escape.Yellow, s, con.term.Escape.Reset)
	}

	// outside of raw mode there is no need for the carriage return that
	// term.Terminal.Write() would add
	io.WriteString(con.output, s)
	io.WriteString(con.output, "\n")
}

// CleanUp implements the Terminal interface.
func (con *Console) CleanUp() {
	io.WriteString(con.output, "\n")
}
