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
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware"
	"github.com/jetsetilly/corsim0/logger"
	"github.com/jetsetilly/corsim0/translate"
)

// Sentinel error patterns.
const (
	UnknownCommand  = "monitor: unknown command (%s)"
	WrongArgCount   = "monitor: %s expects between %d and %d arguments"
	InvalidArgument = "monitor: invalid argument for %s (%s)"
	InvalidRegister = "monitor: no register %d"
	UserInterrupt   = "monitor: user interrupt"
	MemvizFailed    = "monitor: memviz: %v"
)

const (
	defaultPrompt    = "[ %08x ] >> "
	peekWordsPerLine = 4
)

// Monitor reads commands from the terminal and applies them to the machine.
type Monitor struct {
	machine *hardware.Machine
	term    Terminal

	// interrupt signals from the operating system. can be nil
	intr chan os.Signal

	quit bool
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
func NewMonitor(machine *hardware.Machine, term Terminal) *Monitor {
	return &Monitor{
		machine: machine,
		term:    term,
	}
}

// SetInterrupt sets the channel on which interrupt signals are delivered. A
// signal received during RUN stops the run.
func (mon *Monitor) SetInterrupt(intr chan os.Signal) {
	mon.intr = intr
}

func (mon *Monitor) print(style Style, s string, a ...any) {
	mon.term.TermPrintLine(style, fmt.Sprintf(s, a...))
}

func (mon *Monitor) prompt() string {
	return fmt.Sprintf(defaultPrompt, mon.machine.CPU.Dump().PC)
}

// Run reads and executes commands until the QUIT command or the end of input.
// Errors from commands are printed to the terminal and do not end the loop.
func (mon *Monitor) Run() error {
	defer mon.term.CleanUp()

	mon.quit = false
	for !mon.quit {
		input, err := mon.term.TermRead(mon.prompt())
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := mon.Command(input); err != nil {
			mon.print(StyleError, "%v", err)
		}
	}

	return nil
}

// Command executes a single line of input. Empty input is ignored.
func (mon *Monitor) Command(input string) error {
	tokens := strings.Fields(input)
	if len(tokens) == 0 {
		return nil
	}

	cmd := strings.ToUpper(tokens[0])
	args := tokens[1:]

	n, ok := commandArgs[cmd]
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}
	if len(args) < n[0] || len(args) > n[1] {
		return curated.Errorf(WrongArgCount, cmd, n[0], n[1])
	}

	switch cmd {
	case cmdStep:
		return mon.step(args)
	case cmdRun:
		return mon.run()
	case cmdReset:
		if err := mon.machine.Reset(); err != nil {
			return err
		}
		mon.print(StyleFeedback, "reset: %s", mon.machine.CPU)
	case cmdDump:
		mon.dump()
	case cmdPeek:
		return mon.peek(args)
	case cmdPoke:
		return mon.poke(args)
	case cmdReg:
		return mon.reg(args)
	case cmdMap:
		for _, dev := range mon.machine.Mem.Devices() {
			mon.print(StyleMachineInfo, "%s", dev)
		}
	case cmdLog:
		return mon.log(args)
	case cmdTrace:
		return mon.trace(args)
	case cmdMemviz:
		return mon.memviz(args[0])
	case cmdHelp:
		return mon.help(args)
	case cmdQuit:
		mon.quit = true
	}

	return nil
}

// value evaluates the argument for the command
func (mon *Monitor) value(arg string) (uint32, error) {
	return evaluate(arg, mon.machine.CPU.Dump().Registers)
}

func (mon *Monitor) dump() {
	w := &terminalWriter{term: mon.term, style: StyleMachineInfo}
	io.WriteString(w, mon.machine.CPU.Dump().String())
	w.flush()
}

func (mon *Monitor) step(args []string) error {
	count := uint32(1)
	if len(args) > 0 {
		var err error
		count, err = mon.value(args[0])
		if err != nil {
			return err
		}
	}

	for i := uint32(0); i < count; i++ {
		if mon.machine.Step() == 0 {
			return mon.machine.CPU.Fault()
		}
	}

	mon.print(StyleFeedback, "%s", mon.machine.CPU)
	return nil
}

func (mon *Monitor) run() error {
	// discard any interrupt left over from before the run
	if mon.intr != nil {
		select {
		case <-mon.intr:
		default:
		}
	}

	res, err := mon.machine.Run(func() (bool, error) {
		if mon.intr == nil {
			return true, nil
		}
		select {
		case <-mon.intr:
			return false, curated.Errorf(UserInterrupt)
		default:
		}
		return true, nil
	})

	mon.print(StyleFeedback, "%s", translate.From("%d instructions in %d cycles", res.Steps, res.Cycles))

	if err != nil {
		return err
	}
	if res.Limited {
		mon.print(StyleFeedback, "step limit reached")
		return nil
	}
	return res.Fault
}

func (mon *Monitor) peek(args []string) error {
	address, err := mon.value(args[0])
	if err != nil {
		return err
	}

	count := uint32(1)
	if len(args) > 1 {
		count, err = mon.value(args[1])
		if err != nil {
			return err
		}
	}

	var s strings.Builder
	flush := func() {
		if s.Len() > 0 {
			mon.print(StyleMachineInfo, "%s", s.String())
			s.Reset()
		}
	}
	defer flush()

	for i := uint32(0); i < count; i++ {
		v, err := mon.machine.Mem.PeekWord(address)
		if err != nil {
			return err
		}
		if i%peekWordsPerLine == 0 {
			flush()
			s.WriteString(fmt.Sprintf("%08x:", address))
		}
		s.WriteString(fmt.Sprintf(" %08x", v))
		address += 4
	}

	return nil
}

func (mon *Monitor) poke(args []string) error {
	address, err := mon.value(args[0])
	if err != nil {
		return err
	}
	v, err := mon.value(args[1])
	if err != nil {
		return err
	}
	return mon.machine.Mem.PokeWord(address, v)
}

func (mon *Monitor) reg(args []string) error {
	n, err := mon.value(args[0])
	if err != nil {
		return err
	}
	v, err := mon.value(args[1])
	if err != nil {
		return err
	}
	if !mon.machine.CPU.SetRegister(int(n), v) {
		return curated.Errorf(InvalidRegister, n)
	}
	return nil
}

func (mon *Monitor) log(args []string) error {
	w := &terminalWriter{term: mon.term, style: StyleLog}
	defer w.flush()

	if len(args) == 0 {
		logger.Write(w)
		return nil
	}

	n, err := mon.value(args[0])
	if err != nil {
		return err
	}
	logger.Tail(w, int(n))

	return nil
}

func (mon *Monitor) trace(args []string) error {
	on := !mon.machine.Prefs.Trace.Get().(bool)

	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case "ON":
			on = true
		case "OFF":
			on = false
		default:
			return curated.Errorf(InvalidArgument, cmdTrace, args[0])
		}
	}

	if err := mon.machine.Prefs.Trace.Set(on); err != nil {
		return err
	}

	if on {
		mon.print(StyleFeedback, "trace on")
	} else {
		mon.print(StyleFeedback, "trace off")
	}

	return nil
}

func (mon *Monitor) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(MemvizFailed, err)
	}
	defer f.Close()

	snapshot := mon.machine.CPU.Dump()
	memviz.Map(f, &snapshot)

	mon.print(StyleFeedback, "CPU state written to %s", filename)
	return nil
}

func (mon *Monitor) help(args []string) error {
	if len(args) == 0 {
		for _, h := range help {
			mon.print(StyleHelp, "%-7s %s", h.cmd, h.args)
		}
		return nil
	}

	cmd := strings.ToUpper(args[0])
	for _, h := range help {
		if h.cmd == cmd {
			mon.print(StyleHelp, "%s %s", h.cmd, h.args)
			mon.print(StyleHelp, "  %s", h.text)
			return nil
		}
	}

	return curated.Errorf(UnknownCommand, args[0])
}
