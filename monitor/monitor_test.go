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

package monitor_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware"
	"github.com/jetsetilly/corsim0/hardware/arm"
	"github.com/jetsetilly/corsim0/hardware/memory"
	"github.com/jetsetilly/corsim0/hardware/preferences"
	"github.com/jetsetilly/corsim0/logger"
	"github.com/jetsetilly/corsim0/monitor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockTerm is a Terminal that takes input from a list of strings and records
// all output
type mockTerm struct {
	input   []string
	output  []string
	styles  []monitor.Style
	cleanUp bool
}

func (mt *mockTerm) TermRead(prompt string) (string, error) {
	if len(mt.input) == 0 {
		return "", io.EOF
	}
	s := mt.input[0]
	mt.input = mt.input[1:]
	return s, nil
}

func (mt *mockTerm) TermPrintLine(style monitor.Style, s string) {
	mt.output = append(mt.output, s)
	mt.styles = append(mt.styles, style)
}

func (mt *mockTerm) CleanUp() {
	mt.cleanUp = true
}

func (mt *mockTerm) String() string {
	return strings.Join(mt.output, "\n")
}

func (mt *mockTerm) clear() {
	mt.output = mt.output[:0]
	mt.styles = mt.styles[:0]
}

// image returns a program image with the vector table and the code placed at
// address 0x10
func image(code ...uint16) []byte {
	b := []byte{
		0x00, 0x01, 0x00, 0x10, // SP = 0x10000100
		0x11, 0x00, 0x00, 0x00, // PC = 0x00000010
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	for _, c := range code {
		b = append(b, uint8(c), uint8(c>>8))
	}
	return b
}

func newMonitor(t *testing.T, code ...uint16) (*monitor.Monitor, *hardware.Machine, *mockTerm) {
	t.Helper()
	p, err := preferences.NewPreferences(filepath.Join(t.TempDir(), "test.prefs"))
	require.NoError(t, err)
	m, err := hardware.NewMachine(p)
	require.NoError(t, err)
	require.NoError(t, m.LoadImage(bytes.NewReader(image(code...))))
	mt := &mockTerm{}
	return monitor.NewMonitor(m, mt), m, mt
}

func TestStep(t *testing.T) {
	assert := assert.New(t)
	mon, m, mt := newMonitor(t, 0xbf00, 0xbf00, 0xbf00, 0x0000)

	assert.NoError(mon.Command("STEP"))
	assert.Equal(uint32(0x12), m.CPU.Dump().PC)
	assert.Contains(mt.String(), "PC: 00000012")

	// commands are not case sensitive and the argument is an expression
	assert.NoError(mon.Command("step 1+1"))
	assert.Equal(uint32(0x16), m.CPU.Dump().PC)

	err := mon.Command("STEP")
	assert.True(curated.Is(err, arm.Unspecified), err)
}

func TestEmptyAndUnknown(t *testing.T) {
	assert := assert.New(t)
	mon, _, mt := newMonitor(t, 0xbf00)

	assert.NoError(mon.Command(""))
	assert.NoError(mon.Command("   "))
	assert.Empty(mt.output)

	err := mon.Command("JUMP 10")
	assert.True(curated.Is(err, monitor.UnknownCommand))

	err = mon.Command("POKE 10")
	assert.True(curated.Is(err, monitor.WrongArgCount))

	err = mon.Command("DUMP now")
	assert.True(curated.Is(err, monitor.WrongArgCount))
}

func TestDump(t *testing.T) {
	assert := assert.New(t)
	mon, _, mt := newMonitor(t, 0xbf00)

	assert.NoError(mon.Command("DUMP"))
	assert.Contains(mt.String(), "r15 (pc):  00000010")
	assert.Contains(mt.String(), " >r13 (msp): 10000100")

	// one line per register
	assert.Len(mt.output, 20)
}

func TestPeekPoke(t *testing.T) {
	assert := assert.New(t)
	mon, _, mt := newMonitor(t, 0xbf00)

	assert.NoError(mon.Command("POKE 0x10000000 0xdeadbeef"))
	assert.NoError(mon.Command("PEEK 0x10000000"))
	assert.Equal([]string{"10000000: deadbeef"}, mt.output)
	mt.clear()

	// register names in expressions
	assert.NoError(mon.Command("POKE sp-4 pc|1"))
	assert.NoError(mon.Command("PEEK sp-4"))
	assert.Equal([]string{"100000fc: 00000011"}, mt.output)
	mt.clear()

	// the vector table in ROM can be poked
	assert.NoError(mon.Command("POKE vtor+4 0x21"))
	assert.NoError(mon.Command("PEEK 0 6"))
	assert.Equal([]string{
		"00000000: 10000100 00000021 00000000 00000000",
		"00000010: 0000bf00 00000000",
	}, mt.output)
	mt.clear()

	err := mon.Command("PEEK 0x20000000")
	assert.True(curated.Is(err, memory.NoDevice), err)

	err = mon.Command("POKE 0x20000000 1")
	assert.True(curated.Is(err, memory.NoDevice), err)

	// words are printed until the end of the device is reached
	err = mon.Command("PEEK 0x1001fff8 4")
	assert.True(curated.Is(err, memory.NoDevice), err)
	assert.Equal([]string{"1001fff8: 00000000 00000000"}, mt.output)
}

func TestReg(t *testing.T) {
	assert := assert.New(t)
	mon, m, _ := newMonitor(t, 0xbf00)

	assert.NoError(mon.Command("REG 1 0x1234"))
	assert.Equal(uint32(0x1234), m.CPU.Dump().R[1])

	// registers can be used in the expression
	assert.NoError(mon.Command("REG 2 r1*2"))
	assert.Equal(uint32(0x2468), m.CPU.Dump().R[2])

	assert.NoError(mon.Command("REG 14 -1"))
	assert.Equal(uint32(0xffffffff), m.CPU.Dump().LR)

	err := mon.Command("REG 16 0")
	assert.True(curated.Is(err, monitor.InvalidRegister))

	err = mon.Command("REG 1 r1+")
	assert.True(curated.Is(err, monitor.InvalidExpression))
	assert.Equal(uint32(0x1234), m.CPU.Dump().R[1])
}

func TestReset(t *testing.T) {
	assert := assert.New(t)
	mon, m, _ := newMonitor(t, 0xbf00, 0xbf00)

	assert.NoError(mon.Command("STEP 2"))
	assert.Equal(uint32(0x14), m.CPU.Dump().PC)
	assert.NoError(mon.Command("RESET"))
	assert.Equal(uint32(0x10), m.CPU.Dump().PC)
	assert.Equal(uint64(0), m.CPU.Dump().Cycles)
}

func TestRun(t *testing.T) {
	assert := assert.New(t)
	mon, m, mt := newMonitor(t, 0xbf00, 0xbf00, 0x0000)

	err := mon.Command("RUN")
	assert.True(curated.Is(err, arm.Unspecified), err)
	assert.Equal([]string{"2 instructions in 2 cycles"}, mt.output)
	assert.Equal(uint32(0x14), m.CPU.Dump().PC)
}

func TestRunStepLimit(t *testing.T) {
	assert := assert.New(t)

	// b . (branch to self)
	mon, m, mt := newMonitor(t, 0xe7ff)
	require.NoError(t, m.Prefs.StepLimit.Set(5))

	assert.NoError(mon.Command("RUN"))
	assert.Equal([]string{"5 instructions in 5 cycles", "step limit reached"}, mt.output)
}

func TestRunInterrupt(t *testing.T) {
	assert := assert.New(t)
	mon, _, _ := newMonitor(t, 0xe7ff)

	// an interrupt pending at the start of the run is discarded. the second
	// interrupt ends the run at the first opportunity
	intr := make(chan os.Signal, 2)
	intr <- syscall.SIGINT
	intr <- syscall.SIGINT
	mon.SetInterrupt(intr)

	err := mon.Command("RUN")
	assert.True(curated.Is(err, monitor.UserInterrupt), err)
}

func TestTraceAndLog(t *testing.T) {
	assert := assert.New(t)
	mon, m, mt := newMonitor(t, 0xbf00, 0xbf00)
	logger.Clear()

	assert.NoError(mon.Command("TRACE ON"))
	assert.True(m.Prefs.Trace.Get().(bool))
	assert.True(m.Prefs.TraceGate.AllowLogging())

	assert.NoError(mon.Command("STEP"))
	mt.clear()

	assert.NoError(mon.Command("LOG 1"))
	assert.Equal([]string{"ARMv6-M: nop"}, mt.output)
	assert.Equal([]monitor.Style{monitor.StyleLog}, mt.styles)
	mt.clear()

	assert.NoError(mon.Command("LOG"))
	assert.Contains(mt.String(), "ARMv6-M: 00000010")

	// toggle
	assert.NoError(mon.Command("TRACE"))
	assert.False(m.Prefs.TraceGate.AllowLogging())
	assert.NoError(mon.Command("trace off"))
	assert.False(m.Prefs.Trace.Get().(bool))

	err := mon.Command("TRACE maybe")
	assert.True(curated.Is(err, monitor.InvalidArgument))
}

func TestMap(t *testing.T) {
	assert := assert.New(t)
	mon, _, mt := newMonitor(t, 0xbf00)

	assert.NoError(mon.Command("MAP"))
	require.Len(t, mt.output, 2)
	assert.True(strings.HasPrefix(mt.output[0], "ROM"))
	assert.True(strings.HasPrefix(mt.output[1], "RAM"))
}

func TestMemviz(t *testing.T) {
	assert := assert.New(t)
	mon, _, _ := newMonitor(t, 0xbf00)

	fn := filepath.Join(t.TempDir(), "cpu.dot")
	assert.NoError(mon.Command("MEMVIZ " + fn))

	b, err := os.ReadFile(fn)
	require.NoError(t, err)
	assert.Contains(string(b), "digraph")

	err = mon.Command("MEMVIZ " + filepath.Join(t.TempDir(), "missing", "cpu.dot"))
	assert.True(curated.Is(err, monitor.MemvizFailed))
}

func TestHelp(t *testing.T) {
	assert := assert.New(t)
	mon, _, mt := newMonitor(t, 0xbf00)

	assert.NoError(mon.Command("HELP"))
	for _, c := range []string{"STEP", "RUN", "RESET", "DUMP", "PEEK", "POKE", "REG", "MAP", "LOG", "TRACE", "MEMVIZ", "HELP", "QUIT"} {
		assert.Contains(mt.String(), c)
	}
	mt.clear()

	assert.NoError(mon.Command("HELP poke"))
	assert.Equal("POKE address value", mt.output[0])

	err := mon.Command("HELP JUMP")
	assert.True(curated.Is(err, monitor.UnknownCommand))
}

func TestRunLoop(t *testing.T) {
	assert := assert.New(t)
	mon, m, mt := newMonitor(t, 0xbf00, 0xbf00)

	mt.input = []string{"STEP", "JUMP", "QUIT", "STEP"}
	assert.NoError(mon.Run())

	// input after QUIT is not processed
	assert.Equal(uint32(0x12), m.CPU.Dump().PC)
	assert.Equal([]string{"STEP"}, mt.input)
	assert.True(mt.cleanUp)

	// the unknown command is reported as an error but does not end the loop
	assert.Contains(mt.styles, monitor.StyleError)

	// end of input ends the loop without error
	mt.input = []string{"STEP"}
	assert.NoError(mon.Run())
	assert.Equal(uint32(0x14), m.CPU.Dump().PC)
}
