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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/jetsetilly/corsim0/test"
)

// writeImage creates a program image file in a temporary directory. The
// vector table places the stack at 0x10000100 and the code at 0x10
func writeImage(t *testing.T, code ...uint16) string {
	t.Helper()
	b := []byte{
		0x00, 0x01, 0x00, 0x10,
		0x11, 0x00, 0x00, 0x00,
		0, 0, 0, 0, 0, 0, 0, 0,
	}
	for _, c := range code {
		b = append(b, uint8(c), uint8(c>>8))
	}
	fn := filepath.Join(t.TempDir(), "image.bin")
	test.DemandSuccess(t, os.WriteFile(fn, b, 0o644))
	return fn
}

func prefsFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "corsim0.prefs")
}

func TestRunMode(t *testing.T) {
	var out strings.Builder
	img := writeImage(t, 0xbf00, 0xbf00, 0x0000)

	// RUN is the default mode
	v := launch([]string{"-prefsfile", prefsFile(t), img}, &out, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "2 instructions in 2 cycles"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "halted: arm: "))
	test.ExpectSuccess(t, strings.Contains(out.String(), "r15 (pc):  00000014"))
}

func TestRunModeLimit(t *testing.T) {
	var out strings.Builder
	img := writeImage(t, 0xe7ff)

	v := launch([]string{"RUN", "-prefsfile", prefsFile(t), "-limit", "7", img}, &out, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "7 instructions in 7 cycles"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "step limit reached"))
}

func TestRunModeInterrupt(t *testing.T) {
	var out strings.Builder
	img := writeImage(t, 0xe7ff)

	intChan := make(chan os.Signal, 1)
	intChan <- syscall.SIGINT

	v := launch([]string{"-prefsfile", prefsFile(t), img}, &out, intChan)
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "user interrupt"))
}

func TestRunModeErrors(t *testing.T) {
	var out strings.Builder

	v := launch([]string{"-prefsfile", prefsFile(t)}, &out, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "program image required"))

	out.Reset()
	v = launch([]string{"-prefsfile", prefsFile(t), filepath.Join(t.TempDir(), "missing.bin")}, &out, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 20)

	// the preferences string shrinks the ROM so that the image no longer fits
	out.Reset()
	img := writeImage(t, 0xbf00, 0xbf00)
	v = launch([]string{"-prefsfile", prefsFile(t), "-prefs", "corsim0.rom.size::16", img}, &out, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 20)
	test.ExpectSuccess(t, strings.Contains(out.String(), "image is larger than the ROM (16 bytes)"))
}

func TestMonitorMode(t *testing.T) {
	var out strings.Builder
	img := writeImage(t, 0xbf00, 0xbf00)

	script := filepath.Join(t.TempDir(), "script")
	test.DemandSuccess(t, os.WriteFile(script, []byte("STEP\nPEEK 0 2\nJUMP\nQUIT\nSTEP\n"), 0o644))

	v := launch([]string{"MONITOR", "-prefsfile", prefsFile(t), "-script", script, img}, &out, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "PC: 00000012"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "00000000: 10000100 00000011"))
	test.ExpectSuccess(t, strings.Contains(out.String(), "* monitor: unknown command (JUMP)"))
	test.ExpectFailure(t, strings.Contains(out.String(), "PC: 00000014"))
}

func TestVersion(t *testing.T) {
	var out strings.Builder
	v := launch([]string{"version"}, &out, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.HasPrefix(out.String(), "corsim0 "))
}

func TestHelp(t *testing.T) {
	var out strings.Builder
	v := launch([]string{"-help"}, &out, make(chan os.Signal, 1))
	test.ExpectEquality(t, v, 0)
	test.ExpectSuccess(t, strings.Contains(out.String(), "MONITOR"))
}
