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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/corsim0/curated"
	"github.com/jetsetilly/corsim0/hardware"
	"github.com/jetsetilly/corsim0/hardware/preferences"
	"github.com/jetsetilly/corsim0/logger"
	"github.com/jetsetilly/corsim0/modalflag"
	"github.com/jetsetilly/corsim0/monitor"
	"github.com/jetsetilly/corsim0/prefs"
	"github.com/jetsetilly/corsim0/resources"
	"github.com/jetsetilly/corsim0/statsview"
	"github.com/jetsetilly/corsim0/translate"
	"github.com/jetsetilly/corsim0/version"
)

func main() {
	// #ctrlc interrupts are forwarded to the emulation where they are used to
	// stop a running machine
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	os.Exit(launch(os.Args[1:], os.Stdout, intChan))
}

// launch the program with the arguments and return the exit value.
func launch(args []string, output io.Writer, intChan chan os.Signal) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "MONITOR", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output, intChan)

	case "MONITOR":
		err = monitorMode(md, output, intChan)

	case "VERSION":
		fmt.Fprintln(output, version.String())
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// options common to all modes
type options struct {
	prefsFile *string
	prefs     *string
	trace     *bool
	limit     *int
	echo      *bool
	stats     *bool
}

func addOptions(md *modalflag.Modes) options {
	return options{
		prefsFile: md.AddString("prefsfile", "", "preferences file. defaults to the file in the resource directory"),
		prefs:     md.AddString("prefs", "", "preferences for this session (eg. \"corsim0.ram.size::65536\")"),
		trace:     md.AddBool("trace", false, "log every instruction executed"),
		limit:     md.AddInt("limit", -1, "maximum number of instructions to execute. zero for no limit"),
		echo:      md.AddBool("echo", false, "echo log to stdout"),
		stats:     md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address)),
	}
}

// session is the machine and the cleanup function for a single mode
type session struct {
	machine *hardware.Machine
	end     func()
}

// prepare the machine according to the options and load the image file.
func prepare(md *modalflag.Modes, opts options, output io.Writer) (*session, error) {
	if len(md.RemainingArgs()) != 1 {
		return nil, fmt.Errorf("program image required for %s mode", md)
	}

	// set debugging log echo
	if *opts.echo {
		logger.SetEcho(output, true)
	} else {
		logger.SetEcho(nil, false)
	}

	sess := &session{end: func() {}}

	if *opts.stats {
		if statsview.Available() {
			sess.end = statsview.Launch(output)
		} else {
			fmt.Fprintln(output, "! statsview not available in this build")
		}
	}

	prefsFile := *opts.prefsFile
	if prefsFile == "" {
		var err error
		prefsFile, err = resources.JoinPath(prefs.DefaultPrefsFile)
		if err != nil {
			sess.end()
			return nil, err
		}
	}

	// command line preferences are pushed onto the stack before the
	// preferences are loaded from disk
	cl := []string{*opts.prefs}
	if *opts.trace {
		cl = append(cl, "corsim0.trace::true")
	}
	if *opts.limit >= 0 {
		cl = append(cl, fmt.Sprintf("corsim0.stepLimit::%d", *opts.limit))
	}
	prefs.PushCommandLineStack(strings.Join(cl, "; "))

	p, err := preferences.NewPreferences(prefsFile)
	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "corsim0", "unused preferences: %s", unused)
	}
	if err != nil {
		sess.end()
		return nil, err
	}

	sess.machine, err = hardware.NewMachine(p)
	if err != nil {
		sess.end()
		return nil, err
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		sess.end()
		return nil, err
	}
	defer f.Close()

	if err := sess.machine.LoadImage(f); err != nil {
		sess.end()
		return nil, err
	}

	return sess, nil
}

func run(md *modalflag.Modes, output io.Writer, intChan chan os.Signal) error {
	md.NewMode()
	opts := addOptions(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sess, err := prepare(md, opts, output)
	if err != nil {
		return err
	}
	defer sess.end()

	res, err := sess.machine.Run(func() (bool, error) {
		select {
		case <-intChan:
			return false, curated.Errorf(monitor.UserInterrupt)
		default:
		}
		return true, nil
	})

	fmt.Fprintln(output, translate.From("%d instructions in %d cycles", res.Steps, res.Cycles))

	if err != nil {
		return err
	}

	switch {
	case res.Limited:
		fmt.Fprintln(output, "step limit reached")
	case res.Fault != nil:
		fmt.Fprintf(output, "halted: %v\n", res.Fault)
	}
	fmt.Fprint(output, sess.machine.CPU.Dump())

	return nil
}

func monitorMode(md *modalflag.Modes, output io.Writer, intChan chan os.Signal) error {
	md.NewMode()
	opts := addOptions(md)
	script := md.AddString("script", "", "read monitor commands from file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	sess, err := prepare(md, opts, output)
	if err != nil {
		return err
	}
	defer sess.end()

	var term monitor.Terminal
	if *script != "" {
		f, err := os.Open(*script)
		if err != nil {
			return err
		}
		defer f.Close()
		term = monitor.NewPlainTerminal(f, output, false)
	} else {
		term = monitor.NewConsole()
	}

	mon := monitor.NewMonitor(sess.machine, term)
	mon.SetInterrupt(intChan)

	return mon.Run()
}
