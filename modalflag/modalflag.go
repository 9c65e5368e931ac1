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

package modalflag

import (
	"errors"
	"flag"
	"io"
	"slices"
	"strings"
)

// Modes parses a command line made of nested modes, each with its own flags.
// For example:
//
//	corsim0 MONITOR -trace image.bin
//
// Set Output before calling Parse() if help messages are wanted.
type Modes struct {
	Output io.Writer

	// recreated by NewMode()
	flags *flag.FlagSet
	help  string

	// modes that may follow the flags of the current layer. the first is
	// the default
	subModes []string

	// the full command line and the index of the first argument belonging
	// to the current layer
	args  []string
	start int

	// every mode selected so far
	path []string
}

// ParseResult says how the caller should proceed after Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// ParseContinue means the layer parsed cleanly. Check Mode() if
	// sub-modes were added.
	ParseContinue ParseResult = iota

	// ParseHelp means help was requested and has been written to Output.
	ParseHelp

	// ParseError means the error returned alongside should be reported.
	ParseError
)

// NewArgs starts parsing a new command line.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.start = 0
	md.path = md.path[:0]
	md.NewMode()
}

// NewMode begins a new layer. Flags and sub-modes added after this call
// apply to the arguments following the most recently selected mode.
func (md *Modes) NewMode() {
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.subModes = md.subModes[:0]
	md.help = ""
}

// AdditionalHelp is printed after the flag and sub-mode summary.
func (md *Modes) AdditionalHelp(help string) {
	md.help = help
}

// AddSubModes adds to the modes that may be selected by the first argument
// after the flags. The first sub-mode added to a layer is the default. Matching is
// case insensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Parse the current layer. A ParseHelp result means there is nothing more to
// do but it is not an error.
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
func (md *Modes) Parse() (ParseResult, error) {
	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.start:])
	switch {
	case errors.Is(err, flag.ErrHelp):
		if md.Output != nil {
			hw.help(md.Output, md.Path(), md.subModes, md.help)
		}
		return ParseHelp, nil

	case err != nil:
		// a flag this layer does not know may belong to the default mode,
		// which will parse the same arguments again
		if len(md.subModes) == 0 {
			return ParseError, err
		}
		md.path = append(md.path, md.subModes[0])
		return ParseContinue, nil
	}

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0]
	if arg := strings.ToUpper(md.flags.Arg(0)); slices.Contains(md.subModes, arg) {
		mode = arg
		md.start = len(md.args) - md.flags.NArg() + 1
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every selected mode, separated by slashes.
func (md *Modes) Path() string {
	return strings.Join(md.path, "/")
}

func (md *Modes) String() string {
	return md.Path()
}

// RemainingArgs returns the arguments of the current layer that are neither
// flags nor a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns one of RemainingArgs(), or the empty string.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}
