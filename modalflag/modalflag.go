// This file is part of Tasedit.
//
// Tasedit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Tasedit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Tasedit.  If not, see <https://www.gnu.org/licenses/>.


package modalflag

import (
	"flag"
	"io"
	"os"
	"strings"
	"time"
)

const modeSeparator = "/"

// SubMode is a named mode that may follow the flags of the current mode.
type SubMode struct {
	Name string
	Help string
}

// Modes handles command line arguments that are arranged as a series of flags
// and sub-modes. For example:
//
//	tasedit -log PLAY -check movie.tas
//
// The PLAY sub-mode is found by the first call to Parse() and the -check flag
// is found by the second call, after NewMode() has been called.
type Modes struct {
	// where help messages are written. defaults to os.Stdout
	Output io.Writer

	// a new flagset is created on every call to NewArgs() and NewMode()
	flags *flag.FlagSet

	args    []string
	argsIdx int

	// sub-modes for the next call to Parse(). the first entry is the default
	subModes []SubMode

	// modes found so far. never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recent mode found by Parse().
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns all the modes found so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs resets the argument list and begins a new mode.
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode indicates that remaining arguments belong to a new mode. Flags and
// sub-modes from the previous mode are forgotten.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.additionalHelp = ""
}

// AdditionalHelp is printed after the flag and sub-mode information.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// ParseResult is returned by Parse().
type ParseResult int

// List of valid ParseResult values.
const (
	// command line processing should continue. if sub-modes were added then
	// Mode() will say which one was selected
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// an error occurred and is returned alongside the result
	ParseError
)

// Parse the current layer of arguments:
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// If sub-modes have been added and the first argument after the flags does
// not name one, the default sub-mode is selected and the argument is left for
// the next layer.
func (md *Modes) Parse() (ParseResult, error) {
	if md.Output == nil {
		md.Output = os.Stdout
	}

	hw := &helpWriter{}
	md.flags.SetOutput(hw)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err != nil {
		if err == flag.ErrHelp {
			hw.help(md.Output, md.Path(), md.subModes, md.additionalHelp)
			return ParseHelp, nil
		}
		return ParseError, err
	}

	// flags consumed by this layer
	md.argsIdx = len(md.args) - md.flags.NArg()

	if len(md.subModes) == 0 {
		return ParseContinue, nil
	}

	mode := md.subModes[0].Name
	if arg := strings.ToUpper(md.flags.Arg(0)); arg != "" {
		for _, s := range md.subModes {
			if s.Name == arg {
				mode = arg
				md.argsIdx++
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.args[md.argsIdx:]
}

// GetArg returns the numbered argument from RemainingArgs(). Returns the
// empty string if there is no such argument.
func (md *Modes) GetArg(i int) string {
	r := md.RemainingArgs()
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// AddSubModes adds sub-modes without help text. The first sub-mode ever added
// is the default unless AddDefaultSubMode() is used. Names are compared case
// insensitively.
func (md *Modes) AddSubModes(names ...string) {
	for _, n := range names {
		md.AddSubMode(n, "")
	}
}

// AddSubMode adds a single sub-mode with a line of help text.
func (md *Modes) AddSubMode(name string, help string) {
	md.subModes = append(md.subModes, SubMode{Name: strings.ToUpper(name), Help: help})
}

// AddDefaultSubMode adds a sub-mode and makes it the default.
func (md *Modes) AddDefaultSubMode(name string, help string) {
	md.subModes = append([]SubMode{{Name: strings.ToUpper(name), Help: help}}, md.subModes...)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddFloat64 flag for next call to Parse().
func (md *Modes) AddFloat64(name string, value float64, usage string) *float64 {
	return md.flags.Float64(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// Visit calls fn for every flag that was set on the command line, in
// lexicographical order.
func (md *Modes) Visit(fn func(name string, value string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name, f.Value.String())
	})
}
