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


// Package modalflag wraps the flag package of the standard library so that a
// command line can be divided into modes, each with its own flags. The tasedit
// command uses it to select between the NEW, PLAY, EDIT and SCRIPT modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubMode("EDIT", "edit a movie in the terminal")
//	md.AddSubMode("PLAY", "replay a movie and print its digest")
//	echo := md.AddBool("log", false, "echo log to stderr")
//
//	switch r, err := md.Parse(); r {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// After Parse() the selected mode is returned by Mode(). The first sub-mode
// added is the default and is chosen when the first non-flag argument does not
// name a sub-mode. In that case the argument is not consumed.
//
// Flags for the selected mode are added after a call to NewMode() and are
// parsed by a second call to Parse():
//
//	md.NewMode()
//	check := md.AddBool("check", true, "compare digest with the movie")
//	_, _ = md.Parse()
//	filename := md.GetArg(0)
//
// The "-help" flag is handled automatically at every level. The usage
// message produced by the flag package is amended with the list of sub-modes
// and any text given to AdditionalHelp().
//
// Sub-mode names are compared case insensitively and are always reported in
// upper case.
package modalflag
