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
	"fmt"
	"io"
	"strings"
)

// helpWriter collects the usage output of the flag package so that it can be
// amended with sub-mode information.
type helpWriter struct {
	buffer strings.Builder
}

func (hw *helpWriter) Write(p []byte) (int, error) {
	return hw.buffer.Write(p)
}

func (hw *helpWriter) help(output io.Writer, path string, subModes []SubMode, additionalHelp string) {
	lines := strings.Split(strings.TrimRight(hw.buffer.String(), "\n"), "\n")

	// the first line is always the "Usage" banner
	flags := lines[1:]

	if len(flags) == 0 && len(subModes) == 0 && additionalHelp == "" {
		if path == "" {
			fmt.Fprintln(output, "No help available")
		} else {
			fmt.Fprintf(output, "No help available for %s\n", path)
		}
		return
	}

	if path == "" {
		fmt.Fprintln(output, "Usage:")
	} else {
		fmt.Fprintf(output, "Usage for %s mode:\n", path)
	}

	for _, l := range flags {
		fmt.Fprintln(output, l)
	}

	if len(subModes) > 0 {
		if len(flags) > 0 {
			fmt.Fprintln(output)
		}

		w := 0
		for _, s := range subModes {
			w = max(w, len(s.Name))
		}

		fmt.Fprintln(output, "  sub-modes:")
		for i, s := range subModes {
			h := s.Help
			if i == 0 {
				h = strings.TrimSpace(h + " (default)")
			}
			if h == "" {
				fmt.Fprintf(output, "    %s\n", s.Name)
			} else {
				fmt.Fprintf(output, "    %-*s  %s\n", w, s.Name, h)
			}
		}
	}

	if additionalHelp != "" {
		fmt.Fprintln(output)
		fmt.Fprintln(output, additionalHelp)
	}
}
