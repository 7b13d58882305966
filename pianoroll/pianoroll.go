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

// Package pianoroll draws a window of the input log as text, one frame per
// line. Each line shows the frame number, the buttons pressed on that frame
// and markers for the view cursor, the selected frame and the frames that
// have a snapshot in the greenzone.
//
//	>#    12 [..U.A...]
//
// The '>' marks the frame the user is looking at and the '#' marks a frame in
// the greenzone. The selected frame is surrounded by brackets.
package pianoroll

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/tasedit/easyterm/ansi"
	"github.com/jetsetilly/tasedit/tas"
)

// Row is a single frame of the piano roll.
type Row struct {
	Frame     int
	View      bool
	Selected  bool
	Greenzone bool
	Buttons   string
}

func (r Row) String() string {
	var v, g byte = ' ', ' '
	if r.View {
		v = '>'
	}
	if r.Greenzone {
		g = '#'
	}
	o, c := ' ', ' '
	if r.Selected {
		o, c = '[', ']'
	}
	return fmt.Sprintf("%c%c%6d %c%s%c", v, g, r.Frame, o, r.Buttons, c)
}

// Window returns the first frame of a window of the specified number of rows
// that contains the focus frame. The focus frame is kept in the middle of the
// window where possible.
func Window(focus int, length int, rows int) int {
	first := focus - rows/2
	first = min(first, length-rows)
	return max(first, 0)
}

// Rows returns the piano roll rows for n frames beginning with the first
// frame. Frames beyond the end of the input log are not included.
func Rows(ctl *tas.Controller, first int, n int) []Row {
	log := ctl.Log()
	port := log.Port()
	gz := ctl.Greenzone()

	first = max(first, 0)
	last := min(first+n, log.Len())

	rows := make([]Row, 0, max(last-first, 0))
	for f := first; f < last; f++ {
		rows = append(rows, Row{
			Frame:     f,
			View:      f == ctl.ViewCursor(),
			Selected:  f == ctl.SelectedFrame(),
			Greenzone: gz.Covers(f),
			Buttons:   port.Describe(log.Frame(f)),
		})
	}
	return rows
}

// Header returns the column header for the piano roll. The button labels line
// up with the button columns of the rows.
func Header(ctl *tas.Controller) string {
	return fmt.Sprintf("%s%s ", strings.Repeat(" ", 10), strings.Join(ctl.Log().Port().Buttons(), ""))
}

// Status returns a single line summary of the state of the controller.
func Status(ctl *tas.Controller) string {
	return fmt.Sprintf("frame %d/%d  selected %d  simulated %d  greenzone %s  %s",
		ctl.ViewCursor(), ctl.Log().Len()-1, ctl.SelectedFrame(), ctl.SimulatedFrames(),
		ctl.Greenzone(), ctl.RunMode())
}

// Render writes a window of rows to the io.Writer, centred on the selected
// frame. If color is true, the row of the view cursor and the selected row are
// highlighted with ANSI sequences.
func Render(w io.Writer, ctl *tas.Controller, rows int, color bool) {
	first := Window(ctl.SelectedFrame(), ctl.Log().Len(), rows)

	io.WriteString(w, Header(ctl))
	io.WriteString(w, "\n")

	for _, r := range Rows(ctl, first, rows) {
		s := r.String()
		if color {
			switch {
			case r.Selected:
				s = fmt.Sprintf("%s%s%s", ansi.PenStyles["inverse"], s, ansi.NormalPen)
			case r.View:
				s = fmt.Sprintf("%s%s%s", ansi.Pens["yellow"], s, ansi.NormalPen)
			case r.Greenzone:
				s = fmt.Sprintf("%s%s%s", ansi.Pens["green"], s, ansi.NormalPen)
			}
		}
		io.WriteString(w, s)
		io.WriteString(w, "\n")
	}
}
