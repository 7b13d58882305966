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

package pianoroll_test

import (
	"testing"

	"github.com/jetsetilly/tasedit/inputport"
	"github.com/jetsetilly/tasedit/machine"
	"github.com/jetsetilly/tasedit/movie"
	"github.com/jetsetilly/tasedit/pianoroll"
	"github.com/jetsetilly/tasedit/tas"
	"github.com/jetsetilly/tasedit/test"
)

func TestWindow(t *testing.T) {
	test.ExpectEquality(t, pianoroll.Window(0, 100, 10), 0)
	test.ExpectEquality(t, pianoroll.Window(50, 100, 10), 45)
	test.ExpectEquality(t, pianoroll.Window(99, 100, 10), 90)
	test.ExpectEquality(t, pianoroll.Window(3, 5, 10), 0)
}

func TestRender(t *testing.T) {
	p, err := inputport.NewPort(inputport.NES)
	test.DemandSuccess(t, err)
	m, err := machine.NewMachine(p, "NTSC")
	test.DemandSuccess(t, err)
	l := movie.NewLog(p, 6)
	ctl, err := tas.NewController(m, l)
	test.DemandSuccess(t, err)

	rec := p.Default()
	up, _ := p.Button("U")
	p.Set(rec, up, true)
	test.DemandSuccess(t, l.Overwrite(2, rec))

	test.DemandSuccess(t, ctl.SeekTo(2))
	test.DemandSuccess(t, ctl.CatchUp())
	ctl.SetSelectionLock(false)
	test.DemandSuccess(t, ctl.Select(4))

	rows := pianoroll.Rows(ctl, 0, 100)
	test.DemandEquality(t, len(rows), 6)
	test.ExpectSuccess(t, rows[2].View)
	test.ExpectSuccess(t, rows[4].Selected)
	test.ExpectSuccess(t, rows[3].Greenzone)
	test.ExpectFailure(t, rows[4].Greenzone)

	cw := &test.CompareWriter{}
	pianoroll.Render(cw, ctl, 4, false)

	expected := "          ABsSUDLR \n" +
		">#     2  ....U... \n" +
		" #     3  ........ \n" +
		"       4 [........]\n" +
		"       5  ........ \n"

	test.ExpectSuccess(t, cw.Compare(expected), cw.String())
}
