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

package script_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/inputport"
	"github.com/jetsetilly/tasedit/machine"
	"github.com/jetsetilly/tasedit/movie"
	"github.com/jetsetilly/tasedit/script"
	"github.com/jetsetilly/tasedit/tas"
	"github.com/jetsetilly/tasedit/test"
)

func newScript(t *testing.T, numFrames int) (*script.Script, *tas.Controller, *test.CompareWriter) {
	t.Helper()
	p, err := inputport.NewPort(inputport.SNES)
	test.DemandSuccess(t, err)
	m, err := machine.NewMachine(p, "NTSC")
	test.DemandSuccess(t, err)
	ctl, err := tas.NewController(m, movie.NewLog(p, numFrames))
	test.DemandSuccess(t, err)
	cw := &test.CompareWriter{}
	scr := script.NewScript(ctl, cw)
	t.Cleanup(scr.Close)
	return scr, ctl, cw
}

func TestQueries(t *testing.T) {
	scr, _, cw := newScript(t, 10)
	err := scr.Run(context.Background(), `
		print(frames(), view(), simulated(), selected())
		catchup()
		print(simulated(), covers(1), covers(2))
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cw.Compare("10\t0\t0\t0\n1\ttrue\tfalse\n"), cw.String())
}

func TestEdit(t *testing.T) {
	scr, ctl, cw := newScript(t, 10)
	err := scr.Run(context.Background(), `
		press(3, "R")
		press(3, "A")
		press(4, "A")
		press(4, "A", false)
		insert(0, 2)
		print(frames(), buttons(5), buttons(6))
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cw.Compare("12\t.......RA...\t............\n"), cw.String())
	test.ExpectEquality(t, ctl.Log().Len(), 12)
}

func TestRun(t *testing.T) {
	scr, ctl, _ := newScript(t, 100)
	err := scr.Run(context.Background(), `
		run(30)
		if view() ~= 30 then error("view is " .. view()) end
		seek(10)
		run(5)
	`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ctl.ViewCursor(), 15)
	test.ExpectEquality(t, ctl.SimulatedFrames(), 16)
	_, ok := ctl.RunMode().(tas.Paused)
	test.ExpectSuccess(t, ok)

	// running beyond the end of the log stops at the end
	test.DemandSuccess(t, scr.Run(context.Background(), `run(1000)`))
	test.ExpectEquality(t, ctl.ViewCursor(), 99)
}

func TestRecord(t *testing.T) {
	scr, ctl, cw := newScript(t, 10)
	err := scr.Run(context.Background(), `
		record("insert", 4, "U", "B")
		print(view(), frames(), buttons(1), buttons(5))
		record("overwrite", 2, "D")
		print(view(), frames(), buttons(5), buttons(6))
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cw.Compare("4\t14\tB...U.......\t............\n6\t14\t.....D......\t.....D......\n"), cw.String())
	test.ExpectEquality(t, ctl.Log().Len(), 14)
}

func TestDigest(t *testing.T) {
	scr, ctl, cw := newScript(t, 20)
	err := scr.Run(context.Background(), `
		press(2, "L")
		seek(19)
		catchup()
		local a = digest()
		seek(5)
		catchup()
		seek(19)
		catchup()
		print(a == digest())
	`)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, cw.Compare("true\n"), cw.String())
	test.ExpectEquality(t, ctl.Output().Frame, 20)
}

func TestErrors(t *testing.T) {
	scr, _, _ := newScript(t, 10)
	ctx := context.Background()

	test.ExpectFailure(t, scr.Run(ctx, `press(10, "A")`))
	test.ExpectFailure(t, scr.Run(ctx, `press(0, "Z")`))
	test.ExpectFailure(t, scr.Run(ctx, `insert(11)`))
	test.ExpectFailure(t, scr.Run(ctx, `record("sideways", 1)`))
	test.ExpectFailure(t, scr.Run(ctx, `run(-1)`))
	test.ExpectFailure(t, scr.Run(ctx, `this is not lua`))

	err := scr.Run(ctx, `error("boom")`)
	test.ExpectSuccess(t, curated.IsAny(err))

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	test.ExpectFailure(t, scr.Run(cctx, `while true do end`))
}

func TestRunFile(t *testing.T) {
	scr, ctl, _ := newScript(t, 10)
	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("seek(4)\ncatchup()\n"), 0o600))
	test.DemandSuccess(t, scr.RunFile(context.Background(), fn))
	test.ExpectEquality(t, ctl.SimulatedFrames(), 5)
}
