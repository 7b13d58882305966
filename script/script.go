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

// Package script runs Lua scripts against a tas.Controller. Scripts can edit
// the input log, move the view cursor and run the simulation. This is useful
// for automating repetitive edits and for regression testing a movie.
//
// The following functions are available to scripts in addition to the
// standard Lua library:
//
//	frames()                      number of frames in the input log
//	view()                        the view cursor
//	simulated()                   number of simulated frames
//	selected()                    the selected frame
//	seek(frame)                   move the view cursor
//	select(frame)                 move the selected frame
//	catchup()                     simulate until the view cursor is reached
//	run(n)                        play n frames in (simulated) real time
//	press(frame, button, [state]) press or release a button on a frame
//	buttons(frame)                the buttons pressed on a frame
//	insert(frame, [count])        insert empty frames
//	record(mode, n, [buttons...]) record n frames in "insert" or "overwrite" mode
//	digest()                      hash of the most recent frame
//	covers(frame)                 whether a frame is in the greenzone
//	log(message)                  add a message to the log
//
// Time during a script is simulated. A call to run() completes as quickly as
// possible regardless of the frame rate of the engine.
package script

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/logger"
	"github.com/jetsetilly/tasedit/tas"
	lua "github.com/yuin/gopher-lua"
)

// Script is a Lua VM bound to a Controller.
type Script struct {
	ctl *tas.Controller
	L   *lua.LState
	out io.Writer

	// simulated time supplied to Tick()
	now time.Time
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the Lua print() function is written to the io.Writer.
func NewScript(ctl *tas.Controller, out io.Writer) *Script {
	scr := &Script{
		ctl: ctl,
		L:   lua.NewState(),
		out: out,
		now: time.Unix(0, 0),
	}

	for name, f := range map[string]lua.LGFunction{
		"frames":    scr.frames,
		"view":      scr.view,
		"simulated": scr.simulated,
		"selected":  scr.selected,
		"seek":      scr.seek,
		"select":    scr.sel,
		"catchup":   scr.catchup,
		"run":       scr.run,
		"press":     scr.press,
		"buttons":   scr.buttons,
		"insert":    scr.insert,
		"record":    scr.record,
		"digest":    scr.digest,
		"covers":    scr.covers,
		"log":       scr.log,
		"print":     scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(f))
	}

	return scr
}

// Close the Lua VM. The Script can't be used after Close().
func (scr *Script) Close() {
	scr.L.Close()
}

// Run the Lua source. The context can be used to stop a long running script.
func (scr *Script) Run(ctx context.Context, src string) error {
	scr.L.SetContext(ctx)
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// RunFile runs the Lua source in the named file.
func (scr *Script) RunFile(ctx context.Context, filename string) error {
	scr.L.SetContext(ctx)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf("script: %v", err)
	}
	return nil
}

// raise a Lua error if err is not nil
func (scr *Script) check(err error) {
	if err != nil {
		scr.L.RaiseError("%v", err)
	}
}

// check that the argument at position n is a valid frame in the input log
func (scr *Script) checkFrame(n int) int {
	f := scr.L.CheckInt(n)
	if f < 0 || f >= scr.ctl.Log().Len() {
		scr.L.ArgError(n, fmt.Sprintf("frame %d is outside of the input log", f))
	}
	return f
}

func (scr *Script) frames(L *lua.LState) int {
	L.Push(lua.LNumber(scr.ctl.Log().Len()))
	return 1
}

func (scr *Script) view(L *lua.LState) int {
	L.Push(lua.LNumber(scr.ctl.ViewCursor()))
	return 1
}

func (scr *Script) simulated(L *lua.LState) int {
	L.Push(lua.LNumber(scr.ctl.SimulatedFrames()))
	return 1
}

func (scr *Script) selected(L *lua.LState) int {
	L.Push(lua.LNumber(scr.ctl.SelectedFrame()))
	return 1
}

func (scr *Script) seek(L *lua.LState) int {
	scr.check(scr.ctl.SeekTo(L.CheckInt(1)))
	return 0
}

func (scr *Script) sel(L *lua.LState) int {
	scr.check(scr.ctl.Select(L.CheckInt(1)))
	return 0
}

func (scr *Script) catchup(L *lua.LState) int {
	scr.check(scr.ctl.CatchUp())
	return 0
}

// tick the controller until it is paused. the number of ticks is limited in
// case the run mode never finishes
func (scr *Script) tickUntilPaused(limit int) {
	period := time.Duration(float64(time.Second) / scr.ctl.Limiter().Requested())

	for i := 0; i < limit; i++ {
		if _, ok := scr.ctl.RunMode().(tas.Paused); ok {
			if _, ok := scr.ctl.CatchUpPending(); !ok {
				return
			}
		}
		scr.now = scr.now.Add(period)
		scr.check(scr.ctl.Tick(scr.now))
	}

	scr.ctl.SetRunMode(tas.Paused{})
	scr.L.RaiseError("controller did not pause after %d ticks", limit)
}

// prepare the limiter for simulated time
func (scr *Script) startTicking() {
	scr.ctl.Limiter().Reset()
	scr.check(scr.ctl.Tick(scr.now))
}

func (scr *Script) run(L *lua.LState) int {
	n := L.CheckInt(1)
	if n < 0 {
		L.ArgError(1, "number of frames cannot be negative")
	}

	scr.startTicking()
	scr.ctl.Record(tas.ReadOnly{}, tas.StopAt(scr.ctl.ViewCursor()+n))
	scr.tickUntilPaused(n*2 + 60)

	return 0
}

func (scr *Script) record(L *lua.LState) int {
	mode := L.CheckString(1)
	n := L.CheckInt(2)
	if n < 0 {
		L.ArgError(2, "number of frames cannot be negative")
	}

	port := scr.ctl.Log().Port()
	rec := port.Default()
	for i := 3; i <= L.GetTop(); i++ {
		b := L.CheckString(i)
		idx, ok := port.Button(b)
		if !ok {
			L.ArgError(i, fmt.Sprintf("%s port has no %s button", port, b))
		}
		port.Set(rec, idx, true)
	}

	var rm tas.RecordMode
	switch mode {
	case "insert":
		rm = tas.Insert{Pending: rec}
	case "overwrite":
		rm = tas.Overwrite{Pending: rec}
	default:
		L.ArgError(1, fmt.Sprintf("unknown record mode (%s)", mode))
	}

	// the view cursor must be reached before recording can start
	scr.check(scr.ctl.CatchUp())

	scr.startTicking()
	scr.ctl.Record(rm, tas.StopAt(scr.ctl.ViewCursor()+n))
	scr.tickUntilPaused(n*2 + 60)

	return 0
}

func (scr *Script) press(L *lua.LState) int {
	f := scr.checkFrame(1)
	b := L.CheckString(2)
	state := L.OptBool(3, true)

	log := scr.ctl.Log()
	port := log.Port()
	idx, ok := port.Button(b)
	if !ok {
		L.ArgError(2, fmt.Sprintf("%s port has no %s button", port, b))
	}

	rec := log.Frame(f)
	port.Set(rec, idx, state)
	scr.check(log.Overwrite(f, rec))

	return 0
}

func (scr *Script) buttons(L *lua.LState) int {
	f := scr.checkFrame(1)
	log := scr.ctl.Log()
	L.Push(lua.LString(log.Port().Describe(log.Frame(f))))
	return 1
}

func (scr *Script) insert(L *lua.LState) int {
	f := L.CheckInt(1)
	if f < 0 || f > scr.ctl.Log().Len() {
		L.ArgError(1, fmt.Sprintf("frame %d is outside of the input log", f))
	}
	n := L.OptInt(2, 1)
	if n < 1 {
		L.ArgError(2, "number of frames must be at least one")
	}

	log := scr.ctl.Log()
	d := log.Port().Default()
	b := make([]byte, 0, len(d)*n)
	for i := 0; i < n; i++ {
		b = append(b, d...)
	}
	scr.check(log.Insert(f, b))

	return 0
}

func (scr *Script) digest(L *lua.LState) int {
	L.Push(lua.LString(scr.ctl.Output().Hash))
	return 1
}

func (scr *Script) covers(L *lua.LState) int {
	L.Push(lua.LBool(scr.ctl.Greenzone().Covers(L.CheckInt(1))))
	return 1
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) print(L *lua.LState) int {
	for i := 1; i <= L.GetTop(); i++ {
		if i > 1 {
			io.WriteString(scr.out, "\t")
		}
		io.WriteString(scr.out, L.ToStringMeta(L.Get(i)).String())
	}
	io.WriteString(scr.out, "\n")
	return 0
}
