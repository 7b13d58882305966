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

package tas

import (
	"fmt"

	"github.com/jetsetilly/tasedit/assert"
	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/engine"
	"github.com/jetsetilly/tasedit/greenzone"
	"github.com/jetsetilly/tasedit/limiter"
	"github.com/jetsetilly/tasedit/logger"
	"github.com/jetsetilly/tasedit/movie"
)

// EngineFailure is the pattern used for errors returned by the engine.
const EngineFailure = "tas: %v"

// Controller coordinates the input log, the greenzone and the engine.
type Controller struct {
	Prefs *Preferences

	eng  engine.Engine
	log  *movie.Log
	gz   *greenzone.Greenzone
	lmtr *limiter.Limiter

	// the next frame to be simulated by the engine. this is also the index of
	// the greenzone snapshot that matches the current state of the engine
	simulatedFrames int

	// the frame the user is looking at
	viewCursor int

	// the frame the user is editing
	selectedFrame int

	runMode RunMode

	// catch-up is in progress. log entries are suppressed
	catchingUp bool

	// the goroutine that created the controller
	goroutine uint64

	// total number of steps executed
	steps int
}

// NewController is the preferred method of initialisation for the Controller
// type. The current state of the engine is used as the state before frame
// zero. The input log must contain at least one record.
//
// The Controller takes ownership of the engine and the input log.
func NewController(eng engine.Engine, log *movie.Log) (*Controller, error) {
	if log.Len() == 0 {
		return nil, curated.Errorf("tas: input log is empty")
	}

	s, err := eng.Snapshot()
	if err != nil {
		return nil, curated.Errorf(EngineFailure, err)
	}

	ctl := &Controller{
		eng:       eng,
		log:       log,
		gz:        greenzone.NewGreenzone(s, greenzone.DefaultCapacity, greenzone.DefaultRecent),
		lmtr:      limiter.NewLimiter(limiter.DefaultMaxBacklog),
		runMode:   Paused{},
		goroutine: assert.GetGoRoutineID(),
	}

	ctl.Prefs, err = newPreferences(ctl)
	if err != nil {
		return nil, err
	}

	log.SetInvalidator(ctl)

	return ctl, nil
}

func (ctl *Controller) String() string {
	return fmt.Sprintf("view: %d, simulated: %d, selected: %d, %s", ctl.viewCursor, ctl.simulatedFrames, ctl.selectedFrame, ctl.runMode)
}

// AllowLogging implements the logger.Permission interface. Logging is not
// allowed during catch-up.
func (ctl *Controller) AllowLogging() bool {
	return !ctl.catchingUp
}

func (ctl *Controller) checkGoroutine() {
	if ctl.Prefs.CheckGoroutine.Get().(bool) {
		assert.SameGoRoutine("tas", ctl.goroutine)
	}
}

// ViewCursor returns the frame the user is looking at.
func (ctl *Controller) ViewCursor() int {
	return ctl.viewCursor
}

// SimulatedFrames returns the next frame to be simulated.
func (ctl *Controller) SimulatedFrames() int {
	return ctl.simulatedFrames
}

// SelectedFrame returns the frame the user is editing.
func (ctl *Controller) SelectedFrame() int {
	return ctl.selectedFrame
}

// Log returns the input log. Changes to the log are seen by the Controller.
func (ctl *Controller) Log() *movie.Log {
	return ctl.log
}

// Greenzone returns the greenzone. It should not be changed except through
// the Controller.
func (ctl *Controller) Greenzone() *greenzone.Greenzone {
	return ctl.gz
}

// Limiter returns the limiter used by Tick().
func (ctl *Controller) Limiter() *limiter.Limiter {
	return ctl.lmtr
}

// Output returns the output of the most recent step.
func (ctl *Controller) Output() engine.Output {
	return ctl.eng.Output()
}

// Steps returns the total number of steps executed by the engine.
func (ctl *Controller) Steps() int {
	return ctl.steps
}

// Step simulates the frame at the simulated frames cursor and saves the
// resulting state in the greenzone. If the view cursor is behind the newly
// simulated frame it is moved forward to it, along with the selected frame
// if the selection is locked.
//
// Stepping beyond the end of the input log will cause a panic.
func (ctl *Controller) Step() error {
	ctl.checkGoroutine()

	err := ctl.eng.Step(ctl.log.Frame(ctl.simulatedFrames))
	if err != nil {
		logger.Logf(ctl, "tas", "step failed on frame %d: %v", ctl.simulatedFrames, err)
		return curated.Errorf(EngineFailure, err)
	}
	ctl.simulatedFrames++
	ctl.steps++

	s, err := ctl.eng.Snapshot()
	if err != nil {
		return curated.Errorf(EngineFailure, err)
	}
	ctl.gz.Save(ctl.simulatedFrames, s)

	if ctl.viewCursor < ctl.simulatedFrames-1 {
		n := ctl.simulatedFrames - 1 - ctl.viewCursor
		ctl.viewCursor += n
		if ctl.SelectionLocked() {
			ctl.selectedFrame += n
		}
	}

	return nil
}

// restore engine to the nearest snapshot at or before frame
func (ctl *Controller) restore(frame int) error {
	f, s := ctl.gz.Restore(frame)
	if err := ctl.eng.Plumb(s); err != nil {
		return curated.Errorf(EngineFailure, err)
	}
	ctl.simulatedFrames = f
	return nil
}

// InvalidateAfter removes every greenzone snapshot after the frame. The
// snapshot for the frame itself is still valid but the input record for that
// frame is about to change.
//
// If the engine has simulated beyond the frame it is restored to the nearest
// remaining snapshot. The engine is not advanced.
//
// InvalidateAfter implements the movie.Invalidator interface.
func (ctl *Controller) InvalidateAfter(frame int) error {
	ctl.checkGoroutine()

	ctl.gz.Invalidate(frame)
	if ctl.simulatedFrames > frame {
		return ctl.restore(frame)
	}
	return nil
}

// SeekTo moves the view cursor to the frame and restores the engine to the
// nearest snapshot at or before the frame. The frame is clamped to the length
// of the input log.
//
// The engine is not advanced. Catch-up will simulate the frames between the
// restored snapshot and the view cursor.
func (ctl *Controller) SeekTo(frame int) error {
	ctl.checkGoroutine()

	frame = min(max(frame, 0), ctl.log.Len()-1)
	ctl.viewCursor = frame
	return ctl.restore(frame)
}

// RunMode returns the current RunMode.
func (ctl *Controller) RunMode() RunMode {
	return ctl.runMode
}

// SetRunMode changes the current RunMode. A nil RunMode is the same as Paused.
//
// The Pending record of an Insert or Overwrite RecordMode must be exactly one
// record in length.
func (ctl *Controller) SetRunMode(mode RunMode) {
	ctl.checkGoroutine()

	if mode == nil {
		mode = Paused{}
	}

	if r, ok := mode.(Running); ok {
		r.Record = recordMode(r.Record)
		switch rec := r.Record.(type) {
		case Insert:
			ctl.checkPending(rec.Pending)
		case Overwrite:
			ctl.checkPending(rec.Pending)
		}
		mode = r
	}

	if mode.String() != ctl.runMode.String() {
		logger.Logf(ctl, "tas", "%s at frame %d", mode, ctl.viewCursor)
	}
	ctl.runMode = mode
}

func (ctl *Controller) checkPending(rec []byte) {
	if len(rec) != ctl.log.FrameSize() {
		panic(curated.Errorf("tas: pending record is %d bytes but frame size is %d", len(rec), ctl.log.FrameSize()))
	}
}

// Record is a convenience function that sets the RunMode to Running with the
// specified RecordMode and stopping point.
func (ctl *Controller) Record(rec RecordMode, stopAt *int) {
	ctl.SetRunMode(Running{StopAt: stopAt, Record: rec})
}

// TogglePlayback switches between Paused and Running in ReadOnly mode.
func (ctl *Controller) TogglePlayback() {
	switch ctl.runMode.(type) {
	case Paused:
		ctl.SetRunMode(Running{Record: ReadOnly{}})
	default:
		ctl.SetRunMode(Paused{})
	}
}
