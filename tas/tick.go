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
	"time"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/logger"
)

// CatchUpPending returns true if the engine has not yet produced the frame
// the user is looking at. The target of the catch-up (the view cursor) is
// also returned.
func (ctl *Controller) CatchUpPending() (int, bool) {
	return ctl.viewCursor, ctl.viewCursor >= ctl.simulatedFrames && ctl.simulatedFrames < ctl.log.Len()
}

// CatchUpStep performs a single step of catch-up, if catch-up is pending.
// Returns true if a step was taken.
func (ctl *Controller) CatchUpStep() (bool, error) {
	if _, ok := ctl.CatchUpPending(); !ok {
		return false, nil
	}

	ctl.catchingUp = true
	defer func() {
		ctl.catchingUp = false
	}()

	if err := ctl.Step(); err != nil {
		return false, err
	}
	return true, nil
}

// CatchUp steps the engine until catch-up is no longer pending. It does not
// wait for real time to pass.
func (ctl *Controller) CatchUp() error {
	for {
		ok, err := ctl.CatchUpStep()
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// Tick should be called once per host frame with the current time. The time
// since the previous call to Tick() is converted into steps owed and those
// steps are used first for catch-up and then for running, depending on the
// RunMode.
func (ctl *Controller) Tick(now time.Time) error {
	ctl.checkGoroutine()

	dropped := ctl.lmtr.Accumulate(now, ctl.eng.FrameRate())

	for ctl.lmtr.Whole() {
		ok, err := ctl.CatchUpStep()
		if err != nil {
			return err
		}
		if !ok {
			break
		}
		ctl.lmtr.Consume()
	}

	if !ctl.lmtr.Whole() {
		return nil
	}

	running, ok := ctl.runMode.(Running)
	if !ok {
		return nil
	}

	if dropped >= 1.0 {
		logger.Logf(ctl, "limiter", "running slowly: %.0f frames dropped", dropped)
	}

	for ctl.lmtr.Whole() {
		if running.StopAt != nil && ctl.viewCursor >= *running.StopAt {
			ctl.SetRunMode(Paused{})
			return nil
		}

		next := ctl.viewCursor + 1

		switch rec := recordMode(running.Record).(type) {
		case ReadOnly:
			if next >= ctl.log.Len() {
				ctl.SetRunMode(Paused{})
				return nil
			}
		case Insert:
			if err := ctl.log.Insert(next, rec.Pending); err != nil {
				return err
			}
		case Overwrite:
			var err error
			if next >= ctl.log.Len() {
				err = ctl.log.Append(rec.Pending)
			} else {
				err = ctl.log.Overwrite(next, rec.Pending)
			}
			if err != nil {
				return err
			}
		}

		if ctl.simulatedFrames != next {
			panic(curated.Errorf("tas: running from frame %d but the engine is at frame %d", next, ctl.simulatedFrames))
		}

		if err := ctl.Step(); err != nil {
			return err
		}
		ctl.lmtr.Consume()
	}

	return nil
}
