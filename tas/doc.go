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

// Package tas contains the Controller type, which coordinates the input log,
// the greenzone and the simulation engine.
//
// The Controller maintains three cursors:
//
//	simulated frames: the next frame the engine will simulate
//	view cursor: the frame the user is looking at
//	selected frame: the frame the user is editing
//
// In the normal course of things the view cursor is one less than the number
// of simulated frames. In other words, the engine has just produced the frame
// the user is looking at.
//
// A seek moves the view cursor immediately but the engine is only restored to
// the nearest snapshot in the greenzone. The gap between the restored frame
// and the view cursor is closed by "catch-up", which happens during calls to
// Tick() or, explicitly, through CatchUpStep() and CatchUp().
//
// Any change to the input log causes the greenzone to be invalidated from the
// point of the change. If the engine has simulated beyond the change it is
// restored to the nearest valid snapshot and the gap is again closed by
// catch-up.
//
// Tick() should be called once per host frame with the current time. Time is
// converted into a number of owed steps and those steps are first used for
// catch-up and then, if the run mode is Running, for playback or recording.
//
// The Controller is not safe for concurrent use. With the tas.checkGoroutine
// preference enabled, the Controller will panic if it is used by a goroutine
// other than the one that created it.
package tas
