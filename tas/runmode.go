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

import "fmt"

// RunMode is either Paused or Running.
type RunMode interface {
	fmt.Stringer
	isRunMode()
}

// Paused is the RunMode in which the Controller performs catch-up only.
type Paused struct{}

func (Paused) isRunMode() {}

func (Paused) String() string {
	return "paused"
}

// Running is the RunMode in which the Controller advances the view cursor in
// real time.
type Running struct {
	// the view cursor at which the Controller will switch to Paused. nil
	// means no stopping point
	StopAt *int

	// how the input log is treated during running. nil is the same as
	// ReadOnly
	Record RecordMode
}

func (Running) isRunMode() {}

func (r Running) String() string {
	s := fmt.Sprintf("running [%s]", recordMode(r.Record))
	if r.StopAt != nil {
		s = fmt.Sprintf("%s until %d", s, *r.StopAt)
	}
	return s
}

// StopAt is a convenience function for creating the StopAt field of the
// Running type.
func StopAt(frame int) *int {
	return &frame
}

// RecordMode specifies how the input log is changed during running.
type RecordMode interface {
	fmt.Stringer
	isRecordMode()
}

// ReadOnly plays back the input log without changing it.
type ReadOnly struct{}

func (ReadOnly) isRecordMode() {}

func (ReadOnly) String() string {
	return "read only"
}

// Insert inserts the Pending record after the view cursor before every step.
type Insert struct {
	Pending []byte
}

func (Insert) isRecordMode() {}

func (Insert) String() string {
	return "insert"
}

// Overwrite replaces the record after the view cursor with the Pending record
// before every step. At the end of the input log the Pending record is
// appended.
type Overwrite struct {
	Pending []byte
}

func (Overwrite) isRecordMode() {}

func (Overwrite) String() string {
	return "overwrite"
}

// returns ReadOnly if rec is nil
func recordMode(rec RecordMode) RecordMode {
	if rec == nil {
		return ReadOnly{}
	}
	return rec
}
