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

// Package movie contains the Log type, the editable sequence of input records
// that drives a simulation. Every record in the Log has the frame size of the
// input port the Log was created for.
//
// The Log never shrinks. Records can be overwritten in place or new records
// can be inserted, shifting all later records forward.
//
// Any change to the Log alters the history of the simulation from the point of
// the change onwards. Before a change is made the Log notifies its Invalidator
// so that anything computed from the old contents of the Log can be discarded.
package movie

import (
	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/inputport"
)

// Invalidator is notified by the Log before a record changes. The frame
// argument is the index of the earliest changed record. Anything computed
// using the records after that frame is no longer valid.
type Invalidator interface {
	InvalidateAfter(frame int) error
}

// Log is an ordered sequence of fixed-size input records.
type Log struct {
	port inputport.Port
	size int
	data []byte
	inv  Invalidator
}

// NewLog is the preferred method of initialisation for the Log type. The Log
// begins with numFrames default records.
func NewLog(port inputport.Port, numFrames int) *Log {
	l := &Log{
		port: port,
		size: port.FrameSize(),
	}
	if l.size <= 0 {
		panic(curated.Errorf("movie: %s port has a frame size of zero", port))
	}

	d := port.Default()
	l.data = make([]byte, 0, numFrames*l.size)
	for i := 0; i < numFrames; i++ {
		l.data = append(l.data, d...)
	}

	return l
}

// NewLogFromBytes creates a Log from raw record data. The length of the data
// must be a multiple of the port's frame size.
func NewLogFromBytes(port inputport.Port, data []byte) (*Log, error) {
	l := NewLog(port, 0)
	if len(data)%l.size != 0 {
		return nil, curated.Errorf("movie: data length (%d) is not a multiple of %s frame size (%d)", len(data), port, l.size)
	}
	l.data = make([]byte, len(data))
	copy(l.data, data)
	return l, nil
}

// SetInvalidator sets the Invalidator to be notified before the Log changes.
func (l *Log) SetInvalidator(inv Invalidator) {
	l.inv = inv
}

// Port returns the input port the Log was created for.
func (l *Log) Port() inputport.Port {
	return l.port
}

// FrameSize is the size of every record in the Log.
func (l *Log) FrameSize() int {
	return l.size
}

// Len returns the number of records in the Log.
func (l *Log) Len() int {
	return len(l.data) / l.size
}

func (l *Log) checkIndex(i int) {
	if i < 0 || i >= l.Len() {
		panic(curated.Errorf("movie: frame %d out of range (length %d)", i, l.Len()))
	}
}

// Frame returns a copy of record i. Panics if i is out of range.
func (l *Log) Frame(i int) []byte {
	l.checkIndex(i)
	f := make([]byte, l.size)
	copy(f, l.data[i*l.size:])
	return f
}

func (l *Log) invalidate(i int) error {
	if l.inv == nil {
		return nil
	}
	if err := l.inv.InvalidateAfter(i); err != nil {
		return curated.Errorf("movie: %v", err)
	}
	return nil
}

// Overwrite replaces the contents of record i. The length of b must be the
// frame size and i must be in range. A violation of either condition is a
// programming error and will result in a panic.
func (l *Log) Overwrite(i int, b []byte) error {
	if len(b) != l.size {
		panic(curated.Errorf("movie: overwrite of %d bytes, expected %d", len(b), l.size))
	}
	l.checkIndex(i)

	if err := l.invalidate(i); err != nil {
		return err
	}

	copy(l.data[i*l.size:], b)
	return nil
}

// Insert adds one or more records at position i. Records at i and beyond are
// moved forward. The length of b must be a multiple of the frame size and i
// must be in the range 0 to Len() inclusive. A violation of either condition
// is a programming error and will result in a panic.
func (l *Log) Insert(i int, b []byte) error {
	if len(b)%l.size != 0 {
		panic(curated.Errorf("movie: insert of %d bytes is not a multiple of %d", len(b), l.size))
	}
	if i < 0 || i > l.Len() {
		panic(curated.Errorf("movie: insert at frame %d out of range (length %d)", i, l.Len()))
	}
	if len(b) == 0 {
		return nil
	}

	if err := l.invalidate(i); err != nil {
		return err
	}

	idx := i * l.size
	l.data = append(l.data[:idx], append(append([]byte{}, b...), l.data[idx:]...)...)
	return nil
}

// Append adds records to the end of the Log.
func (l *Log) Append(b []byte) error {
	return l.Insert(l.Len(), b)
}

// Bytes returns a copy of the raw record data.
func (l *Log) Bytes() []byte {
	c := make([]byte, len(l.data))
	copy(c, l.data)
	return c
}
