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

// Package engine defines the interface between the replay controller and the
// simulation it drives. The simulation is an opaque, deterministic state
// machine. Given the same starting state and the same sequence of input
// records it must always arrive at the same state and produce the same
// output.
//
// The machine package contains an implementation of the Engine interface.
package engine

// Snapshot is the serialised state of an Engine. A Snapshot taken after the
// input for frame F-1 has been executed is the state the Engine is in
// immediately before it simulates frame F.
//
// A Snapshot is self-contained and must not share memory with the Engine that
// created it.
type Snapshot []byte

// Clone returns a copy of the snapshot that shares no memory with the
// original.
func (s Snapshot) Clone() Snapshot {
	if s == nil {
		return nil
	}
	c := make(Snapshot, len(s))
	copy(c, s)
	return c
}

// Output is the result of the most recent call to Step().
type Output struct {
	// the frame number the output belongs to. this is the number of frames
	// that have been simulated since the initial state
	Frame int

	// the pixels of the frame. the layout is engine specific
	Pixels []byte

	// a digest of the output that also takes into account all previous
	// outputs. two engines with the same Hash have produced the same sequence
	// of outputs
	Hash string
}

// Engine is the simulation driven by the replay controller. An Engine is not
// reentrant and is only ever used by a single goroutine.
type Engine interface {
	// Step advances the simulation by exactly one frame using the input
	// record.
	Step(input []byte) error

	// Output returns the output of the most recent Step().
	Output() Output

	// Snapshot serialises the entire state of the simulation.
	Snapshot() (Snapshot, error)

	// Plumb restores the simulation to the state in the Snapshot. The Engine
	// must not retain or modify the Snapshot.
	Plumb(Snapshot) error

	// FrameRate is the nominal number of steps per real second.
	FrameRate() float64
}
