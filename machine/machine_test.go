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

package machine_test

import (
	"testing"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/engine"
	"github.com/jetsetilly/tasedit/inputport"
	"github.com/jetsetilly/tasedit/machine"
	"github.com/jetsetilly/tasedit/test"
)

func newMachine(t *testing.T, id string) (*machine.Machine, inputport.Port) {
	t.Helper()
	p, err := inputport.NewPort(id)
	test.DemandSuccess(t, err)
	m, err := machine.NewMachine(p, "NTSC")
	test.DemandSuccess(t, err)
	return m, p
}

func TestImplementsEngine(t *testing.T) {
	m, _ := newMachine(t, inputport.SNES)
	var e engine.Engine = m
	test.ExpectApproximate(t, e.FrameRate(), machine.FrameRateNTSC, 0.0001)
}

func TestMovement(t *testing.T) {
	m, p := newMachine(t, inputport.VCS)

	x, y := m.Position()
	test.ExpectEquality(t, x, machine.Width/2)
	test.ExpectEquality(t, y, machine.Height/2)

	rec := p.Default()
	right, _ := p.Button("R")
	p.Set(rec, right, true)
	test.DemandSuccess(t, m.Step(rec))
	test.DemandSuccess(t, m.Step(rec))

	x, y = m.Position()
	test.ExpectEquality(t, x, machine.Width/2+2)
	test.ExpectEquality(t, y, machine.Height/2)
	test.ExpectEquality(t, m.Output().Frame, 2)

	// wrong length of input is an error
	test.ExpectFailure(t, m.Step([]byte{0}))
}

func TestSnapshotDeterminism(t *testing.T) {
	m, p := newMachine(t, inputport.SNES)

	inputs := make([][]byte, 20)
	for i := range inputs {
		inputs[i] = p.Default()
		p.Set(inputs[i], i%len(p.Buttons()), true)
	}

	for _, in := range inputs[:10] {
		test.DemandSuccess(t, m.Step(in))
	}
	snap, err := m.Snapshot()
	test.DemandSuccess(t, err)

	for _, in := range inputs[10:] {
		test.DemandSuccess(t, m.Step(in))
	}
	continuous := m.Output()

	// restore and repeat the same inputs
	test.DemandSuccess(t, m.Plumb(snap))
	test.ExpectEquality(t, m.Output().Frame, 10)
	for _, in := range inputs[10:] {
		test.DemandSuccess(t, m.Step(in))
	}
	replayed := m.Output()

	test.ExpectEquality(t, replayed.Frame, continuous.Frame)
	test.ExpectEquality(t, replayed.Hash, continuous.Hash)
	test.ExpectEquality(t, string(replayed.Pixels), string(continuous.Pixels))
}

func TestDifferentInputDifferentHash(t *testing.T) {
	a, p := newMachine(t, inputport.NES)
	b, _ := newMachine(t, inputport.NES)

	rec := p.Default()
	test.DemandSuccess(t, a.Step(rec))
	right, _ := p.Button("R")
	p.Set(rec, right, true)
	test.DemandSuccess(t, b.Step(rec))

	test.ExpectInequality(t, a.Output().Hash, b.Output().Hash)
}

func TestBadSnapshot(t *testing.T) {
	m, _ := newMachine(t, inputport.NES)
	err := m.Plumb(engine.Snapshot{1, 2, 3})
	test.ExpectSuccess(t, curated.Is(err, machine.BadSnapshot))
}

func TestSpecification(t *testing.T) {
	p, _ := inputport.NewPort(inputport.NES)
	m, err := machine.NewMachine(p, "PAL")
	test.DemandSuccess(t, err)
	test.ExpectApproximate(t, m.FrameRate(), machine.FrameRatePAL, 0.0001)

	_, err = machine.NewMachine(p, "SECAM")
	test.ExpectFailure(t, err)
}
