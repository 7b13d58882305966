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

package inputport_test

import (
	"testing"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/inputport"
	"github.com/jetsetilly/tasedit/test"
)

func TestNewPort(t *testing.T) {
	for _, id := range inputport.Available {
		p, err := inputport.NewPort(id)
		test.DemandSuccess(t, err, id)
		test.ExpectEquality(t, p.ID(), id)
		test.ExpectEquality(t, len(p.Default()), p.FrameSize(), id)

		// nothing is pressed in the default record
		d := p.Default()
		for i := range p.Buttons() {
			test.ExpectFailure(t, p.Pressed(d, i), id, i)
		}
	}

	p, err := inputport.NewPort("snes")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.ID(), inputport.SNES)

	_, err = inputport.NewPort("N64")
	test.ExpectSuccess(t, curated.Is(err, inputport.UnknownPort))
}

func TestVCSDefault(t *testing.T) {
	p, err := inputport.NewPort(inputport.VCS)
	test.DemandSuccess(t, err)

	d := p.Default()
	test.ExpectEquality(t, d[0], uint8(0xf0))
	test.ExpectEquality(t, d[1], uint8(0x80))

	fire, ok := p.Button("F")
	test.DemandSuccess(t, ok)
	p.Set(d, fire, true)
	test.ExpectEquality(t, d[1], uint8(0x00))
	test.ExpectSuccess(t, p.Pressed(d, fire))

	left, _ := p.Button("L")
	p.Set(d, left, true)
	test.ExpectEquality(t, d[0], uint8(0xb0))
	test.ExpectEquality(t, p.Describe(d), "..L.F")

	p.Set(d, left, false)
	test.ExpectEquality(t, d[0], uint8(0xf0))
}

func TestSNESButtons(t *testing.T) {
	p, err := inputport.NewPort(inputport.SNES)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(p.Buttons()), 12)

	d := p.Default()
	test.ExpectEquality(t, d[0], uint8(0x00))
	test.ExpectEquality(t, d[1], uint8(0x00))

	a, ok := p.Button("A")
	test.DemandSuccess(t, ok)
	p.Set(d, a, true)
	test.ExpectEquality(t, d[1], uint8(0x01))
	test.ExpectEquality(t, p.Describe(d), "........A...")

	_, ok = p.Button("Z")
	test.ExpectFailure(t, ok)
}

func TestBadRecord(t *testing.T) {
	p, err := inputport.NewPort(inputport.NES)
	test.DemandSuccess(t, err)
	test.ExpectPanic(t, func() {
		p.Pressed([]byte{0, 0}, 0)
	})
	test.ExpectPanic(t, func() {
		p.Set(p.Default(), 8, true)
	})
}
