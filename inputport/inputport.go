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

// Package inputport describes the binary layout of a single frame of input for
// a controller type. A Port is pure data. It holds no state about which
// buttons are currently pressed; that information lives in the input record,
// a byte slice of exactly FrameSize() bytes.
//
// Each button is a single bit somewhere in the input record. Some layouts are
// active-low, meaning that the bit is clear when the button is pressed. This
// is the case for the VCS joystick, where the record mirrors the SWCHA nibble
// and INPT4 register of the console.
package inputport

import (
	"strings"

	"github.com/jetsetilly/tasedit/curated"
)

// UnknownPort is returned by NewPort() when the ID is not recognised.
const UnknownPort = "inputport: unknown port (%s)"

// button describes the position of a single button in the input record.
type button struct {
	label     string
	offset    int
	mask      uint8
	activeLow bool
}

// Port describes the layout of one frame of input.
type Port struct {
	id      string
	size    int
	buttons []button
}

// List of valid port IDs.
const (
	SNES = "SNES"
	NES  = "NES"
	VCS  = "VCS"
)

// Available lists the IDs accepted by NewPort().
var Available = []string{SNES, NES, VCS}

// NewPort returns the Port for the ID. The ID is not case sensitive.
func NewPort(id string) (Port, error) {
	switch strings.ToUpper(id) {
	case SNES:
		// bit order is the same as the libretro joypad device
		return Port{
			id:   SNES,
			size: 2,
			buttons: []button{
				{label: "B", offset: 0, mask: 0x01},
				{label: "Y", offset: 0, mask: 0x02},
				{label: "s", offset: 0, mask: 0x04},
				{label: "S", offset: 0, mask: 0x08},
				{label: "U", offset: 0, mask: 0x10},
				{label: "D", offset: 0, mask: 0x20},
				{label: "L", offset: 0, mask: 0x40},
				{label: "R", offset: 0, mask: 0x80},
				{label: "A", offset: 1, mask: 0x01},
				{label: "X", offset: 1, mask: 0x02},
				{label: "l", offset: 1, mask: 0x04},
				{label: "r", offset: 1, mask: 0x08},
			},
		}, nil
	case NES:
		return Port{
			id:   NES,
			size: 1,
			buttons: []button{
				{label: "A", offset: 0, mask: 0x01},
				{label: "B", offset: 0, mask: 0x02},
				{label: "s", offset: 0, mask: 0x04},
				{label: "S", offset: 0, mask: 0x08},
				{label: "U", offset: 0, mask: 0x10},
				{label: "D", offset: 0, mask: 0x20},
				{label: "L", offset: 0, mask: 0x40},
				{label: "R", offset: 0, mask: 0x80},
			},
		}, nil
	case VCS:
		// first byte is the joystick nibble as it would appear in the upper
		// half of SWCHA. second byte is the fire button as it would appear in
		// INPT4. both are active low
		return Port{
			id:   VCS,
			size: 2,
			buttons: []button{
				{label: "U", offset: 0, mask: 0x10, activeLow: true},
				{label: "D", offset: 0, mask: 0x20, activeLow: true},
				{label: "L", offset: 0, mask: 0x40, activeLow: true},
				{label: "R", offset: 0, mask: 0x80, activeLow: true},
				{label: "F", offset: 1, mask: 0x80, activeLow: true},
			},
		}, nil
	}

	return Port{}, curated.Errorf(UnknownPort, id)
}

func (p Port) String() string {
	return p.id
}

// ID returns the identifier of the port. The ID can be used with NewPort().
func (p Port) ID() string {
	return p.id
}

// FrameSize is the number of bytes in one input record.
func (p Port) FrameSize() int {
	return p.size
}

// Default returns a new input record in which no button is pressed.
func (p Port) Default() []byte {
	d := make([]byte, p.size)
	for _, b := range p.buttons {
		if b.activeLow {
			d[b.offset] |= b.mask
		}
	}
	return d
}

// Buttons returns the labels of every button in the layout, in layout order.
// The index of a label is the button index used by Pressed() and Set().
func (p Port) Buttons() []string {
	l := make([]string, len(p.buttons))
	for i, b := range p.buttons {
		l[i] = b.label
	}
	return l
}

// Button returns the index of the button with the label. Returns false if
// there is no such button.
func (p Port) Button(label string) (int, bool) {
	for i, b := range p.buttons {
		if b.label == label {
			return i, true
		}
	}
	return -1, false
}

func (p Port) check(record []byte, idx int) button {
	if len(record) != p.size {
		panic(curated.Errorf("inputport: record is %d bytes, expected %d", len(record), p.size))
	}
	if idx < 0 || idx >= len(p.buttons) {
		panic(curated.Errorf("inputport: no button with index %d for %s", idx, p.id))
	}
	return p.buttons[idx]
}

// Pressed returns true if the button is pressed in the input record.
func (p Port) Pressed(record []byte, idx int) bool {
	b := p.check(record, idx)
	set := record[b.offset]&b.mask == b.mask
	return set != b.activeLow
}

// Set changes the state of the button in the input record.
func (p Port) Set(record []byte, idx int, pressed bool) {
	b := p.check(record, idx)
	if pressed != b.activeLow {
		record[b.offset] |= b.mask
	} else {
		record[b.offset] &^= b.mask
	}
}

// Describe returns a string showing the buttons that are pressed in the input
// record. Buttons that are not pressed are shown as a period.
func (p Port) Describe(record []byte) string {
	s := strings.Builder{}
	for i, b := range p.buttons {
		if p.Pressed(record, i) {
			s.WriteString(b.label)
		} else {
			s.WriteRune('.')
		}
	}
	return s.String()
}
