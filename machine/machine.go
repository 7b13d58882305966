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

// Package machine is a small deterministic simulation that implements the
// engine.Engine interface. It is used by the tasedit command when no other
// engine is available and by the tests of the packages that drive an engine.
//
// The machine has a playfield of Width by Height cells and a player that is
// moved around the playfield by the directional buttons of the input port.
// While any non-directional button is held the player paints the cell it is
// standing on. A 16 bit LFSR is clocked once per frame and also toggles a
// cell of the playfield every frame, so the state of the machine changes
// even when there is no input.
package machine

import (
	"bytes"
	"encoding/binary"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/digest"
	"github.com/jetsetilly/tasedit/engine"
	"github.com/jetsetilly/tasedit/inputport"
)

// Dimensions of the playfield.
const (
	Width  = 32
	Height = 24
)

// pixel values in the output
const (
	pixelPlayer = 0xff
	pixelPaint  = 0x10
	pixelNoise  = 0x01
)

// Frame rates of the supported specifications.
const (
	FrameRateNTSC = 60.0988
	FrameRatePAL  = 50.0070
)

// BadSnapshot is returned by Plumb() when the snapshot cannot be decoded.
const BadSnapshot = "machine: bad snapshot: %v"

// state is everything that is serialised by Snapshot(). the fields must all
// be of fixed size.
type state struct {
	Frame     uint32
	X         uint8
	Y         uint8
	LFSR      uint16
	Digest    [digest.Size]byte
	Playfield [Width * Height]uint8
}

// Machine implements the engine.Engine interface.
type Machine struct {
	port      inputport.Port
	frameRate float64

	state  state
	digest *digest.Video

	// indexes of the buttons in the input port
	up, down, left, right int
	paint                 []int

	output engine.Output
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The spec argument should be "NTSC" or "PAL".
func NewMachine(port inputport.Port, spec string) (*Machine, error) {
	m := &Machine{
		port:   port,
		digest: digest.NewVideo(),
	}

	switch spec {
	case "NTSC", "":
		m.frameRate = FrameRateNTSC
	case "PAL":
		m.frameRate = FrameRatePAL
	default:
		return nil, curated.Errorf("machine: unknown specification (%s)", spec)
	}

	var ok bool
	for _, b := range []struct {
		label string
		idx   *int
	}{
		{"U", &m.up}, {"D", &m.down}, {"L", &m.left}, {"R", &m.right},
	} {
		if *b.idx, ok = port.Button(b.label); !ok {
			return nil, curated.Errorf("machine: %s port has no %s button", port, b.label)
		}
	}
	for i, l := range port.Buttons() {
		switch l {
		case "U", "D", "L", "R":
		default:
			m.paint = append(m.paint, i)
		}
	}

	m.Reset()

	return m, nil
}

// Reset the machine to its power-on state.
func (m *Machine) Reset() {
	m.state = state{
		X:    Width / 2,
		Y:    Height / 2,
		LFSR: 0xace1,
	}
	m.digest.ResetDigest()
	m.render()
}

// clock the LFSR once. the taps produce a maximal length sequence
func (m *Machine) clockLFSR() {
	lsb := m.state.LFSR & 0x01
	m.state.LFSR >>= 1
	if lsb == 0x01 {
		m.state.LFSR ^= 0xb400
	}
}

// Step implements the engine.Engine interface.
func (m *Machine) Step(input []byte) error {
	if len(input) != m.port.FrameSize() {
		return curated.Errorf("machine: input record is %d bytes, expected %d", len(input), m.port.FrameSize())
	}

	m.clockLFSR()

	if m.port.Pressed(input, m.up) {
		m.state.Y = uint8((int(m.state.Y) + Height - 1) % Height)
	}
	if m.port.Pressed(input, m.down) {
		m.state.Y = uint8((int(m.state.Y) + 1) % Height)
	}
	if m.port.Pressed(input, m.left) {
		m.state.X = uint8((int(m.state.X) + Width - 1) % Width)
	}
	if m.port.Pressed(input, m.right) {
		m.state.X = uint8((int(m.state.X) + 1) % Width)
	}

	for _, b := range m.paint {
		if m.port.Pressed(input, b) {
			m.state.Playfield[int(m.state.Y)*Width+int(m.state.X)] |= pixelPaint
			break // for loop
		}
	}

	m.state.Playfield[int(m.state.LFSR)%len(m.state.Playfield)] ^= pixelNoise
	m.state.Frame++

	m.render()
	m.digest.Frame(m.output.Pixels)
	m.state.Digest = m.digest.Raw()
	m.output.Hash = m.digest.Hash()

	return nil
}

func (m *Machine) render() {
	if m.output.Pixels == nil {
		m.output.Pixels = make([]byte, Width*Height)
	}
	copy(m.output.Pixels, m.state.Playfield[:])
	m.output.Pixels[int(m.state.Y)*Width+int(m.state.X)] = pixelPlayer
	m.output.Frame = int(m.state.Frame)
	m.output.Hash = m.digest.Hash()
}

// Output implements the engine.Engine interface.
func (m *Machine) Output() engine.Output {
	o := m.output
	o.Pixels = make([]byte, len(m.output.Pixels))
	copy(o.Pixels, m.output.Pixels)
	return o
}

// Snapshot implements the engine.Engine interface.
func (m *Machine) Snapshot() (engine.Snapshot, error) {
	b := &bytes.Buffer{}
	if err := binary.Write(b, binary.LittleEndian, &m.state); err != nil {
		return nil, curated.Errorf("machine: snapshot: %v", err)
	}
	return engine.Snapshot(b.Bytes()), nil
}

// Plumb implements the engine.Engine interface.
func (m *Machine) Plumb(s engine.Snapshot) error {
	if len(s) != binary.Size(m.state) {
		return curated.Errorf(BadSnapshot, "wrong length")
	}

	var st state
	if err := binary.Read(bytes.NewReader(s), binary.LittleEndian, &st); err != nil {
		return curated.Errorf(BadSnapshot, err)
	}
	if st.X >= Width || st.Y >= Height {
		return curated.Errorf(BadSnapshot, "player out of bounds")
	}

	m.state = st
	m.digest.SetRaw(st.Digest)
	m.render()

	return nil
}

// FrameRate implements the engine.Engine interface.
func (m *Machine) FrameRate() float64 {
	return m.frameRate
}

// Position returns the coordinates of the player.
func (m *Machine) Position() (int, int) {
	return int(m.state.X), int(m.state.Y)
}
