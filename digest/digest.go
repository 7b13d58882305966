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

// Package digest is used to create a fingerprint of the output of a
// simulation. Fingerprints are chained: the value after each frame depends on
// the frame's pixels and on the value of the previous fingerprint. Two
// simulations with the same digest have produced the same sequence of frames.
//
// Digests are useful for comparing a re-simulated frame with the frame
// produced the first time round, which is how the determinism of the
// greenzone is tested.
package digest

import (
	"crypto/sha1"
	"fmt"
)

// Digest implementations create a fingerprint of a sequence of outputs.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Size of the raw digest value in bytes.
const Size = sha1.Size

// Video is a chained digest of frame pixels.
type Video struct {
	digest [Size]byte

	// scratch buffer. the previous digest is copied to the start of the
	// buffer and the pixels are copied after it
	buffer []byte
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.digest = [Size]byte{}
}

// Frame adds the pixels of a new frame to the digest.
func (dig *Video) Frame(pixels []byte) {
	l := Size + len(pixels)
	if cap(dig.buffer) < l {
		dig.buffer = make([]byte, l)
	}
	dig.buffer = dig.buffer[:l]
	copy(dig.buffer, dig.digest[:])
	copy(dig.buffer[Size:], pixels)
	dig.digest = sha1.Sum(dig.buffer)
}

// Raw returns the current digest value. The value can be used with SetRaw()
// to restore the digest to an earlier point in the chain.
func (dig *Video) Raw() [Size]byte {
	return dig.digest
}

// SetRaw sets the current digest value.
func (dig *Video) SetRaw(d [Size]byte) {
	dig.digest = d
}
