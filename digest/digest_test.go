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

package digest_test

import (
	"testing"

	"github.com/jetsetilly/tasedit/digest"
	"github.com/jetsetilly/tasedit/test"
)

func TestChaining(t *testing.T) {
	a := digest.NewVideo()
	b := digest.NewVideo()
	test.ExpectEquality(t, a.Hash(), b.Hash())

	a.Frame([]byte{1, 2, 3})
	test.ExpectInequality(t, a.Hash(), b.Hash())

	b.Frame([]byte{1, 2, 3})
	test.ExpectEquality(t, a.Hash(), b.Hash())

	// the same frame twice does not produce the same hash as the frame once
	h := a.Hash()
	a.Frame([]byte{1, 2, 3})
	test.ExpectInequality(t, a.Hash(), h)

	// order of frames matters
	c := digest.NewVideo()
	d := digest.NewVideo()
	c.Frame([]byte{1})
	c.Frame([]byte{2})
	d.Frame([]byte{2})
	d.Frame([]byte{1})
	test.ExpectInequality(t, c.Hash(), d.Hash())
}

func TestRaw(t *testing.T) {
	a := digest.NewVideo()
	a.Frame([]byte{10, 20})
	raw := a.Raw()
	h := a.Hash()

	a.Frame([]byte{30})
	test.ExpectInequality(t, a.Hash(), h)

	a.SetRaw(raw)
	test.ExpectEquality(t, a.Hash(), h)

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), digest.NewVideo().Hash())
}
