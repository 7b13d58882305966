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

package logger_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/tasedit/logger"
	"github.com/jetsetilly/tasedit/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "tas", "seek to frame 7")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tas: seek to frame 7\n")

	w.Reset()
	log.Log(logger.Allow, "greenzone", "invalidated after frame 3")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tas: seek to frame 7\ngreenzone: invalidated after frame 3\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "tas: seek to frame 7\ngreenzone: invalidated after frame 3\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "greenzone: invalidated after frame 3\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tas", "paused")
	log.Log(logger.Allow, "tas", "paused")
	log.Log(logger.Allow, "tas", "paused")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tas: paused (repeat x3)\n")
	test.ExpectEquality(t, len(log.Entries()), 1)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for i := 0; i < 10; i++ {
		log.Logf(logger.Allow, "tas", "entry %d", i)
	}
	e := log.Entries()
	test.DemandEquality(t, len(e), 3)
	test.ExpectEquality(t, e[0].Detail, "entry 7")
	test.ExpectEquality(t, e[2].Detail, "entry 9")
}

type catchingUp struct {
	active bool
}

func (p catchingUp) AllowLogging() bool {
	return !p.active
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(catchingUp{active: true}, "tas", "step")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(catchingUp{active: false}, "tas", "step")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tas: step\n")
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("engine failure")
	log.Log(logger.Allow, "tas", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tas: engine failure\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tas", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tas: wrapped: engine failure\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	tw := &test.CompareWriter{}
	log.SetEcho(tw)
	log.Log(logger.Allow, "movie", 100)
	test.ExpectSuccess(t, tw.Compare("movie: 100\n"))
	log.SetEcho(nil)
	log.Log(logger.Allow, "movie", 101)
	test.ExpectSuccess(t, tw.Compare("movie: 100\n"))
}
