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

package assert_test

import (
	"testing"

	"github.com/jetsetilly/tasedit/assert"
	"github.com/jetsetilly/tasedit/test"
)

func TestGoRoutineID(t *testing.T) {
	id := assert.GetGoRoutineID()
	test.ExpectInequality(t, id, 0)

	// no panic on the same goroutine
	assert.SameGoRoutine("test", id)

	done := make(chan any)
	go func() {
		defer func() {
			done <- recover()
		}()
		assert.SameGoRoutine("test", id)
	}()
	test.ExpectInequality(t, <-done, nil)
}
