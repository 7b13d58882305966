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

// Package assert contains checks for conditions that should never happen in a
// correctly functioning program.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns the ID of the goroutine that calls the function.
//
// The ID is extracted from the output of runtime.Stack() and so this function
// is slow. It should only be used for debugging and assertions.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// SameGoRoutine panics if the calling goroutine is not the goroutine with the
// specified ID. The owner string is used in the panic message.
func SameGoRoutine(owner string, id uint64) {
	if g := GetGoRoutineID(); g != id {
		panic(fmt.Sprintf("%s: called from goroutine %d but owned by goroutine %d", owner, g, id))
	}
}
