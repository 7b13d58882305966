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


package test

import "strings"

// CompareWriter is an io.Writer that keeps everything written to it so that
// the output can be checked against an expected string. It must not be copied
// after the first write.
type CompareWriter struct {
	strings.Builder
}

// Clear the written output.
func (tw *CompareWriter) Clear() {
	tw.Reset()
}

// Compare returns true if the written output is exactly s.
func (tw *CompareWriter) Compare(s string) bool {
	return tw.String() == s
}
