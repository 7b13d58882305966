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

// Package recorder reads and writes movie files. A movie file is a plain
// text file that can be inspected and edited with normal text tools.
//
// The file begins with a fixed number of header lines:
//
//	tasedit movie
//	<version>
//	<input port ID>
//	<tv specification>
//	<number of frames>
//	<hash of the final frame>
//
// The hash line can be empty, in which case the movie can't be verified when
// it is played back.
//
// The header is followed by one line per frame. Each line is the input record
// for the frame written as hexadecimal.
package recorder
