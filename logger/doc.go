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

// Package logger is the logging package used throughout tasedit. Log entries
// are kept in memory, up to a maximum number of entries, and consecutive
// entries that are identical are collapsed into a single entry with a repeat
// count.
//
// A central logger is available through the package level functions. Separate
// Logger instances can be created with NewLogger(), which is useful for
// testing.
//
// Every logging request is accompanied by a Permission. Use logger.Allow when
// the request should always result in a log entry.
package logger
