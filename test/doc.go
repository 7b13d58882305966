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

// Package test contains helper functions for the package tests of tasedit.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions fail with t.Fatalf() and stop the test
// immediately. Use a Demand*() function when there is no point continuing the
// test if the condition fails, for example when a later value depends on the
// result.
//
// Optional tags are printed at the start of the failure message. Useful when
// the test is in a loop.
package test
