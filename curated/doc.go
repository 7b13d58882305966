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

// Package curated is used for the errors raised by tasedit packages. A curated
// error is created with Errorf(), which takes a pattern and a list of values in
// the same way as fmt.Errorf().
//
// The pattern is remembered and can be tested for with the Is() and Has()
// functions. Packages export the patterns they raise as string constants so
// that callers can identify an error without resorting to string matching of
// the final message:
//
//	const UnsupportedVersion = "recorder: unsupported movie version (%s)"
//
//	err := curated.Errorf(UnsupportedVersion, v)
//	if curated.Is(err, UnsupportedVersion) {
//		...
//	}
//
// Has() checks the entire chain of curated errors. A chain is formed when a
// curated error is one of the values of another curated error:
//
//	f := curated.Errorf("tas: %v", err)
//	curated.Has(f, UnsupportedVersion) == true
//	curated.Is(f, UnsupportedVersion) == false
//
// Curated errors also implement Unwrap() so the errors.Is() and errors.As()
// functions of the standard library will find any error (curated or not)
// that was used as a value.
//
// The message returned by Error() is normalised. Adjacent parts of the chain
// that are identical are collapsed so that repeated wrapping with the same
// prefix does not result in messages like "tas: tas: engine failure". Parts are
// delimited by the sub-string ": ".
package curated
