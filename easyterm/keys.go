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

package easyterm

import (
	"io"
)

// list of ASCII codes for non-alphanumeric characters
const (
	KeyInterrupt      = 3  // end-of-text character
	KeySuspend        = 26 // substitute character
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeyBackspace      = 8
	KeyDelete         = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = '['
)

// Special identifies a key that doesn't produce a printable character.
type Special int

// List of valid Special values.
const (
	NotSpecial Special = iota
	Up
	Down
	Right
	Left
	Home
	End
	PageUp
	PageDown
	Enter
	Backspace
	Tab
	Interrupt
	Suspend
	Esc
)

// Key is a single key press. Either Rune or Special is set.
type Key struct {
	Rune    rune
	Special Special
}

// ReadKey reads a single key press from the io.ByteReader. Escape sequences
// for the cursor keys are decoded into a Special value.
//
// Note that a lone press of the escape key will not be returned until
// another key is pressed.
func ReadKey(r io.ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case KeyInterrupt:
		return Key{Special: Interrupt}, nil
	case KeySuspend:
		return Key{Special: Suspend}, nil
	case KeyTab:
		return Key{Special: Tab}, nil
	case KeyCarriageReturn, KeyLineFeed:
		return Key{Special: Enter}, nil
	case KeyBackspace, KeyDelete:
		return Key{Special: Backspace}, nil
	case KeyEsc:
		return readEscape(r)
	}

	return Key{Rune: rune(b)}, nil
}

func readEscape(r io.ByteReader) (Key, error) {
	b, err := r.ReadByte()
	if err != nil {
		return Key{Special: Esc}, nil
	}
	if b != EscCursor {
		return Key{Special: Esc}, nil
	}

	b, err = r.ReadByte()
	if err != nil {
		return Key{}, err
	}

	switch b {
	case 'A':
		return Key{Special: Up}, nil
	case 'B':
		return Key{Special: Down}, nil
	case 'C':
		return Key{Special: Right}, nil
	case 'D':
		return Key{Special: Left}, nil
	case 'H':
		return Key{Special: Home}, nil
	case 'F':
		return Key{Special: End}, nil
	case '5', '6', '1', '4':
		// sequences of the form ESC [ n ~
		t, err := r.ReadByte()
		if err != nil {
			return Key{}, err
		}
		if t != '~' {
			return Key{Special: Esc}, nil
		}
		switch b {
		case '5':
			return Key{Special: PageUp}, nil
		case '6':
			return Key{Special: PageDown}, nil
		case '1':
			return Key{Special: Home}, nil
		case '4':
			return Key{Special: End}, nil
		}
	}

	return Key{Special: Esc}, nil
}
