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

package tas

// SelectionLocked returns true if the selected frame follows the view cursor.
func (ctl *Controller) SelectionLocked() bool {
	return ctl.Prefs.SelectionLocked.Get().(bool)
}

// SetSelectionLock sets whether the selected frame follows the view cursor.
func (ctl *Controller) SetSelectionLock(locked bool) {
	ctl.Prefs.SelectionLocked.Set(locked)
}

// SelectNext moves the selected frame forward by n frames, stopping at the
// last record in the input log. If the selection is locked the view cursor
// seeks forward by the same amount.
//
// The RunMode is always Paused afterwards.
func (ctl *Controller) SelectNext(n int) error {
	ctl.checkGoroutine()

	n = min(max(n, 0), max(ctl.log.Len()-(ctl.selectedFrame+1), 0))
	ctl.selectedFrame += n

	ctl.SetRunMode(Paused{})

	if ctl.SelectionLocked() {
		return ctl.SeekTo(ctl.viewCursor + n)
	}
	return nil
}

// SelectPrev moves the selected frame backward by n frames, stopping at frame
// zero. If the selection is locked the view cursor seeks backward by the same
// amount.
//
// The RunMode is always Paused afterwards.
func (ctl *Controller) SelectPrev(n int) error {
	ctl.checkGoroutine()

	n = min(max(n, 0), ctl.selectedFrame)
	ctl.selectedFrame -= n

	ctl.SetRunMode(Paused{})

	if ctl.SelectionLocked() {
		return ctl.SeekTo(max(ctl.viewCursor-n, 0))
	}
	return nil
}

// Select moves the selected frame to the specified frame, clamped to the
// length of the input log. Otherwise the same as SelectNext() and
// SelectPrev().
func (ctl *Controller) Select(frame int) error {
	frame = min(max(frame, 0), ctl.log.Len()-1)
	if frame < ctl.selectedFrame {
		return ctl.SelectPrev(ctl.selectedFrame - frame)
	}
	return ctl.SelectNext(frame - ctl.selectedFrame)
}
