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

// Package prefs facilitates the storage of preferential values in tasedit.
// Preference values are typed (Bool, Int, Float, String) and are safe to read
// from any goroutine.
//
// Values can be persisted to disk with the Disk type. More than one Disk
// instance can point to the same file; each instance only updates the entries
// it knows about and leaves the others untouched:
//
//	var capacity prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	dsk.Add("greenzone.capacity", &capacity)
//	dsk.Load()
//	capacity.Set(2000)
//	dsk.Save()
//
// Hooks can be attached to a value. A pre-hook is called before the value
// changes and can veto the change by returning an error. A post-hook is
// called after the value has changed. Post-hooks are how a preference is
// applied to the rest of the program.
//
// Values can be overridden from the command line by pushing a prefs string
// onto the command line stack before the Disk is loaded:
//
//	prefs.PushCommandLineStack("greenzone.capacity::500; tas.selectionLocked::false")
package prefs
