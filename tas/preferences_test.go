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

package tas_test

import (
	"os"
	"testing"

	"github.com/jetsetilly/tasedit/prefs"
	"github.com/jetsetilly/tasedit/test"
)

func TestGreenzonePreferences(t *testing.T) {
	ctl, _, _ := newController(t, 100)
	test.DemandSuccess(t, ctl.SeekTo(99))
	test.DemandSuccess(t, ctl.CatchUp())
	test.ExpectEquality(t, ctl.Greenzone().Summary().Entries, 101)

	test.DemandSuccess(t, ctl.Prefs.GreenzoneCapacity.Set(20))
	test.ExpectEquality(t, ctl.Greenzone().Summary().Entries, 20)
	test.ExpectEquality(t, ctl.Greenzone().Summary().Capacity, 20)

	// invalid values are rejected and the capacity is unchanged
	test.ExpectFailure(t, ctl.Prefs.GreenzoneCapacity.Set(1))
	test.ExpectFailure(t, ctl.Prefs.GreenzoneRecent.Set(0))
	test.ExpectEquality(t, ctl.Greenzone().Summary().Capacity, 20)

	test.DemandSuccess(t, ctl.Prefs.MaxBacklog.Set(5.0))
	test.ExpectEquality(t, ctl.Limiter().MaxBacklog(), 5.0)
}

func TestPreferencesDisk(t *testing.T) {
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".tasedit", 0o700))

	ctl, _, _ := newController(t, 10)
	test.DemandSuccess(t, ctl.Prefs.GreenzoneCapacity.Set(500))
	ctl.SetSelectionLock(false)
	test.DemandSuccess(t, ctl.Prefs.Save())

	ctl, _, _ = newController(t, 10)
	test.ExpectSuccess(t, ctl.SelectionLocked())
	test.DemandSuccess(t, ctl.Prefs.Load())
	test.ExpectFailure(t, ctl.SelectionLocked())
	test.ExpectEquality(t, ctl.Greenzone().Summary().Capacity, 500)

	// command line preferences take priority
	prefs.PushCommandLineStack("greenzone.capacity::50; tas.selectionLocked::true")
	defer prefs.PopCommandLineStack()

	ctl, _, _ = newController(t, 10)
	test.DemandSuccess(t, ctl.Prefs.Load())
	test.ExpectSuccess(t, ctl.SelectionLocked())
	test.ExpectEquality(t, ctl.Greenzone().Summary().Capacity, 50)
}
