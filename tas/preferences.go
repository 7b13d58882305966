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

import (
	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/greenzone"
	"github.com/jetsetilly/tasedit/limiter"
	"github.com/jetsetilly/tasedit/paths"
	"github.com/jetsetilly/tasedit/prefs"
)

// Preferences for the Controller. Values take effect immediately.
type Preferences struct {
	ctl *Controller
	dsk *prefs.Disk

	// maximum number of snapshots in the greenzone
	GreenzoneCapacity prefs.Int

	// number of recently saved snapshots protected from eviction
	GreenzoneRecent prefs.Int

	// whether the selected frame follows the view cursor
	SelectionLocked prefs.Bool

	// number of steps that can be owed before time is dropped
	MaxBacklog prefs.Float

	// panic if the Controller is used from the wrong goroutine
	CheckGoroutine prefs.Bool
}

func (p *Preferences) String() string {
	if p.dsk == nil {
		return ""
	}
	return p.dsk.String()
}

func newPreferences(ctl *Controller) (*Preferences, error) {
	p := &Preferences{ctl: ctl}
	p.SetDefaults()

	p.GreenzoneCapacity.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 2 {
			return curated.Errorf("tas: greenzone capacity must be at least two")
		}
		return nil
	})
	p.GreenzoneCapacity.SetHookPost(func(v prefs.Value) error {
		ctl.gz.SetCapacity(v.(int), p.GreenzoneRecent.Get().(int))
		return nil
	})

	p.GreenzoneRecent.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 1 {
			return curated.Errorf("tas: greenzone recent must be at least one")
		}
		return nil
	})
	p.GreenzoneRecent.SetHookPost(func(v prefs.Value) error {
		ctl.gz.SetCapacity(p.GreenzoneCapacity.Get().(int), v.(int))
		return nil
	})

	p.MaxBacklog.SetHookPost(func(v prefs.Value) error {
		ctl.lmtr.SetMaxBacklog(v.(float64))
		return nil
	})

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.GreenzoneCapacity.Set(greenzone.DefaultCapacity)
	p.GreenzoneRecent.Set(greenzone.DefaultRecent)
	p.SelectionLocked.Set(true)
	p.MaxBacklog.Set(limiter.DefaultMaxBacklog)
	p.CheckGoroutine.Set(false)
}

// the disk is created on first use so that a Controller can be used without
// a configuration directory
func (p *Preferences) disk() (*prefs.Disk, error) {
	if p.dsk != nil {
		return p.dsk, nil
	}

	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, curated.Errorf("tas: %v", err)
	}

	dsk, err := prefs.NewDisk(pth)
	if err != nil {
		return nil, curated.Errorf("tas: %v", err)
	}

	err = dsk.Add("greenzone.capacity", &p.GreenzoneCapacity)
	if err != nil {
		return nil, curated.Errorf("tas: %v", err)
	}
	err = dsk.Add("greenzone.recent", &p.GreenzoneRecent)
	if err != nil {
		return nil, curated.Errorf("tas: %v", err)
	}
	err = dsk.Add("tas.selectionLocked", &p.SelectionLocked)
	if err != nil {
		return nil, curated.Errorf("tas: %v", err)
	}
	err = dsk.Add("tas.maxBacklog", &p.MaxBacklog)
	if err != nil {
		return nil, curated.Errorf("tas: %v", err)
	}
	err = dsk.Add("tas.checkGoroutine", &p.CheckGoroutine)
	if err != nil {
		return nil, curated.Errorf("tas: %v", err)
	}

	p.dsk = dsk
	return p.dsk, nil
}

// Load preferences from disk. Values on the prefs command line stack take
// priority.
func (p *Preferences) Load() error {
	dsk, err := p.disk()
	if err != nil {
		return err
	}
	return dsk.Load()
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	dsk, err := p.disk()
	if err != nil {
		return err
	}
	return dsk.Save()
}
