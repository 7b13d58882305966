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


package main

import (
	"context"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/tasedit/easyterm"
	"github.com/jetsetilly/tasedit/recorder"
	"github.com/jetsetilly/tasedit/tas"
	"github.com/jetsetilly/tasedit/test"
)

// change to a temporary directory with a local resource directory so that
// preferences are not read from or written to the user's config directory
func workspace(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".tasedit", 0o700))
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-help"}, tw), 0)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "sub-modes:"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "EDIT    edit a movie in the terminal (default)"))
}

func TestVersion(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-version"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "tasedit "))
}

func TestBadFlag(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch(context.Background(), []string{"-nope"}, tw), 10)
}

func TestNewAndPlay(t *testing.T) {
	workspace(t)
	ctx := context.Background()

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch(ctx, []string{"NEW", "-port", "VCS", "-frames", "30", "movie.tas"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "! created VCS NTSC movie of 30 frames\n")

	mv, err := recorder.Load("movie.tas")
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, mv.Hash, "")

	tw.Clear()
	test.ExpectEquality(t, launch(ctx, []string{"PLAY", "movie.tas"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "VCS NTSC movie of 30 frames\n"+mv.Hash+"\n")

	// missing filename
	tw.Clear()
	test.ExpectEquality(t, launch(ctx, []string{"PLAY"}, tw), 20)
}

func TestPlayMismatch(t *testing.T) {
	workspace(t)
	ctx := context.Background()

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch(ctx, []string{"NEW", "-frames", "20", "movie.tas"}, tw), 0)

	mv, err := recorder.Load("movie.tas")
	test.DemandSuccess(t, err)
	mv.Hash = "0000"
	test.DemandSuccess(t, recorder.Save("movie.tas", mv))

	tw.Clear()
	test.ExpectEquality(t, launch(ctx, []string{"PLAY", "movie.tas"}, tw), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "digest mismatch"))

	tw.Clear()
	test.ExpectEquality(t, launch(ctx, []string{"PLAY", "-check=false", "-memviz", "gz.dot", "movie.tas"}, tw), 0)
	_, err = os.Stat("gz.dot")
	test.ExpectSuccess(t, err)
}

func TestScriptMode(t *testing.T) {
	workspace(t)
	ctx := context.Background()

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch(ctx, []string{"NEW", "-frames", "20", "movie.tas"}, tw), 0)
	before, err := recorder.Load("movie.tas")
	test.DemandSuccess(t, err)

	src := `press(3, "U")
press(4, "A")
print(buttons(3))`
	test.DemandSuccess(t, os.WriteFile("edit.lua", []byte(src), 0o600))

	tw.Clear()
	test.DemandEquality(t, launch(ctx, []string{"SCRIPT", "-save", "movie.tas", "edit.lua"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "....U...\n! saved NES NTSC movie of 20 frames\n")

	after, err := recorder.Load("movie.tas")
	test.DemandSuccess(t, err)
	test.ExpectInequality(t, after.Hash, before.Hash)

	// the saved hash agrees with playback
	tw.Clear()
	test.ExpectEquality(t, launch(ctx, []string{"PLAY", "movie.tas"}, tw), 0)
}

func TestPrefsFlag(t *testing.T) {
	workspace(t)
	ctx := context.Background()

	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch(ctx, []string{"NEW", "-frames", "5", "movie.tas"}, tw), 0)

	tw.Clear()
	test.ExpectEquality(t, launch(ctx, []string{"-prefs", "greenzone.capacity::1", "PLAY", "movie.tas"}, tw), 20)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "greenzone.capacity"))
}

func newTestEditor(t *testing.T, frames int) *editor {
	t.Helper()
	workspace(t)
	tw := &test.CompareWriter{}
	test.DemandEquality(t, launch(context.Background(), []string{"NEW", "-frames", strconv.Itoa(frames), "movie.tas"}, tw), 0)

	mv, err := recorder.Load("movie.tas")
	test.DemandSuccess(t, err)
	ctl, err := newController(mv)
	test.DemandSuccess(t, err)

	return newEditor(ctl, mv, "movie.tas")
}

func press(t *testing.T, ed *editor, keys ...easyterm.Key) {
	t.Helper()
	for _, k := range keys {
		quit, err := ed.key(k)
		test.DemandSuccess(t, err)
		test.DemandEquality(t, quit, false)
	}
}

func TestEditorSelection(t *testing.T) {
	ed := newTestEditor(t, 20)
	ctl := ed.ctl

	press(t, ed, easyterm.Key{Rune: 'j'}, easyterm.Key{Special: easyterm.Down})
	test.ExpectEquality(t, ctl.SelectedFrame(), 2)
	test.ExpectEquality(t, ctl.ViewCursor(), 2)

	press(t, ed, easyterm.Key{Special: easyterm.End})
	test.ExpectEquality(t, ctl.SelectedFrame(), 19)

	press(t, ed, easyterm.Key{Rune: 'l'}, easyterm.Key{Special: easyterm.Home})
	test.ExpectEquality(t, ctl.SelectionLocked(), false)
	test.ExpectEquality(t, ctl.SelectedFrame(), 0)
	test.ExpectEquality(t, ctl.ViewCursor(), 19)

	press(t, ed, easyterm.Key{Special: easyterm.Enter})
	test.ExpectEquality(t, ctl.ViewCursor(), 0)

	press(t, ed, easyterm.Key{Rune: ' '})
	test.ExpectEquality(t, ctl.RunMode().String(), "running [read only]")
	press(t, ed, easyterm.Key{Special: easyterm.Esc})
	test.ExpectEquality(t, ctl.RunMode().String(), "paused")

	quit, err := ed.key(easyterm.Key{Rune: 'q'})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, quit, true)
}

func TestEditorButtons(t *testing.T) {
	ed := newTestEditor(t, 20)
	ctl := ed.ctl

	// the fifth button of the NES port is up
	press(t, ed, easyterm.Key{Rune: 'j'}, easyterm.Key{Rune: '5'})
	test.ExpectEquality(t, ctl.Log().Port().Describe(ctl.Log().Frame(1)), "....U...")

	// insert an empty frame before the edited frame
	press(t, ed, easyterm.Key{Rune: 'x'})
	test.ExpectEquality(t, ctl.Log().Len(), 21)
	test.ExpectEquality(t, ctl.Log().Port().Describe(ctl.Log().Frame(2)), "....U...")

	// keys beyond the number of buttons are ignored
	press(t, ed, easyterm.Key{Rune: '='})

	press(t, ed, easyterm.Key{Rune: 'w'})
	mv, err := recorder.Load("movie.tas")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, mv.Log.Len(), 21)
	test.ExpectEquality(t, strings.HasPrefix(ed.message, "saved"), true)
}

func TestEditorRecord(t *testing.T) {
	ed := newTestEditor(t, 20)
	ctl := ed.ctl
	port := ctl.Log().Port()

	press(t, ed, easyterm.Key{Rune: 'j'}, easyterm.Key{Rune: 'i'})
	r, ok := ctl.RunMode().(tas.Running)
	test.DemandSuccess(t, ok)
	_, ok = r.Record.(tas.Insert)
	test.ExpectSuccess(t, ok)

	// while recording, button keys change the pending record
	press(t, ed, easyterm.Key{Rune: '1'})
	r = ctl.RunMode().(tas.Running)
	test.ExpectSuccess(t, port.Pressed(r.Record.(tas.Insert).Pending, 0))
	test.ExpectEquality(t, port.Describe(ctl.Log().Frame(1)), "........")

	now := time.Now()
	for range 10 {
		test.DemandSuccess(t, ctl.Tick(now))
		now = now.Add(50 * time.Millisecond)
	}
	test.ExpectInequality(t, ctl.Log().Len(), 20)
	test.ExpectEquality(t, port.Describe(ctl.Log().Frame(2)), "A.......")

	press(t, ed, easyterm.Key{Rune: 'p'})
	test.ExpectEquality(t, ctl.RunMode().String(), "paused")

	tw := &test.CompareWriter{}
	ed.render(tw, false)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "paused"))
}
