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
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/easyterm"
	"github.com/jetsetilly/tasedit/easyterm/ansi"
	"github.com/jetsetilly/tasedit/modalflag"
	"github.com/jetsetilly/tasedit/pianoroll"
	"github.com/jetsetilly/tasedit/recorder"
	"github.com/jetsetilly/tasedit/tas"
)

// keys that toggle buttons. the first key toggles the first button of the
// input port and so on
const buttonKeys = "1234567890-="

const editHelp = `keys:
  up/k down/j pgup pgdn home end   move selection
  enter                            seek to selection
  space                            play/pause
  i o                              record (insert/overwrite) from selection
  p esc                            pause
  1 2 3 ...                        toggle button on selection (or while recording)
  x                                insert empty frame at selection
  l                                toggle selection lock
  w                                save movie
  q                                quit`

// number of terminal lines that are not piano roll rows
const editChrome = 4

// editor applies key presses to a Controller.
type editor struct {
	ctl      *tas.Controller
	mv       recorder.Movie
	filename string

	// buttons held during recording
	held []byte

	// number of piano roll rows on screen
	rows int

	message string
}

func newEditor(ctl *tas.Controller, mv recorder.Movie, filename string) *editor {
	return &editor{
		ctl:      ctl,
		mv:       mv,
		filename: filename,
		held:     mv.Log.Port().Default(),
		rows:     10,
	}
}

// recording returns the current record mode if the controller is running
// and changing the input log
func (ed *editor) recording() (tas.Running, bool) {
	r, ok := ed.ctl.RunMode().(tas.Running)
	if !ok {
		return r, false
	}
	switch r.Record.(type) {
	case tas.Insert, tas.Overwrite:
		return r, true
	}
	return r, false
}

// start recording with the buttons of the selected frame held
func (ed *editor) record(insert bool) error {
	if err := ed.ctl.SeekTo(ed.ctl.SelectedFrame()); err != nil {
		return err
	}
	ed.held = ed.ctl.Log().Frame(ed.ctl.SelectedFrame())
	ed.ctl.Record(ed.pending(insert), nil)
	return nil
}

func (ed *editor) pending(insert bool) tas.RecordMode {
	p := make([]byte, len(ed.held))
	copy(p, ed.held)
	if insert {
		return tas.Insert{Pending: p}
	}
	return tas.Overwrite{Pending: p}
}

func (ed *editor) toggle(idx int) error {
	port := ed.ctl.Log().Port()
	if idx >= len(port.Buttons()) {
		return nil
	}

	if r, ok := ed.recording(); ok {
		port.Set(ed.held, idx, !port.Pressed(ed.held, idx))
		_, insert := r.Record.(tas.Insert)
		r.Record = ed.pending(insert)
		ed.ctl.SetRunMode(r)
		return nil
	}

	sel := ed.ctl.SelectedFrame()
	rec := ed.ctl.Log().Frame(sel)
	port.Set(rec, idx, !port.Pressed(rec, idx))
	return ed.ctl.Log().Overwrite(sel, rec)
}

func (ed *editor) save() error {
	var err error
	ed.mv.Hash, err = digestLog(ed.mv.Log, ed.mv.Spec)
	if err != nil {
		return err
	}
	err = recorder.Save(ed.filename, ed.mv)
	if err != nil {
		return err
	}
	ed.message = fmt.Sprintf("saved %s", ed.mv)
	return nil
}

// key applies a single key press. returns true if the editor should quit.
func (ed *editor) key(k easyterm.Key) (bool, error) {
	ed.message = ""
	ctl := ed.ctl

	switch k.Special {
	case easyterm.Up:
		return false, ctl.SelectPrev(1)
	case easyterm.Down:
		return false, ctl.SelectNext(1)
	case easyterm.PageUp:
		return false, ctl.SelectPrev(ed.rows)
	case easyterm.PageDown:
		return false, ctl.SelectNext(ed.rows)
	case easyterm.Home:
		return false, ctl.Select(0)
	case easyterm.End:
		return false, ctl.Select(ctl.Log().Len() - 1)
	case easyterm.Enter:
		return false, ctl.SeekTo(ctl.SelectedFrame())
	case easyterm.Esc:
		ctl.SetRunMode(tas.Paused{})
		return false, nil
	case easyterm.Interrupt:
		return true, nil
	case easyterm.NotSpecial:
	default:
		return false, nil
	}

	if idx := strings.IndexRune(buttonKeys, k.Rune); idx >= 0 {
		return false, ed.toggle(idx)
	}

	switch k.Rune {
	case 'k':
		return false, ctl.SelectPrev(1)
	case 'j':
		return false, ctl.SelectNext(1)
	case ' ':
		ctl.TogglePlayback()
	case 'p':
		ctl.SetRunMode(tas.Paused{})
	case 'i':
		return false, ed.record(true)
	case 'o':
		return false, ed.record(false)
	case 'x':
		return false, ctl.Log().Insert(ctl.SelectedFrame(), ctl.Log().Port().Default())
	case 'l':
		ctl.SetSelectionLock(!ctl.SelectionLocked())
		ed.message = fmt.Sprintf("selection lock: %v", ctl.SelectionLocked())
	case 'w':
		return false, ed.save()
	case 'q':
		return true, nil
	case '?':
		ed.message = editHelp
	}

	return false, nil
}

// render the piano roll and status lines
func (ed *editor) render(w io.Writer, color bool) {
	io.WriteString(w, ansi.CursorHome)
	io.WriteString(w, ansi.ClearScreen)
	pianoroll.Render(w, ed.ctl, ed.rows, color)
	io.WriteString(w, pianoroll.Status(ed.ctl))
	io.WriteString(w, "\n")
	if ed.message != "" {
		io.WriteString(w, ed.message)
		io.WriteString(w, "\n")
	}
}

func edit(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	color := md.AddBool("color", true, "use ANSI color")
	fps := md.AddFloat64("fps", 60, "screen refresh rate")
	md.AdditionalHelp(editHelp)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "movie filename")
	if err != nil {
		return err
	}

	if *fps <= 0 {
		return curated.Errorf("refresh rate must be positive")
	}

	mv, err := recorder.Load(filename)
	if err != nil {
		return err
	}

	ctl, err := newController(mv)
	if err != nil {
		return err
	}

	var term easyterm.Terminal
	err = term.Initialise(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}
	defer term.CleanUp()

	term.CBreakMode()
	io.WriteString(&term, ansi.CursorHide)
	defer io.WriteString(&term, ansi.CursorShow)

	keys := make(chan easyterm.Key)
	readErr := make(chan error, 1)
	go func() {
		r := bufio.NewReader(term.Input())
		for {
			k, err := easyterm.ReadKey(r)
			if err != nil {
				readErr <- err
				return
			}
			select {
			case keys <- k:
			case <-ctx.Done():
				return
			}
		}
	}()

	ed := newEditor(ctl, mv, filename)

	ticker := time.NewTicker(time.Duration(float64(time.Second) / *fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctl.Prefs.Save()

		case err := <-readErr:
			return curated.Errorf("edit: %v", err)

		case k := <-keys:
			quit, err := ed.key(k)
			if err != nil {
				ed.message = err.Error()
			}
			if quit {
				fmt.Fprintln(output)
				return ctl.Prefs.Save()
			}

		case now := <-ticker.C:
			err := ctl.Tick(now)
			if err != nil {
				return err
			}
		}

		ed.rows = max(term.Geometry().Rows-editChrome, 1)
		ed.render(&term, *color)
	}
}
