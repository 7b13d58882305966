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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/inputport"
	"github.com/jetsetilly/tasedit/logger"
	"github.com/jetsetilly/tasedit/machine"
	"github.com/jetsetilly/tasedit/modalflag"
	"github.com/jetsetilly/tasedit/movie"
	"github.com/jetsetilly/tasedit/prefs"
	"github.com/jetsetilly/tasedit/recorder"
	"github.com/jetsetilly/tasedit/script"
	"github.com/jetsetilly/tasedit/statsview"
	"github.com/jetsetilly/tasedit/tas"
	"github.com/jetsetilly/tasedit/version"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch parses the command line and runs the selected mode. returns the
// value to use with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubMode("EDIT", "edit a movie in the terminal")
	md.AddSubMode("PLAY", "replay a movie and check the digest of the final frame")
	md.AddSubMode("NEW", "create a movie of empty frames")
	md.AddSubMode("SCRIPT", "run a lua script against a movie")

	log := md.AddBool("log", false, "echo log to stderr")
	prf := md.AddString("prefs", "", "preferences for this session. eg. \"greenzone.capacity::500; tas.maxBacklog::4\"")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server on %s", statsview.Address))
	ver := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *ver {
		fmt.Fprintln(output, version.String())
		return 0
	}

	if *log {
		logger.SetEcho(os.Stderr)
		defer logger.SetEcho(nil)
	}

	if *prf != "" {
		prefs.PushCommandLineStack(*prf)
		defer prefs.PopCommandLineStack()
	}

	if *stats {
		stop := statsview.Launch(output, "")
		defer stop()
	}

	switch md.Mode() {
	case "EDIT":
		err = edit(ctx, md, output)
	case "PLAY":
		err = play(ctx, md, output)
	case "NEW":
		err = create(md, output)
	case "SCRIPT":
		err = runScript(ctx, md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %v\n", md, err)
		return 20
	}

	return 0
}

// oneArg returns the single remaining argument
func oneArg(md *modalflag.Modes, what string) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", curated.Errorf("%s required for %s mode", what, md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", curated.Errorf("too many arguments for %s mode", md)
}

// digestLog runs every frame of the input log on a new machine and returns
// the hash of the final frame
func digestLog(log *movie.Log, spec string) (string, error) {
	m, err := machine.NewMachine(log.Port(), spec)
	if err != nil {
		return "", err
	}
	for i, frames := 0, log.Len(); i < frames; i++ {
		if err := m.Step(log.Frame(i)); err != nil {
			return "", err
		}
	}
	return m.Output().Hash, nil
}

// newController creates the machine and controller for a movie. preferences
// are loaded from disk
func newController(mv recorder.Movie) (*tas.Controller, error) {
	m, err := machine.NewMachine(mv.Log.Port(), mv.Spec)
	if err != nil {
		return nil, err
	}

	ctl, err := tas.NewController(m, mv.Log)
	if err != nil {
		return nil, err
	}

	err = ctl.Prefs.Load()
	if err != nil {
		return nil, err
	}

	return ctl, nil
}

func create(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	port := md.AddString("port", inputport.NES, fmt.Sprintf("input port: %s", strings.Join(inputport.Available, ", ")))
	spec := md.AddString("spec", "NTSC", "television specification: NTSC, PAL")
	frames := md.AddInt("frames", 600, "number of frames")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "movie filename")
	if err != nil {
		return err
	}

	if *frames < 1 {
		return curated.Errorf("a movie must have at least one frame")
	}

	prt, err := inputport.NewPort(*port)
	if err != nil {
		return err
	}

	mv := recorder.Movie{
		Spec: strings.ToUpper(*spec),
		Log:  movie.NewLog(prt, *frames),
	}

	mv.Hash, err = digestLog(mv.Log, mv.Spec)
	if err != nil {
		return err
	}

	err = recorder.Save(filename, mv)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "! created %s\n", mv)
	return nil
}

func play(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	check := md.AddBool("check", true, "compare digest with the hash in the movie")
	viz := md.AddString("memviz", "", "write graph of greenzone memory to file (dot format)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	filename, err := oneArg(md, "movie filename")
	if err != nil {
		return err
	}

	mv, err := recorder.Load(filename)
	if err != nil {
		return err
	}

	ctl, err := newController(mv)
	if err != nil {
		return err
	}

	err = ctl.SeekTo(mv.Log.Len() - 1)
	if err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return curated.Errorf("interrupted at frame %d", ctl.SimulatedFrames())
		}
		ok, err := ctl.CatchUpStep()
		if err != nil {
			return err
		}
		if !ok {
			break // for loop
		}
	}

	hash := ctl.Output().Hash
	fmt.Fprintf(output, "%s\n", mv)
	fmt.Fprintf(output, "%s\n", hash)

	if *viz != "" {
		f, err := os.Create(*viz)
		if err != nil {
			return curated.Errorf("memviz: %v", err)
		}
		memviz.Map(f, ctl.Greenzone())
		if err := f.Close(); err != nil {
			return curated.Errorf("memviz: %v", err)
		}
	}

	if *check && mv.Hash != "" && mv.Hash != hash {
		return curated.Errorf("digest mismatch: movie has %s", mv.Hash)
	}

	return nil
}

func runScript(ctx context.Context, md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	save := md.AddBool("save", false, "save the movie after the script has run")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 2 {
		return curated.Errorf("%s mode requires a movie and a script", md)
	}
	filename := md.GetArg(0)

	mv, err := recorder.Load(filename)
	if err != nil {
		return err
	}

	ctl, err := newController(mv)
	if err != nil {
		return err
	}

	scr := script.NewScript(ctl, output)
	defer scr.Close()

	err = scr.RunFile(ctx, md.GetArg(1))
	if err != nil {
		return err
	}

	if *save {
		mv.Hash, err = digestLog(mv.Log, mv.Spec)
		if err != nil {
			return err
		}
		err = recorder.Save(filename, mv)
		if err != nil {
			return err
		}
		fmt.Fprintf(output, "! saved %s\n", mv)
	}

	return nil
}
