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

package recorder

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/tasedit/curated"
	"github.com/jetsetilly/tasedit/inputport"
	"github.com/jetsetilly/tasedit/movie"
)

const (
	magic   = "tasedit movie"
	version = "1"
)

// Sentinel errors returned by Read() and Load().
const (
	NotAMovie          = "recorder: not a movie file"
	UnsupportedVersion = "recorder: unsupported movie version (%s)"
	MalformedMovie     = "recorder: line %d: %v"
	FrameCountMismatch = "recorder: header specifies %d frames but file contains %d"
)

// movie file header format
const (
	lineMagic int = iota
	lineVersion
	linePort
	lineSpec
	lineFrames
	lineHash
	numHeaderLines
)

// Movie is the contents of a movie file.
type Movie struct {
	// the TV specification of the engine the movie was recorded with
	Spec string

	// the input log. the input port of the movie is the port of the log
	Log *movie.Log

	// the hash of the output of the final frame. can be empty
	Hash string
}

func (mv Movie) String() string {
	return fmt.Sprintf("%s %s movie of %d frames", mv.Log.Port(), mv.Spec, mv.Log.Len())
}

// Write the movie to the io.Writer.
func Write(w io.Writer, mv Movie) error {
	lines := make([]string, numHeaderLines, numHeaderLines+mv.Log.Len()+1)
	lines[lineMagic] = magic
	lines[lineVersion] = version
	lines[linePort] = mv.Log.Port().ID()
	lines[lineSpec] = mv.Spec
	lines[lineFrames] = strconv.Itoa(mv.Log.Len())
	lines[lineHash] = mv.Hash

	for i, frames := 0, mv.Log.Len(); i < frames; i++ {
		lines = append(lines, hex.EncodeToString(mv.Log.Frame(i)))
	}

	// file ends with a newline
	lines = append(lines, "")

	s := strings.Join(lines, "\n")
	n, err := io.WriteString(w, s)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}
	if n != len(s) {
		return curated.Errorf("recorder: output truncated")
	}

	return nil
}

// Read a movie from the io.Reader.
func Read(r io.Reader) (Movie, error) {
	var mv Movie

	buffer, err := io.ReadAll(r)
	if err != nil {
		return mv, curated.Errorf("recorder: %v", err)
	}

	lines := strings.Split(strings.ReplaceAll(string(buffer), "\r\n", "\n"), "\n")
	if len(lines) < numHeaderLines || lines[lineMagic] != magic {
		return mv, curated.Errorf(NotAMovie)
	}

	if lines[lineVersion] != version {
		return mv, curated.Errorf(UnsupportedVersion, lines[lineVersion])
	}

	port, err := inputport.NewPort(lines[linePort])
	if err != nil {
		return mv, curated.Errorf(MalformedMovie, linePort+1, err)
	}

	mv.Spec = lines[lineSpec]
	mv.Hash = lines[lineHash]

	frames, err := strconv.Atoi(lines[lineFrames])
	if err != nil || frames < 0 {
		return mv, curated.Errorf(MalformedMovie, lineFrames+1, "frame count is not valid")
	}

	// a trailing empty line is not a frame
	body := lines[numHeaderLines:]
	if len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}

	if len(body) != frames {
		return mv, curated.Errorf(FrameCountMismatch, frames, len(body))
	}

	data := make([]byte, 0, frames*port.FrameSize())
	for i, l := range body {
		b, err := hex.DecodeString(strings.TrimSpace(l))
		if err != nil {
			return mv, curated.Errorf(MalformedMovie, numHeaderLines+i+1, err)
		}
		if len(b) != port.FrameSize() {
			return mv, curated.Errorf(MalformedMovie, numHeaderLines+i+1,
				fmt.Sprintf("record is %d bytes but %s records are %d bytes", len(b), port, port.FrameSize()))
		}
		data = append(data, b...)
	}

	mv.Log, err = movie.NewLogFromBytes(port, data)
	if err != nil {
		return mv, curated.Errorf("recorder: %v", err)
	}

	return mv, nil
}

// Save the movie to the named file. The file is overwritten if it exists.
func Save(filename string, mv Movie) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	err = Write(f, mv)
	if err != nil {
		f.Close()
		return err
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf("recorder: %v", err)
	}

	return nil
}

// Load the movie from the named file.
func Load(filename string) (Movie, error) {
	f, err := os.Open(filename)
	if err != nil {
		return Movie{}, curated.Errorf("recorder: %v", err)
	}
	defer f.Close()

	return Read(f)
}
