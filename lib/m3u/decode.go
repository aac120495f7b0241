// Copyright (C) 2024 The Extm3u Authors.
//
// This file is part of Extm3u.
//
// Extm3u is free software: you can redistribute it and/or modify it under the
// terms of the GNU Affero General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.
//
// Extm3u is distributed in the hope that it will be useful, but WITHOUT ANY
// WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS
// FOR A PARTICULAR PURPOSE.  See the GNU Affero General Public License for
// more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with Extm3u.  If not, see <https://www.gnu.org/licenses/>.

package m3u

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/defsub/extm3u/lib/str"
)

const (
	DefaultMaxLineSize = 1024 * 1024
)

// Decoder reads a playlist from an input stream.
type Decoder struct {
	// Strict makes Decode fail with a *MalformedLineError instead of
	// skipping lines.
	Strict bool
	// MaxLineSize limits the length of a single line.
	MaxLineSize int

	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, MaxLineSize: DefaultMaxLineSize}
}

// Decode reads the whole input. Without Strict the only errors returned are
// those of the underlying reader.
func (d *Decoder) Decode() (Playlist, error) {
	size := d.MaxLineSize
	if size <= 0 {
		size = DefaultMaxLineSize
	}
	initial := 4096
	if size < initial {
		initial = size
	}
	scanner := bufio.NewScanner(d.r)
	scanner.Buffer(make([]byte, 0, initial), size)

	playlist := NewPlaylist()
	if !scanner.Scan() {
		return playlist, scanner.Err()
	}

	first := scanner.Text()
	if first != ExtM3U {
		// plain playlist, one url per line
		playlist.Append(NewEntry(first))
		for scanner.Scan() {
			playlist.Append(NewEntry(scanner.Text()))
		}
		return playlist, scanner.Err()
	}

	a := accumulator{strict: d.Strict}
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		if err := a.line(lineNo, scanner.Text()); err != nil {
			return a.playlist(playlist), err
		}
	}
	if err := scanner.Err(); err != nil {
		return a.playlist(playlist), err
	}
	if a.strict && a.pending > 0 {
		return a.playlist(playlist), &MalformedLineError{
			Line: a.pending, Text: a.pendingText, Err: ErrDanglingEntry}
	}
	return a.playlist(playlist), nil
}

// accumulator collects directive lines into the current entry until a url
// line completes it.
type accumulator struct {
	strict      bool
	current     Entry
	entries     []Entry
	pending     int
	pendingText string
}

// playlist appends the completed entries to p, which is never nil.
func (a *accumulator) playlist(p Playlist) Playlist {
	p.Entries = append(p.Entries, a.entries...)
	return p
}

func (a *accumulator) line(n int, raw string) error {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		return nil
	case strings.HasPrefix(line, ExtInf):
		return a.extinf(n, line)
	case strings.HasPrefix(line, ExtVLCOpt):
		return a.extvlcopt(n, line)
	case a.strict && strings.HasPrefix(line, "#"):
		return malformed(n, raw, ErrUnknownDirective)
	}
	a.current.URL = line
	a.entries = append(a.entries, a.current)
	a.current = Entry{}
	a.pending = 0
	return nil
}

func (a *accumulator) extinf(n int, line string) error {
	colon := strings.Index(line, ":")
	if colon < 0 {
		if a.strict {
			return malformed(n, line, ErrMissingSeparator)
		}
		return nil
	}
	rest := line[colon+1:]
	comma := strings.Index(rest, ",")
	if comma < 0 {
		// #EXTINF:<time> is how an empty title is written
		seconds, err := strconv.Atoi(rest)
		if err != nil {
			if a.strict {
				return malformed(n, line, ErrMissingSeparator)
			}
			return nil
		}
		a.current.SetTime(seconds)
		a.current.SetTitle("")
		a.mark(n, line)
		return nil
	}
	duration := rest[:comma]
	if a.strict {
		if _, err := strconv.Atoi(duration); err != nil {
			return malformed(n, line, ErrInvalidDuration)
		}
	}
	a.current.SetTime(str.Atoi(duration))
	a.current.SetTitle(rest[comma+1:])
	a.mark(n, line)
	return nil
}

func (a *accumulator) extvlcopt(n int, line string) error {
	colon := strings.Index(line, ":")
	if colon < 0 {
		if a.strict {
			return malformed(n, line, ErrMissingSeparator)
		}
		return nil
	}
	rest := line[colon+1:]
	eq := strings.Index(rest, "=")
	if eq < 0 {
		if a.strict {
			return malformed(n, line, ErrMissingSeparator)
		}
		return nil
	}
	a.current.SetOption(rest[:eq], rest[eq+1:])
	a.mark(n, line)
	return nil
}

func (a *accumulator) mark(n int, line string) {
	if a.pending == 0 {
		a.pending = n
		a.pendingText = line
	}
}

func malformed(n int, text string, err error) error {
	return &MalformedLineError{Line: n, Text: text, Err: err}
}
