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

package pls

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/defsub/extm3u/lib/m3u"
	"github.com/defsub/extm3u/lib/str"
)

const (
	MaxEntries     = 100
	DefaultVersion = 2
	ContentType    = "audio/x-scpls"

	// PLS has no way to say a length is unknown other than -1.
	UnknownLength = -1
)

var (
	ErrMaxEntries    = errors.New("max entries exceeded")
	ErrInvalidFormat = errors.New("invalid format")
)

type Entry struct {
	Index  int
	File   string
	Title  string
	Length int
}

type Playlist struct {
	Version         int
	NumberOfEntries int
	Entries         []Entry
}

func parse(in string) (Playlist, error) {
	return Parse(strings.NewReader(in))
}

func Parse(in io.Reader) (Playlist, error) {
	scanner := bufio.NewScanner(in)

	// https://en.wikipedia.org/wiki/PLS_(file_format)
	entryRegexp := regexp.MustCompile(`(?i)(File|Title|Length)([\d]+)=(.+)`)
	versionRegexp := regexp.MustCompile(`(?i)Version=([\d]+)`)
	numberRegexp := regexp.MustCompile(`(?i)NumberOfEntries=([\d]+)`)

	entries := make(map[int]*Entry)
	numberOfEntries := 0
	version := DefaultVersion

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		matches := entryRegexp.FindStringSubmatch(line)
		if matches != nil {
			field := matches[1]
			index := str.Atoi(matches[2])
			value := matches[3]

			v, ok := entries[index]
			if !ok {
				v = &Entry{Length: UnknownLength}
				v.Index = index
				entries[index] = v
			}

			switch f := strings.ToLower(field); f {
			case "file":
				v.File = value
			case "title":
				v.Title = value
			case "length":
				v.Length = str.Atoi(value)
			}
		}

		matches = versionRegexp.FindStringSubmatch(line)
		if matches != nil {
			version = str.Atoi(matches[1])
		}

		matches = numberRegexp.FindStringSubmatch(line)
		if matches != nil {
			numberOfEntries = str.Atoi(matches[1])
		}
	}
	if err := scanner.Err(); err != nil {
		return Playlist{}, err
	}

	var result []Entry

	if version != DefaultVersion ||
		numberOfEntries != len(entries) {
		return Playlist{}, ErrInvalidFormat
	}

	if numberOfEntries > MaxEntries {
		return Playlist{}, ErrMaxEntries
	}

	for i := 1; i <= numberOfEntries; i++ {
		entry, ok := entries[i]
		if !ok {
			return Playlist{}, ErrInvalidFormat
		}
		result = append(result, *entry)
	}

	return Playlist{
		Version:         version,
		NumberOfEntries: numberOfEntries,
		Entries:         result}, nil
}

// Encode writes the playlist in PLS version 2 form with entries numbered
// from 1 in list order.
func (playlist Playlist) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "[playlist]")
	for i, e := range playlist.Entries {
		n := i + 1
		fmt.Fprintf(bw, "File%d=%s\n", n, e.File)
		if e.Title != "" {
			fmt.Fprintf(bw, "Title%d=%s\n", n, e.Title)
		}
		fmt.Fprintf(bw, "Length%d=%d\n", n, e.Length)
	}
	fmt.Fprintf(bw, "NumberOfEntries=%d\n", len(playlist.Entries))
	fmt.Fprintf(bw, "Version=%d\n", DefaultVersion)
	return bw.Flush()
}

// FromM3U converts entries to PLS. Options have no PLS form and are
// dropped.
func FromM3U(p m3u.Playlist) Playlist {
	result := Playlist{
		Version:         DefaultVersion,
		NumberOfEntries: p.Len(),
	}
	for i, e := range p.Entries {
		entry := Entry{
			Index:  i + 1,
			File:   e.URL,
			Length: UnknownLength,
		}
		if e.Title != nil {
			entry.Title = *e.Title
		}
		if e.Time != nil {
			entry.Length = *e.Time
		}
		result.Entries = append(result.Entries, entry)
	}
	return result
}

// M3U converts to an extended playlist. Entries with a title or a known
// length get an #EXTINF line, with an empty title if needed so the url is
// kept.
func (playlist Playlist) M3U() m3u.Playlist {
	result := m3u.NewPlaylist()
	for _, e := range playlist.Entries {
		entry := m3u.NewEntry(e.File)
		if e.Title != "" || e.Length != UnknownLength {
			entry.SetTitle(e.Title)
			entry.SetTime(e.Length)
		}
		result.Append(entry)
	}
	return result
}
