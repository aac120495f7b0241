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
	"io"
	"strings"
)

// Playlist is an ordered list of entries in playback order.
type Playlist struct {
	Entries []Entry `json:"list"`
}

func NewPlaylist() Playlist {
	return Playlist{Entries: []Entry{}}
}

func (p *Playlist) Append(entries ...Entry) {
	p.Entries = append(p.Entries, entries...)
}

func (p Playlist) Len() int {
	return len(p.Entries)
}

// String returns the #EXTM3U document. There is no line break after the
// last entry.
func (p Playlist) String() string {
	blocks := make([]string, len(p.Entries))
	for i, e := range p.Entries {
		blocks[i] = e.String()
	}
	return ExtM3U + "\n" + strings.Join(blocks, "\n")
}

func (p Playlist) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, p.String())
	return int64(n), err
}

func SerializePlaylist(p Playlist) string {
	return p.String()
}

// Parse reads a playlist document. A document that does not start with
// #EXTM3U is read as a plain list with one url per line. Malformed lines
// are skipped and unparsable durations become 0, so Parse never fails.
//
// In extended mode only #EXTINF and #EXTVLCOPT are recognized. Any other
// non-empty line, including unknown # directives, ends the current entry
// as its url.
func Parse(s string) Playlist {
	d := NewDecoder(strings.NewReader(s))
	d.MaxLineSize = len(s) + 1
	p, _ := d.Decode()
	return p
}

func ParsePlaylist(s string) Playlist {
	return Parse(s)
}

// ParseStrict is like Parse but returns a *MalformedLineError for the first
// line that Parse would have skipped or misread.
func ParseStrict(s string) (Playlist, error) {
	d := NewDecoder(strings.NewReader(s))
	d.MaxLineSize = len(s) + 1
	d.Strict = true
	return d.Decode()
}
