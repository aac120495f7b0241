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

package spiff

import (
	"encoding/json"
	"strings"

	"github.com/defsub/extm3u/lib/m3u"
	"github.com/defsub/extm3u/lib/str"
)

// See the following specifications:
//  https://www.xspf.org/xspf-v1.html
//  https://www.xspf.org/jspf/

const (
	// meta rels used to carry what jspf has no field for
	OptionRel = "http://www.videolan.org/vlc/playlist/0/option/"
	TimeRel   = "http://www.videolan.org/vlc/playlist/0/time"
)

type Playlist struct {
	Spiff `json:"playlist"`
}

type Spiff struct {
	Title    string  `json:"title"`
	Creator  string  `json:"creator,omitempty"`
	Image    string  `json:"image,omitempty"`
	Location string  `json:"location,omitempty"`
	Date     string  `json:"date,omitempty"` // "2005-01-08T17:10:47-05:00",
	Entries  []Entry `json:"track"`
}

type Meta map[string]string

type Entry struct {
	Creator    string   `json:"creator,omitempty"`
	Album      string   `json:"album,omitempty"`
	Title      *string  `json:"title,omitempty"`
	Image      string   `json:"image,omitempty"`
	Location   []string `json:"location,omitempty"`
	Identifier []string `json:"identifier,omitempty"`
	Duration   *int64   `json:"duration,omitempty"` // milliseconds
	Meta       []Meta   `json:"meta,omitempty"`
}

func NewPlaylist(title string) *Playlist {
	return &Playlist{Spiff{title, "", "", "", "", []Entry{}}}
}

// FromM3U converts entries to tracks. Durations are milliseconds in jspf and
// cannot be negative, so a negative time is kept in meta instead.
func FromM3U(title string, p m3u.Playlist) *Playlist {
	playlist := NewPlaylist(title)
	for _, e := range p.Entries {
		entry := Entry{Title: e.Title}
		if e.URL != "" {
			entry.Location = []string{e.URL}
		}
		if e.Time != nil {
			if *e.Time >= 0 {
				ms := int64(*e.Time) * 1000
				entry.Duration = &ms
			} else {
				entry.Meta = append(entry.Meta, Meta{TimeRel: str.Itoa(*e.Time)})
			}
		}
		for _, o := range e.Options {
			entry.Meta = append(entry.Meta, Meta{OptionRel + o.Key: o.Value})
		}
		playlist.Entries = append(playlist.Entries, entry)
	}
	return playlist
}

func (playlist *Playlist) M3U() m3u.Playlist {
	result := m3u.NewPlaylist()
	for _, t := range playlist.Entries {
		entry := m3u.Entry{Title: t.Title}
		if len(t.Location) > 0 {
			entry.URL = t.Location[0]
		}
		if t.Duration != nil {
			entry.SetTime(int(*t.Duration / 1000))
		}
		for _, meta := range t.Meta {
			for rel, value := range meta {
				switch {
				case rel == TimeRel:
					entry.SetTime(str.Atoi(value))
				case strings.HasPrefix(rel, OptionRel):
					entry.SetOption(strings.TrimPrefix(rel, OptionRel), value)
				}
			}
		}
		result.Append(entry)
	}
	return result
}

func Unmarshal(data []byte) (*Playlist, error) {
	var playlist Playlist
	err := json.Unmarshal(data, &playlist)
	return &playlist, err
}

func (playlist *Playlist) Marshal() ([]byte, error) {
	data, err := json.Marshal(playlist)
	return data, err
}
