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

package library

import (
	"encoding/json"

	"github.com/defsub/extm3u/lib/gorm"
	"github.com/defsub/extm3u/lib/m3u"
)

type Playlist struct {
	gorm.Model
	UUID    string  `gorm:"uniqueIndex:idx_playlist_uuid;not null" json:"id"`
	Name    string  `gorm:"uniqueIndex:idx_playlist_name;not null" json:"name"`
	Size    int     `json:"size"`
	Entries []Entry `json:"-"`
}

type Entry struct {
	gorm.Model
	PlaylistID uint    `gorm:"index:idx_entry_playlist;not null"`
	Position   int     `gorm:"not null"`
	Title      *string
	URL        string
	Time       *int
	Options    string // json object, in option order
}

func newEntry(playlistID uint, position int, e m3u.Entry) (Entry, error) {
	entry := Entry{
		PlaylistID: playlistID,
		Position:   position,
		Title:      e.Title,
		URL:        e.URL,
		Time:       e.Time,
	}
	if len(e.Options) > 0 {
		data, err := json.Marshal(e.Options)
		if err != nil {
			return entry, err
		}
		entry.Options = string(data)
	}
	return entry, nil
}

func (e Entry) m3u() (m3u.Entry, error) {
	entry := m3u.Entry{
		Title: e.Title,
		URL:   e.URL,
		Time:  e.Time,
	}
	if e.Options != "" {
		err := json.Unmarshal([]byte(e.Options), &entry.Options)
		if err != nil {
			return entry, err
		}
	}
	return entry, nil
}
