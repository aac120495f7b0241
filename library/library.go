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
	"errors"

	"github.com/defsub/extm3u/config"
	"github.com/defsub/extm3u/lib/log"
	"github.com/defsub/extm3u/lib/m3u"
	"gorm.io/gorm"
)

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrNameRequired     = errors.New("playlist name required")
)

// Library stores named playlists.
type Library struct {
	config *config.Config
	db     *gorm.DB
}

func NewLibrary(config *config.Config) *Library {
	return &Library{
		config: config,
	}
}

func (l *Library) Open() (err error) {
	err = l.openDB()
	return
}

func (l *Library) Close() {
	l.closeDB()
}

// Save stores p under name and returns the playlist id. An existing playlist
// with the same name is replaced and keeps its id.
func (l *Library) Save(name string, p m3u.Playlist) (string, error) {
	if name == "" {
		return "", ErrNameRequired
	}
	var id string
	err := l.db.Transaction(func(tx *gorm.DB) error {
		list, err := lookupPlaylist(tx, name)
		if errors.Is(err, ErrPlaylistNotFound) {
			list, err = createPlaylist(tx, name)
		} else if err == nil {
			err = deleteEntries(tx, list)
		}
		if err != nil {
			return err
		}

		for i, e := range p.Entries {
			entry, err := newEntry(list.ID, i, e)
			if err != nil {
				return err
			}
			err = createEntry(tx, &entry)
			if err != nil {
				return err
			}
		}
		list.Size = p.Len()
		id = list.UUID
		return updatePlaylist(tx, list)
	})
	if err != nil {
		return "", err
	}
	log.Printf("saved playlist %s (%s) with %d entries\n", name, id, p.Len())
	return id, nil
}

func (l *Library) Lookup(name string) (m3u.Playlist, error) {
	list, err := lookupPlaylist(l.db, name)
	if err != nil {
		return m3u.Playlist{}, err
	}
	return l.load(list)
}

func (l *Library) LookupID(id string) (m3u.Playlist, error) {
	list, err := lookupPlaylistID(l.db, id)
	if err != nil {
		return m3u.Playlist{}, err
	}
	return l.load(list)
}

func (l *Library) load(list *Playlist) (m3u.Playlist, error) {
	result := m3u.NewPlaylist()
	for _, e := range playlistEntries(l.db, list) {
		entry, err := e.m3u()
		if err != nil {
			return result, err
		}
		result.Append(entry)
	}
	return result, nil
}

// List returns all playlists ordered by name, without entries.
func (l *Library) List() []Playlist {
	return l.playlists()
}

func (l *Library) Delete(name string) error {
	list, err := lookupPlaylist(l.db, name)
	if err != nil {
		return err
	}
	return l.db.Transaction(func(tx *gorm.DB) error {
		return deletePlaylist(tx, list)
	})
}
