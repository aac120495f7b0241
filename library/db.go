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
	"fmt"

	"github.com/google/uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrDriverNotSupported = errors.New("driver not supported")
)

func (l *Library) openDB() (err error) {
	var glog logger.Interface
	if l.config.Library.DB.LogMode == false {
		glog = logger.Discard
	} else {
		glog = logger.Default
	}
	cfg := &gorm.Config{
		Logger: glog,
	}

	source := l.config.Library.DB.Source
	switch l.config.Library.DB.Driver {
	case "sqlite3":
		l.db, err = gorm.Open(sqlite.Open(source), cfg)
	case "mysql":
		l.db, err = gorm.Open(mysql.Open(source), cfg)
	case "postgres":
		l.db, err = gorm.Open(postgres.Open(source), cfg)
	default:
		err = fmt.Errorf("%w: %s", ErrDriverNotSupported, l.config.Library.DB.Driver)
	}

	if err != nil {
		return
	}

	err = l.db.AutoMigrate(&Playlist{}, &Entry{})
	return
}

func (l *Library) closeDB() {
	conn, err := l.db.DB()
	if err != nil {
		return
	}
	conn.Close()
}

func lookupPlaylist(db *gorm.DB, name string) (*Playlist, error) {
	var list Playlist
	err := db.Where("name = ?", name).First(&list).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlaylistNotFound
	}
	return &list, err
}

func lookupPlaylistID(db *gorm.DB, id string) (*Playlist, error) {
	var list Playlist
	err := db.Where("uuid = ?", id).First(&list).Error
	if err != nil && errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlaylistNotFound
	}
	return &list, err
}

func playlistEntries(db *gorm.DB, list *Playlist) []Entry {
	var entries []Entry
	db.Where("playlist_id = ?", list.ID).
		Order("position").Find(&entries)
	return entries
}

func (l *Library) playlists() []Playlist {
	var lists []Playlist
	l.db.Order("name").Find(&lists)
	return lists
}

func createPlaylist(db *gorm.DB, name string) (*Playlist, error) {
	list := &Playlist{UUID: uuid.New().String(), Name: name}
	err := db.Create(list).Error
	return list, err
}

func updatePlaylist(db *gorm.DB, list *Playlist) error {
	return db.Save(list).Error
}

func createEntry(db *gorm.DB, e *Entry) error {
	return db.Create(e).Error
}

func deleteEntries(db *gorm.DB, list *Playlist) error {
	return db.Unscoped().Where("playlist_id = ?", list.ID).Delete(&Entry{}).Error
}

func deletePlaylist(db *gorm.DB, list *Playlist) error {
	err := deleteEntries(db, list)
	if err != nil {
		return err
	}
	return db.Unscoped().Delete(list).Error
}
