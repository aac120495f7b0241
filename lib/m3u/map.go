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
	"sort"

	"github.com/mitchellh/mapstructure"
)

type entryRecord struct {
	Title   *string           `mapstructure:"title"`
	URL     string            `mapstructure:"url"`
	Time    *int              `mapstructure:"time"`
	Options map[string]string `mapstructure:"options"`
}

type playlistRecord struct {
	List []entryRecord `mapstructure:"list"`
}

// Map returns the entry as generic data with the same keys as its json
// form. Absent title and time are nil.
func (e Entry) Map() map[string]interface{} {
	m := map[string]interface{}{
		"title":   nil,
		"url":     e.URL,
		"time":    nil,
		"options": e.optionMap(),
	}
	if e.Title != nil {
		m["title"] = *e.Title
	}
	if e.Time != nil {
		m["time"] = *e.Time
	}
	return m
}

func (e Entry) optionMap() map[string]string {
	m := make(map[string]string, len(e.Options))
	for _, o := range e.Options {
		m[o.Key] = o.Value
	}
	return m
}

func (p Playlist) Map() map[string]interface{} {
	list := make([]interface{}, len(p.Entries))
	for i, e := range p.Entries {
		list[i] = e.Map()
	}
	return map[string]interface{}{"list": list}
}

// EntryFromMap decodes generic data such as a config section. Values are
// weakly typed so a time of "419" is accepted. Maps carry no order, so
// options are sorted by key.
func EntryFromMap(m map[string]interface{}) (Entry, error) {
	var rec entryRecord
	err := decode(m, &rec)
	if err != nil {
		return Entry{}, err
	}
	return rec.entry(), nil
}

func PlaylistFromMap(m map[string]interface{}) (Playlist, error) {
	var rec playlistRecord
	err := decode(m, &rec)
	if err != nil {
		return Playlist{}, err
	}
	playlist := NewPlaylist()
	for _, r := range rec.List {
		playlist.Append(r.entry())
	}
	return playlist, nil
}

func decode(input interface{}, result interface{}) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           result,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

func (r entryRecord) entry() Entry {
	e := Entry{Title: r.Title, URL: r.URL, Time: r.Time}
	keys := make([]string, 0, len(r.Options))
	for k := range r.Options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		e.SetOption(k, r.Options[k])
	}
	return e
}
