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
	"bytes"
	"encoding/json"
	"errors"
)

var (
	ErrInvalidOptions = errors.New("options must be an object")
)

// MarshalJSON writes options as an object in option order.
func (opts Options) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, o := range opts {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(o.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(o.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keeping the order of its keys. Repeated keys
// keep their first position and last value.
func (opts *Options) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	t, err := dec.Token()
	if err != nil {
		return err
	}
	if t == nil {
		*opts = nil
		return nil
	}
	if d, ok := t.(json.Delim); !ok || d != '{' {
		return ErrInvalidOptions
	}
	result := Options{}
	for dec.More() {
		t, err = dec.Token()
		if err != nil {
			return err
		}
		key, ok := t.(string)
		if !ok {
			return ErrInvalidOptions
		}
		var value string
		err = dec.Decode(&value)
		if err != nil {
			return err
		}
		result.Set(key, value)
	}
	if _, err = dec.Token(); err != nil {
		return err
	}
	*opts = result
	return nil
}

func (p Playlist) Marshal() ([]byte, error) {
	if p.Entries == nil {
		p.Entries = []Entry{}
	}
	return json.Marshal(p)
}

func Unmarshal(data []byte) (Playlist, error) {
	var playlist Playlist
	err := json.Unmarshal(data, &playlist)
	if playlist.Entries == nil {
		playlist.Entries = []Entry{}
	}
	return playlist, err
}
