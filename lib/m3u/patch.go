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
	jsonpatch "github.com/evanphx/json-patch"
)

// Patch applies an RFC 6902 patch to the json form of p, for example
//
//	[{"op": "replace", "path": "/list/0/title", "value": "Intro"}]
//
// Options of patched entries come back sorted by key.
func Patch(p Playlist, patch []byte) (Playlist, error) {
	jp, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return p, err
	}
	data, err := p.Marshal()
	if err != nil {
		return p, err
	}
	data, err = jp.Apply(data)
	if err != nil {
		return p, err
	}
	return Unmarshal(data)
}

// MergePatch applies an RFC 7386 merge patch. Arrays are replaced whole, so
// a patch touching "list" must carry every entry.
func MergePatch(p Playlist, patch []byte) (Playlist, error) {
	data, err := p.Marshal()
	if err != nil {
		return p, err
	}
	data, err = jsonpatch.MergePatch(data, patch)
	if err != nil {
		return p, err
	}
	return Unmarshal(data)
}

// Equal compares the json forms, so option order does not matter.
func Equal(a, b Playlist) bool {
	da, err := a.Marshal()
	if err != nil {
		return false
	}
	db, err := b.Marshal()
	if err != nil {
		return false
	}
	return jsonpatch.Equal(da, db)
}
