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
	"testing"
)

func TestEntryMap(t *testing.T) {
	e := NewEntry("a.mp3")
	e.SetTitle("A")
	e.SetOption("k", "v")
	m := e.Map()
	if m["title"] != "A" || m["url"] != "a.mp3" || m["time"] != nil {
		t.Errorf("unexpected map %v", m)
	}
	back, err := EntryFromMap(m)
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != e.String() {
		t.Errorf("%q != %q", back.String(), e.String())
	}
}

func TestEntryFromMap(t *testing.T) {
	m := map[string]interface{}{
		"url":  "b.mp3",
		"time": "419",
		"options": map[string]interface{}{
			"b": "2",
			"a": 1,
		},
	}
	e, err := EntryFromMap(m)
	if err != nil {
		t.Fatal(err)
	}
	if e.Title != nil {
		t.Errorf("title should be absent")
	}
	if e.Time == nil || *e.Time != 419 {
		t.Errorf("wrong time %v", e.Time)
	}
	if len(e.Options) != 2 || e.Options[0].Key != "a" || e.Options[0].Value != "1" {
		t.Errorf("wrong options %v", e.Options)
	}

	e, err = EntryFromMap(map[string]interface{}{"url": "c.mp3"})
	if err != nil {
		t.Fatal(err)
	}
	if len(e.Options) != 0 || e.String() != "c.mp3" {
		t.Errorf("unexpected entry %+v", e)
	}
}

func TestPlaylistMap(t *testing.T) {
	playlist := Parse(aliceInChains)
	back, err := PlaylistFromMap(playlist.Map())
	if err != nil {
		t.Fatal(err)
	}
	if back.String() != aliceInChains {
		t.Errorf("map round trip failed:\n%s", back.String())
	}

	_, err = PlaylistFromMap(map[string]interface{}{"list": "nope"})
	if err == nil {
		t.Error("expected error for bad list")
	}
}
