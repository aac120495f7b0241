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
	"testing"

	"github.com/defsub/extm3u/lib/m3u"
)

const doc = `#EXTM3U
#EXTINF:-1,Abenobashi ED
#EXTVLCOPT:sub-file=./ending.en
#EXTVLCOPT:subsdec-encoding=UTF-8
./ending.webm
#EXTINF:260,Alice in Chains - Nutshell
nutshell.mp3
#EXTINF:0,
untitled.mp3
plain.mp3`

func TestFromM3U(t *testing.T) {
	playlist := FromM3U("Mix", m3u.Parse(doc))
	if playlist.Title != "Mix" {
		t.Errorf("wrong title %s", playlist.Title)
	}
	if len(playlist.Entries) != 4 {
		t.Fatalf("expected 4 tracks, got %d", len(playlist.Entries))
	}
	first := playlist.Entries[0]
	if first.Duration != nil {
		t.Errorf("negative time should not be a duration")
	}
	if len(first.Meta) != 3 {
		t.Errorf("expected 3 meta, got %d", len(first.Meta))
	}
	second := playlist.Entries[1]
	if second.Duration == nil || *second.Duration != 260000 {
		t.Errorf("wrong duration %v", second.Duration)
	}
	third := playlist.Entries[2]
	if third.Title == nil || *third.Title != "" || third.Duration == nil || *third.Duration != 0 {
		t.Errorf("empty title should be kept: %+v", third)
	}
	if playlist.Entries[3].Title != nil {
		t.Errorf("plain entry should have no title")
	}
}

func TestMarshal(t *testing.T) {
	source := m3u.Parse(doc)
	data, err := FromM3U("Mix", source).Marshal()
	if err != nil {
		t.Fatal(err)
	}
	playlist, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	if s := playlist.M3U().String(); s != source.String() {
		t.Errorf("round trip failed:\n%s\n%s", s, data)
	}
}

func TestEmpty(t *testing.T) {
	data, err := NewPlaylist("").Marshal()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"playlist":{"title":"","track":[]}}` {
		t.Errorf("got %s", data)
	}
}
