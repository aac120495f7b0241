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
	"encoding/json"
	"strings"
	"testing"
)

func TestMarshal(t *testing.T) {
	playlist := Parse(subtitles)
	playlist.Append(NewEntry("bare.mp3"))
	data, err := playlist.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"list":[` +
		`{"title":"Title","url":"./path.webm","time":-1,"options":{"sub-file":"./path.en","subsdec-encoding":"UTF-8"}},` +
		`{"title":null,"url":"bare.mp3","time":null,"options":{}}]}`
	if string(data) != want {
		t.Errorf("got  %s\nwant %s", data, want)
	}
}

func TestUnmarshal(t *testing.T) {
	data := `{"list":[
		{"title":"","url":"a","options":{"z":"1","a":"2"}},
		{"url":"b","time":5}
	]}`
	playlist, err := Unmarshal([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	if playlist.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", playlist.Len())
	}
	a := playlist.Entries[0]
	if a.Title == nil || *a.Title != "" || a.Time != nil {
		t.Errorf("wrong first entry %+v", a)
	}
	if keys := a.Options.Keys(); strings.Join(keys, ",") != "z,a" {
		t.Errorf("option order not kept: %v", keys)
	}
	b := playlist.Entries[1]
	if len(b.Options) != 0 {
		t.Errorf("missing options should be empty")
	}
	if b.String() != "#EXTINF:5" {
		t.Errorf("wrong second entry %q", b.String())
	}
}

func TestUnmarshalOptionsInvalid(t *testing.T) {
	var e Entry
	err := json.Unmarshal([]byte(`{"url":"a","options":["x"]}`), &e)
	if err == nil {
		t.Error("expected error for options array")
	}
	err = json.Unmarshal([]byte(`{"url":"a","options":null}`), &e)
	if err != nil || len(e.Options) != 0 {
		t.Errorf("null options: %v %v", err, e.Options)
	}
}

func TestUnmarshalEmpty(t *testing.T) {
	playlist, err := Unmarshal([]byte(`{}`))
	if err != nil {
		t.Fatal(err)
	}
	if playlist.Entries == nil || playlist.String() != "#EXTM3U\n" {
		t.Errorf("unexpected playlist %+v", playlist)
	}
}
