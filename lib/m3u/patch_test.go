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

func TestPatch(t *testing.T) {
	playlist := Parse(aliceInChains)
	patch := `[
		{"op": "replace", "path": "/list/0/title", "value": "Rotten Apple"},
		{"op": "remove", "path": "/list/1"},
		{"op": "add", "path": "/list/-", "value": {"title": null, "url": "extra.mp3", "time": null}}
	]`
	result, err := Patch(playlist, []byte(patch))
	if err != nil {
		t.Fatal(err)
	}
	want := "#EXTM3U\n#EXTINF:419,Rotten Apple\nAlice in Chains_Jar of Flies_01_Rotten Apple.mp3\nextra.mp3"
	if result.String() != want {
		t.Errorf("got\n%s", result.String())
	}
	if playlist.Len() != 2 {
		t.Errorf("original playlist changed")
	}
}

func TestPatchInvalid(t *testing.T) {
	playlist := Parse(aliceInChains)
	_, err := Patch(playlist, []byte(`{"op": "bogus"}`))
	if err == nil {
		t.Error("expected decode error")
	}
	_, err = Patch(playlist, []byte(`[{"op": "remove", "path": "/list/9"}]`))
	if err == nil {
		t.Error("expected apply error")
	}
}

func TestMergePatch(t *testing.T) {
	playlist := Parse(subtitles)
	result, err := MergePatch(playlist, []byte(`{"list": [{"url": "other.webm", "title": "Other"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if result.String() != "#EXTM3U\n#EXTINF:0,Other\nother.webm" {
		t.Errorf("got\n%s", result.String())
	}
}

func TestEqual(t *testing.T) {
	a := Parse(subtitles)
	b := Parse("#EXTM3U\n#EXTINF:-1,Title\n#EXTVLCOPT:subsdec-encoding=UTF-8\n#EXTVLCOPT:sub-file=./path.en\n./path.webm")
	if !Equal(a, b) {
		t.Error("option order should not matter")
	}
	if Equal(a, Parse(aliceInChains)) {
		t.Error("different playlists should not be equal")
	}
}
