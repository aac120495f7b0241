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
	"errors"
	"testing"
)

func TestParseStrict(t *testing.T) {
	playlist, err := ParseStrict(subtitles)
	if err != nil {
		t.Fatal(err)
	}
	if playlist.String() != subtitles {
		t.Errorf("strict round trip failed")
	}
}

func TestParseStrictEmptyTitle(t *testing.T) {
	e := NewEntry("abc")
	e.SetTitle("")
	p := NewPlaylist()
	p.Append(e)
	doc := p.String()

	playlist, err := ParseStrict(doc)
	if err != nil {
		t.Fatal(err)
	}
	got := playlist.Entries[0]
	if got.Title == nil || *got.Title != "" || got.Time == nil || *got.Time != 0 {
		t.Errorf("wrong entry %+v", got)
	}
	if playlist.String() != doc {
		t.Errorf("round trip %q != %q", playlist.String(), doc)
	}
}

func TestParseStrictErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		line int
		err  error
	}{
		{"missing comma", "#EXTM3U\n#EXTINF:abc\na.mp3", 2, ErrMissingSeparator},
		{"missing colon", "#EXTM3U\n#EXTINF\na.mp3", 2, ErrMissingSeparator},
		{"bad duration", "#EXTM3U\na.mp3\n#EXTINF:x,Title\nb.mp3", 3, ErrInvalidDuration},
		{"option without value", "#EXTM3U\n#EXTVLCOPT:key\na.mp3", 2, ErrMissingSeparator},
		{"unknown directive", "#EXTM3U\n#EXTGRP:Rock\na.mp3", 2, ErrUnknownDirective},
		{"dangling", "#EXTM3U\na.mp3\n#EXTINF:1,x\n#EXTVLCOPT:k=v\n", 3, ErrDanglingEntry},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			playlist, err := ParseStrict(tt.data)
			if !errors.Is(err, tt.err) {
				t.Fatalf("got %v, want %v", err, tt.err)
			}
			if playlist.Entries == nil {
				t.Error("entries should be empty, not nil")
			}
			var mle *MalformedLineError
			if !errors.As(err, &mle) {
				t.Fatalf("expected *MalformedLineError, got %T", err)
			}
			if mle.Line != tt.line {
				t.Errorf("line = %d, want %d", mle.Line, tt.line)
			}
		})
	}
}

func TestParseStrictBare(t *testing.T) {
	playlist, err := ParseStrict("a.mp3\n#comment")
	if err != nil {
		t.Fatal(err)
	}
	if playlist.Len() != 2 {
		t.Errorf("expected 2 entries, got %d", playlist.Len())
	}
}
