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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	dir := t.TempDir()
	config, err := TestConfig(dir)
	if err != nil {
		t.Fatalf("TestConfig %s\n", err)
	}
	if config.Playlist.Format != FormatM3U {
		t.Errorf("wrong format %s", config.Playlist.Format)
	}
	if config.Playlist.Strict {
		t.Error("strict should be off")
	}
	if config.Playlist.MaxLineSize != 1048576 {
		t.Errorf("wrong max line size %d", config.Playlist.MaxLineSize)
	}
	if config.Library.DB.Driver != "sqlite3" {
		t.Errorf("wrong driver %s", config.Library.DB.Driver)
	}
	if config.Library.DB.Source != filepath.Join(dir, "library.db") {
		t.Errorf("wrong source %s", config.Library.DB.Source)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	data := `
Playlist:
  Strict: true
  Format: jspf
  FileTemplate:
    Text: "mix-{{.Name}}{{.Extension}}"
Library:
  DB:
    Source: playlists.db
`
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(data), 0644)
	if err != nil {
		t.Fatal(err)
	}
	config, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("LoadConfig %s\n", err)
	}
	if !config.Playlist.Strict {
		t.Error("strict should be on")
	}
	if config.Playlist.Format != FormatJSPF {
		t.Errorf("wrong format %s", config.Playlist.Format)
	}
	if config.Library.DB.Source != dir+"/playlists.db" {
		t.Errorf("source not relative to config: %s", config.Library.DB.Source)
	}
	name := config.Playlist.FileTemplate.Execute(map[string]string{"Name": "road", "Extension": ".m3u"})
	if name != "mix-road.m3u" {
		t.Errorf("wrong file name %s", name)
	}
}

func TestBadFormat(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("Playlist:\n  Format: wpl\n"), 0644)
	if err != nil {
		t.Fatal(err)
	}
	_, err = LoadConfig(dir)
	if err == nil {
		t.Error("expected unknown format")
	}
}
