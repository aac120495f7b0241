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

package main

import (
	"bytes"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"github.com/defsub/extm3u/config"
	"github.com/defsub/extm3u/lib/encoding/xspf"
	"github.com/defsub/extm3u/lib/log"
	"github.com/defsub/extm3u/lib/m3u"
	"github.com/defsub/extm3u/lib/pls"
	"github.com/defsub/extm3u/lib/spiff"
)

// openInput returns stdin when there are no args or the only arg is "-".
func openInput(args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return ioutil.NopCloser(os.Stdin), nil
	}
	return os.Open(args[0])
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

func readPlaylist(cfg *config.Config, r io.Reader, format string, strict bool) (m3u.Playlist, error) {
	switch format {
	case config.FormatM3U:
		data, err := ioutil.ReadAll(r)
		if err != nil {
			return m3u.Playlist{}, err
		}
		d := m3u.NewDecoder(bytes.NewReader(data))
		d.MaxLineSize = cfg.Playlist.MaxLineSize
		d.Strict = true
		playlist, err := d.Decode()
		if strict {
			return playlist, err
		}
		if err != nil {
			log.Printf("warning: %s\n", err)
		}
		// the strict pass only reports, lenient decoding decides
		d = m3u.NewDecoder(bytes.NewReader(data))
		d.MaxLineSize = cfg.Playlist.MaxLineSize
		return d.Decode()
	case config.FormatPLS:
		playlist, err := pls.Parse(r)
		if err != nil {
			return m3u.Playlist{}, err
		}
		return playlist.M3U(), nil
	case config.FormatJSON:
		data, err := ioutil.ReadAll(r)
		if err != nil {
			return m3u.Playlist{}, err
		}
		return m3u.Unmarshal(data)
	case config.FormatJSPF:
		data, err := ioutil.ReadAll(r)
		if err != nil {
			return m3u.Playlist{}, err
		}
		playlist, err := spiff.Unmarshal(data)
		if err != nil {
			return m3u.Playlist{}, err
		}
		return playlist.M3U(), nil
	}
	return m3u.Playlist{}, fmt.Errorf("%w: %s", config.ErrUnknownFormat, format)
}

func writePlaylist(w io.Writer, format, title string, p m3u.Playlist) error {
	switch format {
	case config.FormatM3U:
		return m3u.NewEncoder(w).EncodePlaylist(p)
	case config.FormatJSON:
		data, err := p.Marshal()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatJSPF:
		data, err := spiff.FromM3U(title, p).Marshal()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", data)
		return err
	case config.FormatXSPF:
		return xspf.EncodePlaylist(xspf.NewXMLEncoder(w), title, p)
	case config.FormatPLS:
		return pls.FromM3U(p).Encode(w)
	}
	return fmt.Errorf("%w: %s", config.ErrUnknownFormat, format)
}

func extension(format string) string {
	switch format {
	case config.FormatM3U:
		return ".m3u"
	case config.FormatJSON:
		return ".json"
	case config.FormatJSPF:
		return ".jspf"
	case config.FormatXSPF:
		return ".xspf"
	case config.FormatPLS:
		return ".pls"
	}
	return ""
}

func mediaType(format string) string {
	switch format {
	case config.FormatM3U:
		return m3u.ContentType
	case config.FormatJSON:
		return "application/json"
	case config.FormatJSPF:
		return xspf.JsonContentType
	case config.FormatXSPF:
		return xspf.XMLContentType
	case config.FormatPLS:
		return pls.ContentType
	}
	return ""
}
