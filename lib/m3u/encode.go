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
	"fmt"
	"io"
)

const (
	ContentType = "audio/x-mpegurl"
)

// Encoder writes a playlist one entry at a time. The output is identical to
// Playlist.String.
type Encoder struct {
	writer io.Writer
	count  int
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{writer: w}
}

func (e *Encoder) Header() error {
	_, err := fmt.Fprintf(e.writer, "%s\n", ExtM3U)
	return err
}

func (e *Encoder) Encode(entry Entry) (err error) {
	if e.count > 0 {
		_, err = fmt.Fprint(e.writer, "\n")
		if err != nil {
			return err
		}
	}
	e.count++
	_, err = fmt.Fprint(e.writer, entry.String())
	return err
}

func (e *Encoder) EncodePlaylist(p Playlist) error {
	err := e.Header()
	if err != nil {
		return err
	}
	for _, entry := range p.Entries {
		err = e.Encode(entry)
		if err != nil {
			return err
		}
	}
	return nil
}
