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

package xspf

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"

	"github.com/defsub/extm3u/lib/m3u"
)

const (
	XMLContentType  = "application/xspf+xml"
	JsonContentType = "application/xspf+json"

	VLCApplication = "http://www.videolan.org/vlc/playlist/0"
	VLCNamespace   = "http://www.videolan.org/vlc/playlist/ns/0/"
)

type StringTag struct {
	Value string `xml:",chardata" json:"-"`
}

func (tag *StringTag) MarshalJSON() ([]byte, error) {
	return json.Marshal(tag.Value)
}

type LocationTag struct {
	Value string `xml:",chardata" json:"-"`
}

func (tag *LocationTag) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string{tag.Value})
}

type IntTag struct {
	Value int64 `xml:",chardata"`
}

func (tag *IntTag) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%d", tag.Value)), nil
}

// ExtensionTag holds player options the way vlc writes them.
type ExtensionTag struct {
	Application string   `xml:"application,attr"`
	Options     []string `xml:"vlc:option"`
}

func (tag *ExtensionTag) MarshalJSON() ([]byte, error) {
	ext := map[string][]map[string][]string{
		tag.Application: {{"option": tag.Options}},
	}
	return json.Marshal(ext)
}

type TrackTag struct {
	XMLName   xml.Name      `xml:"track" json:"-"`
	Title     *StringTag    `xml:"title,omitempty" json:"title,omitempty"`
	Location  *LocationTag  `xml:"location,omitempty" json:"location,omitempty"`
	Duration  *IntTag       `xml:"duration,omitempty" json:"duration,omitempty"`
	Extension *ExtensionTag `xml:"extension,omitempty" json:"extension,omitempty"`
}

type SpiffEncoder interface {
	Header(title string) error
	Encode(e m3u.Entry) error
	Footer() error
}

type Encoder interface {
	Encode(e interface{}) error
}

type xmlEncoder struct {
	writer  io.Writer
	encoder *xml.Encoder
}

func (e xmlEncoder) Header(title string) error {
	fmt.Fprint(e.writer, xml.Header)
	fmt.Fprintf(e.writer, "<playlist version=\"1\" xmlns=\"http://xspf.org/ns/0/\" xmlns:vlc=\"%s\">", VLCNamespace)
	fmt.Fprintf(e.writer, "<title>")
	xml.Escape(e.writer, []byte(title))
	fmt.Fprintf(e.writer, "</title>")
	_, err := fmt.Fprintf(e.writer, "<trackList>")
	return err
}

func (e xmlEncoder) Encode(entry m3u.Entry) error {
	return encode(e.encoder, entry)
}

func (e xmlEncoder) Footer() error {
	err := e.encoder.Flush()
	if err != nil {
		return err
	}
	fmt.Fprintf(e.writer, "</trackList>")
	_, err = fmt.Fprintf(e.writer, "</playlist>\n")
	return err
}

type jsonEncoder struct {
	writer  io.Writer
	encoder *json.Encoder
	count   *int
}

func (e jsonEncoder) Header(title string) error {
	t, err := json.Marshal(title)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(e.writer, "{\"playlist\":{\"title\":%s,\"track\":[", t)
	return err
}

func (e jsonEncoder) Encode(entry m3u.Entry) error {
	if *e.count > 0 {
		fmt.Fprintf(e.writer, ",")
	}
	*e.count++
	return encode(e.encoder, entry)
}

func (e jsonEncoder) Footer() error {
	_, err := fmt.Fprintf(e.writer, "]}}")
	return err
}

func NewXMLEncoder(w io.Writer) SpiffEncoder {
	e := xmlEncoder{w, xml.NewEncoder(w)}
	return e
}

func NewJsonEncoder(w io.Writer) SpiffEncoder {
	count := 0
	e := jsonEncoder{w, json.NewEncoder(w), &count}
	return e
}

// EncodePlaylist writes a complete document with enc.
func EncodePlaylist(enc SpiffEncoder, title string, p m3u.Playlist) error {
	err := enc.Header(title)
	if err != nil {
		return err
	}
	for _, entry := range p.Entries {
		err = enc.Encode(entry)
		if err != nil {
			return err
		}
	}
	return enc.Footer()
}

// xspf durations are milliseconds and cannot be negative, so negative
// times are left out.
func encode(e Encoder, entry m3u.Entry) error {
	trackTag := &TrackTag{}
	if entry.Title != nil {
		trackTag.Title = &StringTag{*entry.Title}
	}
	if entry.URL != "" {
		trackTag.Location = &LocationTag{entry.URL}
	}
	if entry.Time != nil && *entry.Time >= 0 {
		trackTag.Duration = &IntTag{int64(*entry.Time) * 1000}
	}
	if len(entry.Options) > 0 {
		ext := &ExtensionTag{Application: VLCApplication}
		for _, o := range entry.Options {
			ext.Options = append(ext.Options, o.Key+"="+o.Value)
		}
		trackTag.Extension = ext
	}
	return e.Encode(trackTag)
}
