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
	"strings"

	"github.com/defsub/extm3u/lib/str"
)

const (
	ExtM3U    = "#EXTM3U"
	ExtInf    = "#EXTINF"
	ExtVLCOpt = "#EXTVLCOPT"
)

// Option is a single player directive attached to an entry, written as
// #EXTVLCOPT:<key>=<value>.
type Option struct {
	Key   string
	Value string
}

// Options is an ordered set of options with unique keys.
type Options []Option

// Get returns the value for key.
func (opts Options) Get(key string) (string, bool) {
	for _, o := range opts {
		if o.Key == key {
			return o.Value, true
		}
	}
	return "", false
}

// Set replaces the value for key in place, or appends a new option.
func (opts *Options) Set(key, value string) {
	for i := range *opts {
		if (*opts)[i].Key == key {
			(*opts)[i].Value = value
			return
		}
	}
	*opts = append(*opts, Option{Key: key, Value: value})
}

func (opts *Options) Delete(key string) {
	for i, o := range *opts {
		if o.Key == key {
			*opts = append((*opts)[:i], (*opts)[i+1:]...)
			return
		}
	}
}

func (opts Options) Keys() []string {
	keys := make([]string, len(opts))
	for i, o := range opts {
		keys[i] = o.Key
	}
	return keys
}

// Entry is one playable item. A nil Title is distinct from an empty one.
type Entry struct {
	Title   *string `json:"title"`
	URL     string  `json:"url"`
	Time    *int    `json:"time"`
	Options Options `json:"options"`
}

func NewEntry(url string) Entry {
	return Entry{URL: url}
}

func (e *Entry) SetTitle(title string) {
	e.Title = &title
}

func (e *Entry) SetTime(seconds int) {
	e.Time = &seconds
}

func (e *Entry) SetOption(key, value string) {
	e.Options.Set(key, value)
}

func (e Entry) Option(key string) (string, bool) {
	return e.Options.Get(key)
}

func (e Entry) HasTitle() bool {
	return e.Title != nil
}

func (e Entry) HasTime() bool {
	return e.Time != nil
}

// String returns the text block for the entry.
//
// An entry with a time but no title is written as a bare #EXTINF:<time>
// line, without options or url. Older players emit that tag-only form and
// it is kept as is.
func (e Entry) String() string {
	var b strings.Builder
	for _, o := range e.Options {
		b.WriteString(ExtVLCOpt)
		b.WriteString(":")
		b.WriteString(o.Key)
		b.WriteString("=")
		b.WriteString(o.Value)
		b.WriteString("\n")
	}
	b.WriteString(e.URL)
	body := b.String()

	switch {
	case e.Time != nil && e.Title != nil:
		return info(*e.Time, *e.Title) + "\n" + body
	case e.Title != nil:
		return info(0, *e.Title) + "\n" + body
	case e.Time != nil:
		return ExtInf + ":" + str.Itoa(*e.Time)
	default:
		return body
	}
}

func info(seconds int, title string) string {
	s := ExtInf + ":" + str.Itoa(seconds)
	if title != "" {
		s += "," + title
	}
	return s
}

func SerializeEntry(e Entry) string {
	return e.String()
}
