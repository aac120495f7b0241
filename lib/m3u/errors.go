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
	"fmt"
)

var (
	ErrMissingSeparator = errors.New("missing separator")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrUnknownDirective = errors.New("unknown directive")
	ErrDanglingEntry    = errors.New("entry has no url")
)

// MalformedLineError reports a line rejected by strict decoding. Line is
// 1-based.
type MalformedLineError struct {
	Line int
	Text string
	Err  error
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Err, e.Text)
}

func (e *MalformedLineError) Unwrap() error {
	return e.Err
}
