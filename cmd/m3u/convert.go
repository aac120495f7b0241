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
	"github.com/defsub/extm3u/config"
	"github.com/spf13/cobra"
)

var convertFrom, convertTo, convertTitle, convertOutput string
var convertStrict bool

var convertCmd = &cobra.Command{
	Use:   "convert [file]",
	Short: "convert between m3u, pls, json, jspf and xspf",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return convert(args)
	},
}

func convert(args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	to := convertTo
	if to == "" {
		to = cfg.Playlist.Format
	}
	title := convertTitle
	if title == "" {
		title = cfg.Playlist.Title
	}

	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()
	playlist, err := readPlaylist(cfg, in, convertFrom, convertStrict || cfg.Playlist.Strict)
	if err != nil {
		return err
	}

	out, err := openOutput(convertOutput)
	if err != nil {
		return err
	}
	defer out.Close()
	return writePlaylist(out, to, title, playlist)
}

func init() {
	convertCmd.Flags().StringVarP(&convertFrom, "from", "f", config.FormatM3U, "input format (m3u, pls, json, jspf)")
	convertCmd.Flags().StringVarP(&convertTo, "to", "t", "", "output format (m3u, pls, json, jspf, xspf)")
	convertCmd.Flags().StringVarP(&convertTitle, "title", "", "", "playlist title for jspf and xspf")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "output file")
	convertCmd.Flags().BoolVarP(&convertStrict, "strict", "s", false, "fail on malformed m3u lines")
	rootCmd.AddCommand(convertCmd)
}
