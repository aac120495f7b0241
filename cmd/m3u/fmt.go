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

var fmtStrict bool
var fmtOutput string

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "rewrite a playlist in canonical form",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return format(args)
	},
}

func format(args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()

	playlist, err := readPlaylist(cfg, in, config.FormatM3U, fmtStrict || cfg.Playlist.Strict)
	if err != nil {
		return err
	}

	out, err := openOutput(fmtOutput)
	if err != nil {
		return err
	}
	defer out.Close()
	return writePlaylist(out, config.FormatM3U, cfg.Playlist.Title, playlist)
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtStrict, "strict", "s", false, "fail on malformed lines")
	fmtCmd.Flags().StringVarP(&fmtOutput, "output", "o", "", "output file")
	rootCmd.AddCommand(fmtCmd)
}
