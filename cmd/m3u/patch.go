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
	"io/ioutil"

	"github.com/defsub/extm3u/config"
	"github.com/defsub/extm3u/lib/m3u"
	"github.com/spf13/cobra"
)

var patchFile, patchOutput string
var patchMerge bool

var patchCmd = &cobra.Command{
	Use:   "patch [file]",
	Short: "apply a json patch to a playlist",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return patch(args)
	},
}

func patch(args []string) error {
	cfg, err := getConfig()
	if err != nil {
		return err
	}
	data, err := ioutil.ReadFile(patchFile)
	if err != nil {
		return err
	}

	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()
	playlist, err := readPlaylist(cfg, in, config.FormatM3U, cfg.Playlist.Strict)
	if err != nil {
		return err
	}

	if patchMerge {
		playlist, err = m3u.MergePatch(playlist, data)
	} else {
		playlist, err = m3u.Patch(playlist, data)
	}
	if err != nil {
		return err
	}

	out, err := openOutput(patchOutput)
	if err != nil {
		return err
	}
	defer out.Close()
	return writePlaylist(out, config.FormatM3U, cfg.Playlist.Title, playlist)
}

func init() {
	patchCmd.Flags().StringVarP(&patchFile, "patch", "p", "", "json patch file")
	patchCmd.Flags().BoolVarP(&patchMerge, "merge", "m", false, "patch is a json merge patch")
	patchCmd.Flags().StringVarP(&patchOutput, "output", "o", "", "output file")
	patchCmd.MarkFlagRequired("patch")
	rootCmd.AddCommand(patchCmd)
}
