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
	"fmt"
	"path/filepath"
	"strings"

	"github.com/defsub/extm3u/config"
	"github.com/defsub/extm3u/lib/log"
	"github.com/defsub/extm3u/library"
	"github.com/spf13/cobra"
)

var libraryName, libraryFormat, libraryOutput string

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "store a playlist in the library",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importPlaylist(args)
	},
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "write a playlist from the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportPlaylist()
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "list playlists in the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listPlaylists()
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "remove a playlist from the library",
	RunE: func(cmd *cobra.Command, args []string) error {
		return removePlaylist()
	},
}

func openLibrary() (*config.Config, *library.Library, error) {
	cfg, err := getConfig()
	if err != nil {
		return nil, nil, err
	}
	l := library.NewLibrary(cfg)
	err = l.Open()
	if err != nil {
		return nil, nil, err
	}
	return cfg, l, nil
}

func importPlaylist(args []string) error {
	cfg, l, err := openLibrary()
	if err != nil {
		return err
	}
	defer l.Close()

	name := libraryName
	if name == "" && len(args) > 0 && args[0] != "-" {
		base := filepath.Base(args[0])
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	in, err := openInput(args)
	if err != nil {
		return err
	}
	defer in.Close()
	format := libraryFormat
	if format == "" {
		format = config.FormatM3U
	}
	playlist, err := readPlaylist(cfg, in, format, cfg.Playlist.Strict)
	if err != nil {
		return err
	}
	id, err := l.Save(name, playlist)
	if err != nil {
		return err
	}
	fmt.Println(id)
	return nil
}

func exportPlaylist() error {
	cfg, l, err := openLibrary()
	if err != nil {
		return err
	}
	defer l.Close()

	playlist, err := l.Lookup(libraryName)
	if err != nil {
		return err
	}
	format := libraryFormat
	if format == "" {
		format = cfg.Playlist.Format
	}
	output := libraryOutput
	if output == "" {
		vars := map[string]string{
			"Name":      libraryName,
			"Extension": extension(format),
		}
		output = filepath.Join(cfg.DataDir, cfg.Playlist.FileTemplate.Execute(vars))
	}
	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()
	err = writePlaylist(out, format, libraryName, playlist)
	if err == nil && output != "-" {
		log.Printf("wrote %s\n", output)
	}
	return err
}

func listPlaylists() error {
	_, l, err := openLibrary()
	if err != nil {
		return err
	}
	defer l.Close()
	for _, p := range l.List() {
		fmt.Printf("%s\t%d\t%s\n", p.UUID, p.Size, p.Name)
	}
	return nil
}

func removePlaylist() error {
	_, l, err := openLibrary()
	if err != nil {
		return err
	}
	defer l.Close()
	return l.Delete(libraryName)
}

func init() {
	importCmd.Flags().StringVarP(&libraryName, "name", "n", "", "playlist name (default file name)")
	importCmd.Flags().StringVarP(&libraryFormat, "from", "f", "", "input format (m3u, pls, json, jspf)")
	exportCmd.Flags().StringVarP(&libraryName, "name", "n", "", "playlist name")
	exportCmd.Flags().StringVarP(&libraryFormat, "to", "t", "", "output format (m3u, pls, json, jspf, xspf)")
	exportCmd.Flags().StringVarP(&libraryOutput, "output", "o", "", "output file, - for stdout")
	exportCmd.MarkFlagRequired("name")
	rmCmd.Flags().StringVarP(&libraryName, "name", "n", "", "playlist name")
	rmCmd.MarkFlagRequired("name")
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(rmCmd)
}
