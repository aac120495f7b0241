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
	"io"
	"os"
	"text/tabwriter"

	"github.com/defsub/extm3u/config"
	"github.com/spf13/cobra"
)

var formats = []string{
	config.FormatM3U,
	config.FormatJSON,
	config.FormatJSPF,
	config.FormatXSPF,
	config.FormatPLS,
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "list playlist formats",
	Run: func(cmd *cobra.Command, args []string) {
		listFormats(os.Stdout)
	},
}

func listFormats(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, f := range formats {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", f, extension(f), mediaType(f))
	}
	tw.Flush()
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
