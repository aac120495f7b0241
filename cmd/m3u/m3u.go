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
	"os"

	"github.com/defsub/extm3u/config"
	"github.com/defsub/extm3u/lib/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "m3u",
	Short: "m3u reads, writes and converts extended m3u playlists",
	Long:  `https://github.com/defsub/extm3u`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

var configFile string
var configPath string
var configName string

func getConfig() (*config.Config, error) {
	if configPath == "" {
		configPath = os.Getenv("M3U_HOME")
	}
	if configName == "" {
		configName = os.Getenv("M3U_CONFIG")
	}
	if configFile != "" {
		config.SetConfigFile(configFile)
	} else {
		if configPath == "" {
			configPath = "."
		}
		if configName == "" {
			configName = "m3u"
		}
		config.AddConfigPath(configPath)
		config.SetConfigName(configName)
	}
	return config.GetConfig()
}

func main() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file")
	log.CheckError(rootCmd.Execute())
}
