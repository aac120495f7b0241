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

package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"text/template"

	"github.com/defsub/extm3u"
	"github.com/spf13/viper"
)

const (
	FormatM3U  = "m3u"
	FormatJSON = "json"
	FormatJSPF = "jspf"
	FormatXSPF = "xspf"
	FormatPLS  = "pls"
)

var (
	ErrUnknownFormat = errors.New("unknown format")
)

type DatabaseConfig struct {
	Driver  string
	Source  string
	LogMode bool
}

type Template struct {
	Text  string
	templ *template.Template
}

func (t *Template) Template() *template.Template {
	if t.templ == nil {
		t.templ = template.Must(template.New("t").Parse(t.Text))
	}
	return t.templ
}

func (t *Template) Execute(vars interface{}) string {
	var buf bytes.Buffer
	_ = t.Template().Execute(&buf, vars)
	return buf.String()
}

type PlaylistConfig struct {
	Strict       bool
	Format       string
	Title        string
	MaxLineSize  int
	FileTemplate Template
}

type LibraryConfig struct {
	DB DatabaseConfig
}

type Config struct {
	DataDir  string
	Playlist PlaylistConfig
	Library  LibraryConfig
}

func ValidFormat(format string) bool {
	switch format {
	case FormatM3U, FormatJSON, FormatJSPF, FormatXSPF, FormatPLS:
		return true
	}
	return false
}

func (c *Config) Validate() error {
	if !ValidFormat(c.Playlist.Format) {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, c.Playlist.Format)
	}
	return nil
}

func configDefaults(v *viper.Viper) {
	v.SetDefault("DataDir", ".")

	v.SetDefault("Playlist.Strict", "false")
	v.SetDefault("Playlist.Format", FormatM3U)
	v.SetDefault("Playlist.Title", extm3u.AppName)
	v.SetDefault("Playlist.MaxLineSize", "1048576")
	v.SetDefault("Playlist.FileTemplate.Text", "{{.Name}}{{.Extension}}")

	v.SetDefault("Library.DB.Driver", "sqlite3")
	v.SetDefault("Library.DB.Source", "library.db")
	v.SetDefault("Library.DB.LogMode", "false")
}

func readConfig(v *viper.Viper) (*Config, error) {
	var config Config
	var pathRegexp = regexp.MustCompile(`(file|dir|source)$`)
	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return &config, err
		}
		// defaults only
		err = nil
	}
	dir := "."
	if v.ConfigFileUsed() != "" {
		dir = filepath.Dir(v.ConfigFileUsed())
	}
	for _, k := range v.AllKeys() {
		if pathRegexp.MatchString(k) {
			val, ok := v.Get(k).(string)
			if !ok || val == "" {
				continue
			}
			// dsn strings for mysql and postgres are left alone
			if strings.HasPrefix(val, "/") == false && strings.ContainsAny(val, ":=") == false {
				v.Set(k, fmt.Sprintf("%s/%s", dir, val))
			}
		}
	}
	err = v.Unmarshal(&config)
	if err == nil {
		err = config.Validate()
	}
	return &config, err
}

// TestConfig returns the defaults with the library database under dir.
func TestConfig(dir string) (*Config, error) {
	v := viper.New()
	configDefaults(v)
	v.SetDefault("Library.DB.Source", filepath.Join(dir, "library.db"))
	v.SetDefault("DataDir", dir)
	return readConfig(v)
}

var configFile, configPath, configName string

func SetConfigFile(path string) {
	configFile = path
}

func AddConfigPath(path string) {
	configPath = path
}

func SetConfigName(name string) {
	configName = name
}

func GetConfig() (*Config, error) {
	v := viper.New()
	if configFile != "" {
		if _, err := os.Stat(configFile); err != nil {
			return nil, err
		}
		v.SetConfigFile(configFile)
	}
	if configPath != "" {
		v.AddConfigPath(configPath)
	}
	if configName != "" {
		v.SetConfigName(configName)
	}
	v.SetEnvPrefix("M3U")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	configDefaults(v)
	return readConfig(v)
}

func LoadConfig(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	configDefaults(v)
	return readConfig(v)
}
