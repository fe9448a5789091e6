//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const defaultFileName = ".goed.yaml"

// Config holds settings read from a YAML file.
//
//	prompt: "* "   # shown before each command when reading from a terminal
//	verbose: true  # print error messages, not just "?"
//	log: /tmp/goed.log
type Config struct {
	Prompt  string `yaml:"prompt"`
	Verbose bool   `yaml:"verbose"`
	Log     string `yaml:"log"`
}

// DefaultPath returns the path of the config file in the home directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, defaultFileName)
}

// Load reads a config file. If the file doesn't exist and optional is
// true, the default config is returned.
func Load(path string, optional bool) (*Config, error) {
	c := &Config{}
	if path == "" {
		return c, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return c, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, err
	}
	return c, nil
}
