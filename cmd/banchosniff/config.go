/*
Copyright (c) Facebook, Inc. and its affiliates.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config holds the flag defaults for a sniff run, loaded from a YAML file
// via -config so repeated captures against the same server don't need the
// full flag line every time. Flags passed on the command line always win.
type Config struct {
	Input   string `yaml:"input"`
	Iface   string `yaml:"iface"`
	Build   int    `yaml:"build"`
	Port    int    `yaml:"port"`
	Metrics string `yaml:"metrics"`
	Verbose bool   `yaml:"verbose"`
}

// readConfig reads a Config from path. A file that cannot be read or
// parsed is an error; the caller skips readConfig when -config is empty
// and keeps the flag defaults.
func readConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := &Config{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, nil
}
