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
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-ini/ini"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// RootCmd is banchoctl's entry point, exported so subcommands in this
// package can register themselves from init().
var RootCmd = &cobra.Command{
	Use:   "banchoctl",
	Short: "Inspect and build Bancho protocol packets",
}

var (
	rootVerboseFlag bool
	rootBuildFlag   int
	rootNoColorFlag bool
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&rootVerboseFlag, "verbose", "v", false, "verbose output")
	RootCmd.PersistentFlags().IntVarP(&rootBuildFlag, "build", "b", defaultBuild(), "client build number to decode/encode against")
	RootCmd.PersistentFlags().BoolVar(&rootNoColorFlag, "no-color", false, "disable colored output")
}

// ConfigureVerbosity sets logrus's level from the parsed verbose flag.
// Every subcommand's Run calls this first, matching the teacher's
// ptpcheck CLI.
func ConfigureVerbosity() {
	log.SetLevel(log.InfoLevel)
	if rootVerboseFlag {
		log.SetLevel(log.DebugLevel)
	}
}

// colorEnabled reports whether highlighted output should be used: off
// when --no-color is passed, off when ~/.banchoctl.ini sets color to
// false, and off when stdout isn't a terminal.
func colorEnabled() bool {
	if rootNoColorFlag || !loadConfig().Color {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func colorize(c *color.Color, s string) string {
	if !colorEnabled() {
		return s
	}
	return c.Sprint(s)
}

// config is the subset of ~/.banchoctl.ini this tool reads.
type config struct {
	DefaultBuild int
	Color        bool
}

func loadConfig() config {
	cfg := config{DefaultBuild: 1817, Color: true}
	home, err := os.UserHomeDir()
	if err != nil {
		return cfg
	}
	path := filepath.Join(home, ".banchoctl.ini")
	f, err := ini.Load(path)
	if err != nil {
		return cfg
	}
	section := f.Section("")
	cfg.DefaultBuild = section.Key("default_build").MustInt(cfg.DefaultBuild)
	cfg.Color = section.Key("color").MustBool(cfg.Color)
	return cfg
}

func defaultBuild() int {
	return loadConfig().DefaultBuild
}
