package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Y     bool `cli:"name=y aliases=yaml desc='decode input files as yaml'"`
	Color bool `cli:"name=color desc='force colored output'"`

	Main *cli.Command
}

// setupColor resolves the global color switch: forced on by -color,
// otherwise on only when stdout is a terminal.
func (cfg *MainConfig) setupColor() {
	if cfg.Color {
		color.NoColor = false
		return
	}
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
}

type DiffConfig struct {
	*MainConfig
	JSON      bool   `cli:"name=json desc='print the raw delta as json'"`
	JSONPatch bool   `cli:"name=patch desc='print an rfc 6902 json patch'"`
	Where     string `cli:"name=where desc='expr filter over path, op and depth'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type ServeConfig struct {
	*MainConfig

	Serve *cli.Command
}
