package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/samuraiexx/vyjs/snap"
)

func getSnapFile(cfg *MainConfig, cc *cli.Context, path string) (*snap.Value, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	if cfg.Y {
		return snap.ParseYAML(d)
	}
	return snap.ParseJSON(d)
}
