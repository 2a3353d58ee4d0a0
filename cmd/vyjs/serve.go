package main

import (
	"context"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/samuraiexx/vyjs"
	"github.com/samuraiexx/vyjs/doc"
	"github.com/samuraiexx/vyjs/syncrpc"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		cfg.Serve.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	var d *doc.Doc
	switch len(args) {
	case 0:
		d = doc.New()
	case 1:
		initial, err := getSnapFile(cfg.MainConfig, cc, args[0])
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", args[0], err)
		}
		d, err = vyjs.NewDoc(initial)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: serve takes at most 1 arg, got %v", cli.ErrUsage, args)
	}
	return syncrpc.ServeStdio(context.Background(), d)
}
