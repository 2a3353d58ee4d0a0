package main

import (
	"encoding/json"
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/samuraiexx/vyjs/delta"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	cfg.setupColor()
	oldSnap, err := getSnapFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	newSnap, err := getSnapFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d := delta.Make(oldSnap, newSnap)
	if cfg.Where != "" {
		d, err = filterDelta(d, cfg.Where)
		if err != nil {
			return fmt.Errorf("invalid -where filter: %w", err)
		}
	}
	if d == nil {
		return nil
	}
	switch {
	case cfg.JSONPatch:
		out, err := delta.ToJSONPatch(d)
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", out)
	case cfg.JSON:
		out, err := json.Marshal(d.ToAny())
		if err != nil {
			return err
		}
		fmt.Fprintf(cc.Out, "%s\n", out)
	default:
		renderDelta(cc.Out, d, 0)
	}
	return cli.ExitCodeErr(1)
}
