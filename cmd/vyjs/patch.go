package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/samuraiexx/vyjs"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 args, got %v", cli.ErrUsage, args)
	}
	docSnap, err := getSnapFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	deltaVal, err := getSnapFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d, err := vyjs.NewDoc(docSnap)
	if err != nil {
		return err
	}
	var warnings []vyjs.Warning
	err = d.Transact(func() error {
		var applyErr error
		warnings, applyErr = vyjs.ApplyPortable(d.Root(), deltaVal)
		return applyErr
	})
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	out, err := json.Marshal(d.Root().Snapshot().ToAny())
	if err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "%s\n", out)
	return nil
}
