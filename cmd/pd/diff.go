package main

import (
	"fmt"

	"github.com/shaungrady/plate/encode"
	"github.com/shaungrady/plate/libdiff"

	"github.com/scott-cotton/cli"
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
	opts := []libdiff.Option{
		libdiff.CleanupSemantic(cfg.Semantic),
		libdiff.IgnoreMarks(cfg.IgnoreMarks),
	}
	if cfg.Key != "" {
		key, err := libdiff.ExprKey(cfg.Key)
		if err != nil {
			return fmt.Errorf("%w: -key: %w", cli.ErrUsage, err)
		}
		opts = append(opts, libdiff.ElementKey(key))
	}
	from, err := loadNodes(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	to, err := loadNodes(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	nodes, err := libdiff.DiffInline(from, to, opts...)
	if err != nil {
		return err
	}
	if err := encode.Encode(nodes, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	for _, n := range nodes {
		if n.Marks.Diff {
			return cli.ExitCodeErr(1)
		}
	}
	return nil
}
