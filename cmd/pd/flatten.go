package main

import (
	"fmt"

	"github.com/shaungrady/plate/charmap"
	"github.com/shaungrady/plate/doc"
	"github.com/shaungrady/plate/encode"
	"github.com/shaungrady/plate/libdiff"

	"github.com/scott-cotton/cli"
)

func flatten(cfg *FlattenConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Flatten.Parse(cc, args)
	if err != nil {
		cfg.Flatten.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file := "-"
	switch len(args) {
	case 0:
	case 1:
		file = args[0]
	default:
		return fmt.Errorf("%w: flatten takes at most 1 arg, got %v", cli.ErrUsage, args)
	}
	nodes, err := loadNodes(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	c := charmap.New(charmap.Unavailable(cfg.Unavailable + doc.Text(nodes)))
	s, err := libdiff.Flatten(nodes, c)
	if err != nil {
		return err
	}
	return encode.EncodePlaceholders(s, c, cc.Out, cfg.encOpts(cc.Out)...)
}
