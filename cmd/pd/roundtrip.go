package main

import (
	"fmt"

	"github.com/shaungrady/plate/charmap"
	"github.com/shaungrady/plate/doc"
	"github.com/shaungrady/plate/encode"

	"github.com/scott-cotton/cli"
)

func roundTrip(cfg *RoundTripConfig, cc *cli.Context, args []string) error {
	args, err := cfg.RoundTrip.Parse(cc, args)
	if err != nil {
		cfg.RoundTrip.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	file := "-"
	switch len(args) {
	case 0:
	case 1:
		file = args[0]
	default:
		return fmt.Errorf("%w: roundtrip takes at most 1 arg, got %v", cli.ErrUsage, args)
	}
	nodes, err := loadNodes(cfg.MainConfig, cc, file)
	if err != nil {
		return err
	}
	got, err := roundTripNodes(nodes)
	if err != nil {
		return err
	}
	if err := encode.Encode(got, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
		return err
	}
	if !doc.SliceEqual(got, doc.Normalize(nodes)) {
		fmt.Fprintf(cc.Err, "%s: round trip changed the document\n", file)
		return cli.ExitCodeErr(1)
	}
	return nil
}

// roundTripNodes encodes nodes, joins neighbouring texts with the same marks
// as a text diff would, and decodes the result.
func roundTripNodes(nodes []*doc.Node) ([]*doc.Node, error) {
	c := charmap.New(charmap.Unavailable(doc.Text(nodes)))
	texts, err := c.EncodeAll(nodes)
	if err != nil {
		return nil, err
	}
	return c.DecodeAll(doc.Normalize(texts)), nil
}
