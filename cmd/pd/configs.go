package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shaungrady/plate/encode"
	"github.com/shaungrady/plate/format"
	"github.com/shaungrady/plate/parse"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Indent string `cli:"name=indent desc='indentation of json output (default two spaces)'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		*fp = &f
		return f, nil
	})
}

func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	f := format.FromPath(path)
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	return []parse.ParseOption{parse.ParseFormat(f)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	f := format.TextFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	res := []encode.EncodeOption{encode.EncodeFormat(f)}
	if cfg.Indent != "" {
		res = append(res, encode.EncodeIndent(cfg.Indent))
	}
	if !f.IsText() {
		return res
	}
	if cfg.Color {
		return append(res, encode.EncodeColors(encode.NewColors()))
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	fd, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(fd.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

type DiffConfig struct {
	*MainConfig
	Key         string `cli:"name=key desc='expression identifying elements, with el and kind in scope'"`
	Semantic    bool   `cli:"name=semantic desc='clean up the diff for readability'"`
	IgnoreMarks bool   `cli:"name=nomarks desc='ignore changes to marks only'"`

	Diff *cli.Command
}

type FlattenConfig struct {
	*MainConfig
	Unavailable string `cli:"name=unavailable desc='characters never used as placeholders'"`

	Flatten *cli.Command
}

type RoundTripConfig struct {
	*MainConfig

	RoundTrip *cli.Command
}
