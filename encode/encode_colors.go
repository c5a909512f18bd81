package encode

import (
	"strings"

	"github.com/fatih/color"
)

type Colors struct {
	Insert      func(string, ...any) string
	Delete      func(string, ...any) string
	Update      func(string, ...any) string
	Element     func(string, ...any) string
	Placeholder func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{
		Insert:      color.New(color.FgGreen).SprintfFunc(),
		Delete:      color.New(color.FgRed, color.CrossedOut).SprintfFunc(),
		Update:      color.New(color.FgYellow).SprintfFunc(),
		Element:     color.RGB(128, 168, 196).SprintfFunc(),
		Placeholder: color.RGB(255, 0, 196).SprintfFunc(),
	}
	for _, f := range []*func(string, ...any) string{&c.Insert, &c.Delete, &c.Update, &c.Element, &c.Placeholder} {
		g := *f
		*f = func(v string, _ ...any) string {
			return g(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return c
}
