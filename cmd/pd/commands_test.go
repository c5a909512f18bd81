package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/scott-cotton/cli"
)

type buffer struct {
	bytes.Buffer
}

func (*buffer) Close() error { return nil }

func testContext(in string) (*cli.Context, *buffer, *buffer) {
	out, errOut := &buffer{}, &buffer{}
	return &cli.Context{
		In:  io.NopCloser(strings.NewReader(in)),
		Out: out,
		Err: errOut,
		Go:  context.Background(),
	}, out, errOut
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(p, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return p
}

func exitCode(err error) int {
	var xc cli.ExitCodeErr
	if errors.As(err, &xc) {
		return int(xc)
	}
	if err != nil {
		return -1
	}
	return 0
}

const mentionJSON = `{"type":"mention","value":"ann","children":[{"text":""}]}`

func TestDiffCommand(t *testing.T) {
	hi := writeDoc(t, "hi.json", `[{"text":"hi"}]`)
	hiThere := writeDoc(t, "hi-there.json", `[{"text":"hi there"}]`)
	tests := []struct {
		name string
		args []string
		want string
		code int
	}{
		{"differ", []string{"diff", hi, hiThere}, "hi{+ there+}\n", 1},
		{"equal", []string{"diff", hi, hi}, "hi\n", 0},
		{"alias", []string{"d", hiThere, hi}, "hi[- there-]\n", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cc, out, _ := testContext("")
			err := MainCommand().Run(cc, tt.args)
			if got := exitCode(err); got != tt.code {
				t.Errorf("exit %d, want %d (%v)", got, tt.code, err)
			}
			if out.String() != tt.want {
				t.Errorf("got %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestDiffCommandKey(t *testing.T) {
	a := writeDoc(t, "a.json", `[{"type":"mention","id":7,"value":"ann","children":[{"text":""}]}]`)
	b := writeDoc(t, "b.json", `[{"type":"mention","id":7,"value":"Ann","children":[{"text":""}]}]`)

	cc, _, _ := testContext("")
	sub := MainCommand().FindSub(cc, "diff")
	err := sub.Run(cc, []string{"-key", "el.", a, b})
	if !errors.Is(err, cli.ErrUsage) {
		t.Errorf("expected a usage error, got %v", err)
	}

	cc, out, _ := testContext("")
	err = MainCommand().Run(cc, []string{"diff", "-key", `kind + ":" + string(el.id)`, a, b})
	if exitCode(err) != 1 {
		t.Errorf("expected exit 1, got %v", err)
	}
	if want := "[-[mention]-]{+[mention]+}\n"; out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestFlattenCommand(t *testing.T) {
	p := writeDoc(t, "in.json", `[{"text":"AB"},`+mentionJSON+`,{"text":"C"}]`)
	cc, out, _ := testContext("")
	if err := MainCommand().Run(cc, []string{"flatten", "-unavailable", "D", p}); err != nil {
		t.Fatal(err)
	}
	want := "ABEC\n'E' U+0045 [mention] " + mentionJSON + "\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestRoundTripCommand(t *testing.T) {
	cc, out, _ := testContext(`[{"text":"a"}]`)
	err := MainCommand().Run(cc, []string{"-O", "json", "-indent", "\t", "roundtrip", "-"})
	if err != nil {
		t.Fatal(err)
	}
	want := "[\n\t{\n\t\t\"text\": \"a\"\n\t}\n]\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}
