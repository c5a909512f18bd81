package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Encode bool
	Decode bool
	Diff   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Encode = boolEnv("PD_DEBUG_ENCODE")
	d.Decode = boolEnv("PD_DEBUG_DECODE")
	d.Diff = boolEnv("PD_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Encode() bool {
	return d.Encode
}
func Decode() bool {
	return d.Decode
}
func Diff() bool {
	return d.Diff
}
