package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse bool
	Patch bool
	Diff  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("JDOM_DEBUG_PARSE")
	d.Patch = boolEnv("JDOM_DEBUG_PATCH")
	d.Diff = boolEnv("JDOM_DEBUG_DIFF")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Patch() bool {
	return d.Patch
}
func Diff() bool {
	return d.Diff
}
