// Package debug holds process-wide debug switches, read once from the
// environment at startup.
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Token bool
	Parse bool
	Query bool
	Diff  bool
	Patch bool
}

var d *debug

func init() {
	d = &debug{}
	d.Token = boolEnv("VDF_DEBUG_TOKEN")
	d.Parse = boolEnv("VDF_DEBUG_PARSE")
	d.Query = boolEnv("VDF_DEBUG_QUERY")
	d.Diff = boolEnv("VDF_DEBUG_DIFF")
	d.Patch = boolEnv("VDF_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Token() bool {
	return d.Token
}
func Parse() bool {
	return d.Parse
}
func Query() bool {
	return d.Query
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
