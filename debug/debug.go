package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Normalize bool
	Parse     bool
	Encode    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Normalize = boolEnv("LOCYAML_DEBUG_NORMALIZE")
	d.Parse = boolEnv("LOCYAML_DEBUG_PARSE")
	d.Encode = boolEnv("LOCYAML_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Normalize() bool {
	return d.Normalize
}
func Parse() bool {
	return d.Parse
}
func Encode() bool {
	return d.Encode
}
