// Package debug holds env-var gated debug switches for the engine.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Apply    bool
	Events   bool
	Portable bool
}

var d *debug

func init() {
	d = &debug{}
	d.Apply = boolEnv("VYJS_DEBUG_APPLY")
	d.Events = boolEnv("VYJS_DEBUG_EVENTS")
	d.Portable = boolEnv("VYJS_DEBUG_PORTABLE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Apply() bool {
	return d.Apply
}
func Events() bool {
	return d.Events
}
func Portable() bool {
	return d.Portable
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
