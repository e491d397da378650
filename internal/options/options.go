// Package options implements the options subsystem spec §6 says the
// core consumes only to gate "unsafe" optimizations. Shape and load
// order are grounded on the teacher's model.ModificationConfig /
// core.InputOptions (plain struct, JSON-tagged) and on
// cmd/morfx/main.go's flag-building, which layers defaults, then
// environment/config, then explicit flags.
package options

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Options is the read-only view the Matcher consults before letting an
// "unsafe-math" or "unsafe-object" rule fire.
type Options struct {
	UnsafeMath   bool
	UnsafeObject bool
}

// Get reads a single named option, matching spec §6's described
// surface ("the read of a single named option, 'unsafe-math'").
func (o Options) Get(name string) bool {
	switch name {
	case "unsafe-math":
		return o.UnsafeMath
	case "unsafe-object":
		// Per spec's open question, unsafe-object is gated exactly like
		// unsafe-math, by its own option bit; no check is made of
		// whether a matched operand could be an object (documented in
		// DESIGN.md).
		return o.UnsafeObject
	default:
		return false
	}
}

// Default returns the zero-value options: every unsafe gate closed.
func Default() Options { return Options{} }

// Load builds Options from, in increasing precedence: the closed
// defaults, an optional .env file at envPath (loaded via godotenv, the
// same library the teacher's CLI config loading uses), then explicit
// overrides the caller already resolved from its own flags (passing a
// nil override leaves the env-derived value untouched).
func Load(envPath string, overrideUnsafeMath, overrideUnsafeObject *bool) Options {
	opts := Default()

	if envPath != "" {
		if err := godotenv.Load(envPath); err == nil {
			if v, ok := os.LookupEnv("OPTIQ_UNSAFE_MATH"); ok {
				opts.UnsafeMath = parseBool(v)
			}
			if v, ok := os.LookupEnv("OPTIQ_UNSAFE_OBJECT"); ok {
				opts.UnsafeObject = parseBool(v)
			}
		}
	}

	if overrideUnsafeMath != nil {
		opts.UnsafeMath = *overrideUnsafeMath
	}
	if overrideUnsafeObject != nil {
		opts.UnsafeObject = *overrideUnsafeObject
	}
	return opts
}

func parseBool(v string) bool {
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return b
}
