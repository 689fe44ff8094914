// Package config parses the command-line flag table into the parameters the
// translation pipeline consumes.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/bintc/bintc/internal/tinycode"
)

var (
	// ErrMissingArchitecture reports that no architecture was supplied.
	// There is no default.
	ErrMissingArchitecture = errors.New("no architecture specified")

	// ErrInvalidOffset reports an offset that does not parse as a
	// non-negative integer.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrInvalidDebugMode reports a debug selector outside the accepted
	// values.
	ErrInvalidDebugMode = errors.New("invalid debug mode")

	// ErrTooManyArguments reports more than two positional arguments.
	ErrTooManyArguments = errors.New("too many arguments")
)

// Parameters holds the parsed configuration of one translation run.
type Parameters struct {
	Architecture string
	Offset       uint64
	DebugMode    tinycode.DebugMode
	InputPath    string // empty means standard input
	OutputPath   string // empty means standard output
}

// Parse resolves args into Parameters. Flags accept both short and long
// spellings; at most two positional arguments name the input and output
// paths. flag.ErrHelp is returned unchanged so the caller can print usage.
func Parse(args []string) (*Parameters, error) {
	fs := flag.NewFlagSet("bintc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var arch, offsetArg, debugArg string
	fs.StringVar(&arch, "architecture", "", "the input architecture")
	fs.StringVar(&arch, "a", "", "the input architecture")
	fs.StringVar(&offsetArg, "offset", "", "offset in the input where translation starts")
	fs.StringVar(&offsetArg, "o", "", "offset in the input where translation starts")
	fs.StringVar(&debugArg, "debug", "", "debug annotations: none, asm or ptc")
	fs.StringVar(&debugArg, "g", "", "debug annotations: none, asm or ptc")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if arch == "" {
		return nil, ErrMissingArchitecture
	}
	params := &Parameters{Architecture: arch}

	if offsetArg != "" {
		offset, err := strconv.ParseUint(offsetArg, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidOffset, offsetArg)
		}
		params.Offset = offset
	}

	if debugArg != "" {
		mode, err := tinycode.ParseDebugMode(debugArg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDebugMode, err)
		}
		params.DebugMode = mode
	}

	rest := fs.Args()
	if len(rest) > 2 {
		return nil, fmt.Errorf("%w: expected at most [INFILE [OUTFILE]], got %d arguments", ErrTooManyArguments, len(rest))
	}
	if len(rest) >= 1 {
		params.InputPath = rest[0]
	}
	if len(rest) == 2 {
		params.OutputPath = rest[1]
	}
	return params, nil
}
