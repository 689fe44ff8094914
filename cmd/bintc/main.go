package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/bintc/bintc/internal/backend"
	"github.com/bintc/bintc/internal/config"
	"github.com/bintc/bintc/internal/driver"
	"github.com/bintc/bintc/internal/input"
)

const usage = `bintc - binary to portable tiny code translator

Usage:
  bintc [options] [--] [INFILE [OUTFILE]]

Options:
  -a, -architecture ARCH   the input architecture (required)
  -o, -offset N            offset in the input where translation starts
  -g, -debug MODE          emit debug information. Possible values are 'none'
                           for no debug information, 'asm' for debug
                           information referring to the assembly of the input
                           file, 'ptc' for debug information referred to the
                           Portable Tiny Code

Reads INFILE (default: standard input, at most 10 MiB) and writes the
translated representation to OUTFILE (default: standard output).

Built-in backends cover x86_64, arm and arm64. Any other architecture is
resolved by loading libtinycode-<arch>.so from the system's library search
path.
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Print(usage)
			return
		}
		fmt.Fprintf(os.Stderr, "bintc: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	params, err := config.Parse(args)
	if err != nil {
		return err
	}

	handle, err := resolveBackend(params.Architecture)
	if err != nil {
		return err
	}
	defer handle.Release()

	code, err := input.ReadAll(params.InputPath, input.DefaultMaxInput)
	if err != nil {
		return err
	}

	out := os.Stdout
	if params.OutputPath != "" {
		f, err := os.Create(params.OutputPath)
		if err != nil {
			return fmt.Errorf("cannot open %s for writing: %v", params.OutputPath, err)
		}
		defer f.Close()
		out = f
	}

	w := bufio.NewWriter(out)
	if err := driver.Run(handle, code, params.Offset, params.DebugMode, w); err != nil {
		return err
	}
	return w.Flush()
}

// resolveBackend tries the built-in table first and falls back to runtime
// plugin discovery for architectures this binary was not compiled with.
func resolveBackend(architecture string) (*backend.Handle, error) {
	handle, err := backend.NewStaticRegistry().Resolve(architecture)
	if err != nil && errors.Is(err, backend.ErrBackendNotFound) {
		return (&backend.PluginRegistry{}).Resolve(architecture)
	}
	return handle, err
}
