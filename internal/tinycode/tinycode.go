// Package tinycode defines the contract between the translation driver and
// an architecture backend: the debug-annotation modes, the entry-point table
// a backend populates at load time, and the emitter backends write portable
// tiny code through.
package tinycode

import (
	"fmt"
	"io"
)

// DebugMode selects what provenance annotation accompanies translated
// output. It is passed through to the backend unchanged.
type DebugMode int

const (
	// DebugNone emits bare tiny-code ops.
	DebugNone DebugMode = iota
	// DebugAsm annotates each instruction with its original assembly text.
	DebugAsm
	// DebugPTC annotates each op with its tiny-code index.
	DebugPTC
)

// String returns the textual selector for the mode.
func (m DebugMode) String() string {
	switch m {
	case DebugNone:
		return "none"
	case DebugAsm:
		return "asm"
	case DebugPTC:
		return "ptc"
	default:
		return "unknown"
	}
}

// ParseDebugMode maps a textual selector to a DebugMode. Exactly the values
// "none", "asm" and "ptc" are accepted.
func ParseDebugMode(s string) (DebugMode, error) {
	switch s {
	case "none":
		return DebugNone, nil
	case "asm":
		return DebugAsm, nil
	case "ptc":
		return DebugPTC, nil
	default:
		return DebugNone, fmt.Errorf("unexpected debug mode %q (accepted: none, asm, ptc)", s)
	}
}

// Interface is the entry-point table a backend populates when it is loaded.
// A backend's load function receives an empty Interface and must set every
// field; the registry rejects a backend that leaves the table incomplete.
type Interface struct {
	// Translate performs one translation pass over code, writing annotated
	// tiny code to w according to mode.
	Translate func(code []byte, mode DebugMode, w io.Writer) error
}

// LoadFunc is the signature of a backend's well-known load entry point.
// It returns zero on success.
type LoadFunc func(*Interface) int
