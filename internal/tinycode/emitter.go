package tinycode

import (
	"fmt"
	"io"
)

// Emitter writes a tiny-code stream with the annotations the selected
// DebugMode requests. Write errors are sticky: the first one is retained
// and every later call becomes a no-op, so backends can emit a full
// instruction and check Err once.
type Emitter struct {
	w    io.Writer
	mode DebugMode
	ops  int
	err  error
}

// NewEmitter creates an Emitter writing to w in the given mode.
func NewEmitter(w io.Writer, mode DebugMode) *Emitter {
	return &Emitter{w: w, mode: mode}
}

func (e *Emitter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// Source records the original assembly text of the instruction about to be
// lowered. It produces output only in DebugAsm mode.
func (e *Emitter) Source(text string) {
	if e.mode == DebugAsm {
		e.printf("; %s\n", text)
	}
}

// Label emits a block label.
func (e *Emitter) Label(n int) {
	e.printf("block_%d:\n", n)
}

// InsnStart marks the start of the ops lowered from the instruction at addr.
func (e *Emitter) InsnStart(addr uint64) {
	e.Op("insn_start %#x", addr)
}

// Op emits one tiny-code op. In DebugPTC mode the op is prefixed with its
// running index.
func (e *Emitter) Op(format string, args ...any) {
	if e.mode == DebugPTC {
		e.printf("%4d: ", e.ops)
	} else {
		e.printf("  ")
	}
	e.printf(format, args...)
	e.printf("\n")
	e.ops++
}

// Ops returns the number of ops emitted so far.
func (e *Emitter) Ops() int {
	return e.ops
}

// Err returns the first write error, if any.
func (e *Emitter) Err() error {
	return e.err
}
