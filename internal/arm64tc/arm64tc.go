// Package arm64tc lowers raw AArch64 machine code to portable tiny code.
package arm64tc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/arch/arm64/arm64asm"

	"github.com/bintc/bintc/internal/tinycode"
)

const insnLen = 4

// Load populates the tiny-code interface table. Zero means success.
func Load(iface *tinycode.Interface) int {
	iface.Translate = Translate
	return 0
}

// Translate decodes code as fixed-width AArch64 instructions and writes
// annotated tiny code to w. Empty input produces empty output.
func Translate(code []byte, mode tinycode.DebugMode, w io.Writer) error {
	e := tinycode.NewEmitter(w, mode)
	for off := 0; off < len(code); off += insnLen {
		if off+insnLen > len(code) {
			return fmt.Errorf("truncated instruction at offset %#x: %d trailing bytes", off, len(code)-off)
		}
		inst, err := arm64asm.Decode(code[off : off+insnLen])
		if err != nil {
			return fmt.Errorf("cannot decode instruction at offset %#x: %v", off, err)
		}
		e.Source(arm64asm.GNUSyntax(inst))
		e.InsnStart(uint64(off))
		switch inst.Op {
		case arm64asm.RET:
			e.Op("exit_tb")
		default:
			e.Op("%s", strings.ToLower(inst.String()))
		}
	}
	return e.Err()
}
