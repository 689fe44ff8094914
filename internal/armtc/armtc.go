// Package armtc lowers raw AArch32 machine code to portable tiny code.
package armtc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/arch/arm/armasm"

	"github.com/bintc/bintc/internal/tinycode"
)

const insnLen = 4

// Load populates the tiny-code interface table. Zero means success.
func Load(iface *tinycode.Interface) int {
	iface.Translate = Translate
	return 0
}

// Translate decodes code as fixed-width ARM instructions and writes
// annotated tiny code to w. Empty input produces empty output.
func Translate(code []byte, mode tinycode.DebugMode, w io.Writer) error {
	e := tinycode.NewEmitter(w, mode)
	for off := 0; off < len(code); off += insnLen {
		if off+insnLen > len(code) {
			return fmt.Errorf("truncated instruction at offset %#x: %d trailing bytes", off, len(code)-off)
		}
		inst, err := armasm.Decode(code[off:off+insnLen], armasm.ModeARM)
		if err != nil {
			return fmt.Errorf("cannot decode instruction at offset %#x: %v", off, err)
		}
		e.Source(armasm.GNUSyntax(inst))
		e.InsnStart(uint64(off))
		e.Op("%s", strings.ToLower(inst.String()))
	}
	return e.Err()
}
