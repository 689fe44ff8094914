package arm64tc

import (
	"strings"
	"testing"

	"github.com/bintc/bintc/internal/tinycode"
)

// AArch64 instruction encodings (little endian):
// stp x29, x30, [sp, #-16]!  = 0xfd 0x7b 0xbf 0xa9
// mov x29, sp                = 0xfd 0x03 0x00 0x91
// nop                        = 0x1f 0x20 0x03 0xd5
// ret                        = 0xc0 0x03 0x5f 0xd6
func TestTranslate(t *testing.T) {
	code := []byte{
		0xfd, 0x7b, 0xbf, 0xa9,
		0xfd, 0x03, 0x00, 0x91,
		0x1f, 0x20, 0x03, 0xd5,
		0xc0, 0x03, 0x5f, 0xd6,
	}

	var sb strings.Builder
	if err := Translate(code, tinycode.DebugNone, &sb); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	out := sb.String()

	for _, want := range []string{"insn_start 0x0", "insn_start 0x4", "insn_start 0x8", "insn_start 0xc", "nop", "exit_tb"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTranslate_AsmAnnotations(t *testing.T) {
	code := []byte{0x1f, 0x20, 0x03, 0xd5}

	var sb strings.Builder
	if err := Translate(code, tinycode.DebugAsm, &sb); err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if !strings.Contains(sb.String(), "; nop") {
		t.Errorf("output missing assembly annotation:\n%s", sb.String())
	}
}

func TestTranslate_UndecodableInput(t *testing.T) {
	// The all-zero word is unallocated.
	code := []byte{0x1f, 0x20, 0x03, 0xd5, 0x00, 0x00, 0x00, 0x00}

	var sb strings.Builder
	err := Translate(code, tinycode.DebugNone, &sb)
	if err == nil {
		t.Fatalf("Translate() accepted undecodable input")
	}
	if !strings.Contains(err.Error(), "0x4") {
		t.Errorf("error does not name the failing offset: %v", err)
	}
}

func TestTranslate_TruncatedInput(t *testing.T) {
	code := []byte{0x1f, 0x20, 0x03}

	var sb strings.Builder
	if err := Translate(code, tinycode.DebugNone, &sb); err == nil {
		t.Fatalf("Translate() accepted truncated input")
	}
}

func TestLoad(t *testing.T) {
	var iface tinycode.Interface
	if status := Load(&iface); status != 0 {
		t.Fatalf("Load() = %d, want 0", status)
	}
	if iface.Translate == nil {
		t.Errorf("Load() left Translate unset")
	}
}
