// Package x86tc lowers raw x86_64 machine code to portable tiny code.
//
// Lowering is per-instruction: each decoded instruction becomes an
// insn_start marker followed by its ops. A leader-discovery pass over
// relative branch targets assigns block labels so control transfers inside
// the translated region reference blocks rather than raw addresses.
package x86tc

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/arch/x86/x86asm"

	"github.com/bintc/bintc/internal/tinycode"
	"github.com/bintc/bintc/internal/worklist"
)

// Load populates the tiny-code interface table. Zero means success.
func Load(iface *tinycode.Interface) int {
	iface.Translate = Translate
	return 0
}

type program struct {
	code []byte
}

// block is a branch target discovered during the decode pass. Blocks are
// owned by their program; the leader work-list only tracks membership.
type block struct {
	parent *program
	offset int
}

func (b *block) Parent() any {
	return b.parent
}

// Translate decodes code as 64-bit x86 and writes annotated tiny code to w.
// An undecodable instruction aborts the translation with an error naming
// its offset. Empty input produces empty output.
func Translate(code []byte, mode tinycode.DebugMode, w io.Writer) error {
	type decoded struct {
		off  int
		inst x86asm.Inst
	}

	prog := &program{code: code}
	blocks := make(map[int]*block)
	leaders := worklist.NewQueue[*block]()

	var insts []decoded
	for off := 0; off < len(code); {
		inst, err := x86asm.Decode(code[off:], 64)
		if err != nil {
			return fmt.Errorf("cannot decode instruction at offset %#x: %v", off, err)
		}
		insts = append(insts, decoded{off: off, inst: inst})

		if target, ok := branchTarget(inst, off); ok && target >= 0 && target < len(code) {
			b, seen := blocks[target]
			if !seen {
				b = &block{parent: prog, offset: target}
				blocks[target] = b
			}
			// A target branched to twice is queued once.
			leaders.Insert(b)
		}
		off += inst.Len
	}

	// Number branch targets in discovery order.
	labels := make(map[int]int)
	for {
		b, ok := leaders.Pop()
		if !ok {
			break
		}
		labels[b.offset] = len(labels)
	}

	e := tinycode.NewEmitter(w, mode)
	for _, d := range insts {
		if n, ok := labels[d.off]; ok {
			e.Label(n)
		}
		e.Source(x86asm.GNUSyntax(d.inst, uint64(d.off), nil))
		e.InsnStart(uint64(d.off))
		lower(e, d.inst, d.off, labels)
	}
	return e.Err()
}

// branchTarget returns the absolute offset a relative control transfer
// reaches, resolved against the end of the instruction.
func branchTarget(inst x86asm.Inst, off int) (int, bool) {
	for _, arg := range inst.Args {
		if rel, ok := arg.(x86asm.Rel); ok {
			return off + inst.Len + int(rel), true
		}
	}
	return 0, false
}

func lower(e *tinycode.Emitter, inst x86asm.Inst, off int, labels map[int]int) {
	if target, ok := branchTarget(inst, off); ok {
		if n, labeled := labels[target]; labeled {
			e.Op("%s block_%d", branchOp(inst.Op), n)
		} else {
			e.Op("goto_ptr %#x", target)
		}
		return
	}
	switch inst.Op {
	case x86asm.RET:
		e.Op("exit_tb")
	case x86asm.NOP:
		e.Op("nop")
	default:
		e.Op("%s", genericOp(inst))
	}
}

func branchOp(op x86asm.Op) string {
	switch op {
	case x86asm.JMP:
		return "br"
	case x86asm.CALL:
		return "call"
	default:
		// Conditional jumps.
		return "brcond"
	}
}

func genericOp(inst x86asm.Inst) string {
	mnemonic := strings.ToLower(inst.Op.String())
	args := make([]string, 0, len(inst.Args))
	for _, arg := range inst.Args {
		if arg == nil {
			break
		}
		args = append(args, strings.ToLower(arg.String()))
	}
	if len(args) == 0 {
		return mnemonic
	}
	return mnemonic + " " + strings.Join(args, ", ")
}
