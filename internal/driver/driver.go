// Package driver orchestrates a single translation pass: it validates the
// requested offset against the frozen input buffer, invokes the backend's
// translation entry point exactly once, and streams the result to the
// configured sink. Any failure is fatal to the run; there are no retries.
package driver

import (
	"errors"
	"fmt"
	"io"

	"github.com/bintc/bintc/internal/backend"
	"github.com/bintc/bintc/internal/tinycode"
)

var (
	// ErrInvalidOffset reports a start offset past the end of the input.
	ErrInvalidOffset = errors.New("invalid offset")

	// ErrTranslationFailed wraps a failure reported by the backend's
	// translation call.
	ErrTranslationFailed = errors.New("translation failed")
)

// Run performs one translation of buf[offset:] through the backend handle,
// writing annotated output to out. The offset check happens here, before
// the backend ever sees the request: an out-of-range view over raw memory
// must never reach native code. An offset equal to the buffer length is
// accepted and hands the backend an empty slice.
func Run(h *backend.Handle, buf []byte, offset uint64, mode tinycode.DebugMode, out io.Writer) error {
	if offset > uint64(len(buf)) {
		return fmt.Errorf("%w: offset %d exceeds input length %d", ErrInvalidOffset, offset, len(buf))
	}
	if err := h.Translate(buf[offset:], mode, out); err != nil {
		return fmt.Errorf("%w: %v", ErrTranslationFailed, err)
	}
	return nil
}
