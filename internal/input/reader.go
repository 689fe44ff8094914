// Package input ingests the raw program image to translate. It is the only
// component that performs unbounded-looking I/O; everything downstream
// operates on the frozen buffer it returns.
package input

import (
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	// ChunkSize is the fixed read granularity. The buffer grows by one
	// zero-filled chunk at a time, so memory growth is bounded by
	// chunks-read times ChunkSize rather than by doubling.
	ChunkSize = 4096

	// DefaultMaxInput is the hard cap applied by the command-line driver.
	DefaultMaxInput = 10 * 1024 * 1024
)

var (
	// ErrSourceUnreadable reports that the input source could not be
	// opened or read.
	ErrSourceUnreadable = errors.New("input source unreadable")

	// ErrInputTooLarge reports that the source held more than the hard
	// cap. Oversized input is always an error, never a truncation.
	ErrInputTooLarge = errors.New("input too large")
)

// ReadAll reads the named file, or standard input when path is empty, into
// a buffer of at most maxBytes bytes. The returned buffer holds exactly the
// bytes read, with no trailing padding, and must be treated as immutable.
func ReadAll(path string, maxBytes int) ([]byte, error) {
	if path == "" {
		return ReadFrom(os.Stdin, maxBytes)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
	}
	defer f.Close()
	return ReadFrom(f, maxBytes)
}

// ReadFrom ingests src in ChunkSize steps until end of source, failing with
// ErrInputTooLarge once the total strictly exceeds maxBytes. A source of
// exactly maxBytes bytes is accepted. The transient allocation overshoot is
// at most one chunk beyond the cap.
func ReadFrom(src io.Reader, maxBytes int) ([]byte, error) {
	buf := make([]byte, 0, ChunkSize)
	total := 0
	for {
		// Extend by one zero-filled chunk so a short read never exposes
		// stale bytes in the tail.
		buf = append(buf, make([]byte, ChunkSize)...)

		n, err := io.ReadFull(src, buf[total:total+ChunkSize])
		total += n
		if total > maxBytes {
			return nil, fmt.Errorf("%w: cap is %d bytes", ErrInputTooLarge, maxBytes)
		}
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSourceUnreadable, err)
		}
	}
	return buf[:total], nil
}
