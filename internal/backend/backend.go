// Package backend resolves an architecture name to a loaded translation
// backend. Two registries satisfy the same contract: StaticRegistry serves
// the backends compiled into this binary, PluginRegistry discovers
// libtinycode-<arch>.so modules at run time.
//
// Only one backend may be live in the process at a time. Resolving returns
// a Handle that exclusively owns the backend until Release is called;
// translating another architecture requires a fresh process.
package backend

import (
	"errors"
	"io"

	"github.com/bintc/bintc/internal/tinycode"
)

var (
	// ErrBackendNotFound reports that no backend matches the requested
	// architecture.
	ErrBackendNotFound = errors.New("backend not found")

	// ErrInterfaceMissing reports that a backend was located but does not
	// expose a usable load entry point.
	ErrInterfaceMissing = errors.New("backend interface missing")

	// ErrInterfaceInitFailed reports that the backend's load entry point
	// returned a non-success status.
	ErrInterfaceInitFailed = errors.New("backend interface initialization failed")

	// ErrBackendActive reports an attempt to resolve a second backend
	// while one is already live.
	ErrBackendActive = errors.New("a backend is already loaded")

	// ErrHandleReleased reports a use of a Handle after Release.
	ErrHandleReleased = errors.New("backend handle released")
)

// Registry resolves an architecture name to a loaded backend.
type Registry interface {
	Resolve(architecture string) (*Handle, error)
}

// Handle exclusively owns a loaded backend. Release revokes the handle and
// frees the process-wide backend slot; it is safe to call more than once.
type Handle struct {
	architecture string
	iface        tinycode.Interface
	released     bool
}

// Architecture returns the name the handle was resolved under.
func (h *Handle) Architecture() string {
	return h.architecture
}

// Translate invokes the backend's translation entry point once.
func (h *Handle) Translate(code []byte, mode tinycode.DebugMode, w io.Writer) error {
	if h.released {
		return ErrHandleReleased
	}
	return h.iface.Translate(code, mode, w)
}

// Release revokes the handle. The interface table is cleared so resolved
// entry points cannot be used past release, and the backend slot is freed.
func (h *Handle) Release() {
	if h == nil || h.released {
		return
	}
	h.released = true
	h.iface = tinycode.Interface{}
	releaseSlot()
}

// The process-wide single-backend slot. The whole pipeline is
// single-threaded, so a plain flag suffices.
var slotHeld bool

func acquireSlot() error {
	if slotHeld {
		return ErrBackendActive
	}
	slotHeld = true
	return nil
}

func releaseSlot() {
	slotHeld = false
}
