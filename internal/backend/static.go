package backend

import (
	"fmt"

	"github.com/bintc/bintc/internal/tinycode"
)

// builtins maps architecture names to the load entry points of the backends
// compiled into this binary. Populated by the per-architecture files in
// this package.
var builtins = make(map[string]tinycode.LoadFunc)

func registerBuiltin(architecture string, load tinycode.LoadFunc) {
	builtins[architecture] = load
}

// StaticRegistry resolves architectures against a compile-time table. It is
// the portable counterpart of PluginRegistry and satisfies the same
// contract.
type StaticRegistry struct {
	table map[string]tinycode.LoadFunc
}

// NewStaticRegistry returns a registry holding the built-in backends. The
// table is copied, so Register never affects other registries.
func NewStaticRegistry() *StaticRegistry {
	table := make(map[string]tinycode.LoadFunc, len(builtins))
	for name, load := range builtins {
		table[name] = load
	}
	return &StaticRegistry{table: table}
}

// Register adds or replaces a backend in this registry's table.
func (r *StaticRegistry) Register(architecture string, load tinycode.LoadFunc) {
	r.table[architecture] = load
}

// Resolve loads the backend registered for the architecture. On success the
// returned Handle owns the process-wide backend slot until Release.
func (r *StaticRegistry) Resolve(architecture string) (*Handle, error) {
	load, ok := r.table[architecture]
	if !ok {
		return nil, fmt.Errorf("%w: no built-in backend for architecture %q", ErrBackendNotFound, architecture)
	}
	if err := acquireSlot(); err != nil {
		return nil, err
	}

	var iface tinycode.Interface
	if status := load(&iface); status != 0 {
		releaseSlot()
		return nil, fmt.Errorf("%w: backend %q returned status %d", ErrInterfaceInitFailed, architecture, status)
	}
	if iface.Translate == nil {
		releaseSlot()
		return nil, fmt.Errorf("%w: backend %q left the interface table unpopulated", ErrInterfaceMissing, architecture)
	}
	return &Handle{architecture: architecture, iface: iface}, nil
}
