package backend

import (
	"fmt"
	"plugin"

	"github.com/bintc/bintc/internal/tinycode"
)

const (
	// libraryNameFormat names the shared module for an architecture,
	// discoverable through the host's standard plugin search path.
	libraryNameFormat = "libtinycode-%s.so"

	// loadSymbolName is the well-known entry symbol every backend module
	// must export.
	loadSymbolName = "TinycodeLoad"
)

// PluginRegistry resolves architectures by loading libtinycode-<arch>.so at
// run time. The host facility keeps a loaded module mapped for the process
// lifetime, which matches the one-backend-per-process rule; Release revokes
// the handle rather than unmapping.
type PluginRegistry struct{}

// Resolve loads the shared module for the architecture and initializes its
// interface table through the well-known entry symbol.
func (r *PluginRegistry) Resolve(architecture string) (*Handle, error) {
	if err := acquireSlot(); err != nil {
		return nil, err
	}

	name := fmt.Sprintf(libraryNameFormat, architecture)
	p, err := plugin.Open(name)
	if err != nil {
		releaseSlot()
		return nil, fmt.Errorf("%w: cannot load %s: %v", ErrBackendNotFound, name, err)
	}

	sym, err := p.Lookup(loadSymbolName)
	if err != nil {
		releaseSlot()
		return nil, fmt.Errorf("%w: %s does not export %s", ErrInterfaceMissing, name, loadSymbolName)
	}
	load, ok := sym.(func(*tinycode.Interface) int)
	if !ok {
		releaseSlot()
		return nil, fmt.Errorf("%w: %s in %s has the wrong type", ErrInterfaceMissing, loadSymbolName, name)
	}

	var iface tinycode.Interface
	if status := load(&iface); status != 0 {
		releaseSlot()
		return nil, fmt.Errorf("%w: %s returned status %d", ErrInterfaceInitFailed, name, status)
	}
	if iface.Translate == nil {
		releaseSlot()
		return nil, fmt.Errorf("%w: %s left the interface table unpopulated", ErrInterfaceMissing, name)
	}
	return &Handle{architecture: architecture, iface: iface}, nil
}
