package backend

import "github.com/bintc/bintc/internal/x86tc"

func init() {
	registerBuiltin("x86_64", x86tc.Load)
}
