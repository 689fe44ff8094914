package backend

import "github.com/bintc/bintc/internal/arm64tc"

func init() {
	registerBuiltin("arm64", arm64tc.Load)
}
