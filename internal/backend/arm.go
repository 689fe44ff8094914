package backend

import "github.com/bintc/bintc/internal/armtc"

func init() {
	registerBuiltin("arm", armtc.Load)
}
