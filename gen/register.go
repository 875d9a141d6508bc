// Package gen collects the generated framework bindings.
package gen

import (
	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen/std"
	"github.com/reoring/movebind/gen/sui"
)

// RegisterAll adds the standard library and framework bindings to l.
func RegisterAll(l *movebind.Loader) {
	std.Register(l)
	sui.Register(l)
}

// NewLoader returns a loader with every generated binding registered.
func NewLoader(opts ...movebind.LoaderOption) *movebind.Loader {
	l := movebind.NewLoader(opts...)
	RegisterAll(l)
	return l
}
