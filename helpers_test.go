package movebind_test

import (
	"testing"

	"github.com/reoring/movebind"
	"github.com/reoring/movebind/gen"
	"github.com/reoring/movebind/internal/fixture"
)

func newLoader(t *testing.T, opts ...movebind.LoaderOption) *movebind.Loader {
	t.Helper()
	l := gen.NewLoader(opts...)
	fixture.Register(l)
	return l
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func addr(s string) movebind.Address { return movebind.MustParseAddress(s) }

func ptr[T any](v T) *T { return &v }
