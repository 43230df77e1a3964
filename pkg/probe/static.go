package probe

import (
	"context"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
)

// Static is a fixed set of installed packages. It stands in for a Prober in
// tests and when the caller wants composition independent of node_modules.
type Static struct {
	packages map[string]bool
}

var _ types.Capabilities = (*Static)(nil)

// NewStatic reports exactly the given packages as installed.
func NewStatic(packages ...string) *Static {
	s := &Static{packages: make(map[string]bool, len(packages))}
	for _, p := range packages {
		s.packages[p] = true
	}
	return s
}

// HasPackage implements types.Capabilities
func (s *Static) HasPackage(name string) bool {
	return s.packages[name]
}

// LoadPlugin implements types.PluginLoader
func (s *Static) LoadPlugin(ctx context.Context, name string) (types.Plugin, error) {
	if err := ctx.Err(); err != nil {
		return types.Plugin{}, err
	}
	d, ok := plugins.Lookup(name)
	if !ok {
		return types.Plugin{}, errors.Newf(errors.ErrPluginUnknown, "unknown plugin %q", name)
	}
	return types.Plugin{Name: d.Name, Package: d.Package, Installed: s.packages[d.Package]}, nil
}

// At returns the same set; a static provider has no notion of directories.
func (s *Static) At(string) types.Capabilities {
	return s
}
