// Package probe answers whether optional packages are installed in a
// project and resolves lint plugins lazily.
//
// A package counts as installed when node_modules/<name>/package.json is
// found in the project directory or any of its ancestors, the same lookup
// Node's resolver performs.
package probe

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/logging"
	"github.com/arthur-debert/flatlint/pkg/plugins"
	"github.com/arthur-debert/flatlint/pkg/types"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// Scoper is implemented by capability providers that can be re-rooted at
// another directory, e.g. a project inside a workspace.
type Scoper interface {
	At(dir string) types.Capabilities
}

// Prober implements types.Capabilities over a filesystem.
type Prober struct {
	fs     afero.Fs
	dir    string
	logger zerolog.Logger
}

var _ types.Capabilities = (*Prober)(nil)

// New creates a Prober rooted at dir.
func New(fs afero.Fs, dir string) *Prober {
	return &Prober{
		fs:     fs,
		dir:    filepath.Clean(dir),
		logger: logging.GetLogger("probe"),
	}
}

// At returns a Prober rooted at dir sharing the same filesystem.
func (p *Prober) At(dir string) types.Capabilities {
	return New(p.fs, dir)
}

// Dir returns the directory lookups start from.
func (p *Prober) Dir() string {
	return p.dir
}

// HasPackage reports whether the package is installed.
func (p *Prober) HasPackage(name string) bool {
	_, ok := p.findPackage(name)
	p.logger.Trace().Str("package", name).Bool("found", ok).Msg("Probed package")
	return ok
}

// LoadPlugin resolves a registered plugin. A plugin whose package is not
// installed is still returned, with Installed false; only names missing from
// the registry are an error.
func (p *Prober) LoadPlugin(ctx context.Context, name string) (types.Plugin, error) {
	if err := ctx.Err(); err != nil {
		return types.Plugin{}, err
	}

	d, ok := plugins.Lookup(name)
	if !ok {
		return types.Plugin{}, errors.Newf(errors.ErrPluginUnknown, "unknown plugin %q", name)
	}

	plugin := types.Plugin{Name: d.Name, Package: d.Package}
	manifest, found := p.findPackage(d.Package)
	if !found {
		p.logger.Warn().
			Str("plugin", d.Name).
			Str("package", d.Package).
			Msg("Plugin package is not installed")
		return plugin, nil
	}

	plugin.Installed = true
	plugin.Version = p.readVersion(manifest)
	p.logger.Debug().
		Str("plugin", d.Name).
		Str("version", plugin.Version).
		Msg("Loaded plugin")
	return plugin, nil
}

// findPackage walks up from the probe directory looking for the package
// manifest. Stat errors count as "not here".
func (p *Prober) findPackage(name string) (string, bool) {
	dir := p.dir
	for {
		manifest := filepath.Join(dir, "node_modules", filepath.FromSlash(name), "package.json")
		if _, err := p.fs.Stat(manifest); err == nil {
			return manifest, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func (p *Prober) readVersion(manifest string) string {
	data, err := afero.ReadFile(p.fs, manifest)
	if err != nil {
		return ""
	}
	var pkg struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &pkg); err != nil {
		p.logger.Debug().Err(err).Str("manifest", manifest).Msg("Unreadable package manifest")
		return ""
	}
	return pkg.Version
}
