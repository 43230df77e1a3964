package testutil

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
)

// WriteFile creates path on fs with content, making parent directories.
// It fails the test if the file cannot be written.
func WriteFile(t *testing.T, fs afero.Fs, path, content string) string {
	t.Helper()

	if err := fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}
	if err := afero.WriteFile(fs, path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}
	return path
}

// InstallPackage writes node_modules/<name>/package.json under dir, the
// file a package probe looks for.
func InstallPackage(t *testing.T, fs afero.Fs, dir, name, manifest string) string {
	t.Helper()

	if manifest == "" {
		manifest = `{"name":"` + name + `","version":"1.0.0"}`
	}
	return WriteFile(t, fs, filepath.Join(dir, "node_modules", name, "package.json"), manifest)
}

// MemFS returns an in-memory filesystem holding files, keyed by path.
func MemFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for path, content := range files {
		WriteFile(t, fs, path, content)
	}
	return fs
}
