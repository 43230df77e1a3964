package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/flatlint/pkg/errors"
	"github.com/arthur-debert/flatlint/pkg/watch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestNew_RejectsMissingAndFileRoots(t *testing.T) {
	_, err := watch.New(filepath.Join(t.TempDir(), "missing"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileAccess))

	file := filepath.Join(t.TempDir(), "package.json")
	require.NoError(t, os.WriteFile(file, []byte("{}"), 0644))
	_, err = watch.New(file)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestRelevant(t *testing.T) {
	root := t.TempDir()
	w, err := watch.New(root, watch.WithNames("eslint.config.js"))
	require.NoError(t, err)
	defer func() { _ = w.Close() }()

	tests := []struct {
		path string
		want bool
	}{
		{filepath.Join(root, "package.json"), true},
		{filepath.Join(root, ".gitignore"), true},
		{filepath.Join(root, "flatlint.toml"), true},
		{filepath.Join(root, "eslint.config.js"), true},
		{filepath.Join(root, "node_modules"), true},
		{filepath.Join(root, "node_modules", ".modules.yaml"), true},
		{filepath.Join(root, "node_modules", "left-pad"), false},
		{filepath.Join(root, "src", "package.json"), false},
		{filepath.Join(root, "index.ts"), false},
	}
	for _, tt := range tests {
		t.Run(filepath.Base(tt.path), func(t *testing.T) {
			assert.Equal(t, tt.want, w.Relevant(tt.path))
		})
	}
}

func TestRun_StopsOnCancel(t *testing.T) {
	w, err := watch.New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(context.Context, []string) error { return nil }) }()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestRun_TriggersOnRelevantChange(t *testing.T) {
	root := t.TempDir()
	w, err := watch.New(root, watch.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []string
	fired := make(chan struct{}, 1)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, changed []string) error {
			mu.Lock()
			got = append(got, changed...)
			mu.Unlock()
			select {
			case fired <- struct{}{}:
			default:
			}
			return nil
		})
	}()

	// Writes before the watch is registered are missed, so keep writing
	// until the trigger fires.
	manifest := filepath.Join(root, "package.json")
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
loop:
	for {
		select {
		case <-fired:
			break loop
		case <-tick.C:
			require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0644))
			require.NoError(t, os.WriteFile(manifest, []byte(`{"name":"x"}`), 0644))
		case <-deadline:
			t.Fatal("trigger never fired")
		}
	}

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Contains(t, got, manifest)
	assert.NotContains(t, got, filepath.Join(root, "notes.txt"))
}

func TestRun_ReturnsTriggerError(t *testing.T) {
	root := t.TempDir()
	w, err := watch.New(root, watch.WithDebounce(20*time.Millisecond))
	require.NoError(t, err)

	boom := errors.New(errors.ErrConfigDependency, "ngrx requires angular")
	done := make(chan error, 1)
	go func() {
		done <- w.Run(context.Background(), func(context.Context, []string) error { return boom })
	}()

	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
	for {
		select {
		case err := <-done:
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigDependency))
			return
		case <-tick.C:
			require.NoError(t, os.WriteFile(filepath.Join(root, ".gitignore"), []byte("dist\n"), 0644))
		case <-deadline:
			t.Fatal("trigger error not returned")
		}
	}
}

func TestRun_OnlyOnce(t *testing.T) {
	w, err := watch.New(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, w.Run(ctx, nil))
	err = w.Run(context.Background(), nil)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInternal))
}
