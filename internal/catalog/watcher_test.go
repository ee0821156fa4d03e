package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Alchemy_Go/internal/testing/leaktest"
)

type countingReloader struct {
	calls atomic.Int32
}

func (r *countingReloader) Reload(_ context.Context) (*Catalog, error) {
	r.calls.Add(1)
	return nil, nil
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	data, err := os.ReadFile("testdata/catalog.yaml")
	require.NoError(t, err)
	writeFile(t, path, string(data))

	reloader := &countingReloader{}
	w := NewWatcher(path, reloader, 75*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give the watcher time to register
	time.Sleep(50 * time.Millisecond)

	// a burst of writes collapses into one reload
	for i := 0; i < 5; i++ {
		writeFile(t, path, string(data))
	}
	require.Eventually(t, func() bool { return reloader.calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), reloader.calls.Load())

	// other files in the directory are ignored
	writeFile(t, filepath.Join(dir, "other.yaml"), "x: 1")
	time.Sleep(200 * time.Millisecond)
	assert.Equal(t, int32(1), reloader.calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "nope", "catalog.yaml"), &countingReloader{}, 0)
	assert.Equal(t, DefaultWatchDebounce, w.debounce)

	err := w.Run(context.Background())
	require.Error(t, err)
}

func TestWatcher_NoGoroutineLeak(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	writeFile(t, path, "version: \"1\"")

	checker := leaktest.NewGoroutineChecker(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewWatcher(path, &countingReloader{}, 0).Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	checker.Check(1)
}
