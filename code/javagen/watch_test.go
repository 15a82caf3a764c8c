package javagen

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsSource(t *testing.T) {
	assert.True(t, isSource("/a/model.go"))
	assert.False(t, isSource("/a/model_test.go"))
	assert.False(t, isSource("/a/README.md"))
}

func TestWatcherDebouncesChanges(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher([]string{dir}, 50*time.Millisecond, nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runs := make(chan struct{}, 10)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(context.Context) error {
			runs <- struct{}{}
			return nil
		})
	}()

	// Give the watcher loop a moment to start receiving.
	time.Sleep(20 * time.Millisecond)
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "model.go"), []byte("package model\n"), 0644))
	}

	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("no regeneration after source change")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestNewWatcherMissingDir(t *testing.T) {
	_, err := NewWatcher([]string{filepath.Join(t.TempDir(), "absent")}, 0, nil)
	assert.Error(t, err)
}
