package watch

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestWatcherDebouncesChanges(t *testing.T) {
	defer goleak.VerifyNone(t)

	root := t.TempDir()
	var calls atomic.Int32
	w := &Watcher{Root: root, Debounce: 50 * time.Millisecond, OnChange: func() { calls.Add(1) }}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()
	time.Sleep(50 * time.Millisecond)

	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(filepath.Join(root, "a.jpg"), []byte{byte(i)}, 0o644))
	}
	require.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, os.Mkdir(filepath.Join(root, "gallery"), 0o755))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "gallery", "b.jpg"), []byte("b"), 0o644))
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 10*time.Millisecond)

	cancel()
	assert.NoError(t, <-done)
}

func TestWatcherMissingRoot(t *testing.T) {
	w := &Watcher{Root: filepath.Join(t.TempDir(), "nope"), OnChange: func() {}}
	err := w.Run(context.Background())
	assert.ErrorContains(t, err, "does not exist")
}
