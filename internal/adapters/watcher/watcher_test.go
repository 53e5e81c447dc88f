package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swatch/internal/adapters/watcher"
	"go.trai.ch/swatch/internal/core/domain"
	"go.trai.ch/swatch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newWatcher(t *testing.T) *watcher.Watcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	return watcher.New(log).WithWindow(20 * time.Millisecond)
}

func TestWatcher_NotifiesOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := newWatcher(t).Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("version: \"1\"\nname: changed\n"), 0o600))

	select {
	case _, ok := <-events:
		assert.True(t, ok)
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for change notification")
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := newWatcher(t).Watch(ctx, path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("b"), 0o600))

	select {
	case <-events:
		t.Fatal("unexpected notification for sibling file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ClosesOnCancel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "palette.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	events, err := newWatcher(t).Watch(ctx, path)
	require.NoError(t, err)

	cancel()

	select {
	case _, ok := <-events:
		assert.False(t, ok, "channel should be closed after cancel")
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "palette.yaml")

	_, err := newWatcher(t).Watch(context.Background(), path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrWatchFailed.Error())
}
