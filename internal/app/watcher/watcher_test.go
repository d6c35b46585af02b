package watcher

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"console/internal/app/prefs"
	"console/internal/config"
	"console/internal/config/logger"
)

func newMockLogger(ctrl *gomock.Controller) logger.Logger {
	mockLog := logger.NewMockLogger(ctrl)
	componentLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent("WATCHER").Return(componentLog).AnyTimes()
	componentLog.EXPECT().Debug().Return(nil).AnyTimes()
	componentLog.EXPECT().Info().Return(nil).AnyTimes()
	componentLog.EXPECT().Warn().Return(nil).AnyTimes()
	componentLog.EXPECT().Error().Return(nil).AnyTimes()

	return mockLog
}

func Test_NewWatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := config.DefaultConfig()
	cfg.Settings.Dir = t.TempDir()

	w, err := NewWatcher(cfg, prefs.NewStore(cfg.SettingsPath()), newMockLogger(ctrl))
	require.NoError(t, err)
	require.NotNil(t, w)

	w.Close()
	w.Close()
}

func Test_Watcher_StartCreatesDirectory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := filepath.Join(t.TempDir(), "nested", "console")

	w, err := newWatcher(dir, prefs.NewStore(filepath.Join(dir, config.SettingsFileName)), nil, 10*time.Millisecond, newMockLogger(ctrl))
	require.NoError(t, err)

	defer w.Close()

	require.NoError(t, w.Start(context.Background()))

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func Test_Watcher_ReloadsOnExternalChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()
	path := filepath.Join(dir, config.SettingsFileName)
	store := prefs.NewStore(path)

	w, err := newWatcher(dir, store, nil, 10*time.Millisecond, newMockLogger(ctrl))
	require.NoError(t, err)

	defer w.Close()

	reloaded := make(chan struct{}, 4)
	w.OnReload(func() { reloaded <- struct{}{} })

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, w.Start(ctx))

	other := prefs.NewStore(path)
	require.NoError(t, other.SetLast(prefs.Preferences{
		EdgeStyle:           prefs.EdgeGrey,
		HideTrailingNewline: false,
		TimestampMode:       prefs.TimestampNone,
	}))

	select {
	case <-reloaded:
	case <-time.After(2 * time.Second):
		t.Fatal("expected settings reload")
	}

	assert.Equal(t, prefs.EdgeGrey, store.Last().EdgeStyle)
	assert.Equal(t, prefs.TimestampNone, store.Last().TimestampMode)
}

func Test_Watcher_IgnoresUnrelatedFiles(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()

	w, err := newWatcher(dir, prefs.NewStore(filepath.Join(dir, config.SettingsFileName)), nil, 10*time.Millisecond, newMockLogger(ctrl))
	require.NoError(t, err)

	defer w.Close()

	reloaded := make(chan struct{}, 4)
	w.OnReload(func() { reloaded <- struct{}{} })

	require.NoError(t, w.Start(context.Background()))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o600))

	select {
	case <-reloaded:
		t.Fatal("unrelated file must not reload settings")
	case <-time.After(100 * time.Millisecond):
	}
}

func Test_Watcher_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dir := t.TempDir()

	w, err := newWatcher(dir, prefs.NewStore(filepath.Join(dir, config.SettingsFileName)), nil, 10*time.Millisecond, newMockLogger(ctrl))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, w.Start(ctx))

	cancel()

	assert.Eventually(t, func() bool {
		w.mu.RLock()
		defer w.mu.RUnlock()

		return w.closed
	}, time.Second, 10*time.Millisecond)

	assert.NoError(t, w.Start(context.Background()))
}
