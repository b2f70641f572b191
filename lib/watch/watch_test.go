package watch_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/pthm/elcmp"
	"github.com/pthm/elcmp/lib/watch"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newWatcher(t *testing.T, dir string) *watch.Watcher {
	t.Helper()
	w, err := watch.New(watch.Config{
		Dir:      dir,
		Debounce: 50 * time.Millisecond,
		Logger:   zap.NewNop(),
	})
	require.NoError(t, err, "failed to create watcher")
	t.Cleanup(func() { _ = w.Close() })
	return w
}

func receive(t *testing.T, ch <-chan []watch.Change) []watch.Change {
	t.Helper()
	select {
	case batch := <-ch:
		return batch
	case <-time.After(2 * time.Second):
		t.Fatal("expected change batch but got timeout")
	}
	return nil
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestWatcher_CoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	w := newWatcher(t, dir)

	changes, err := w.Start()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		writeFile(t, filepath.Join(dir, "card.go"), "v")
		writeFile(t, filepath.Join(dir, "badge.go"), "v")
		time.Sleep(5 * time.Millisecond)
	}

	batch := receive(t, changes)
	assert.Equal(t, []watch.Change{{File: "badge.go"}, {File: "card.go"}}, batch)

	select {
	case extra := <-changes:
		t.Fatalf("unexpected second batch: %v", extra)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	w := newWatcher(t, dir)

	changes, err := w.Start()
	require.NoError(t, err)

	writeFile(t, filepath.Join(dir, "notes.txt"), "x")
	writeFile(t, filepath.Join(dir, "card_test.go"), "x")
	writeFile(t, filepath.Join(dir, ".card.go"), "x")

	select {
	case batch := <-changes:
		t.Fatalf("unexpected batch: %v", batch)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_ReportsRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "card.go")
	writeFile(t, path, "v")

	w := newWatcher(t, dir)
	changes, err := w.Start()
	require.NoError(t, err)

	require.NoError(t, os.Remove(path))

	batch := receive(t, changes)
	assert.Equal(t, []watch.Change{{File: "card.go", Removed: true}}, batch)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := newWatcher(t, filepath.Join(t.TempDir(), "missing"))

	_, err := w.Start()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "watching directory")
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	w := newWatcher(t, t.TempDir())

	changes, err := w.Start()
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())

	_, ok := <-changes
	assert.False(t, ok, "changes channel should be closed")
}

func TestWatcher_CloseWithoutStart(t *testing.T) {
	w := newWatcher(t, t.TempDir())

	require.NoError(t, w.Close())
	_, ok := <-w.Changes()
	assert.False(t, ok, "changes channel should be closed")

	_, err := w.Start()
	assert.ErrorIs(t, err, watch.ErrClosed)
}

func TestDefaultConfig(t *testing.T) {
	cfg := watch.DefaultConfig("components")
	assert.Equal(t, "components", cfg.Dir)
	assert.Equal(t, ".go", cfg.Extension)
	assert.Equal(t, 200*time.Millisecond, cfg.Debounce)
}

var markupCompiler = elcmp.CompilerFunc(func(name string, src []byte) (elcmp.Component, error) {
	s := string(src)
	return elcmp.Markup(func(elcmp.Context, elcmp.ChildRenderer) string { return s }), nil
})

func TestRun_ReloadsChangedComponents(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "card.go"), "<div >old</div>")
	writeFile(t, filepath.Join(dir, "badge.go"), "<span >b</span>")

	reg := elcmp.NewRegistry(zap.NewNop())
	loader := elcmp.NewLoader(os.DirFS(dir), markupCompiler, reg)
	require.Equal(t, 2, loader.Autoload("."))

	w := newWatcher(t, dir)
	ctx, cancel := context.WithCancel(context.Background())
	reload := watch.Reload(loader, zap.NewNop())

	done := make(chan error, 1)
	batches := make(chan []watch.Change, 4)
	go func() {
		done <- w.Run(ctx, func(batch []watch.Change) {
			reload(batch)
			batches <- batch
		})
	}()

	// Give the watcher time to register the directory.
	time.Sleep(50 * time.Millisecond)
	writeFile(t, filepath.Join(dir, "card.go"), "<div >new</div>")
	require.NoError(t, os.Remove(filepath.Join(dir, "badge.go")))

	deadline := time.After(2 * time.Second)
	for reg.Has("badge") || render(reg, "card") != "<div >new</div>" {
		select {
		case <-batches:
		case <-deadline:
			t.Fatalf("reload did not happen, names = %v", reg.Names())
		}
	}

	cancel()
	require.NoError(t, <-done)
	assert.Equal(t, []string{"card"}, reg.Names())
}

func render(reg *elcmp.Registry, name string) string {
	c, ok := reg.Lookup(name)
	if !ok {
		return ""
	}
	return c.Render(elcmp.Context{}, nil).String()
}
