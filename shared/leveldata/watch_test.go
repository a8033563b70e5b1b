package leveldata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReportsLevelName(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level3.json"), []byte(sampleJSON), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "level3", name)
	case <-time.After(3 * time.Second):
		t.Fatal("no event for level file")
	}
}

func TestLevelName(t *testing.T) {
	assert.Equal(t, "level0", LevelName("/tmp/levels/level0.yaml"))
}
