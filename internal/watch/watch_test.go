package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangedReportsWatchedFilesOnly(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "viewer.css")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(css, []byte("#params { left: 98%; }"), 0644))

	f, err := New(css)
	require.NoError(t, err)
	defer f.Close()

	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(css, []byte("#params { left: 2%; }"), 0644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, f.Changed()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{css}, got)
	assert.Empty(t, f.Errors())
}

func TestChangedDrains(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "viewer.css")
	f, err := New(css)
	require.NoError(t, err)
	defer f.Close()

	assert.Empty(t, f.Changed())
	require.NoError(t, os.WriteFile(css, []byte("a"), 0644))
	require.Eventually(t, func() bool { return len(f.Changed()) == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	f.Changed()
	assert.Empty(t, f.Changed())
}

func TestNewMissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "viewer.css"))
	assert.Error(t, err)
}
