package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFile(t *testing.T) {
	payload := strings.Repeat("x", 100000)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100000")
		_, _ = w.Write([]byte(payload))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "sub", "eye.zip")
	var last, total int64
	calls := 0
	err := (&Client{}).ToFile(context.Background(), srv.URL+"/eye.zip", dest, func(r, tot int64) {
		assert.GreaterOrEqual(t, r, last)
		last, total = r, tot
		calls++
	})
	require.NoError(t, err)
	assert.Positive(t, calls)
	assert.Equal(t, int64(100000), last)
	assert.Equal(t, int64(100000), total)

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Len(t, data, 100000)
}

func TestToFileHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "missing.zip")
	err := (&Client{}).ToFile(context.Background(), srv.URL+"/missing.zip", dest, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	_, statErr := os.Stat(dest)
	assert.True(t, os.IsNotExist(statErr))
}

func TestToFileCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := (&Client{}).ToFile(ctx, srv.URL, filepath.Join(t.TempDir(), "a"), nil)
	assert.Error(t, err)
}

func TestCountingReaderUnknownTotal(t *testing.T) {
	var gotTotal int64
	r := &CountingReader{R: strings.NewReader("hello"), Total: -1, Progress: func(_, total int64) { gotTotal = total }}
	buf := make([]byte, 16)
	n, _ := r.Read(buf)
	assert.Equal(t, 5, n)
	assert.Equal(t, int64(5), r.Received())
	assert.Equal(t, int64(-1), gotTotal)
}
