package fonts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scene-viewer/internal/download"
)

func googleServer(t *testing.T) *Google {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	raw := srv.URL + "/raw/"
	mux.HandleFunc("/ofl/opensans", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]githubFile{
			{Name: "OFL.txt", Type: "file", DownloadURL: raw + "OFL.txt"},
			{Name: "OpenSans-Italic.ttf", Type: "file", DownloadURL: raw + "OpenSans-Italic.ttf"},
			{Name: "Evil.ttf", Type: "file", DownloadURL: "https://elsewhere.test/Evil.ttf"},
			{Name: "OpenSans[wdth,wght].ttf", Type: "file", DownloadURL: raw + "OpenSans%5Bwdth,wght%5D.ttf"},
		})
	})
	mux.HandleFunc("/ofl/lobster", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]githubFile{
			{Name: "Lobster-Italic.ttf", Type: "file", DownloadURL: raw + "Lobster-Italic.ttf"},
		})
	})
	mux.HandleFunc("/raw/", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ttf:" + r.URL.Path))
	})
	return &Google{API: srv.URL + "/ofl", RawPrefix: raw, HTTP: srv.Client(), Files: &download.Client{HTTP: srv.Client()}}
}

func TestFolders(t *testing.T) {
	assert.Equal(t, []string{"opensans", "open-sans"}, Folders(" Open Sans "))
	assert.Equal(t, []string{"inter"}, Folders("Inter"))
	assert.Nil(t, Folders("  "))
}

func TestGoogleFetchPrefersUpright(t *testing.T) {
	g := googleServer(t)
	dest := t.TempDir()
	path, err := g.Fetch(context.Background(), "Open Sans", dest)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dest, "opensans", "OpenSans[wdth,wght].ttf"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ttf:/raw/OpenSans[wdth,wght].ttf", string(data))

	found, err := Find("open sans", dest)
	require.NoError(t, err)
	assert.Equal(t, path, found)
}

func TestGoogleFetchFallsBackToItalic(t *testing.T) {
	path, err := googleServer(t).Fetch(context.Background(), "Lobster", t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "Lobster-Italic.ttf", filepath.Base(path))
}

func TestGoogleFetchMissing(t *testing.T) {
	_, err := googleServer(t).Fetch(context.Background(), "No Such Font", t.TempDir())
	assert.ErrorContains(t, err, `"no-such-font" not found`)

	_, err = googleServer(t).Fetch(context.Background(), "", t.TempDir())
	assert.Error(t, err)
}
