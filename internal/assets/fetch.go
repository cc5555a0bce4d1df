package assets

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"scene-viewer/internal/archive"
	"scene-viewer/internal/download"
)

// Fetcher makes a named asset available on local disk and returns the path of its scene file.
// progress may be called many times from the fetching goroutine.
type Fetcher interface {
	Fetch(ctx context.Context, name string, progress download.Progress) (string, error)
}

// LocalFetcher reads assets from a models directory (./models by default).
type LocalFetcher struct {
	Root string
}

const readChunk = 32 * 1024

// Fetch reads the scene file through once so progress reflects the bytes available.
func (f LocalFetcher) Fetch(ctx context.Context, name string, progress download.Progress) (string, error) {
	if err := ValidName(name); err != nil {
		return "", err
	}
	path := Path(f.Root, name)
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", path, err)
	}
	defer file.Close()
	total := int64(-1)
	if info, err := file.Stat(); err == nil {
		total = info.Size()
	}
	r := &download.CountingReader{R: file, Total: total, Progress: progress}
	buf := make([]byte, readChunk)
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		_, err := r.Read(buf)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("fetch %s: %w", path, err)
		}
	}
	if total == 0 {
		return "", fmt.Errorf("fetch %s: empty file", path)
	}
	return path, nil
}

// RemoteFetcher downloads <BaseURL>/<name>.zip, extracts it to <CacheDir>/<name>/ and returns
// the scene file inside. A previously extracted asset is reused without a request.
type RemoteFetcher struct {
	BaseURL  string
	CacheDir string
	Client   *download.Client
}

func (f RemoteFetcher) Fetch(ctx context.Context, name string, progress download.Progress) (string, error) {
	if err := ValidName(name); err != nil {
		return "", err
	}
	dir := filepath.Join(f.CacheDir, name)
	if found, err := archive.FindFile(dir, SceneFile); err == nil {
		return found, nil
	}
	zipPath := filepath.Join(f.CacheDir, name+".zip")
	src := strings.TrimSuffix(f.BaseURL, "/") + "/" + url.PathEscape(name) + ".zip"
	if err := f.Client.ToFile(ctx, src, zipPath, progress); err != nil {
		return "", err
	}
	defer os.Remove(zipPath)
	if _, err := archive.Unzip(zipPath, dir); err != nil {
		return "", err
	}
	found, err := archive.FindFile(dir, SceneFile)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", src, err)
	}
	return found, nil
}
