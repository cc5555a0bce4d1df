// Package download fetches remote asset bundles over HTTP with progress reporting.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const userAgent = "scene-viewer/1.0"

// Progress is called as bytes arrive. total is -1 when the server does not send a length.
type Progress func(received, total int64)

// Client downloads files. The zero value uses a 60s timeout.
type Client struct {
	HTTP *http.Client
}

func (c *Client) http() *http.Client {
	if c != nil && c.HTTP != nil {
		return c.HTTP
	}
	return &http.Client{Timeout: 60 * time.Second}
}

// ToFile fetches url into destPath, creating parent directories. On failure the partial
// file is removed. progress may be nil.
func (c *Client) ToFile(ctx context.Context, url, destPath string, progress Progress) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	resp, err := c.http().Do(req)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download: %s: HTTP %d", url, resp.StatusCode)
	}
	if err := os.MkdirAll(filepath.Dir(destPath), 0755); err != nil {
		return fmt.Errorf("download: %w", err)
	}
	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("download: %w", err)
	}
	body := &CountingReader{R: resp.Body, Total: resp.ContentLength, Progress: progress}
	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		_ = os.Remove(destPath)
		return fmt.Errorf("download: %w", err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(destPath)
		return fmt.Errorf("download: %w", err)
	}
	return nil
}

// CountingReader reports cumulative bytes read to Progress after every Read.
type CountingReader struct {
	R        io.Reader
	Total    int64
	Progress Progress
	n        int64
}

func (r *CountingReader) Read(p []byte) (int, error) {
	n, err := r.R.Read(p)
	if n > 0 {
		r.n += int64(n)
		if r.Progress != nil {
			r.Progress(r.n, r.Total)
		}
	}
	return n, err
}

// Received returns the number of bytes read so far.
func (r *CountingReader) Received() int64 {
	return r.n
}
