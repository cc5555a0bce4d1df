package fonts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"scene-viewer/internal/download"
)

const (
	googleAPI = "https://api.github.com/repos/google/fonts/contents/ofl"
	googleRaw = "https://raw.githubusercontent.com/google/fonts/"
)

// Google fetches families missing locally from the google/fonts repository.
type Google struct {
	API       string // contents listing of the ofl directory
	RawPrefix string // only download URLs under this prefix are followed
	HTTP      *http.Client
	Files     *download.Client
}

// NewGoogle returns a fetcher for the public google/fonts repository.
func NewGoogle() *Google {
	return &Google{
		API:       googleAPI,
		RawPrefix: googleRaw,
		HTTP:      &http.Client{Timeout: 15 * time.Second},
		Files:     &download.Client{},
	}
}

type githubFile struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	DownloadURL string `json:"download_url"`
}

// Folders returns the ofl folder names tried for a family: "Open Sans" gives "opensans" and "open-sans".
func Folders(family string) []string {
	lower := strings.ToLower(strings.TrimSpace(family))
	if lower == "" {
		return nil
	}
	joined := strings.ReplaceAll(lower, " ", "")
	hyphened := strings.ReplaceAll(lower, " ", "-")
	if hyphened == joined {
		return []string{joined}
	}
	return []string{joined, hyphened}
}

// Fetch downloads the upright face of family into destDir/<folder>/ and returns its path.
func (g *Google) Fetch(ctx context.Context, family, destDir string) (string, error) {
	folders := Folders(family)
	if len(folders) == 0 {
		return "", errors.New("google fonts: empty family")
	}
	var lastErr error
	for _, folder := range folders {
		src, err := g.downloadURL(ctx, folder)
		if err != nil {
			lastErr = err
			continue
		}
		name, err := url.PathUnescape(path.Base(src))
		if err != nil {
			return "", fmt.Errorf("google fonts: %w", err)
		}
		dest := filepath.Join(destDir, folder, name)
		if err := g.Files.ToFile(ctx, src, dest, nil); err != nil {
			return "", err
		}
		return dest, nil
	}
	return "", lastErr
}

// downloadURL lists folder and picks a .ttf/.otf, preferring one without "italic" in its name.
func (g *Google) downloadURL(ctx context.Context, folder string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.API+"/"+url.PathEscape(folder), nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	resp, err := g.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return "", fmt.Errorf("font %q not found on Google Fonts", folder)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("google fonts: HTTP %d", resp.StatusCode)
	}
	var files []githubFile
	if err := json.NewDecoder(resp.Body).Decode(&files); err != nil {
		return "", fmt.Errorf("google fonts: %w", err)
	}
	var italic string
	for _, f := range files {
		if f.Type != "file" || !isFont(f.Name) || !strings.HasPrefix(f.DownloadURL, g.RawPrefix) {
			continue
		}
		if strings.Contains(strings.ToLower(f.Name), "italic") {
			if italic == "" {
				italic = f.DownloadURL
			}
			continue
		}
		return f.DownloadURL, nil
	}
	if italic != "" {
		return italic, nil
	}
	return "", fmt.Errorf("no .ttf/.otf file found for %q on Google Fonts", folder)
}
