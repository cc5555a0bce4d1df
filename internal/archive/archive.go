// Package archive extracts remote asset bundles.
package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

// sniffLen covers the longest header filetype inspects.
const sniffLen = 262

// Unzip extracts zipPath into destDir, preserving directory structure. Entries that would
// escape destDir are skipped. Returns the extracted file paths.
func Unzip(zipPath, destDir string) (extracted []string, err error) {
	if err := checkZip(zipPath); err != nil {
		return nil, fmt.Errorf("unzip %s: %w", filepath.Base(zipPath), err)
	}
	r, err := zip.OpenReader(zipPath)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	defer r.Close()
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	absDir, err := filepath.Abs(destDir)
	if err != nil {
		return nil, fmt.Errorf("unzip: %w", err)
	}
	for _, f := range r.File {
		dest := filepath.Clean(filepath.Join(destDir, f.Name))
		absDest, err := filepath.Abs(dest)
		if err != nil {
			return nil, fmt.Errorf("unzip: %w", err)
		}
		if !strings.HasPrefix(absDest, absDir+string(os.PathSeparator)) && absDest != absDir {
			continue
		}
		if f.FileInfo().IsDir() {
			_ = os.MkdirAll(dest, 0755)
			continue
		}
		if err := extractFile(f, dest); err != nil {
			return nil, fmt.Errorf("unzip: %w", err)
		}
		extracted = append(extracted, dest)
	}
	return extracted, nil
}

// checkZip rejects downloads that are not zip archives, such as an HTML error page saved
// under a .zip name.
func checkZip(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF {
		return err
	}
	head = head[:n]
	if filetype.Is(head, "zip") {
		return nil
	}
	kind, _ := filetype.Match(head)
	return fmt.Errorf("not a zip archive (detected %s)", kind.Extension)
}

func extractFile(f *zip.File, dest string) error {
	if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
		return err
	}
	rc, err := f.Open()
	if err != nil {
		return err
	}
	defer rc.Close()
	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// FindFile returns the first regular file under dir named name, searching breadth-first by
// depth so a bundle's top-level scene wins over nested copies.
func FindFile(dir, name string) (string, error) {
	var best string
	bestDepth := -1
	err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != name {
			return nil
		}
		depth := strings.Count(filepath.ToSlash(path), "/")
		if bestDepth < 0 || depth < bestDepth {
			best, bestDepth = path, depth
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	if best == "" {
		return "", fmt.Errorf("%s not found under %s", name, dir)
	}
	return best, nil
}
