// Package dist locates and inventories the local distribution directory.
package dist

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/relware/distpub/model"
	"github.com/zeebo/blake3"
)

// NewService creates a new distribution directory service.
func NewService() Service {
	return &service{executable: os.Executable}
}

// Resolve returns the absolute distribution directory path. An empty path
// defaults to the dist directory next to the executable's parent directory.
func (s *service) Resolve(path string) (string, error) {
	if path == "" {
		exe, err := s.executable()
		if err != nil {
			return "", fmt.Errorf("failed to locate executable: %w", err)
		}
		path = filepath.Join(filepath.Dir(exe), "..", "dist")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve dist directory: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("distribution directory not found: %s", abs)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("distribution path is not a directory: %s", abs)
	}
	return abs, nil
}

// Scan lists the regular files directly inside dir, sorted by name, with
// sizes and BLAKE3 content digests. Subdirectories are not descended into.
func (s *service) Scan(dir string) ([]model.Artifact, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read distribution directory: %w", err)
	}

	var artifacts []model.Artifact
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		digest, err := fileDigest(path)
		if err != nil {
			return nil, err
		}
		artifacts = append(artifacts, model.Artifact{
			Name:   entry.Name(),
			Path:   path,
			Size:   info.Size(),
			Digest: digest,
		})
	}
	return artifacts, nil
}

// fileDigest streams the file through BLAKE3 and returns the hex digest.
func fileDigest(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", fmt.Errorf("failed to hash %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), nil
}
