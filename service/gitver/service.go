// Package gitver resolves the release version from the git working tree.
package gitver

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// NewService creates a version service rooted at repoPath ("" means the
// current directory).
func NewService(repoPath string) Service {
	if repoPath == "" {
		repoPath = "."
	}
	return &service{
		repoPath: repoPath,
		run:      runGit,
	}
}

// Describe returns the output of `git describe --tags` for the working tree.
// It fails when the directory is not a repository, when no tag is reachable,
// or when the resulting string is unusable as a directory name.
func (s *service) Describe(ctx context.Context) (string, error) {
	absPath, err := filepath.Abs(s.repoPath)
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository path: %w", err)
	}

	// .git is a directory in a normal checkout and a file in a worktree.
	if _, err := os.Stat(filepath.Join(absPath, ".git")); err != nil {
		return "", fmt.Errorf("not a git repository: %s", absPath)
	}

	out, err := s.run(ctx, "git", "-C", absPath, "describe", "--tags")
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return "", fmt.Errorf("failed to describe tags: %w", err)
		}
		return "", fmt.Errorf("failed to describe tags: %s", msg)
	}

	version := strings.TrimSpace(string(out))
	if err := validateVersion(version); err != nil {
		return "", err
	}
	return version, nil
}

// validateVersion rejects describe output that cannot serve as a single
// remote path segment.
func validateVersion(v string) error {
	if v == "" {
		return fmt.Errorf("git describe returned an empty version")
	}
	if v == "." || v == ".." {
		return fmt.Errorf("invalid version string: %q", v)
	}
	if strings.ContainsAny(v, "/\\") || strings.ContainsRune(v, 0) {
		return fmt.Errorf("invalid version string: %q", v)
	}
	return nil
}

func runGit(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput()
}
