package gitver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func newRepoDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("failed to create .git dir: %v", err)
	}
	return dir
}

func TestDescribeTrimsOutput(t *testing.T) {
	svc := &service{
		repoPath: newRepoDir(t),
		run: func(context.Context, string, ...string) ([]byte, error) {
			return []byte("v4.0.9-3-gabc1234\n"), nil
		},
	}
	got, err := svc.Describe(context.Background())
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if got != "v4.0.9-3-gabc1234" {
		t.Fatalf("unexpected version: %q", got)
	}
}

func TestDescribeFailsWithoutRepo(t *testing.T) {
	svc := &service{
		repoPath: t.TempDir(),
		run: func(context.Context, string, ...string) ([]byte, error) {
			t.Fatal("git must not be invoked outside a repository")
			return nil, nil
		},
	}
	if _, err := svc.Describe(context.Background()); err == nil {
		t.Fatalf("expected error for missing .git")
	}
}

func TestDescribeSurfacesGitError(t *testing.T) {
	svc := &service{
		repoPath: newRepoDir(t),
		run: func(context.Context, string, ...string) ([]byte, error) {
			return []byte("fatal: No names found, cannot describe anything.\n"), errors.New("exit status 128")
		},
	}
	_, err := svc.Describe(context.Background())
	if err == nil {
		t.Fatalf("expected error when no tags exist")
	}
	if got := err.Error(); got != "failed to describe tags: fatal: No names found, cannot describe anything." {
		t.Fatalf("unexpected error message: %q", got)
	}
}

func TestDescribeRejectsUnusableVersions(t *testing.T) {
	for _, bad := range []string{"", "..", "v1/0", "a\\b"} {
		svc := &service{
			repoPath: newRepoDir(t),
			run: func(context.Context, string, ...string) ([]byte, error) {
				return []byte(bad + "\n"), nil
			},
		}
		if _, err := svc.Describe(context.Background()); err == nil {
			t.Fatalf("expected rejection of version %q", bad)
		}
	}
}
