package dist

import (
	"os"
	"path/filepath"
	"testing"
)

func TestScanListsRegularFilesSorted(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.bin"), []byte{0x01, 0x02, 0x03}, 0o644); err != nil {
		t.Fatalf("failed to write b.bin: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("release notes"), 0o644); err != nil {
		t.Fatalf("failed to write a.txt: %v", err)
	}
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nested", "c.txt"), []byte("skip"), 0o644); err != nil {
		t.Fatalf("failed to write nested file: %v", err)
	}

	svc := NewService()
	artifacts, err := svc.Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(artifacts) != 2 {
		t.Fatalf("expected 2 artifacts, got %d", len(artifacts))
	}
	if artifacts[0].Name != "a.txt" || artifacts[1].Name != "b.bin" {
		t.Fatalf("unexpected artifact order: %s, %s", artifacts[0].Name, artifacts[1].Name)
	}
	if artifacts[0].Size != int64(len("release notes")) || artifacts[1].Size != 3 {
		t.Fatalf("unexpected sizes: %d, %d", artifacts[0].Size, artifacts[1].Size)
	}
	for _, a := range artifacts {
		if len(a.Digest) != 64 {
			t.Fatalf("expected 64-char hex digest for %s, got %q", a.Name, a.Digest)
		}
	}
}

func TestScanDigestIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"x.bin", "y.bin"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("same content"), 0o644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}

	svc := NewService()
	artifacts, err := svc.Scan(dir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(artifacts) != 2 || artifacts[0].Digest != artifacts[1].Digest {
		t.Fatalf("identical content must hash identically: %+v", artifacts)
	}
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	svc := NewService()
	got, err := svc.Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != dir {
		t.Fatalf("expected %s, got %s", dir, got)
	}
}

func TestResolveMissingDirFails(t *testing.T) {
	svc := NewService()
	if _, err := svc.Resolve(filepath.Join(t.TempDir(), "dist")); err == nil {
		t.Fatalf("expected error for missing dist directory")
	}
}

func TestResolveRejectsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dist")
	if err := os.WriteFile(path, []byte("not a dir"), 0o644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	svc := NewService()
	if _, err := svc.Resolve(path); err == nil {
		t.Fatalf("expected error when dist path is a file")
	}
}

func TestResolveDefaultsRelativeToExecutable(t *testing.T) {
	root := t.TempDir()
	binDir := filepath.Join(root, "bin")
	distDir := filepath.Join(root, "dist")
	for _, d := range []string{binDir, distDir} {
		if err := os.Mkdir(d, 0o755); err != nil {
			t.Fatalf("failed to create %s: %v", d, err)
		}
	}

	svc := &service{executable: func() (string, error) {
		return filepath.Join(binDir, "distpub"), nil
	}}
	got, err := svc.Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if got != distDir {
		t.Fatalf("expected %s, got %s", distDir, got)
	}
}
