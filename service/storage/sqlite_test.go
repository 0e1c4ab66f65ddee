package storage

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestStorage(t *testing.T) Service {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")
	svc, err := NewService(dbPath)
	if err != nil {
		t.Fatalf("NewService failed: %v", err)
	}
	t.Cleanup(func() { _ = svc.Close() })
	return svc
}

func TestSaveReleaseAndQueries(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	releaseID, err := svc.SaveRelease(ctx, SaveReleaseInput{
		ReleaseUUID: "rel-1",
		Version:     "v4.0.9",
		Target:      "sftp",
		Host:        "releases.example.net",
		RemotePath:  "electrum-downloads/v4.0.9",
		DurationMS:  1200,
		CLIVersion:  "dev",
		Files: []FileInput{
			{Name: "a.txt", SizeBytes: 13, Digest: "abc", Status: "UPLOADED", DurationMS: 10},
			{Name: "b.bin", SizeBytes: 3, Digest: "def", Status: "UPLOADED", DurationMS: 5},
		},
	})
	if err != nil {
		t.Fatalf("SaveRelease failed: %v", err)
	}
	if releaseID <= 0 {
		t.Fatalf("expected positive releaseID, got %d", releaseID)
	}

	recent, err := svc.GetRecentReleases("v4.0.9", 10)
	if err != nil {
		t.Fatalf("GetRecentReleases failed: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent release, got %d", len(recent))
	}
	r := recent[0]
	if r.Version != "v4.0.9" || r.FileCount != 2 || r.TotalBytes != 16 {
		t.Fatalf("unexpected release summary: %+v", r)
	}
	if r.RemotePath != "electrum-downloads/v4.0.9" || r.Status != "COMPLETE" {
		t.Fatalf("unexpected release values: %+v", r)
	}

	files, err := svc.ListFiles(releaseID)
	if err != nil {
		t.Fatalf("ListFiles failed: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("expected 2 files, got %d", len(files))
	}
	if files[0].Name != "a.txt" || files[1].Name != "b.bin" {
		t.Fatalf("unexpected file order: %+v", files)
	}
}

func TestSaveReleaseRequiresVersion(t *testing.T) {
	svc := newTestStorage(t)
	if _, err := svc.SaveRelease(context.Background(), SaveReleaseInput{}); err == nil {
		t.Fatalf("expected error for missing version")
	}
}

func TestVersionFilterAndLimit(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	for _, v := range []string{"v1.0", "v1.1", "v1.1"} {
		if _, err := svc.SaveRelease(ctx, SaveReleaseInput{Version: v, Target: "sftp", RemotePath: "electrum-downloads/" + v}); err != nil {
			t.Fatalf("SaveRelease %s failed: %v", v, err)
		}
	}

	all, err := svc.GetRecentReleases("", 10)
	if err != nil {
		t.Fatalf("GetRecentReleases failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 releases, got %d", len(all))
	}

	filtered, err := svc.GetRecentReleases("v1.1", 10)
	if err != nil {
		t.Fatalf("GetRecentReleases filtered failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Fatalf("expected 2 filtered releases, got %d", len(filtered))
	}

	limited, err := svc.GetRecentReleases("", 1)
	if err != nil {
		t.Fatalf("GetRecentReleases limited failed: %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("expected 1 limited release, got %d", len(limited))
	}
}

func TestMaintenanceOperations(t *testing.T) {
	svc := newTestStorage(t)
	ctx := context.Background()

	if err := svc.Vacuum(ctx); err != nil {
		t.Fatalf("Vacuum failed: %v", err)
	}
	if err := svc.Reindex(ctx); err != nil {
		t.Fatalf("Reindex failed: %v", err)
	}
	if _, err := svc.PurgeOlderThan(ctx, 0); err == nil {
		t.Fatalf("expected error for non-positive purge window")
	}
	count, err := svc.PurgeOlderThan(ctx, 30)
	if err != nil {
		t.Fatalf("PurgeOlderThan failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected nothing purged from fresh db, got %d", count)
	}
}
