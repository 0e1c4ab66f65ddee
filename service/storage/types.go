package storage

import (
	"context"
	"time"
)

// Service defines release history persistence operations.
type Service interface {
	SaveRelease(ctx context.Context, input SaveReleaseInput) (int64, error)
	GetRecentReleases(version string, limit int) ([]ReleaseSummary, error)
	ListFiles(releaseID int64) ([]FileRecord, error)
	Vacuum(ctx context.Context) error
	Reindex(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Close() error
}

// SaveReleaseInput is the payload saved for a completed publish.
type SaveReleaseInput struct {
	ReleaseUUID string
	Version     string
	Target      string
	Host        string
	RemotePath  string
	DurationMS  int64
	CLIVersion  string
	Status      string
	Files       []FileInput
}

// FileInput is one uploaded file as recorded in history.
type FileInput struct {
	Name       string
	SizeBytes  int64
	Digest     string
	Status     string
	DurationMS int64
}

// ReleaseSummary provides compact release metadata.
type ReleaseSummary struct {
	ReleaseID   int64
	ReleaseUUID string
	Version     string
	Target      string
	Host        string
	RemotePath  string
	FileCount   int
	TotalBytes  int64
	CLIVersion  string
	Status      string
	PublishedAt time.Time
}

// FileRecord is a stored per-file upload outcome.
type FileRecord struct {
	Name       string
	SizeBytes  int64
	Digest     string
	Status     string
	DurationMS int64
}
