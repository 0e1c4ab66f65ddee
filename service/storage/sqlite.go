// Package storage persists release history in a local SQLite database.
package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const defaultDBPath = "~/.distpub/history.db"

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func (s *service) SaveRelease(ctx context.Context, input SaveReleaseInput) (int64, error) {
	if input.Version == "" {
		return 0, errors.New("version is required")
	}
	if input.ReleaseUUID == "" {
		input.ReleaseUUID = fmt.Sprintf("rel-%d", time.Now().UnixNano())
	}
	if input.Status == "" {
		input.Status = "COMPLETE"
	}

	var totalBytes int64
	for _, f := range input.Files {
		totalBytes += f.SizeBytes
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO releases (
			release_uuid, version, target, host, remote_path,
			file_count, total_bytes, duration_ms, cli_version, status
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, input.ReleaseUUID, input.Version, input.Target, input.Host, input.RemotePath,
		len(input.Files), totalBytes, input.DurationMS, input.CLIVersion, input.Status)
	if err != nil {
		return 0, err
	}
	releaseID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, f := range input.Files {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO release_files (release_id, file_name, size_bytes, digest, status, duration_ms)
			VALUES (?, ?, ?, ?, ?, ?)
		`, releaseID, f.Name, f.SizeBytes, f.Digest, f.Status, f.DurationMS)
		if err != nil {
			return 0, err
		}
	}

	err = tx.Commit()
	if err != nil {
		return 0, err
	}
	return releaseID, nil
}

func (s *service) GetRecentReleases(version string, limit int) ([]ReleaseSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	query := `
		SELECT release_id, release_uuid, version, target, host, remote_path,
			file_count, total_bytes, cli_version, status, published_at
		FROM releases
	`
	args := []any{}
	if version != "" {
		query += " WHERE version=?"
		args = append(args, version)
	}
	query += " ORDER BY published_at DESC, release_id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	releases := []ReleaseSummary{}
	for rows.Next() {
		var r ReleaseSummary
		if err := rows.Scan(&r.ReleaseID, &r.ReleaseUUID, &r.Version, &r.Target, &r.Host,
			&r.RemotePath, &r.FileCount, &r.TotalBytes, &r.CLIVersion, &r.Status, &r.PublishedAt); err != nil {
			return nil, err
		}
		releases = append(releases, r)
	}
	return releases, rows.Err()
}

func (s *service) ListFiles(releaseID int64) ([]FileRecord, error) {
	rows, err := s.db.Query(`
		SELECT file_name, size_bytes, digest, status, COALESCE(duration_ms, 0)
		FROM release_files WHERE release_id=? ORDER BY file_name ASC
	`, releaseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	files := []FileRecord{}
	for rows.Next() {
		var f FileRecord
		if err := rows.Scan(&f.Name, &f.SizeBytes, &f.Digest, &f.Status, &f.DurationMS); err != nil {
			return nil, err
		}
		files = append(files, f)
	}
	return files, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) Reindex(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "REINDEX")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM releases WHERE published_at < DATETIME('now', ?)
	`, fmt.Sprintf("-%d day", days))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *service) Close() error {
	return s.db.Close()
}
