package storage

const schemaV1 = `
CREATE TABLE IF NOT EXISTS releases (
    release_id      INTEGER PRIMARY KEY AUTOINCREMENT,
    release_uuid    TEXT UNIQUE NOT NULL,
    version         TEXT NOT NULL,
    target          TEXT NOT NULL,
    host            TEXT,
    remote_path     TEXT NOT NULL,
    file_count      INTEGER DEFAULT 0,
    total_bytes     INTEGER DEFAULT 0,
    duration_ms     INTEGER,
    cli_version     TEXT,
    status          TEXT DEFAULT 'COMPLETE',
    published_at    DATETIME DEFAULT CURRENT_TIMESTAMP,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_releases_version
    ON releases(version);
CREATE INDEX IF NOT EXISTS idx_releases_published
    ON releases(published_at DESC);

CREATE TABLE IF NOT EXISTS release_files (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    release_id      INTEGER NOT NULL,
    file_name       TEXT NOT NULL,
    size_bytes      INTEGER DEFAULT 0,
    digest          TEXT,
    status          TEXT NOT NULL,
    duration_ms     INTEGER,
    created_at      DATETIME DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (release_id) REFERENCES releases(release_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_release_files_release ON release_files(release_id);
CREATE INDEX IF NOT EXISTS idx_release_files_name ON release_files(file_name);
`
