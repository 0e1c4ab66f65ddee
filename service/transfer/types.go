package transfer

import (
	"context"
	"io"
	"os"

	"github.com/pkg/sftp"
)

// RemoteFS is the subset of remote filesystem operations the publisher needs.
type RemoteFS interface {
	Stat(path string) (os.FileInfo, error)
	Mkdir(path string) error
	Create(path string) (io.WriteCloser, error)
	Close() error
}

// Service is the interface for an open transfer session.
type Service interface {
	EnsureDir(path string) (created bool, err error)
	Upload(ctx context.Context, localPath, remotePath string) (int64, error)
	Close() error
}

// Dialer opens a transfer session. Declared as a type so the orchestrator can
// be tested without a network.
type Dialer func(cfg Config) (Service, error)

type service struct {
	fs     RemoteFS
	closer io.Closer
}

// sftpFS adapts *sftp.Client to RemoteFS.
type sftpFS struct {
	client *sftp.Client
}

func (f sftpFS) Stat(path string) (os.FileInfo, error) { return f.client.Stat(path) }
func (f sftpFS) Mkdir(path string) error               { return f.client.Mkdir(path) }
func (f sftpFS) Close() error                          { return f.client.Close() }

func (f sftpFS) Create(path string) (io.WriteCloser, error) {
	return f.client.Create(path)
}
