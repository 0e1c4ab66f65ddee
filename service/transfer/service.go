// Package transfer drives the SFTP session used to publish a release.
package transfer

import (
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"

	"github.com/pkg/sftp"
	"golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/knownhosts"
)

// Config describes how to reach and authenticate against the remote host.
type Config struct {
	Host            string
	Port            int
	User            string
	IdentityFile    string
	InsecureHostKey bool

	// Prompt asks the operator for a secret with terminal echo disabled.
	// Required unless IdentityFile alone is expected to succeed.
	Prompt PromptFunc
}

// Dial opens an SSH connection and an SFTP session on top of it.
func Dial(cfg Config) (Service, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("remote host is required")
	}
	if cfg.User == "" {
		return nil, fmt.Errorf("remote user is required")
	}
	if cfg.Port == 0 {
		cfg.Port = 22
	}

	auth, err := authMethods(cfg)
	if err != nil {
		return nil, err
	}
	hostKey, err := hostKeyCallback(cfg)
	if err != nil {
		return nil, err
	}

	addr := net.JoinHostPort(cfg.Host, fmt.Sprintf("%d", cfg.Port))
	sshClient, err := ssh.Dial("tcp", addr, &ssh.ClientConfig{
		User:            cfg.User,
		Auth:            auth,
		HostKeyCallback: hostKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}

	sftpClient, err := sftp.NewClient(sshClient)
	if err != nil {
		_ = sshClient.Close()
		return nil, fmt.Errorf("failed to open sftp session: %w", err)
	}

	return &service{
		fs:     sftpFS{client: sftpClient},
		closer: sshClient,
	}, nil
}

// NewService wraps an already-connected remote filesystem. Used by Dial and
// by tests that substitute an in-memory remote.
func NewService(fs RemoteFS) Service {
	return &service{fs: fs}
}

// EnsureDir creates path on the remote when missing. An existing directory is
// reused; an existing non-directory is an error. Returns whether the
// directory was created by this call.
func (s *service) EnsureDir(path string) (bool, error) {
	info, err := s.fs.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return false, fmt.Errorf("remote path exists and is not a directory: %s", path)
		}
		return false, nil
	}
	if err := s.fs.Mkdir(path); err != nil {
		return false, fmt.Errorf("failed to create remote directory %s: %w", path, err)
	}
	return true, nil
}

// Upload copies the local file to remotePath, truncating any existing remote
// file of the same name. Returns the number of bytes written.
func (s *service) Upload(ctx context.Context, localPath, remotePath string) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	src, err := os.Open(localPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer src.Close()

	dst, err := s.fs.Create(remotePath)
	if err != nil {
		return 0, fmt.Errorf("failed to create remote file %s: %w", remotePath, err)
	}

	n, err := io.Copy(dst, src)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return n, fmt.Errorf("failed to upload %s: %w", filepath.Base(localPath), err)
	}
	return n, nil
}

func (s *service) Close() error {
	var err error
	if s.fs != nil {
		err = s.fs.Close()
	}
	if s.closer != nil {
		if cerr := s.closer.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

func authMethods(cfg Config) ([]ssh.AuthMethod, error) {
	var methods []ssh.AuthMethod

	if cfg.IdentityFile != "" {
		key, err := os.ReadFile(cfg.IdentityFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read identity file: %w", err)
		}
		signer, err := ssh.ParsePrivateKey(key)
		if err != nil {
			return nil, fmt.Errorf("failed to parse identity file: %w", err)
		}
		methods = append(methods, ssh.PublicKeys(signer))
	}

	// Credentials are always gathered interactively at runtime, never from
	// flags or the environment.
	if cfg.Prompt != nil {
		prompt := cfg.Prompt
		user, host := cfg.User, cfg.Host
		methods = append(methods,
			ssh.PasswordCallback(func() (string, error) {
				return prompt(fmt.Sprintf("%s@%s password: ", user, host))
			}),
			ssh.KeyboardInteractive(func(name, instruction string, questions []string, echos []bool) ([]string, error) {
				answers := make([]string, len(questions))
				for i, q := range questions {
					a, err := prompt(q)
					if err != nil {
						return nil, err
					}
					answers[i] = a
				}
				return answers, nil
			}),
		)
	}

	if len(methods) == 0 {
		return nil, fmt.Errorf("no authentication method available")
	}
	return methods, nil
}

func hostKeyCallback(cfg Config) (ssh.HostKeyCallback, error) {
	if cfg.InsecureHostKey {
		return ssh.InsecureIgnoreHostKey(), nil //nolint:gosec
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve home dir: %w", err)
	}
	callback, err := knownhosts.New(filepath.Join(home, ".ssh", "known_hosts"))
	if err != nil {
		return nil, fmt.Errorf("failed to load known_hosts (use --insecure-host-key to skip): %w", err)
	}
	return callback, nil
}
