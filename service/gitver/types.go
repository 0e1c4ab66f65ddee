package gitver

import "context"

type runner func(ctx context.Context, name string, args ...string) ([]byte, error)

type service struct {
	repoPath string
	run      runner
}

// Service is the interface for resolving the current release version.
type Service interface {
	Describe(ctx context.Context) (string, error)
}
