package dist

import "github.com/relware/distpub/model"

type service struct {
	executable func() (string, error)
}

// Service is the interface for distribution directory discovery and scanning.
type Service interface {
	Resolve(path string) (string, error)
	Scan(dir string) ([]model.Artifact, error)
}
