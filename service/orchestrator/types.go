package orchestrator

import (
	"context"

	"github.com/relware/distpub/model"
	"github.com/relware/distpub/service/dist"
	"github.com/relware/distpub/service/gitver"
	"github.com/relware/distpub/service/output"
	"github.com/relware/distpub/service/s3target"
	"github.com/relware/distpub/service/storage"
	"github.com/relware/distpub/service/transfer"
)

type service struct {
	gitService     gitver.Service
	distService    dist.Service
	dial           transfer.Dialer
	s3Service      s3target.Service
	outputService  output.Service
	storageService storage.Service
	versionInfo    model.VersionInfo
}

// Service is the interface for the publish orchestrator.
type Service interface {
	Orchestrate(ctx context.Context, flags model.Flags) error
}

// NewService creates a new orchestrator service. storageService may be nil
// when history recording is disabled; s3Service may be nil for the sftp
// target.
func NewService(
	gitService gitver.Service,
	distService dist.Service,
	dialer transfer.Dialer,
	s3Service s3target.Service,
	outputService output.Service,
	storageService storage.Service,
	versionInfo model.VersionInfo,
) Service {
	return &service{
		gitService:     gitService,
		distService:    distService,
		dial:           dialer,
		s3Service:      s3Service,
		outputService:  outputService,
		storageService: storageService,
		versionInfo:    versionInfo,
	}
}
