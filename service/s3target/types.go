package s3target

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// S3ClientAPI is the interface for the S3 client methods used by the service.
type S3ClientAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// STSClientAPI is the interface for the STS client methods used by the service.
type STSClientAPI interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

type service struct {
	s3Client  S3ClientAPI
	stsClient STSClientAPI
}

// Service is the interface for the S3 upload target.
type Service interface {
	CallerAccount(ctx context.Context) (string, error)
	Upload(ctx context.Context, bucket, key, localPath string) (int64, error)
}
