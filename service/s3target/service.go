// Package s3target uploads release artifacts to an S3 bucket.
package s3target

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
)

// NewService creates a new S3 target service.
func NewService(cfg aws.Config) Service {
	return &service{
		s3Client:  s3.NewFromConfig(cfg),
		stsClient: sts.NewFromConfig(cfg),
	}
}

// CallerAccount returns the AWS account ID of the current credentials. Run
// before uploading so credential problems surface ahead of any side effect.
func (s *service) CallerAccount(ctx context.Context) (string, error) {
	out, err := s.stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("failed to verify AWS identity: %w", err)
	}
	if out.Account == nil {
		return "", fmt.Errorf("unable to resolve AWS account ID")
	}
	return *out.Account, nil
}

// Upload puts the local file at s3://<bucket>/<key>. An existing object of
// the same key is overwritten, matching the merge semantics of the SFTP
// target.
func (s *service) Upload(ctx context.Context, bucket, key, localPath string) (int64, error) {
	file, err := os.Open(localPath)
	if err != nil {
		return 0, fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to stat %s: %w", localPath, err)
	}

	_, err = s.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(key),
		Body:          file,
		ContentLength: aws.Int64(info.Size()),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to upload s3://%s/%s: %w", bucket, key, err)
	}
	return info.Size(), nil
}
