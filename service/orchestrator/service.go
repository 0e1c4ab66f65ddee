// Package orchestrator coordinates the steps of publishing a release.
package orchestrator

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/relware/distpub/model"
	"github.com/relware/distpub/service/storage"
	"github.com/relware/distpub/service/transfer"
	"github.com/relware/distpub/shared/spinner"
	"golang.org/x/sync/errgroup"
)

// Orchestrate publishes the distribution directory for the current tag.
// The version is resolved and the local directory validated before any
// network session is opened.
func (s *service) Orchestrate(ctx context.Context, flags model.Flags) error {
	start := time.Now()

	version, err := s.gitService.Describe(ctx)
	if err != nil {
		return err
	}
	// Confirmation line, printed before anything else happens.
	fmt.Println(version)

	distDir, err := s.distService.Resolve(flags.DistDir)
	if err != nil {
		return err
	}
	artifacts, err := s.distService.Scan(distDir)
	if err != nil {
		return err
	}

	remotePath := path.Join(flags.RemoteBase, version)
	plan := model.RenderPlanInput{
		Version:    version,
		Target:     flags.Target,
		Host:       flags.Host,
		Bucket:     flags.Bucket,
		RemotePath: remotePath,
		DistDir:    distDir,
		Artifacts:  artifacts,
	}

	if flags.DryRun {
		return s.outputService.RenderPlan(plan)
	}

	var report model.RenderReportInput
	switch flags.Target {
	case model.TargetS3:
		report, err = s.publishS3(ctx, flags, plan)
	default:
		report, err = s.publishSFTP(ctx, flags, plan)
	}
	report.Version = version
	report.Target = flags.Target
	report.Host = flags.Host
	report.Bucket = flags.Bucket
	report.RemotePath = remotePath
	report.DistDir = distDir
	report.Duration = time.Since(start)

	if s.storageService != nil {
		if serr := s.record(ctx, report, err); serr != nil {
			if err == nil {
				err = serr
			}
		}
	}

	if rerr := s.outputService.RenderReport(report); rerr != nil && err == nil {
		err = rerr
	}
	return err
}

func (s *service) publishSFTP(ctx context.Context, flags model.Flags, plan model.RenderPlanInput) (model.RenderReportInput, error) {
	var report model.RenderReportInput

	session, err := s.dial(transfer.Config{
		Host:            flags.Host,
		Port:            flags.Port,
		User:            flags.User,
		IdentityFile:    flags.Identity,
		InsecureHostKey: flags.InsecureHostKey,
		Prompt:          transfer.TerminalPrompt,
	})
	if err != nil {
		return report, err
	}
	defer session.Close()

	if _, err := session.EnsureDir(flags.RemoteBase); err != nil {
		return report, err
	}
	created, err := session.EnsureDir(plan.RemotePath)
	if err != nil {
		return report, err
	}
	report.DirCreated = created

	results, err := uploadAll(ctx, flags.Workers, plan.Artifacts, func(ctx context.Context, a model.Artifact) (int64, error) {
		return session.Upload(ctx, a.Path, path.Join(plan.RemotePath, a.Name))
	})
	report.Results = results
	return report, err
}

func (s *service) publishS3(ctx context.Context, flags model.Flags, plan model.RenderPlanInput) (model.RenderReportInput, error) {
	var report model.RenderReportInput

	if flags.Bucket == "" {
		return report, fmt.Errorf("--bucket is required for the s3 target")
	}
	account, err := s.s3Service.CallerAccount(ctx)
	if err != nil {
		return report, err
	}
	fmt.Printf("Publishing as AWS account %s\n", account)

	results, err := uploadAll(ctx, flags.Workers, plan.Artifacts, func(ctx context.Context, a model.Artifact) (int64, error) {
		return s.s3Service.Upload(ctx, flags.Bucket, path.Join(plan.RemotePath, a.Name), a.Path)
	})
	report.Results = results
	return report, err
}

// uploadAll fans artifacts out over at most workers goroutines. The default
// of one worker preserves strictly sequential uploads; the first failure
// cancels the remainder.
func uploadAll(ctx context.Context, workers int, artifacts []model.Artifact, upload func(context.Context, model.Artifact) (int64, error)) ([]model.ArtifactResult, error) {
	if workers <= 0 {
		workers = 1
	}

	spinner.StartSpinner()
	defer spinner.StopSpinner()

	results := make([]model.ArtifactResult, len(artifacts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, a := range artifacts {
		i, a := i, a
		g.Go(func() error {
			began := time.Now()
			result := model.ArtifactResult{Name: a.Name, Size: a.Size, Digest: a.Digest}
			_, err := upload(gctx, a)
			result.Duration = time.Since(began)
			if err != nil {
				result.Status = model.StatusFailed
				result.Error = err.Error()
				results[i] = result
				return err
			}
			result.Status = model.StatusUploaded
			results[i] = result
			return nil
		})
	}

	err := g.Wait()
	for i, r := range results {
		if r.Name == "" {
			results[i] = model.ArtifactResult{
				Name:   artifacts[i].Name,
				Size:   artifacts[i].Size,
				Digest: artifacts[i].Digest,
				Status: model.StatusSkipped,
			}
		}
	}
	if err != nil {
		return results, fmt.Errorf("upload failed: %w", err)
	}
	return results, nil
}

func (s *service) record(ctx context.Context, report model.RenderReportInput, publishErr error) error {
	status := "COMPLETE"
	if publishErr != nil {
		status = "FAILED"
	}

	input := storage.SaveReleaseInput{
		Version:    report.Version,
		Target:     report.Target,
		Host:       report.Host,
		RemotePath: report.RemotePath,
		DurationMS: report.Duration.Milliseconds(),
		CLIVersion: s.versionInfo.Version,
		Status:     status,
	}
	for _, r := range report.Results {
		input.Files = append(input.Files, storage.FileInput{
			Name:       r.Name,
			SizeBytes:  r.Size,
			Digest:     r.Digest,
			Status:     r.Status,
			DurationMS: r.Duration.Milliseconds(),
		})
	}

	if _, err := s.storageService.SaveRelease(ctx, input); err != nil {
		return fmt.Errorf("failed to record release history: %w", err)
	}
	return nil
}
