package main

import (
	"context"
	"fmt"

	"github.com/relware/distpub/model"
	"github.com/relware/distpub/service/awsconfig"
	"github.com/relware/distpub/service/config"
	"github.com/relware/distpub/service/dist"
	"github.com/relware/distpub/service/gitver"
	"github.com/relware/distpub/service/orchestrator"
	"github.com/relware/distpub/service/output"
	"github.com/relware/distpub/service/s3target"
	"github.com/relware/distpub/service/storage"
	"github.com/relware/distpub/service/transfer"
)

func runPublish(flags model.Flags, versionInfo model.VersionInfo) error {
	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		return err
	}
	flags = config.Merge(flags, cfg)

	if err := validatePublishFlags(flags); err != nil {
		return err
	}

	ctx := context.Background()

	gitService := gitver.NewService("")
	distService := dist.NewService()
	outputService := output.NewService(flags.Output)

	var s3Service s3target.Service
	if flags.Target == model.TargetS3 && !flags.DryRun {
		awsCfg, err := awsconfig.NewService().GetAWSCfg(ctx, flags.Region, flags.Profile)
		if err != nil {
			return err
		}
		s3Service = s3target.NewService(awsCfg)
	}

	var storageService storage.Service
	if flags.Store {
		storageService, err = storage.NewService(flags.DBPath)
		if err != nil {
			return fmt.Errorf("failed to initialize storage: %w", err)
		}
		defer storageService.Close()
	}

	orchestratorService := orchestrator.NewService(
		gitService,
		distService,
		transfer.Dial,
		s3Service,
		outputService,
		storageService,
		versionInfo,
	)

	return orchestratorService.Orchestrate(ctx, flags)
}

func validatePublishFlags(flags model.Flags) error {
	switch flags.Target {
	case model.TargetSFTP:
		if flags.Host == "" {
			return fmt.Errorf("remote host is required (--host or config file)")
		}
		if flags.User == "" {
			return fmt.Errorf("remote user is required (--user or config file)")
		}
	case model.TargetS3:
		if flags.Bucket == "" {
			return fmt.Errorf("--bucket is required for the s3 target")
		}
	default:
		return fmt.Errorf("unsupported target: %s", flags.Target)
	}

	if flags.Output != "table" && flags.Output != "json" {
		return fmt.Errorf("unsupported output format: %s", flags.Output)
	}
	return nil
}
