// Package tests contains unit tests for the JSON output builders.
package tests

import (
	"testing"
	"time"

	"github.com/relware/distpub/model"
	jsonoutput "github.com/relware/distpub/shared/json_output"
	"github.com/stretchr/testify/assert"
)

func TestBuildPublishReport(t *testing.T) {
	input := model.RenderReportInput{
		Version:    "v4.0.9",
		Target:     model.TargetSFTP,
		Host:       "releases.example.net",
		RemotePath: "electrum-downloads/v4.0.9",
		DistDir:    "/opt/electrum/dist",
		DirCreated: true,
		Duration:   3200 * time.Millisecond,
		Results: []model.ArtifactResult{
			{Name: "electrum-4.0.9.tar.gz", Size: 2048, Digest: "abc123", Status: model.StatusUploaded, Duration: time.Second},
			{Name: "electrum-4.0.9.dmg", Size: 4096, Digest: "def456", Status: model.StatusFailed, Error: "connection reset"},
			{Name: "electrum-4.0.9.exe", Size: 1024, Digest: "789aaa", Status: model.StatusSkipped},
		},
	}

	report := jsonoutput.BuildPublishReport(input, "2026-08-30T12:00:00Z")

	assert.Equal(t, "v4.0.9", report.Version)
	assert.Equal(t, "electrum-downloads/v4.0.9", report.RemotePath)
	assert.Equal(t, "2026-08-30T12:00:00Z", report.GeneratedAt)
	assert.True(t, report.DirCreated)
	assert.Equal(t, int64(3200), report.DurationMS)

	assert.Equal(t, 3, report.Summary.FileCount)
	assert.Equal(t, 1, report.Summary.Uploaded)
	assert.Equal(t, 1, report.Summary.Failed)
	assert.Equal(t, int64(2048), report.Summary.TotalBytes)

	assert.Len(t, report.Files, 3)
	assert.Equal(t, "connection reset", report.Files[1].Error)
	assert.Equal(t, model.StatusSkipped, report.Files[2].Status)
}

func TestBuildPlanReport(t *testing.T) {
	input := model.RenderPlanInput{
		Version:    "v4.0.9",
		Target:     model.TargetS3,
		Bucket:     "electrum-releases",
		RemotePath: "electrum-downloads/v4.0.9",
		Artifacts: []model.Artifact{
			{Name: "electrum-4.0.9.tar.gz", Size: 2048, Digest: "abc123"},
		},
	}

	report := jsonoutput.BuildPlanReport(input, "2026-08-30T12:00:00Z")

	assert.True(t, report.DryRun)
	assert.Equal(t, "electrum-releases", report.Bucket)
	assert.Len(t, report.Files, 1)
	assert.Equal(t, int64(2048), report.Files[0].SizeBytes)
	assert.Empty(t, report.Files[0].Status)
}
