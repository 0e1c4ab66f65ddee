package jsonoutput

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/relware/distpub/model"
)

// OutputPublishJSON outputs the publish report as JSON.
func OutputPublishJSON(input model.RenderReportInput) error {
	return printJSON(BuildPublishReport(input, time.Now().UTC().Format(time.RFC3339)))
}

// OutputPlanJSON outputs the dry-run upload plan as JSON.
func OutputPlanJSON(input model.RenderPlanInput) error {
	return printJSON(BuildPlanReport(input, time.Now().UTC().Format(time.RFC3339)))
}

// BuildPublishReport builds the publish JSON report model.
func BuildPublishReport(input model.RenderReportInput, generatedAt string) model.PublishReportJSON {
	report := model.PublishReportJSON{
		Version:     input.Version,
		Target:      input.Target,
		Host:        input.Host,
		Bucket:      input.Bucket,
		RemotePath:  input.RemotePath,
		DistDir:     input.DistDir,
		GeneratedAt: generatedAt,
		DirCreated:  input.DirCreated,
		DurationMS:  input.Duration.Milliseconds(),
	}

	report.Summary.FileCount = len(input.Results)
	for _, r := range input.Results {
		switch r.Status {
		case model.StatusUploaded:
			report.Summary.Uploaded++
			report.Summary.TotalBytes += r.Size
		case model.StatusFailed:
			report.Summary.Failed++
		}
		report.Files = append(report.Files, model.FileReportJSON{
			Name:       r.Name,
			SizeBytes:  r.Size,
			Digest:     r.Digest,
			Status:     r.Status,
			DurationMS: r.Duration.Milliseconds(),
			Error:      r.Error,
		})
	}

	return report
}

// BuildPlanReport builds the dry-run JSON plan model.
func BuildPlanReport(input model.RenderPlanInput, generatedAt string) model.PlanReportJSON {
	report := model.PlanReportJSON{
		Version:     input.Version,
		Target:      input.Target,
		Host:        input.Host,
		Bucket:      input.Bucket,
		RemotePath:  input.RemotePath,
		DistDir:     input.DistDir,
		GeneratedAt: generatedAt,
		DryRun:      true,
	}
	for _, a := range input.Artifacts {
		report.Files = append(report.Files, model.FileReportJSON{
			Name:      a.Name,
			SizeBytes: a.Size,
			Digest:    a.Digest,
		})
	}
	return report
}

func printJSON(v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON output: %w", err)
	}
	fmt.Println(string(b))
	return nil
}
