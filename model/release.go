package model

import "time"

// Upload targets accepted by the --target flag.
const (
	TargetSFTP = "sftp"
	TargetS3   = "s3"
)

// Upload statuses recorded per artifact.
const (
	StatusUploaded = "UPLOADED"
	StatusSkipped  = "SKIPPED"
	StatusFailed   = "FAILED"
)

// Artifact is a single regular file found in the distribution directory.
type Artifact struct {
	Name   string
	Path   string
	Size   int64
	Digest string
}

// ArtifactResult records the outcome of uploading one artifact.
type ArtifactResult struct {
	Name     string
	Size     int64
	Digest   string
	Status   string
	Duration time.Duration
	Error    string
}

// RenderPlanInput carries everything needed to render a dry-run upload plan.
type RenderPlanInput struct {
	Version    string
	Target     string
	Host       string
	Bucket     string
	RemotePath string
	DistDir    string
	Artifacts  []Artifact
}

// RenderReportInput carries the outcome of a completed publish.
type RenderReportInput struct {
	Version    string
	Target     string
	Host       string
	Bucket     string
	RemotePath string
	DistDir    string
	DirCreated bool
	Duration   time.Duration
	Results    []ArtifactResult
}

// TotalBytes sums the sizes of all uploaded artifacts.
func (in RenderReportInput) TotalBytes() int64 {
	var total int64
	for _, r := range in.Results {
		if r.Status == StatusUploaded {
			total += r.Size
		}
	}
	return total
}

// PublishReportJSON is the machine-readable publish report.
type PublishReportJSON struct {
	Version     string             `json:"version"`
	Target      string             `json:"target"`
	Host        string             `json:"host,omitempty"`
	Bucket      string             `json:"bucket,omitempty"`
	RemotePath  string             `json:"remote_path"`
	DistDir     string             `json:"dist_dir"`
	GeneratedAt string             `json:"generated_at"`
	DirCreated  bool               `json:"dir_created"`
	DurationMS  int64              `json:"duration_ms"`
	Summary     PublishSummaryJSON `json:"summary"`
	Files       []FileReportJSON   `json:"files"`
}

// PublishSummaryJSON aggregates per-file outcomes.
type PublishSummaryJSON struct {
	FileCount  int   `json:"file_count"`
	Uploaded   int   `json:"uploaded"`
	Failed     int   `json:"failed"`
	TotalBytes int64 `json:"total_bytes"`
}

// FileReportJSON describes one uploaded file in the JSON report.
type FileReportJSON struct {
	Name       string `json:"name"`
	SizeBytes  int64  `json:"size_bytes"`
	Digest     string `json:"digest,omitempty"`
	Status     string `json:"status"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

// PlanReportJSON is the machine-readable dry-run plan.
type PlanReportJSON struct {
	Version     string           `json:"version"`
	Target      string           `json:"target"`
	Host        string           `json:"host,omitempty"`
	Bucket      string           `json:"bucket,omitempty"`
	RemotePath  string           `json:"remote_path"`
	DistDir     string           `json:"dist_dir"`
	GeneratedAt string           `json:"generated_at"`
	DryRun      bool             `json:"dry_run"`
	Files       []FileReportJSON `json:"files"`
}
