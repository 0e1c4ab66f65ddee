// Package releasetable renders publish plans, reports and history as tables.
package releasetable

import (
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/relware/distpub/model"
	"github.com/relware/distpub/service/storage"
)

// DrawPlanTable prints the dry-run upload plan.
func DrawPlanTable(input model.RenderPlanInput) {
	fmt.Printf("\nUpload plan for %s -> %s\n", input.Version, destination(input.Target, input.Host, input.Bucket, input.RemotePath))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "Size", "Digest"})
	var total int64
	for _, a := range input.Artifacts {
		t.AppendRow(table.Row{a.Name, formatBytes(a.Size), shortDigest(a.Digest)})
		total += a.Size
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d files", len(input.Artifacts)), formatBytes(total), ""})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawReportTable prints the outcome of a completed publish.
func DrawReportTable(input model.RenderReportInput) {
	fmt.Printf("\nPublished %s -> %s\n", input.Version, destination(input.Target, input.Host, input.Bucket, input.RemotePath))
	if input.Target != model.TargetS3 {
		if input.DirCreated {
			fmt.Println("Remote directory created")
		} else {
			fmt.Println("Remote directory exists, reusing")
		}
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "Size", "Status", "Time"})
	for _, r := range input.Results {
		status := r.Status
		if r.Error != "" {
			status = fmt.Sprintf("%s (%s)", r.Status, r.Error)
		}
		t.AppendRow(table.Row{r.Name, formatBytes(r.Size), status, r.Duration.Round(time.Millisecond).String()})
	}
	t.AppendFooter(table.Row{
		fmt.Sprintf("%d files", len(input.Results)),
		formatBytes(input.TotalBytes()),
		"",
		input.Duration.Round(time.Millisecond).String(),
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawHistoryTable prints recent releases from the history database.
func DrawHistoryTable(releases []storage.ReleaseSummary) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Published", "Version", "Target", "Destination", "Files", "Size", "Status"})
	for _, r := range releases {
		t.AppendRow(table.Row{
			r.ReleaseID,
			r.PublishedAt.Format("2006-01-02 15:04:05"),
			r.Version,
			r.Target,
			r.RemotePath,
			r.FileCount,
			formatBytes(r.TotalBytes),
			r.Status,
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawFilesTable prints per-file records of a stored release.
func DrawFilesTable(files []storage.FileRecord) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"File", "Size", "Digest", "Status"})
	for _, f := range files {
		t.AppendRow(table.Row{f.Name, formatBytes(f.SizeBytes), shortDigest(f.Digest), f.Status})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

func destination(target, host, bucket, remotePath string) string {
	if target == model.TargetS3 {
		return fmt.Sprintf("s3://%s/%s", bucket, remotePath)
	}
	return fmt.Sprintf("%s:%s", host, remotePath)
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
