package output

import (
	"github.com/relware/distpub/model"
	jsonoutput "github.com/relware/distpub/shared/json_output"
	releasetable "github.com/relware/distpub/shared/release_table"
)

// Format represents the output format type.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// Renderer defines the interface for drawing reports.
type Renderer interface {
	DrawPlanTable(input model.RenderPlanInput)
	DrawReportTable(input model.RenderReportInput)
	OutputPlanJSON(input model.RenderPlanInput) error
	OutputPublishJSON(input model.RenderReportInput) error
}

type service struct {
	format   Format
	renderer Renderer
}

// Service is the interface for the output service.
type Service interface {
	RenderPlan(input model.RenderPlanInput) error
	RenderReport(input model.RenderReportInput) error
}

type realRenderer struct{}

func (r *realRenderer) DrawPlanTable(input model.RenderPlanInput) {
	releasetable.DrawPlanTable(input)
}

func (r *realRenderer) DrawReportTable(input model.RenderReportInput) {
	releasetable.DrawReportTable(input)
}

func (r *realRenderer) OutputPlanJSON(input model.RenderPlanInput) error {
	return jsonoutput.OutputPlanJSON(input)
}

func (r *realRenderer) OutputPublishJSON(input model.RenderReportInput) error {
	return jsonoutput.OutputPublishJSON(input)
}
