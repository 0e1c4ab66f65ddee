// Package output provides a service for rendering results to the console.
package output

import (
	"github.com/relware/distpub/model"
)

// NewService creates a new output service with the specified format.
func NewService(format string) Service {
	f := FormatTable
	if format == "json" {
		f = FormatJSON
	}

	return &service{
		format:   f,
		renderer: &realRenderer{},
	}
}

func (s *service) RenderPlan(input model.RenderPlanInput) error {
	if s.format == FormatJSON {
		return s.renderer.OutputPlanJSON(input)
	}
	s.renderer.DrawPlanTable(input)
	return nil
}

func (s *service) RenderReport(input model.RenderReportInput) error {
	if s.format == FormatJSON {
		return s.renderer.OutputPublishJSON(input)
	}
	s.renderer.DrawReportTable(input)
	return nil
}
