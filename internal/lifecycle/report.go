package lifecycle

import (
	"context"
	"fmt"

	"github.com/colonyops/probar/internal/printer"
	"github.com/colonyops/probar/internal/store/csvfile"
)

// Report regenerates the Markdown report paired with the CSV at path and
// optionally renders it in the terminal.
func (s *Service) Report(ctx context.Context, path string, preview bool) error {
	ctx = withWorkflow(ctx, "report", path)
	p := printer.Ctx(ctx)

	cases, ok, err := s.load(ctx, path)
	if err != nil || !ok {
		return s.settle(ctx, err)
	}

	mdPath := csvfile.ReportPath(path)
	if err := s.repo.RenderReport(mdPath, cases, csvfile.BaseName(path)); err != nil {
		return s.settle(ctx, fmt.Errorf("save report: %w", err))
	}
	p.Success("Informe generado", mdPath)

	if preview {
		s.showReport(ctx, mdPath)
	}
	return nil
}
