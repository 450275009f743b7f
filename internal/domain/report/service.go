package report

import "context"

// ReportService generates category-scoped reports merging attendance,
// leave and visit data.
type ReportService interface {
	Generate(ctx context.Context, req ReportRequest) (ReportResult, error)
}

// Renderer turns a finished result into an exportable document. The engine
// supplies structured data only; markup is the renderer's business.
type Renderer interface {
	Render(result ReportResult) ([]byte, error)

	// Extension returns the file extension for artifacts, without the dot.
	Extension() string
}
