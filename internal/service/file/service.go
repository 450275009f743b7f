package file

import (
	"bytes"
	"context"
	"fmt"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/report"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/storage"
)

// ReportFileService runs a finished report through a renderer and places
// the artifact in file storage.
type ReportFileService struct {
	storage  storage.FileStorage
	renderer report.Renderer
}

func NewReportFileService(fileStorage storage.FileStorage, renderer report.Renderer) *ReportFileService {
	return &ReportFileService{
		storage:  fileStorage,
		renderer: renderer,
	}
}

// Export renders the result and uploads it, returning the artifact URL.
func (s *ReportFileService) Export(ctx context.Context, result report.ReportResult) (string, error) {
	data, err := s.renderer.Render(result)
	if err != nil {
		return "", err
	}

	path := ArtifactPath(result, s.renderer.Extension())
	key, err := s.storage.Upload(ctx, bytes.NewReader(data), path, contentType(s.renderer.Extension()))
	if err != nil {
		return "", fmt.Errorf("failed to upload report artifact: %w", err)
	}

	url, err := s.storage.GetURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("failed to resolve report artifact url: %w", err)
	}

	return url, nil
}

// ArtifactPath names report artifacts so the key alone identifies what the
// file contains and which window it covers.
func ArtifactPath(result report.ReportResult, extension string) string {
	return fmt.Sprintf("reports/%s_%s_%s_%s_%s.%s",
		result.Type,
		result.Category,
		result.CategoryID,
		result.StartDate,
		result.EndDate,
		extension,
	)
}

func contentType(extension string) string {
	switch extension {
	case "csv":
		return "text/csv"
	default:
		return "application/octet-stream"
	}
}
