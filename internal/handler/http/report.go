package http

import (
	"net/http"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/employee"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/report"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/handler/http/response"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/service/file"
)

type ReportHandler interface {
	// Generate builds a report and returns it as JSON
	Generate(w http.ResponseWriter, r *http.Request)
	// Export builds a report and stores it as a CSV artifact
	Export(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	fileService   *file.ReportFileService
}

func NewReportHandler(reportService report.ReportService, fileService *file.ReportFileService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		fileService:   fileService,
	}
}

func reportRequestFromQuery(r *http.Request) report.ReportRequest {
	q := r.URL.Query()
	return report.ReportRequest{
		Type:       report.ReportType(q.Get("report_type")),
		Category:   employee.Category(q.Get("category")),
		CategoryID: q.Get("category_id"),
		StartDate:  q.Get("start_date"),
		EndDate:    q.Get("end_date"),
	}
}

// Generate handles GET /reports
func (h *reportHandlerImpl) Generate(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Generate(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Export handles GET /reports/export
func (h *reportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.Generate(r.Context(), reportRequestFromQuery(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	url, err := h.fileService.Export(r.Context(), result)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]any{
		"report_id": result.ReportID,
		"url":       url,
		"summary":   result.Summary,
	})
}
