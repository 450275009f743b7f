package http

import (
	"net/http"
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/dashboard"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/handler/http/response"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/timeutil"
)

type DashboardHandler interface {
	// WeeklyAttendance returns the weekday-bucketed attendance summary
	WeeklyAttendance(w http.ResponseWriter, r *http.Request)
	// Stats returns the company-wide headline numbers
	Stats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: dashboardService}
}

// WeeklyAttendance handles GET /dashboard/weekly-attendance
func (h *dashboardHandlerImpl) WeeklyAttendance(w http.ResponseWriter, r *http.Request) {
	// week defaults to the current one
	weekStart := time.Now().UTC()
	if raw := r.URL.Query().Get("week_start"); raw != "" {
		parsed, err := timeutil.EnforceDate(raw)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		weekStart = parsed
	}

	result, err := h.dashboardService.WeeklyAttendanceSummary(r.Context(), weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Stats handles GET /dashboard/stats
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
