package http

import (
	"encoding/json"
	"net/http"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/attendance"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type AttendanceHandler interface {
	// ClassifyClockIn receives the upstream insert webhook
	ClassifyClockIn(w http.ResponseWriter, r *http.Request)
	// DailyAttendance lists attendance grouped per day
	DailyAttendance(w http.ResponseWriter, r *http.Request)
	// Detail returns one record with its lateness verdict
	Detail(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// webhookEnvelope is the shape the upstream database event bridge posts:
// the inserted row sits under event.data.new.
type webhookEnvelope struct {
	Event struct {
		Data struct {
			New attendance.ClockInEvent `json:"new"`
		} `json:"data"`
	} `json:"event"`
}

// ClassifyClockIn handles POST /attendance-trigger
func (h *attendanceHandlerImpl) ClassifyClockIn(w http.ResponseWriter, r *http.Request) {
	var envelope webhookEnvelope
	if err := json.NewDecoder(r.Body).Decode(&envelope); err != nil {
		response.BadRequest(w, "Invalid webhook payload", nil)
		return
	}

	result, err := h.attendanceService.ClassifyClockIn(r.Context(), envelope.Event.Data.New)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance classified", result)
}

// Detail handles GET /attendance/{id}
func (h *attendanceHandlerImpl) Detail(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.AttendanceDetail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DailyAttendance handles GET /attendance/daily
func (h *attendanceHandlerImpl) DailyAttendance(w http.ResponseWriter, r *http.Request) {
	req := attendance.DailyAttendanceRequest{
		StartDate: r.URL.Query().Get("start_date"),
		EndDate:   r.URL.Query().Get("end_date"),
	}

	result, err := h.attendanceService.DailyAttendance(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
