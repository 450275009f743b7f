package file

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/report"
)

// CSVRenderer flattens a report result into a comma-separated document,
// one header row then one row per record.
type CSVRenderer struct{}

func NewCSVRenderer() report.Renderer {
	return &CSVRenderer{}
}

// Extension implements report.Renderer.
func (c *CSVRenderer) Extension() string {
	return "csv"
}

// Render implements report.Renderer.
func (c *CSVRenderer) Render(result report.ReportResult) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var err error
	switch result.Type {
	case report.TypeVisits:
		err = renderVisits(w, result.Rows.Visits)
	case report.TypeAttendance:
		err = renderAttendance(w, result.Rows.Attendance)
	case report.TypeLeaves:
		err = renderLeaves(w, result.Rows.Leaves)
	default:
		return nil, report.ErrUnsupportedReport
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s report: %w", result.Type, err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

func renderVisits(w *csv.Writer, rows []report.VisitRow) error {
	if err := w.Write([]string{"Visitor Name", "Date", "Check In", "Check Out", "Reason", "Status"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.VisitorName,
			row.Date,
			deref(row.CheckIn),
			deref(row.CheckOut),
			deref(row.Reason),
			row.Status,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func renderAttendance(w *csv.Writer, rows []report.AttendanceRow) error {
	if err := w.Write([]string{"Employee", "Date", "Status", "Clock In", "Clock Out", "Late", "Hours Worked"}); err != nil {
		return err
	}
	for _, row := range rows {
		hours := ""
		if row.HoursWorked != nil {
			hours = strconv.FormatFloat(*row.HoursWorked, 'f', 2, 64)
		}
		record := []string{
			row.EmployeeName,
			row.Date,
			row.Status,
			deref(row.ClockIn),
			deref(row.ClockOut),
			strconv.FormatBool(row.IsLate),
			hours,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func renderLeaves(w *csv.Writer, rows []report.LeaveRow) error {
	if err := w.Write([]string{"Employee", "Start Date", "End Date", "Duration (days)", "Reason"}); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.EmployeeName,
			row.StartDate,
			row.EndDate,
			strconv.Itoa(row.DurationDays),
			deref(row.Reason),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
