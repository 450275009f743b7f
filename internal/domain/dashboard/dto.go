package dashboard

// WeekdayBucket is one of the seven fixed buckets of a weekly aggregation,
// Monday first. Every weekday is always emitted, zero-valued when no
// record fell on it.
type WeekdayBucket struct {
	Weekday string `json:"weekday"`
	Count   int    `json:"count"`
}

// AttendanceBucket carries the per-weekday attendance split.
type AttendanceBucket struct {
	Weekday string `json:"weekday"`
	Present int    `json:"present"`
	OnTime  int    `json:"on_time"`
	Late    int    `json:"late"`
}

// DayBucket is one day of a date-range aggregation; a window of n days
// always yields n buckets.
type DayBucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// WeeklyAttendanceResponse is the dashboard's weekly summary payload.
type WeeklyAttendanceResponse struct {
	WeekStart string             `json:"week_start"`
	Buckets   []AttendanceBucket `json:"buckets"`
}

// StatsResponse carries the company-wide headline numbers.
type StatsResponse struct {
	TotalEmployees       int     `json:"total_employees"`
	AttendancePercentage float64 `json:"attendance_percentage"`
	OnLeaveToday         int     `json:"on_leave_today"`
}
