package timeutil

import (
	"errors"
	"fmt"
	"iter"
	"time"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04:05"
)

var (
	ErrInvalidDateFormat = errors.New("incorrect date format, should be YYYY-MM-DD")
	ErrInvalidTimeFormat = errors.New("incorrect time format, should be HH:MM:SS")
)

// fallbackCheckout is substituted when a clock-out precedes its clock-in
// (missed clock-out or a shift that crossed midnight). Legacy behavior
// carried over as-is; pending product clarification.
var fallbackCheckout = time.Date(0, time.January, 1, 15, 0, 0, 0, time.UTC)

// ParseClock parses a time-of-day string in HH:MM:SS.
func ParseClock(value string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, value)
	}
	return t, nil
}

// onReferenceDate projects the time-of-day of t onto a common reference
// date so two wall-clock values can be compared regardless of origin day.
func onReferenceDate(t time.Time) time.Time {
	return time.Date(0, time.January, 1, t.Hour(), t.Minute(), t.Second(), 0, time.UTC)
}

// IsLate reports whether clockIn falls strictly after workStart plus the
// grace interval. Only the time-of-day of both arguments is considered.
func IsLate(clockIn, workStart time.Time, grace time.Duration) bool {
	in := onReferenceDate(clockIn)
	limit := onReferenceDate(workStart).Add(grace)
	return in.After(limit)
}

// IsLateClock is IsLate for HH:MM:SS encoded values, as delivered by the
// attendance webhook and the company settings table.
func IsLateClock(clockIn, workStart string, grace time.Duration) (bool, error) {
	in, err := ParseClock(clockIn)
	if err != nil {
		return false, err
	}
	start, err := ParseClock(workStart)
	if err != nil {
		return false, err
	}
	return IsLate(in, start, grace), nil
}

// TimeInBuilding returns how long an employee stayed on premises, or nil
// when clockOut is absent (still in the building). A clock-out strictly
// earlier than the clock-in computes against the 15:00:00 fallback
// checkout; identical stamps carry no usable duration and yield nil.
func TimeInBuilding(clockIn time.Time, clockOut *time.Time) *time.Duration {
	if clockOut == nil {
		return nil
	}

	in := onReferenceDate(clockIn)
	out := onReferenceDate(*clockOut)

	var d time.Duration
	switch {
	case out.After(in):
		d = out.Sub(in)
	case out.Before(in):
		d = fallbackCheckout.Sub(in)
	default:
		return nil
	}
	return &d
}

// EnforceDate parses a calendar date in YYYY-MM-DD.
func EnforceDate(value string) (time.Time, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, value)
	}
	return t, nil
}

// Day truncates t to midnight UTC, the canonical day key used by every
// day-bucketed aggregation.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DateRange yields every calendar day from start to end inclusive, in
// ascending order. The sequence is pure and restartable; start after end
// yields nothing.
func DateRange(start, end time.Time) iter.Seq[time.Time] {
	first := Day(start)
	last := Day(end)
	return func(yield func(time.Time) bool) {
		for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// DateRangeStrings is DateRange over YYYY-MM-DD encoded bounds.
func DateRangeStrings(start, end string) (iter.Seq[time.Time], error) {
	from, err := EnforceDate(start)
	if err != nil {
		return nil, err
	}
	to, err := EnforceDate(end)
	if err != nil {
		return nil, err
	}
	return DateRange(from, to), nil
}

// ISOWeekday normalizes time.Weekday so Monday=0 .. Sunday=6.
func ISOWeekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
