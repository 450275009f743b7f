package dashboard

import (
	"time"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/dashboard"
	"github.com/Ntchinda-Giscard/vvims-backend/internal/pkg/timeutil"
)

// GroupByWeekday buckets timestamps into the seven weekdays of the week
// starting at weekStart (normalized back to its Monday). All seven buckets
// are always present, Monday first; timestamps outside the week are
// ignored.
func GroupByWeekday(times []time.Time, weekStart time.Time) []dashboard.WeekdayBucket {
	start := timeutil.Day(weekStart).AddDate(0, 0, -timeutil.ISOWeekday(weekStart))
	end := start.AddDate(0, 0, 6)

	buckets := make([]dashboard.WeekdayBucket, 7)
	for i := range buckets {
		buckets[i].Weekday = weekdayNames[i]
	}

	for _, t := range times {
		day := timeutil.Day(t)
		if day.Before(start) || day.After(end) {
			continue
		}
		buckets[timeutil.ISOWeekday(day)].Count++
	}

	return buckets
}

// GroupByDay buckets timestamps per calendar day over [start, end]
// inclusive. A window of n days always yields n buckets, zero-valued when
// nothing fell on them.
func GroupByDay(times []time.Time, start, end time.Time) []dashboard.DayBucket {
	index := make(map[string]int)
	var buckets []dashboard.DayBucket
	for day := range timeutil.DateRange(start, end) {
		key := day.Format(timeutil.DateLayout)
		index[key] = len(buckets)
		buckets = append(buckets, dashboard.DayBucket{Date: key})
	}

	for _, t := range times {
		if i, ok := index[timeutil.Day(t).Format(timeutil.DateLayout)]; ok {
			buckets[i].Count++
		}
	}

	return buckets
}
