package visit

import (
	"context"
	"time"
)

type VisitRepository interface {
	// FetchRange retrieves visits dated within [start, end] matching the
	// host filter, joined with visitor names, ordered by date.
	FetchRange(ctx context.Context, start, end time.Time, filter HostFilter) ([]Visit, error)
}
