package report

import "errors"

var (
	// ErrInvalidDateRange is explicit at this layer: callers asking for a
	// reversed window get told, not an empty result.
	ErrInvalidDateRange = errors.New("start date must not be after end date")

	ErrUnsupportedReport = errors.New("unsupported report type or category combination")
)
