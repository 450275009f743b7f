package notification

import (
	"context"
	"log/slog"

	"github.com/Ntchinda-Giscard/vvims-backend/internal/domain/notification"
)

// LogSink records notification payloads on the application log. Actual
// delivery channels plug in behind the same interface.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) notification.Sink {
	return &LogSink{logger: logger}
}

// Notify implements notification.Sink.
func (s *LogSink) Notify(ctx context.Context, payload notification.Payload) error {
	s.logger.InfoContext(ctx, "notification emitted",
		slog.String("actor_id", payload.ActorID),
		slog.String("category", payload.Category),
		slog.String("reference_id", payload.ReferenceID),
		slog.String("message", payload.Message),
	)
	return nil
}
