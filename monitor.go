package mongokit

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/event"
)

// commandMonitor adapts a slog logger to the driver's command events.
// Start/success are logged at debug level, failures at error level.
func commandMonitor(log *slog.Logger) *event.CommandMonitor {
	return &event.CommandMonitor{
		Started: func(_ context.Context, evt *event.CommandStartedEvent) {
			log.Debug("mongo command started",
				slog.String("command", evt.CommandName),
				slog.String("database", evt.DatabaseName),
				slog.Int64("request_id", evt.RequestID),
			)
		},
		Succeeded: func(_ context.Context, evt *event.CommandSucceededEvent) {
			log.Debug("mongo command succeeded",
				slog.String("command", evt.CommandName),
				slog.Int64("request_id", evt.RequestID),
				slog.Duration("duration", evt.Duration),
			)
		},
		Failed: func(_ context.Context, evt *event.CommandFailedEvent) {
			log.Error("mongo command failed",
				slog.String("command", evt.CommandName),
				slog.Int64("request_id", evt.RequestID),
				slog.Duration("duration", evt.Duration),
				slog.Any("error", evt.Failure),
			)
		},
	}
}
