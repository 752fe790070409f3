package logging

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

type logDataContextKey struct{}

// GetLogData returns the request's LogData, or nil when the request did not
// pass through Middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataContextKey{}).(*LogData)
	return logData
}

// Middleware attaches a fresh LogData to every request context and emits one
// summary line per request once the operation completes.
func Middleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(logger)
		endTimer := logData.AddTiming("durationMs")

		next(huma.WithValue(ctx, logDataContextKey{}, logData))

		endTimer()
		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
