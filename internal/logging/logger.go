package logging

import (
	"context"
	"os"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Bootstrap configures the shared logger. Unknown levels fall back to info.
func Bootstrap(level, format string) {
	Log = &logrus.Logger{
		Out:          os.Stdout,
		Hooks:        make(logrus.LevelHooks),
		Formatter:    formatter(format),
		ReportCaller: false,
		Level:        logrus.InfoLevel,
		ExitFunc:     os.Exit,
	}
	if lvl, err := logrus.ParseLevel(level); err == nil {
		Log.SetLevel(lvl)
	}
}

func formatter(format string) logrus.Formatter {
	if strings.EqualFold(format, "json") {
		return &logrus.JSONFormatter{}
	}
	return &logrus.TextFormatter{FullTimestamp: true}
}

// WithContext returns an entry tagged with the request id carried by ctx, if any.
func WithContext(ctx context.Context) *logrus.Entry {
	entry := logrus.NewEntry(Log)
	if ctx == nil {
		return entry
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
