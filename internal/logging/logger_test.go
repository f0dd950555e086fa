package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

func TestBootstrapLevelAndFormat(t *testing.T) {
	Bootstrap("debug", "json")
	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", Log.GetLevel())
	}
	if _, ok := Log.Formatter.(*logrus.JSONFormatter); !ok {
		t.Fatalf("expected json formatter, got %T", Log.Formatter)
	}

	Bootstrap("nonsense", "")
	if Log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected info fallback, got %s", Log.GetLevel())
	}
}

func TestWithContextAddsRequestID(t *testing.T) {
	Bootstrap("info", "json")
	var buf bytes.Buffer
	Log.SetOutput(&buf)

	ctx := context.WithValue(context.Background(), middleware.RequestIDKey, "req-42")
	WithContext(ctx).Info("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if line["request_id"] != "req-42" {
		t.Fatalf("expected request id, got %v", line)
	}
}
