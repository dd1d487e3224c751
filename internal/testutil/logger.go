package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
)

// NopLogger discards everything; sessions under test stay quiet
func NopLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

// CaptureLogger records JSON log lines at debug level into buf
func CaptureLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// Records decodes the lines written by a CaptureLogger
func Records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for _, line := range bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n")) {
		if len(line) == 0 {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal(line, &rec); err != nil {
			t.Fatalf("decoding log line %q: %v", line, err)
		}
		records = append(records, rec)
	}
	return records
}
