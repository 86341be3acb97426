package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
		{"warn at error level", log.ErrorLevel, func(l *log.Logger) { l.Warn("test") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("logged = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	ctx := withLogger(context.Background(), logger)
	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext did not return the attached logger")
	}
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("expected the default logger without one attached")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	p := newProgress(newLogger(&buf, log.DebugLevel))
	p.done("calculated", "rolls", 3)

	if !bytes.Contains(buf.Bytes(), []byte("calculated")) || !bytes.Contains(buf.Bytes(), []byte("elapsed")) {
		t.Errorf("unexpected progress output %q", buf.String())
	}
}
