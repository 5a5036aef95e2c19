package logging

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestFromContext(t *testing.T) {
	if FromContext(context.Background()) == nil {
		t.Errorf("the default logger should be returned for an empty context")
	}
	logger := zap.NewNop().Sugar()
	ctx := WithLogger(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Errorf("logger from context, got: %p, expected: %p", got, logger)
	}
}

func TestLevelToZapLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zapcore.Level
	}{
		{name: "debug", level: "debug", expected: zapcore.DebugLevel},
		{name: "info", level: "INFO", expected: zapcore.InfoLevel},
		{name: "warning", level: " warning ", expected: zapcore.WarnLevel},
		{name: "error", level: "ERROR", expected: zapcore.ErrorLevel},
		{name: "unknown", level: "loud", expected: zapcore.WarnLevel},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := levelToZapLevel(test.level); got != test.expected {
				t.Errorf("levelToZapLevel, got: %v, expected: %v", got, test.expected)
			}
		})
	}
}
