package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/microservices/mro/pkg/logger"
)

//nolint:paralleltest
func TestHandler_AddsContextValues(t *testing.T) {
	r := require.New(t)

	defer slog.SetDefault(slog.Default())

	buf := new(bytes.Buffer)
	l := logger.NewWithWriter(buf, "debug")

	ctx := logger.SetRequestID(context.Background(), "req-1")
	ctx = logger.SetUserID(ctx, "user-1")
	ctx = logger.SetCompanyID(ctx, "company-1")

	l.With("component", "test").InfoContext(ctx, "hello")

	var record map[string]any

	r.NoError(json.Unmarshal(buf.Bytes(), &record))
	r.Equal("req-1", record["request_id"])
	r.Equal("user-1", record["user_id"])
	r.Equal("company-1", record["company_id"])
	r.Equal("test", record["component"])
	r.Equal("req-1", logger.RequestIDFromCtx(ctx))
}

//nolint:paralleltest
func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	defer slog.SetDefault(slog.Default())

	buf := new(bytes.Buffer)
	l := logger.NewWithWriter(buf, "verbose")

	l.Debug("hidden")
	require.Empty(t, buf.String())

	l.Info("shown")
	require.Contains(t, buf.String(), "shown")
}
