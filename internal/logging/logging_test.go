package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type LoggingUnitSuite struct {
	suite.Suite
}

func (s *LoggingUnitSuite) TestParseLevel(t provider.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("WARN"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func (s *LoggingUnitSuite) TestNewHonoursFormatAndLevel(t provider.T) {
	var buf bytes.Buffer
	logger := New(&buf, "warn", "json")

	logger.Info("dropped")
	logger.Warn("kept", slog.Int64("film_id", 1))

	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"msg":"kept"`)
	assert.Contains(t, buf.String(), `"film_id":1`)

	buf.Reset()
	New(&buf, "info", "text").Info("plain")
	assert.Contains(t, buf.String(), "msg=plain")
}

func (s *LoggingUnitSuite) TestContextValues(t provider.T) {
	ctx := context.Background()
	assert.Same(t, slog.Default(), FromContext(ctx))
	assert.Empty(t, RequestIDFromContext(ctx))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	ctx = WithRequestID(WithLogger(ctx, logger), "req-1")

	assert.Same(t, logger, FromContext(ctx))
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestLoggingUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(LoggingUnitSuite))
}
