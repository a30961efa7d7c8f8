package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ssm-admin/ssm-api/internal/config"
)

func TestNewLogger_Level(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "DEBUG"}, config.AppConfig{Name: "ssm-api", Env: "production"})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))
}

func TestNewLogger_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger, err := NewLogger(config.LoggerConfig{Level: "loud"}, config.AppConfig{Env: "development"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, logger.Core().Enabled(zapcore.InfoLevel))
}
