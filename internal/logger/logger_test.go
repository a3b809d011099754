package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siteintel/internal/logger"
)

func TestNewBuildsUsableLogger(t *testing.T) {
	l, err := logger.New(logger.Config{Level: "warn", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)

	enriched := l.With(logger.String("service", "test"))
	assert.NotSame(t, l, enriched)

	// must not panic at any level
	enriched.Debug("debug")
	enriched.Info("info")
	enriched.Warn("warn", logger.Int("n", 1))
	enriched.Error("error", logger.Error(errors.New("boom")))
}

func TestNopIsSilent(t *testing.T) {
	l := logger.NewNop()
	l.Info("ignored", logger.Bool("ok", true))
	assert.Equal(t, l, l.With(logger.String("k", "v")))
	assert.NoError(t, l.Sync())
}
