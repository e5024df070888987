package logger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wepin/wepin-common-go/internal/logger"
	"github.com/wepin/wepin-common-go/pkg/sdkurl"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetup(t *testing.T) {
	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		t.Run(env, func(t *testing.T) {
			require.NoError(t, logger.Setup(env))
			assert.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("command", "urls"))
	logger.Debug(ctx, "debug")
	logger.Info(ctx, "info")
	logger.Warn(ctx, "warn")
	logger.Error(ctx, "error")

	entries := logs.All()
	require.Len(t, entries, 4)
	for _, e := range entries {
		assert.Equal(t, "urls", e.ContextMap()["command"])
	}
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
}

func TestSugarFeedsResolver(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	var l sdkurl.Logger = logger.Sugar(ctx)
	r, err := sdkurl.NewResolver(sdkurl.WithLogger(l))
	require.NoError(t, err)

	_, err = r.Resolve("nope")
	require.Error(t, err)
	require.Equal(t, 1, logs.FilterMessageSnippet("rejected app key").Len())
}

func TestSetDefault(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger.SetDefault(zap.New(core))
	logger.SetDefault(nil)

	logger.Info(context.Background(), "hello")
	assert.Equal(t, 1, logs.Len())
}
