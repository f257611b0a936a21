package logger

import (
	"bytes"
	"testing"

	"github.com/orgball2608/telegram-notify/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestFxOption_WritesToSuppliedOutput(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.App.LogLevel = "warn"

	var buf bytes.Buffer
	var log Logger
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg, Output{Writer: &buf}),
		fx.Provide(FxOption),
		fx.Populate(&log),
	)
	app.RequireStart()
	defer app.RequireStop()

	log.Info("dropped")
	log.Warn("kept", "step", "send-message")

	out := buf.String()
	assert.NotContains(t, out, "dropped")
	assert.Contains(t, out, "kept")
	assert.Contains(t, out, "step=send-message")
	assert.Contains(t, out, "env=test")
}

func TestFxOption_OutputIsOptional(t *testing.T) {
	cfg := &config.Config{}

	var log Logger
	app := fxtest.New(t,
		fx.NopLogger,
		fx.Supply(cfg),
		fx.Provide(FxOption),
		fx.Populate(&log),
	)
	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, log)
}
