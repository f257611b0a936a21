package logger

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/orgball2608/telegram-notify/pkg/config"
	"go.uber.org/fx"
)

const sentryFlushTimeout = 2 * time.Second

// Output redirects the configured logger. Without it logs go to stdout.
type Output struct {
	io.Writer
}

type FxOpts struct {
	fx.In
	Lifecycle fx.Lifecycle
	Config    *config.Config
	Output    Output `optional:"true"`
}

var FxOption = fx.Annotate(
	func(p FxOpts) (*Impl, error) {
		cfg := p.Config
		opts := Opts{
			Env:    cfg.App.Env,
			Level:  cfg.App.LogLevel,
			Writer: p.Output.Writer,
		}

		if cfg.App.SentryDSN != "" {
			err := sentry.Init(sentry.ClientOptions{
				Dsn:         cfg.App.SentryDSN,
				Environment: cfg.App.Env,
				Release:     cfg.App.Version,
			})
			if err != nil {
				return nil, fmt.Errorf("failed to init sentry: %w", err)
			}
			opts.Sentry = true

			p.Lifecycle.Append(fx.Hook{
				OnStop: func(context.Context) error {
					sentry.Flush(sentryFlushTimeout)
					return nil
				},
			})
		}

		return New(opts), nil
	},
	fx.As(new(Logger)),
)
