package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/orgball2608/telegram-notify/internal/actions"
	"github.com/orgball2608/telegram-notify/internal/actions/actionsimpl"
	"github.com/orgball2608/telegram-notify/internal/app"
	"github.com/orgball2608/telegram-notify/internal/relay"
	"github.com/orgball2608/telegram-notify/pkg/config"
	apperrors "github.com/orgball2608/telegram-notify/pkg/errors"
	"github.com/orgball2608/telegram-notify/pkg/logger"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// Set by ldflags.
var (
	version = "dev"
	commit  = "none"
)

var errStepFailed = errors.New("step failed")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := rootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	root := &cobra.Command{
		Use:           "telegram-notify",
		Short:         "Send a message and/or an image to a Telegram chat from a workflow step",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), cmd, envFile)
		},
	}
	root.Flags().StringVar(&envFile, "env-file", "", "read inputs from a .env file instead of the environment")
	root.AddCommand(versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "telegram-notify %s (commit: %s)\n", version, commit)
		},
	}
}

func run(ctx context.Context, cmd *cobra.Command, envFile string) error {
	out := cmd.OutOrStdout()

	// Used until the configured logger is built.
	boot := logger.New(logger.Opts{Writer: out})
	runner := actionsimpl.New(actionsimpl.Opts{Out: out, Logger: boot})

	cfg, err := config.New(config.Source{EnvFile: envFile})
	if err != nil {
		if !apperrors.IsMissingInput(err) {
			boot.Error("Failed to load configuration", "error", err)
		}
		runner.LogEvent()
		runner.SetFailed(err.Error())
		return errStepFailed
	}
	runner.Mask(cfg.Inputs.BotToken)

	if cfg.App.Version == "" || cfg.App.Version == "dev" {
		cfg.App.Version = version
	}

	var (
		log     logger.Logger
		relayer relay.Client
	)
	fxApp := fx.New(
		fx.WithLogger(func(appLog logger.Logger) fxevent.Logger {
			l := &fxevent.SlogLogger{Logger: appLog.Slog()}
			l.UseLogLevel(slog.LevelDebug)
			return l
		}),
		fx.Supply(cfg, logger.Output{Writer: out}),
		fx.Provide(func() actions.Runner { return runner }),
		app.Module,
		fx.Populate(&log, &relayer),
	)

	if err := fxApp.Start(ctx); err != nil {
		boot.Error("Failed to start application", "error", err)
		runner.SetFailed(err.Error())
		return errStepFailed
	}
	runner.SetLogger(log)

	runner.LogEvent()

	report := relayer.Run(ctx, relay.NewInvocation(cfg))
	for _, step := range report.Steps {
		log.Debug("Step finished", "step", step.Step, "status", step.Status.String())
	}

	if err := fxApp.Stop(ctx); err != nil {
		log.Error("Failed to stop application", "error", err)
	}

	if runner.Failed() {
		return errStepFailed
	}
	return nil
}
