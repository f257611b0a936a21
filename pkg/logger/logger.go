package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"
	slogmulti "github.com/samber/slog-multi"
	slogsentry "github.com/samber/slog-sentry/v2"
	slogzerolog "github.com/samber/slog-zerolog/v2"
)

// Logger is the key/value logger handed to every component.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	Slog() *slog.Logger
}

type Opts struct {
	Env   string
	Level string
	// Writer defaults to stdout, which the workflow runner captures into the job log.
	Writer io.Writer
	// Sentry adds a handler forwarding error records to an initialised sentry hub.
	Sentry bool
}

type Impl struct {
	*slog.Logger
}

var _ Logger = (*Impl)(nil)

func New(opts Opts) *Impl {
	w := opts.Writer
	if w == nil {
		w = os.Stdout
	}

	level := parseLevel(opts.Level)

	zl := zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    true,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()

	handlers := []slog.Handler{
		slogzerolog.Option{Level: level, Logger: &zl}.NewZerologHandler(),
	}
	if opts.Sentry {
		handlers = append(handlers, slogsentry.Option{Level: slog.LevelError, AddSource: true}.NewSentryHandler())
	}

	log := slog.New(slogmulti.Fanout(handlers...))
	if opts.Env != "" {
		log = log.With("env", opts.Env)
	}

	return &Impl{Logger: log}
}

// NewNop returns a logger that drops everything.
func NewNop() *Impl {
	return New(Opts{Writer: io.Discard, Level: "error"})
}

func (l *Impl) With(args ...any) Logger {
	return &Impl{Logger: l.Logger.With(args...)}
}

func (l *Impl) Slog() *slog.Logger {
	return l.Logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
