package app

import (
	"github.com/orgball2608/telegram-notify/internal/image"
	"github.com/orgball2608/telegram-notify/internal/image/imageimpl"
	"github.com/orgball2608/telegram-notify/internal/relay"
	"github.com/orgball2608/telegram-notify/internal/relay/relayimpl"
	"github.com/orgball2608/telegram-notify/internal/telegram"
	"github.com/orgball2608/telegram-notify/internal/telegram/telegramimpl"
	"github.com/orgball2608/telegram-notify/pkg/logger"
	"go.uber.org/fx"
)

// Module expects *config.Config and actions.Runner to be supplied by the caller,
// since both exist before the container is built.
var Module = fx.Options(
	fx.Provide(
		logger.FxOption,
	),
	fx.Provide(
		fx.Annotate(
			telegramimpl.New,
			fx.As(new(telegram.Client)),
		),
		fx.Annotate(
			imageimpl.New,
			fx.As(new(image.Client)),
		),
		fx.Annotate(
			relayimpl.New,
			fx.As(new(relay.Client)),
		),
	),
)
