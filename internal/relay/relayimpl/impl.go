package relayimpl

import (
	"github.com/orgball2608/telegram-notify/internal/actions"
	"github.com/orgball2608/telegram-notify/internal/image"
	"github.com/orgball2608/telegram-notify/internal/relay"
	"github.com/orgball2608/telegram-notify/internal/telegram"
	"github.com/orgball2608/telegram-notify/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Telegram telegram.Client
	Image    image.Client
	Runner   actions.Runner
	Logger   logger.Logger
}

type RelayImpl struct {
	Telegram telegram.Client
	Image    image.Client
	Runner   actions.Runner
	Logger   logger.Logger
}

func New(opts Opts) *RelayImpl {
	return &RelayImpl{
		Telegram: opts.Telegram,
		Image:    opts.Image,
		Runner:   opts.Runner,
		Logger:   opts.Logger,
	}
}

var _ relay.Client = (*RelayImpl)(nil)
