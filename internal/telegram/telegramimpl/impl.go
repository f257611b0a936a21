package telegramimpl

import (
	"github.com/go-resty/resty/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/telegram-notify/internal/telegram"
	"github.com/orgball2608/telegram-notify/pkg/config"
	"github.com/orgball2608/telegram-notify/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	HTTP     *resty.Client
	Logger   logger.Logger
	Endpoint string
}

func New(opts Opts) *TelegramImpl {
	client := resty.New()
	if opts.Config.HTTP.Timeout > 0 {
		client.SetTimeout(opts.Config.HTTP.Timeout)
	}

	endpoint := opts.Config.Telegram.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}

	return &TelegramImpl{
		HTTP:     client,
		Logger:   opts.Logger,
		Endpoint: endpoint,
	}
}

var _ telegram.Client = (*TelegramImpl)(nil)
