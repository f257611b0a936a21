package imageimpl

import (
	"github.com/go-resty/resty/v2"
	"github.com/orgball2608/telegram-notify/internal/image"
	"github.com/orgball2608/telegram-notify/pkg/config"
	"github.com/orgball2608/telegram-notify/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type ImageImpl struct {
	HTTP    *resty.Client
	Logger  logger.Logger
	TempDir string
}

func New(opts Opts) *ImageImpl {
	client := resty.New()
	if opts.Config.HTTP.Timeout > 0 {
		client.SetTimeout(opts.Config.HTTP.Timeout)
	}

	return &ImageImpl{
		HTTP:    client,
		Logger:  opts.Logger,
		TempDir: opts.Config.Runner.TempDir,
	}
}

var _ image.Client = (*ImageImpl)(nil)
