package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	apperrors "github.com/orgball2608/telegram-notify/pkg/errors"
)

// Config is read from the environment. Action inputs arrive as INPUT_<NAME>
// variables set by the workflow runner.
type Config struct {
	App struct {
		Env       string `env:"APP_ENV" env-default:"production"`
		LogLevel  string `env:"LOG_LEVEL" env-default:"info"`
		SentryDSN string `env:"SENTRY_DSN"`
		Version   string `env:"APP_VERSION" env-default:"dev"`
	}
	Inputs struct {
		BotToken string `env:"INPUT_TELEGRAM_BOT_TOKEN" env-description:"telegram_bot_token"`
		ChatID   string `env:"INPUT_TELEGRAM_CHAT_ID" env-description:"telegram_chat_id"`
		TopicID  string `env:"INPUT_TELEGRAM_TOPIC_ID" env-description:"telegram_topic_id"`
		Message  string `env:"INPUT_MESSAGE" env-description:"message"`
		ImageURL string `env:"INPUT_IMAGEURL" env-description:"imageUrl"`
	}
	Telegram struct {
		// APIEndpoint is a Printf format taking the bot token and the method name.
		APIEndpoint string `env:"TELEGRAM_API_ENDPOINT"`
	}
	HTTP struct {
		Timeout time.Duration `env:"HTTP_TIMEOUT" env-default:"0s"`
	}
	Runner struct {
		TempDir string `env:"RUNNER_TEMP"`
	}
}

// Source tells New where to look besides the process environment.
type Source struct {
	// EnvFile is an optional dotenv file, used for local runs.
	EnvFile string
}

// New reads and validates the configuration.
func New(src Source) (*Config, error) {
	cfg := &Config{}

	var err error
	if src.EnvFile != "" {
		err = cleanenv.ReadConfig(src.EnvFile, cfg)
	} else {
		err = cleanenv.ReadEnv(cfg)
	}
	if err != nil {
		help, _ := cleanenv.GetDescription(cfg, nil)
		return nil, fmt.Errorf("failed to read configuration: %w\n%s", err, help)
	}

	cfg.trim()

	if cfg.Runner.TempDir == "" {
		cfg.Runner.TempDir = os.TempDir()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the inputs the step cannot run without. Formats are not
// checked; Telegram rejects malformed values itself.
func (c *Config) Validate() error {
	var missing []string
	if c.Inputs.BotToken == "" {
		missing = append(missing, "telegram_bot_token")
	}
	if c.Inputs.ChatID == "" {
		missing = append(missing, "telegram_chat_id")
	}
	if len(missing) == 0 {
		return nil
	}

	return apperrors.NewWithCode(
		apperrors.CodeMissingInput,
		"Input required and not supplied: "+strings.Join(missing, ", "),
	)
}

// trim mirrors the runner toolkit, which strips surrounding whitespace from inputs.
func (c *Config) trim() {
	for _, s := range []*string{
		&c.Inputs.BotToken,
		&c.Inputs.ChatID,
		&c.Inputs.TopicID,
		&c.Inputs.Message,
		&c.Inputs.ImageURL,
	} {
		*s = strings.TrimSpace(*s)
	}
}
