package relay

import (
	"context"

	"github.com/orgball2608/telegram-notify/internal/domain"
	"github.com/orgball2608/telegram-notify/pkg/config"
)

type Client interface {
	// Run performs one relay: optional image, optional message, then cleanup.
	// Failures are reported to the runner as they happen and collected in
	// the returned report.
	Run(ctx context.Context, inv domain.Invocation) domain.Report
}

// NewInvocation snapshots the inputs from cfg.
func NewInvocation(cfg *config.Config) domain.Invocation {
	return domain.Invocation{
		BotToken:    cfg.Inputs.BotToken,
		ChatID:      cfg.Inputs.ChatID,
		TopicID:     cfg.Inputs.TopicID,
		MessageText: cfg.Inputs.Message,
		ImageURL:    cfg.Inputs.ImageURL,
	}
}
