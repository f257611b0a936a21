package telegram

import (
	"context"

	"github.com/orgball2608/telegram-notify/internal/domain"
)

// Destination addresses a chat, optionally narrowed to a forum topic.
type Destination struct {
	BotToken string
	ChatID   string
	TopicID  string
}

func DestinationOf(inv domain.Invocation) Destination {
	return Destination{
		BotToken: inv.BotToken,
		ChatID:   inv.ChatID,
		TopicID:  inv.TopicID,
	}
}

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	// SendPhoto uploads the file at path as a photo.
	SendPhoto(ctx context.Context, dest Destination, path string) (*domain.DispatchResult, error)

	// SendMessage posts text as a plain message.
	SendMessage(ctx context.Context, dest Destination, text string) (*domain.DispatchResult, error)
}
