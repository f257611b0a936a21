package telegramimpl

import (
	"context"

	"github.com/orgball2608/telegram-notify/internal/domain"
	"github.com/orgball2608/telegram-notify/internal/telegram"
)

const (
	methodSendPhoto = "sendPhoto"
	photoField      = "photo"
)

// SendPhoto uploads the file at path as multipart form content.
func (tg *TelegramImpl) SendPhoto(ctx context.Context, dest telegram.Destination, path string) (*domain.DispatchResult, error) {
	tg.Logger.Info("Sending photo", "chatID", dest.ChatID, "path", path)

	resp, err := tg.HTTP.R().
		SetContext(ctx).
		SetFile(photoField, path).
		Post(tg.methodURL(dest.BotToken, methodSendPhoto) + "?" + encodeQuery([]queryParam{{"chat_id", dest.ChatID}}))

	return tg.handleResponse(methodSendPhoto, dest, resp, err)
}
