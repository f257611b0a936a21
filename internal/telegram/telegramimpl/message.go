package telegramimpl

import (
	"context"
	"net/url"
	"strings"

	"github.com/orgball2608/telegram-notify/internal/domain"
	"github.com/orgball2608/telegram-notify/internal/telegram"
)

const methodSendMessage = "sendMessage"

// SendMessage posts text to the destination chat with a GET request. A blank
// topic id leaves message_thread_id out; anything else is forwarded as is.
func (tg *TelegramImpl) SendMessage(ctx context.Context, dest telegram.Destination, text string) (*domain.DispatchResult, error) {
	query := []queryParam{
		{"chat_id", dest.ChatID},
		{"text", text},
	}
	if dest.TopicID != "" {
		query = append(query, queryParam{"message_thread_id", dest.TopicID})
	}

	tg.Logger.Info("Sending message", "chatID", dest.ChatID, "topicID", dest.TopicID, "length", len(text))

	resp, err := tg.HTTP.R().
		SetContext(ctx).
		Get(tg.methodURL(dest.BotToken, methodSendMessage) + "?" + encodeQuery(query))

	return tg.handleResponse(methodSendMessage, dest, resp, err)
}

type queryParam struct {
	key   string
	value string
}

// encodeQuery keeps parameter order and encodes spaces as %20.
func encodeQuery(params []queryParam) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, escape(p.key)+"="+escape(p.value))
	}
	return strings.Join(parts, "&")
}

// escape percent-encodes s for a query component. QueryEscape turns a literal
// '+' into %2B, so every remaining '+' stands for a space.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
