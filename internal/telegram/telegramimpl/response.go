package telegramimpl

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/telegram-notify/internal/domain"
	"github.com/orgball2608/telegram-notify/internal/telegram"
	apperrors "github.com/orgball2608/telegram-notify/pkg/errors"
)

const redacted = "<redacted>"

func (tg *TelegramImpl) methodURL(token, method string) string {
	return fmt.Sprintf(tg.Endpoint, token, method)
}

// handleResponse turns a resty reply into a dispatch result. Only transport
// failures and non-2xx statuses are errors; an ok:false body is just logged.
func (tg *TelegramImpl) handleResponse(method string, dest telegram.Destination, resp *resty.Response, err error) (*domain.DispatchResult, error) {
	if err != nil {
		tg.Logger.Error("Telegram request failed", "method", method, "chatID", dest.ChatID, "error", redact(err.Error(), dest.BotToken))
		return nil, apperrors.WrapWithCode(
			redactError(err, dest.BotToken),
			apperrors.CodeTransport,
			fmt.Sprintf("telegram %s request failed", method),
		)
	}

	result := &domain.DispatchResult{
		Method:     method,
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
	}

	var apiResp tgbotapi.APIResponse
	if jsonErr := json.Unmarshal(result.Body, &apiResp); jsonErr == nil {
		result.OK = apiResp.Ok
		result.Description = apiResp.Description
	}

	tg.Logger.Info("Telegram response",
		"method", method,
		"status", result.StatusCode,
		"ok", result.OK,
		"body", redact(string(result.Body), dest.BotToken))

	if resp.IsError() || result.StatusCode < 200 || result.StatusCode > 299 {
		msg := fmt.Sprintf("telegram %s returned %s", method, resp.Status())
		if result.Description != "" {
			msg += ": " + result.Description
		}
		return result, apperrors.NewWithCode(apperrors.CodeTransport, redact(msg, dest.BotToken))
	}

	if !result.OK {
		tg.Logger.Warn("Telegram reported failure", "method", method, "description", result.Description)
	}

	return result, nil
}

// redactError hides the token, which is part of every request URL and so of
// most net/http error strings.
func redactError(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return &redactedError{msg: redact(err.Error(), token), err: err}
}

type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

func redact(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, redacted)
}
