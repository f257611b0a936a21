package relayimpl

import (
	"context"

	"github.com/orgball2608/telegram-notify/internal/domain"
	"github.com/orgball2608/telegram-notify/internal/telegram"
	apperrors "github.com/orgball2608/telegram-notify/pkg/errors"
)

func (r *RelayImpl) Run(ctx context.Context, inv domain.Invocation) (report domain.Report) {
	var staged domain.StagedImage
	defer func() {
		report.Add(r.cleanup(staged))
	}()

	dest := telegram.DestinationOf(inv)

	if inv.HasImage() {
		var res domain.StepResult
		staged, res = r.retrieve(ctx, inv.ImageURL)
		report.Add(res)

		if res.OK() {
			report.Add(r.sendPhoto(ctx, dest, staged))
		} else {
			report.Add(domain.Skipped(domain.StepSendPhoto))
		}
	}

	if inv.HasMessage() {
		report.Add(r.sendMessage(ctx, dest, inv.MessageText))
	}

	if !inv.HasImage() && !inv.HasMessage() {
		r.Logger.Warn("Neither message nor imageUrl set, nothing to send")
	}

	return report
}

func (r *RelayImpl) retrieve(ctx context.Context, url string) (domain.StagedImage, domain.StepResult) {
	staged, err := r.Image.Fetch(ctx, url)
	if err != nil {
		return staged, r.fail(domain.StepRetrieveImage, err)
	}
	return staged, domain.Succeeded(domain.StepRetrieveImage)
}

func (r *RelayImpl) sendPhoto(ctx context.Context, dest telegram.Destination, staged domain.StagedImage) domain.StepResult {
	res, err := r.Telegram.SendPhoto(ctx, dest, staged.Path)
	if err != nil {
		failed := r.fail(domain.StepSendPhoto, err)
		failed.Dispatch = res
		return failed
	}

	ok := domain.Succeeded(domain.StepSendPhoto)
	ok.Dispatch = res
	return ok
}

func (r *RelayImpl) sendMessage(ctx context.Context, dest telegram.Destination, text string) domain.StepResult {
	res, err := r.Telegram.SendMessage(ctx, dest, text)
	if err != nil {
		failed := r.fail(domain.StepSendMessage, err)
		failed.Dispatch = res
		return failed
	}

	ok := domain.Succeeded(domain.StepSendMessage)
	ok.Dispatch = res
	return ok
}

func (r *RelayImpl) cleanup(staged domain.StagedImage) domain.StepResult {
	if !staged.Staged() {
		return domain.Skipped(domain.StepCleanup)
	}
	if err := r.Image.Remove(staged); err != nil {
		return r.fail(domain.StepCleanup, err)
	}
	return domain.Succeeded(domain.StepCleanup)
}

// fail reports err to the runner straight away and records it.
func (r *RelayImpl) fail(step domain.Step, err error) domain.StepResult {
	r.Logger.Error("Step failed", "step", step, "code", apperrors.GetCode(err), "error", err)
	r.Runner.SetFailed(err.Error())
	return domain.Failed(step, err)
}
