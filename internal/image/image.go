package image

import (
	"context"

	"github.com/orgball2608/telegram-notify/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=image.go -destination=mocks/mock.go
type Client interface {
	// Fetch downloads url into a new local file. When a file was created the
	// returned StagedImage names it, even if err is non-nil.
	Fetch(ctx context.Context, url string) (domain.StagedImage, error)

	// Remove deletes a staged file. It is a no-op when the file is gone.
	Remove(img domain.StagedImage) error
}
