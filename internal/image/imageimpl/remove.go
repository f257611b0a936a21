package imageimpl

import (
	"errors"
	"io/fs"
	"os"

	"github.com/orgball2608/telegram-notify/internal/domain"
	apperrors "github.com/orgball2608/telegram-notify/pkg/errors"
)

// Remove deletes the staged file if it still exists.
func (im *ImageImpl) Remove(img domain.StagedImage) error {
	if !img.Staged() {
		return nil
	}

	if _, err := os.Stat(img.Path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	if err := os.Remove(img.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return apperrors.WrapWithCode(err, apperrors.CodeFilesystem, "failed to remove image file")
	}

	im.Logger.Debug("Removed staged image", "path", img.Path)
	return nil
}
