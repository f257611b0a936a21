package imageimpl

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"time"

	"github.com/orgball2608/telegram-notify/internal/domain"
	apperrors "github.com/orgball2608/telegram-notify/pkg/errors"
)

const filePrefix = "telegram-image-"

var extPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,5}$`)

// Fetch downloads rawURL into a file named after the current time. The file is
// opened with O_EXCL so two runs landing on the same name fail instead of
// sharing a file.
func (im *ImageImpl) Fetch(ctx context.Context, rawURL string) (domain.StagedImage, error) {
	im.Logger.Info("Downloading image", "url", rawURL)

	resp, err := im.HTTP.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		Get(rawURL)
	if err != nil {
		return domain.StagedImage{}, apperrors.WrapWithCode(err, apperrors.CodeTransport, "failed to download image")
	}
	body := resp.RawBody()
	defer safeClose(body, im)

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return domain.StagedImage{}, apperrors.NewWithCode(
			apperrors.CodeTransport,
			fmt.Sprintf("failed to download image: %s returned %s", rawURL, resp.Status()),
		)
	}

	name := filepath.Join(im.TempDir, stagedName(time.Now(), rawURL))
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return domain.StagedImage{}, apperrors.WrapWithCode(err, apperrors.CodeFilesystem, "failed to create image file")
	}

	staged := domain.StagedImage{Path: name}

	src := &bodyReader{r: body}
	n, err := io.Copy(f, src)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	staged.Size = n
	if src.err != nil {
		return staged, apperrors.WrapWithCode(src.err, apperrors.CodeTransport, "failed to download image")
	}
	if err != nil {
		return staged, apperrors.WrapWithCode(err, apperrors.CodeFilesystem, "failed to write image file")
	}

	if n == 0 {
		return staged, apperrors.NewWithCode(apperrors.CodeTransport, "received empty image data from "+rawURL)
	}

	im.Logger.Info("Image downloaded", "path", name, "bytes", n)
	return staged, nil
}

// stagedName keeps the URL's extension when it looks like one, so the upload
// carries a sensible file name.
func stagedName(now time.Time, rawURL string) string {
	ext := ""
	if u, err := url.Parse(rawURL); err == nil {
		if e := path.Ext(u.Path); extPattern.MatchString(e) {
			ext = e
		}
	}
	return fmt.Sprintf("%s%d%s", filePrefix, now.UnixNano(), ext)
}

// bodyReader remembers the first read error so a dropped connection is not
// mistaken for a disk failure.
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF && b.err == nil {
		b.err = err
	}
	return n, err
}

func safeClose(closer io.Closer, im *ImageImpl) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil {
		im.Logger.Error("Error closing response body", "error", err)
	}
}
