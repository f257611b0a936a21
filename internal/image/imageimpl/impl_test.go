package imageimpl

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/orgball2608/telegram-notify/internal/domain"
	"github.com/orgball2608/telegram-notify/pkg/config"
	apperrors "github.com/orgball2608/telegram-notify/pkg/errors"
	"github.com/orgball2608/telegram-notify/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var imageBytes = []byte("\xff\xd8\xff\xe0 not really a jpeg")

func newTestImage(t *testing.T) (*ImageImpl, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := &config.Config{}
	cfg.Runner.TempDir = dir

	return New(Opts{Config: cfg, Logger: logger.NewNop()}), dir
}

func imageServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/a.jpg", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "image/jpeg")
		_, _ = w.Write(imageBytes)
	})
	mux.HandleFunc("/empty.png", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/redirect", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/a.jpg", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFetch(t *testing.T) {
	im, dir := newTestImage(t)
	srv := imageServer(t)

	staged, err := im.Fetch(context.Background(), srv.URL+"/a.jpg")
	require.NoError(t, err)
	require.True(t, staged.Staged())

	assert.Equal(t, dir, filepath.Dir(staged.Path))
	assert.True(t, strings.HasPrefix(filepath.Base(staged.Path), filePrefix))
	assert.Equal(t, ".jpg", filepath.Ext(staged.Path))
	assert.Equal(t, int64(len(imageBytes)), staged.Size)

	got, err := os.ReadFile(staged.Path)
	require.NoError(t, err)
	assert.Equal(t, imageBytes, got)

	require.NoError(t, im.Remove(staged))
	assert.Empty(t, dirEntries(t, dir))
}

func TestFetch_FollowsRedirects(t *testing.T) {
	im, _ := newTestImage(t)
	srv := imageServer(t)

	staged, err := im.Fetch(context.Background(), srv.URL+"/redirect")
	require.NoError(t, err)
	t.Cleanup(func() { _ = im.Remove(staged) })

	got, err := os.ReadFile(staged.Path)
	require.NoError(t, err)
	assert.Equal(t, imageBytes, got)
}

func TestFetch_UniqueNames(t *testing.T) {
	im, dir := newTestImage(t)
	srv := imageServer(t)

	first, err := im.Fetch(context.Background(), srv.URL+"/a.jpg")
	require.NoError(t, err)
	second, err := im.Fetch(context.Background(), srv.URL+"/a.jpg")
	require.NoError(t, err)

	assert.NotEqual(t, first.Path, second.Path)
	assert.Len(t, dirEntries(t, dir), 2)
}

func TestFetch_NotFound(t *testing.T) {
	im, dir := newTestImage(t)
	srv := imageServer(t)

	staged, err := im.Fetch(context.Background(), srv.URL+"/missing.jpg")
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
	assert.Contains(t, err.Error(), "404")
	assert.False(t, staged.Staged())
	assert.Empty(t, dirEntries(t, dir))
}

func TestFetch_UnreachableHost(t *testing.T) {
	im, dir := newTestImage(t)
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL + "/a.jpg"
	srv.Close()

	staged, err := im.Fetch(context.Background(), url)
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err))
	assert.False(t, staged.Staged())
	assert.Empty(t, dirEntries(t, dir))
}

func TestFetch_BodyStallsPastDeadline(t *testing.T) {
	im, dir := newTestImage(t)

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "1024")
		_, _ = w.Write(imageBytes)
		w.(http.Flusher).Flush()
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	staged, err := im.Fetch(ctx, srv.URL+"/slow.jpg")
	require.Error(t, err)
	assert.True(t, apperrors.IsTransport(err), "got %v", err)
	assert.False(t, apperrors.IsFilesystem(err))
	assert.Equal(t, apperrors.CodeTransport, apperrors.GetCode(err))

	require.True(t, staged.Staged())
	require.NoError(t, im.Remove(staged))
	assert.Empty(t, dirEntries(t, dir))
}

func TestFetch_EmptyBodyLeavesFileForCaller(t *testing.T) {
	im, dir := newTestImage(t)
	srv := imageServer(t)

	staged, err := im.Fetch(context.Background(), srv.URL+"/empty.png")
	require.Error(t, err)
	require.True(t, staged.Staged())
	assert.Len(t, dirEntries(t, dir), 1)

	require.NoError(t, im.Remove(staged))
	assert.Empty(t, dirEntries(t, dir))
}

func TestFetch_TempDirMissing(t *testing.T) {
	im, dir := newTestImage(t)
	im.TempDir = filepath.Join(dir, "does-not-exist")
	srv := imageServer(t)

	staged, err := im.Fetch(context.Background(), srv.URL+"/a.jpg")
	require.Error(t, err)
	assert.True(t, apperrors.IsFilesystem(err))
	assert.False(t, staged.Staged())
}

func TestRemove_Idempotent(t *testing.T) {
	im, dir := newTestImage(t)

	path := filepath.Join(dir, "telegram-image-1.jpg")
	require.NoError(t, os.WriteFile(path, imageBytes, 0o600))
	staged := domain.StagedImage{Path: path}

	require.NoError(t, im.Remove(staged))
	require.NoError(t, im.Remove(staged))
	require.NoError(t, im.Remove(domain.StagedImage{}))
	assert.Empty(t, dirEntries(t, dir))
}

func TestStagedName(t *testing.T) {
	now := time.Unix(1700000000, 123)

	tests := []struct {
		url  string
		want string
	}{
		{"https://example.com/a.jpg", "telegram-image-1700000000000000123.jpg"},
		{"https://example.com/path/photo.PNG?size=large", "telegram-image-1700000000000000123.PNG"},
		{"https://example.com/render", "telegram-image-1700000000000000123"},
		{"https://example.com/file.tar.gz-with-junk", "telegram-image-1700000000000000123"},
		{"://bad url", "telegram-image-1700000000000000123"},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, stagedName(now, tt.url))
		})
	}
}
