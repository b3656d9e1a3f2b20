package services

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lezzetkesif/lezzetkesif/pkg"
	"github.com/lezzetkesif/lezzetkesif/pkg/storage"
)

// pngHeader, http.DetectContentType'ın image/png tanıması için yeterli imza.
var pngHeader = []byte("\x89PNG\x0D\x0A\x1A\x0A" + strings.Repeat("\x00", 32))

func TestUploadImage(t *testing.T) {
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, "/uploads")
	require.NoError(t, err)
	svc := NewUploadService(store, 1024)
	ctx := context.Background()

	url, err := svc.UploadImage(ctx, "kapak.PNG", int64(len(pngHeader)), bytes.NewReader(pngHeader))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, strings.TrimPrefix(url, "/uploads/")))
	require.NoError(t, err)
	assert.Equal(t, pngHeader, data)
}

func TestUploadImageRejects(t *testing.T) {
	store, err := storage.NewLocalStorage(t.TempDir(), "/uploads")
	require.NoError(t, err)
	svc := NewUploadService(store, 64)
	ctx := context.Background()

	text := []byte("just some plain text, definitely not an image")
	_, err = svc.UploadImage(ctx, "a.png", int64(len(text)), bytes.NewReader(text))
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	_, err = svc.UploadImage(ctx, "a.png", 65, bytes.NewReader(make([]byte, 65)))
	assert.ErrorIs(t, err, pkg.ErrBadRequest)

	_, err = svc.UploadImage(ctx, "a.png", 0, bytes.NewReader(nil))
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}
