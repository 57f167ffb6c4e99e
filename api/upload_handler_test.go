package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yunuseyvz/portfolio-backend/services"
)

type fakeUploader struct {
	gotFilename string
	gotBody     string
	err         error
}

func (f *fakeUploader) Upload(ctx context.Context, filename string, body io.Reader) (*services.UploadResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, err
	}
	f.gotFilename = filename
	f.gotBody = string(data)
	return &services.UploadResult{
		URL:      "https://cdn.example/portfolio/" + filename,
		Pathname: "portfolio/" + filename,
	}, nil
}

func TestUpload(t *testing.T) {
	fake := &fakeUploader{}
	h := newUploadHandler(fake)

	req := httptest.NewRequest(http.MethodPost, "/api/upload?filename=shot.png", strings.NewReader("png-bytes"))
	w := httptest.NewRecorder()
	h.upload()(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "shot.png", fake.gotFilename)
	assert.Equal(t, "png-bytes", fake.gotBody)
	assert.Contains(t, w.Body.String(), "portfolio/shot.png")
}

func TestUploadMissingFilename(t *testing.T) {
	h := newUploadHandler(&fakeUploader{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload", strings.NewReader("png-bytes"))
	w := httptest.NewRecorder()
	h.upload()(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Filename is required", errorBody(t, w))
}

func TestUploadEmptyBody(t *testing.T) {
	h := newUploadHandler(&fakeUploader{})

	req := httptest.NewRequest(http.MethodPost, "/api/upload?filename=shot.png", nil)
	w := httptest.NewRecorder()
	h.upload()(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadStorageFailure(t *testing.T) {
	h := newUploadHandler(&fakeUploader{err: errors.New("bucket unreachable")})

	req := httptest.NewRequest(http.MethodPost, "/api/upload?filename=shot.png", strings.NewReader("png-bytes"))
	w := httptest.NewRecorder()
	h.upload()(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	require.Equal(t, "Error uploading file", errorBody(t, w))
}
