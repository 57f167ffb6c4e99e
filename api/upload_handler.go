package api

import (
	"context"
	"io"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yunuseyvz/portfolio-backend/errs"
	"github.com/yunuseyvz/portfolio-backend/services"
)

type uploader interface {
	Upload(ctx context.Context, filename string, body io.Reader) (*services.UploadResult, error)
}

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	uploader  uploader
}

func newUploadHandler(uploader uploader) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		uploader:  uploader,
	}
}

// upload streams the request body into blob storage. The body is the raw
// file, not multipart; the target name rides in the filename query param.
func (h uploadHandler) upload() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := r.URL.Query().Get("filename")
		if filename == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("Filename is required"))
			return
		}

		if r.Body == nil || r.ContentLength == 0 {
			h.responder.WriteError(w, errs.NewBadRequestError("Request body is required"))
			return
		}

		result, err := h.uploader.Upload(r.Context(), filename, r.Body)
		if err != nil {
			h.logger.Error().Err(err).Str("filename", filename).Msg("upload failed")
			h.responder.WriteError(w, errs.NewInternalError("Error uploading file"))
			return
		}

		h.logger.Info().
			Str("subject", ctxSessionSubject(r.Context())).
			Str("pathname", result.Pathname).
			Msg("file uploaded")

		h.responder.WriteJSON(w, result)
	}
}
