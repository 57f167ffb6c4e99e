package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yunuseyvz/portfolio-backend/errs"
)

type cvCompiler interface {
	Compile(ctx context.Context) ([]byte, error)
}

type cvHandler struct {
	responder Responder
	logger    zerolog.Logger
	compiler  cvCompiler
}

func newCVHandler(compiler cvCompiler) cvHandler {
	logger := log.With().Str("handlerName", "cvHandler").Logger()

	return cvHandler{
		responder: NewResponder(logger),
		logger:    logger,
		compiler:  compiler,
	}
}

// generateCV proxies the LaTeX compile service and streams the PDF back as a
// download. Compile errors stay in the server log.
func (h cvHandler) generateCV() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pdf, err := h.compiler.Compile(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("CV compilation failed")
			h.responder.WriteError(w, errs.NewInternalError("Failed to compile CV"))
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="cv.pdf"`)
		if _, err := w.Write(pdf); err != nil {
			h.logger.Error().Err(err).Msg("error writing PDF response")
		}
	}
}
