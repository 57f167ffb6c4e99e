package api

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yunuseyvz/portfolio-backend/errs"
)

type visitorCounter interface {
	Hit(ctx context.Context) (int64, error)
}

type visitorHandler struct {
	responder Responder
	logger    zerolog.Logger
	visitors  visitorCounter
}

func newVisitorHandler(visitors visitorCounter) visitorHandler {
	logger := log.With().Str("handlerName", "visitorHandler").Logger()

	return visitorHandler{
		responder: NewResponder(logger),
		logger:    logger,
		visitors:  visitors,
	}
}

// hit bumps the visitor counter and returns the new total.
func (h visitorHandler) hit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := h.visitors.Hit(r.Context())
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to update visitor count")
			h.responder.WriteError(w, errs.NewInternalError("Failed to update visitor count"))
			return
		}

		h.responder.WriteJSON(w, map[string]int64{"count": count})
	}
}
