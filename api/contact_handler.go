package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yunuseyvz/portfolio-backend/errs"
)

type mailer interface {
	SendContactMessage(ctx context.Context, name, email, message string) error
}

type contactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

type contactHandler struct {
	responder Responder
	logger    zerolog.Logger
	mailer    mailer
}

func newContactHandler(mailer mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder: NewResponder(logger),
		logger:    logger,
		mailer:    mailer,
	}
}

// submit relays a contact-form message to the site owner's inbox.
func (h contactHandler) submit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var msg contactMessage
		if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if strings.TrimSpace(msg.Name) == "" || strings.TrimSpace(msg.Email) == "" || strings.TrimSpace(msg.Message) == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("name, email and message are required"))
			return
		}

		if err := h.mailer.SendContactMessage(r.Context(), msg.Name, msg.Email, msg.Message); err != nil {
			h.logger.Error().Err(err).Msg("failed to relay contact message")
			h.responder.WriteError(w, errs.NewInternalError("Failed to send message"))
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"success": true})
	}
}
