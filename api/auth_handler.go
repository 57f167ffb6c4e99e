package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/yunuseyvz/portfolio-backend/errs"
)

const sessionLifetime = 24 * time.Hour

type loginRequest struct {
	Password string `json:"password"`
}

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	adminPassword string
	sessionSecret []byte
}

func newAuthHandler(adminPassword, sessionSecret string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		adminPassword: adminPassword,
		sessionSecret: []byte(sessionSecret),
	}
}

// login exchanges the admin password for a session token. The single-admin
// model needs no user table; the subject is fixed.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if h.adminPassword == "" {
			h.logger.Error().Msg("ADMIN_PASSWORD is not configured")
			h.responder.WriteError(w, errs.NewInternalError("login is not configured"))
			return
		}

		if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) != 1 {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		now := time.Now()
		claims := jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionLifetime)),
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.sessionSecret)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to sign session token")
			h.responder.WriteError(w, errs.NewInternalError("failed to create session"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     "auth_token",
			Value:    token,
			Path:     "/",
			Expires:  now.Add(sessionLifetime),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{"token": token})
	}
}
