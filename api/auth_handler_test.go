package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doLogin(t *testing.T, h authHandler, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]string{"password": password})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	h.login()(w, req)
	return w
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	h := newAuthHandler("hunter2", testSecret)

	w := doLogin(t, h, "hunter2")

	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body["token"])

	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(body["token"], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, "admin", claims.Subject)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "auth_token", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginWrongPassword(t *testing.T) {
	h := newAuthHandler("hunter2", testSecret)

	w := doLogin(t, h, "hunter3")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestLoginUnconfigured(t *testing.T) {
	h := newAuthHandler("", testSecret)

	w := doLogin(t, h, "")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
