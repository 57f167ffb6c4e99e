package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeMailer struct {
	gotName    string
	gotEmail   string
	gotMessage string
	err        error
}

func (f *fakeMailer) SendContactMessage(ctx context.Context, name, email, message string) error {
	if f.err != nil {
		return f.err
	}
	f.gotName = name
	f.gotEmail = email
	f.gotMessage = message
	return nil
}

func postContact(t *testing.T, h contactHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	w := httptest.NewRecorder()
	h.submit()(w, req)
	return w
}

func TestSubmitContactMessage(t *testing.T) {
	fake := &fakeMailer{}
	h := newContactHandler(fake)

	w := postContact(t, h, `{"name": "Ada", "email": "ada@example.com", "message": "Hello!"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success": true}`, w.Body.String())
	assert.Equal(t, "Ada", fake.gotName)
	assert.Equal(t, "ada@example.com", fake.gotEmail)
	assert.Equal(t, "Hello!", fake.gotMessage)
}

func TestSubmitContactMessageMissingFields(t *testing.T) {
	fake := &fakeMailer{}
	h := newContactHandler(fake)

	for _, body := range []string{
		`{"email": "ada@example.com", "message": "Hello!"}`,
		`{"name": "Ada", "message": "Hello!"}`,
		`{"name": "Ada", "email": "ada@example.com"}`,
		`{"name": "  ", "email": "ada@example.com", "message": "Hello!"}`,
	} {
		w := postContact(t, h, body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
	}
	assert.Empty(t, fake.gotName, "nothing should be relayed for rejected payloads")
}

func TestSubmitContactMessageMalformedBody(t *testing.T) {
	w := postContact(t, newContactHandler(&fakeMailer{}), `{"name":`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubmitContactMessageMailerFailure(t *testing.T) {
	h := newContactHandler(&fakeMailer{err: errors.New("provider down")})

	w := postContact(t, h, `{"name": "Ada", "email": "ada@example.com", "message": "Hello!"}`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to send message", errorBody(t, w))
}
