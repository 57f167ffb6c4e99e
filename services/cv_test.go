package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileReturnsPDF(t *testing.T) {
	pdf := []byte("%PDF-1.5 fake")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/pdf", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/pdf")
		w.Write(pdf)
	}))
	defer server.Close()

	c := NewCVCompiler(server.URL)
	got, err := c.Compile(context.Background())

	require.NoError(t, err)
	assert.Equal(t, pdf, got)
}

func TestCompileServiceFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "! LaTeX Error: something broke", http.StatusInternalServerError)
	}))
	defer server.Close()

	c := NewCVCompiler(server.URL)
	_, err := c.Compile(context.Background())

	require.Error(t, err)
	assert.NotContains(t, err.Error(), "LaTeX Error", "compile output must stay server-side")
}
