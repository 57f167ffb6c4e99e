package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CVCompiler fetches a compiled CV PDF from an external LaTeX compile
// service (e.g. latexonline.cc pointed at the CV sources repository).
type CVCompiler struct {
	compileURL string
	client     *http.Client
	logger     zerolog.Logger
}

func NewCVCompiler(compileURL string) *CVCompiler {
	return &CVCompiler{
		compileURL: compileURL,
		client:     &http.Client{Timeout: 60 * time.Second},
		logger:     log.With().Str("service", "cvCompiler").Logger(),
	}
}

// Compile requests a fresh PDF build and returns its bytes. Compile-service
// error output is logged server-side but not returned verbatim to callers.
func (c *CVCompiler) Compile(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.compileURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/pdf")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("requesting CV compilation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Error().
			Int("status", resp.StatusCode).
			Str("detail", string(detail)).
			Msg("LaTeX compilation failed")
		return nil, fmt.Errorf("LaTeX compilation failed with status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
