package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// allProjectsPattern matches the frontend's catch-all detail route, used when
// no id/slug hint narrows the invalidation down to specific pages.
const allProjectsPattern = "/projects/[slug]"

// RevalidationHints narrows an invalidation to specific detail pages. With
// neither hint set, the wildcard covering every detail page is used. Both id
// and slug paths are sent when both hints are present, since the detail
// route accepts either identifier form.
type RevalidationHints struct {
	ID   *int64
	Slug string
}

func (h RevalidationHints) paths() []string {
	paths := []string{"/projects"}
	if h.ID != nil {
		paths = append(paths, fmt.Sprintf("/projects/%d", *h.ID))
	}
	if h.Slug != "" {
		paths = append(paths, "/projects/"+h.Slug)
	}
	if h.ID == nil && h.Slug == "" {
		paths = append(paths, allProjectsPattern)
	}
	return paths
}

// Revalidator asks the static-page regeneration endpoint to mark cached
// pages stale after a write. Calls are best-effort: a failed or slow
// revalidation is logged and never fails the write that triggered it.
type Revalidator struct {
	endpoint string
	secret   string
	client   *http.Client
	logger   zerolog.Logger
}

func NewRevalidator(endpoint, secret string) *Revalidator {
	return &Revalidator{
		endpoint: endpoint,
		secret:   secret,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   log.With().Str("service", "revalidator").Logger(),
	}
}

// Invalidate marks the listing page plus the hinted detail pages stale.
// Errors are swallowed after logging.
func (r *Revalidator) Invalidate(ctx context.Context, hints RevalidationHints) {
	if r.endpoint == "" {
		r.logger.Debug().Msg("no revalidation endpoint configured, skipping")
		return
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, path := range hints.paths() {
		g.Go(func() error {
			if err := r.revalidatePath(ctx, path); err != nil {
				r.logger.Error().Err(err).Str("path", path).Msg("revalidation failed")
			}
			return nil
		})
	}
	_ = g.Wait()
}

func (r *Revalidator) revalidatePath(ctx context.Context, path string) error {
	body, err := json.Marshal(map[string]string{"path": path})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if r.secret != "" {
		req.Header.Set("X-Revalidate-Secret", r.secret)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revalidation endpoint returned status %d", resp.StatusCode)
	}

	r.logger.Info().Str("path", path).Msg("revalidated")
	return nil
}
