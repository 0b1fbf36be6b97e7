package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Payload is the JSON body accepted by chat webhooks.
type Payload struct {
	Content string `json:"content"`
}

type Broadcaster struct {
	HTTPClient *http.Client
	Logger     *zap.Logger
	// Concurrency bounds the number of requests in flight. Zero means one at a time.
	Concurrency int
}

// Send posts compose(url) to every non-blank url and returns how many were accepted. Failed deliveries are
// logged and skipped.
func (b *Broadcaster) Send(ctx context.Context, urls []string, compose func(url string) string) int {
	logger := b.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := b.Concurrency
	if limit <= 0 {
		limit = 1
	}

	var sent atomic.Int64
	var g errgroup.Group
	g.SetLimit(limit)
	for _, url := range urls {
		url = strings.TrimSpace(url)
		if url == "" {
			continue
		}
		g.Go(func() error {
			if err := b.post(ctx, url, Payload{Content: compose(url)}); err != nil {
				logger.Warn("failed to send to webhook", zap.String("url", url), zap.Error(err))
				return nil
			}
			sent.Add(1)
			return nil
		})
	}
	_ = g.Wait()
	return int(sent.Load())
}

func (b *Broadcaster) post(ctx context.Context, url string, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	httpClient := b.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook answered %s", resp.Status)
	}
	return nil
}
