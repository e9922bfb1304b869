// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package export turns a presentation into downloadable PDF and PPTX
// files. Both exporters draw slides with the same layout rules the
// preview uses, so a download always matches what the user saw.
package export

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sethvargo/go-retry"
)

// ImageFetcher downloads slide imagery for embedding in exports.
type ImageFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Fetcher downloads images over HTTP with bounded retries. Transient
// failures are retried; a slide whose image cannot be fetched still
// exports, just without that picture.
type Fetcher struct {
	client  *http.Client
	retries uint64
}

// NewFetcher returns a Fetcher with sane timeouts for slide imagery.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:  &http.Client{Timeout: 15 * time.Second},
		retries: 2,
	}
}

// maxImageBytes caps a single downloaded image. Slide photos are a few
// hundred KB; anything bigger is a misbehaving upstream.
const maxImageBytes = 10 << 20

// Fetch downloads the image at url, retrying transient failures with
// fibonacci backoff.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	backoff := retry.WithMaxRetries(f.retries, retry.NewFibonacci(250*time.Millisecond))

	var body []byte
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}

		resp, err := f.client.Do(req)
		if err != nil {
			return retry.RetryableError(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests {
			return retry.RetryableError(fmt.Errorf("fetch %s: status %d", url, resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
		if err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}
