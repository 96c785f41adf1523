// SPDX-License-Identifier: MIT

package remote

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/katalvlaran/crossgrid/ctxlog"
	"github.com/katalvlaran/crossgrid/progress"
)

// Default limits for HTTPFetcher.
const (
	DefaultMaxBytes  = 1 << 20
	DefaultChunkSize = 4096
	DefaultTimeout   = 30 * time.Second
)

// Fetcher retrieves the document at location.
type Fetcher interface {
	Fetch(ctx context.Context, location string, sink progress.Sink) ([]byte, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, location string, sink progress.Sink) ([]byte, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, location string, sink progress.Sink) ([]byte, error) {
	return f(ctx, location, sink)
}

// HTTPFetcher GETs a document in chunks, checking for cancellation between
// reads. The zero value uses http.DefaultClient and the default limits.
type HTTPFetcher struct {
	Client    *http.Client
	MaxBytes  int64
	ChunkSize int
}

// NewHTTPFetcher returns a fetcher with its own client and timeout.
func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	return &HTTPFetcher{Client: &http.Client{Timeout: timeout}, MaxBytes: maxBytes}
}

func (f *HTTPFetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

func (f *HTTPFetcher) limits() (maxBytes int64, chunk int) {
	maxBytes, chunk = f.MaxBytes, f.ChunkSize
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	return maxBytes, chunk
}

// Fetch implements Fetcher. Progress is the fraction of Content-Length
// read, or progress.Indeterminate when the length is unknown.
func (f *HTTPFetcher) Fetch(ctx context.Context, location string, sink progress.Sink) ([]byte, error) {
	sink = progress.OrNop(sink)
	logger := ctxlog.FromContext(ctx)
	maxBytes, chunk := f.limits()

	sink.SetLabel("Downloading solution", location)
	sink.SetProgress(progress.Indeterminate)
	if err := progress.Checkpoint(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("remote: creating request: %w", err)
	}
	logger.Debug("Fetching remote solution.", "url", location)
	resp, err := f.client().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, progress.ErrCancelled
		}
		return nil, fmt.Errorf("remote: fetching %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s from %s", ErrStatus, resp.Status, location)
	}
	if resp.ContentLength > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, resp.ContentLength)
	}

	var body bytes.Buffer
	buf := make([]byte, chunk)
	for {
		if err = progress.Checkpoint(ctx); err != nil {
			return nil, err
		}
		n, rerr := resp.Body.Read(buf)
		body.Write(buf[:n])
		if int64(body.Len()) > maxBytes {
			return nil, fmt.Errorf("%w: over %d bytes", ErrTooLarge, maxBytes)
		}
		if resp.ContentLength > 0 {
			sink.SetProgress(float64(body.Len()) / float64(resp.ContentLength))
		}
		if errors.Is(rerr, io.EOF) {
			break
		}
		if rerr != nil {
			if ctx.Err() != nil {
				return nil, progress.ErrCancelled
			}
			return nil, fmt.Errorf("remote: reading %s: %w", location, rerr)
		}
	}

	logger.Debug("Fetched remote solution.", "url", location, "bytes", body.Len())
	return body.Bytes(), nil
}
