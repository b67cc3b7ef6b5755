package govhk

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/harborpark/transport/internal/logger"
)

// Client fetches government open-data resources with a bounded timeout.
// Every failure mode (network error, timeout, non-2xx, undecodable body)
// is reported as absence rather than an error: the caller's policy decides
// whether a missing source is fatal.
type Client struct {
	httpClient *http.Client
	log        logger.Logger
	timeout    time.Duration
}

// NewClient builds a fetcher whose requests are cancelled after timeout.
func NewClient(log logger.Logger, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
		timeout:    timeout,
	}
}

// FetchJSON retrieves url and decodes the body into out. Returns false
// when the source is absent for any reason; the cause is logged.
func (c *Client) FetchJSON(ctx context.Context, url string, out any) bool {
	body, ok := c.fetch(ctx, url)
	if !ok {
		return false
	}
	defer func() { _ = body.Close() }()

	if err := json.NewDecoder(body).Decode(out); err != nil {
		c.log.Error("undecodable JSON response",
			logger.String("url", url),
			logger.Error(err))
		return false
	}
	return true
}

// FetchText retrieves url as raw text (feeds the XML parser). Returns
// ("", false) when the source is absent.
func (c *Client) FetchText(ctx context.Context, url string) (string, bool) {
	body, ok := c.fetch(ctx, url)
	if !ok {
		return "", false
	}
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(body)
	if err != nil {
		c.log.Error("unreadable response body",
			logger.String("url", url),
			logger.Error(err))
		return "", false
	}
	return string(data), true
}

func (c *Client) fetch(ctx context.Context, url string) (io.ReadCloser, bool) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		cancel()
		c.log.Error("cannot build feed request",
			logger.String("url", url),
			logger.Error(err))
		return nil, false
	}
	req.Header.Set("Cache-Control", "no-store")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		cancel()
		c.log.Error("feed request failed",
			logger.String("url", url),
			logger.Error(err))
		return nil, false
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
		cancel()
		c.log.Error("feed returned non-2xx status",
			logger.String("url", url),
			logger.Int("status", resp.StatusCode))
		return nil, false
	}

	return &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}, true
}

// cancelOnClose ties the request context's lifetime to the body so the
// timeout keeps covering the body read.
type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelOnClose) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
