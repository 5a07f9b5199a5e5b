// Package rt fetches Rotten Tomatoes list pages and extracts their ranked movies.
package rt

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// FetchError is returned when a page can't be retrieved or parsed.
type FetchError struct {
	URL string
	// StatusCode is 0 if no response was received.
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("couldn't fetch %v: status code error: %d %v", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("couldn't fetch %v: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type ClientOptions struct {
	Timeout time.Duration
	// AcceptLanguage is sent with every request, so that titles don't depend on the country of the request's IP.
	AcceptLanguage string
	UserAgent      string
}

var DefaultClientOptions = ClientOptions{
	Timeout:        5 * time.Second,
	AcceptLanguage: "en-US",
}

type Client struct {
	httpClient *http.Client
	opts       ClientOptions
	logger     *zap.Logger
}

func NewClient(opts ClientOptions, logger *zap.Logger) *Client {
	if opts.Timeout == 0 {
		opts.Timeout = DefaultClientOptions.Timeout
	}
	if opts.AcceptLanguage == "" {
		opts.AcceptLanguage = DefaultClientOptions.AcceptLanguage
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		opts:   opts,
		logger: logger,
	}
}

// Fetch GETs the page at url and parses it into a document.
func (c *Client) Fetch(ctx context.Context, url string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	req.Header.Add("accept-language", c.opts.AcceptLanguage)
	if c.opts.UserAgent != "" {
		req.Header.Set("user-agent", c.opts.UserAgent)
	}

	c.logger.Debug("Fetching page", zap.String("url", url))
	start := time.Now()
	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: url, Err: err}
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: url, StatusCode: res.StatusCode}
	}

	// Load the HTML document
	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return nil, &FetchError{URL: url, Err: fmt.Errorf("couldn't parse HTML: %w", err)}
	}
	c.logger.Debug("Fetched page", zap.String("url", url), zap.Duration("duration", time.Since(start)))
	return doc, nil
}
