package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/mushaf/internal/cache"
)

// DefaultBaseURL is the public alquran.cloud API.
const DefaultBaseURL = "https://api.alquran.cloud/v1"

// maxResponseBytes bounds a single API response. The largest surah with
// its ayahs is well under this.
const maxResponseBytes = 8 << 20

// Client talks to the alquran.cloud content API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      cache.Cache
	ttl        time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTimeout sets the per-call timeout of the underlying HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithCache stores successful responses in store for ttl.
func WithCache(store cache.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = store
		c.ttl = ttl
	}
}

// NewClient creates a client for the API rooted at baseURL (e.g. DefaultBaseURL).
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		cache:      cache.Nop{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListSurahs returns metadata for all surahs in API order.
func (c *Client) ListSurahs(ctx context.Context) ([]Surah, error) {
	var surahs []Surah
	if err := c.get(ctx, "/surah", &surahs); err != nil {
		return nil, fmt.Errorf("listing surahs: %w", err)
	}
	return surahs, nil
}

// GetSurah returns surah n with its ayahs in the default (Arabic) edition.
func (c *Client) GetSurah(ctx context.Context, n int) (*SurahDetail, error) {
	if !ValidSurahNumber(n) {
		return nil, fmt.Errorf("surah %d: %w", n, ErrInvalidSurahNumber)
	}
	var detail SurahDetail
	if err := c.get(ctx, fmt.Sprintf("/surah/%d", n), &detail); err != nil {
		return nil, fmt.Errorf("fetching surah %d: %w", n, err)
	}
	return &detail, nil
}

// GetEdition returns surah n as published in the given edition,
// such as a translation ("ar.muhammadagourelifet") or a recitation text.
func (c *Client) GetEdition(ctx context.Context, n int, edition string) (*SurahDetail, error) {
	if !ValidSurahNumber(n) {
		return nil, fmt.Errorf("surah %d: %w", n, ErrInvalidSurahNumber)
	}
	if edition == "" || strings.Contains(edition, "/") {
		return nil, fmt.Errorf("edition %q: %w", edition, ErrNotFound)
	}
	var detail SurahDetail
	path := fmt.Sprintf("/surah/%d/%s", n, url.PathEscape(edition))
	if err := c.get(ctx, path, &detail); err != nil {
		return nil, fmt.Errorf("fetching surah %d edition %s: %w", n, edition, err)
	}
	return &detail, nil
}

// get fetches path, decodes the envelope's data into out and caches the raw body.
func (c *Client) get(ctx context.Context, path string, out any) error {
	if body, ok := c.cached(ctx, path); ok {
		if err := decodeData(body, out); err == nil {
			return nil
		}
		log.Warn().Str("path", path).Msg("quran: discarding undecodable cache entry")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("quran api request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("reading quran api response: %w", err)
	}

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, ErrNotFound)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{StatusCode: resp.StatusCode, Status: http.StatusText(resp.StatusCode), Path: path}
	}

	if err := decodeData(body, out); err != nil {
		return err
	}

	if err := c.cache.Set(ctx, path, body, c.ttl); err != nil {
		log.Warn().Err(err).Str("path", path).Str("cache", c.cache.Name()).Msg("quran: cache write failed")
	}
	return nil
}

func (c *Client) cached(ctx context.Context, path string) ([]byte, bool) {
	body, ok, err := c.cache.Get(ctx, path)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Str("cache", c.cache.Name()).Msg("quran: cache read failed")
		return nil, false
	}
	if ok {
		log.Debug().Str("path", path).Msg("quran: cache hit")
	}
	return body, ok
}

// decodeData unmarshals the envelope and checks its embedded status code.
// The API sometimes reports errors with HTTP 200 and a non-200 code field.
func decodeData(body []byte, out any) error {
	var head envelope[json.RawMessage]
	if err := json.Unmarshal(body, &head); err != nil {
		return fmt.Errorf("decoding quran api response: %w", err)
	}
	switch {
	case head.Code == http.StatusNotFound:
		return ErrNotFound
	case head.Code != 0 && head.Code != http.StatusOK:
		return &APIError{StatusCode: head.Code, Status: head.Status}
	}
	if err := json.Unmarshal(head.Data, out); err != nil {
		return fmt.Errorf("decoding quran api data: %w", err)
	}
	return nil
}
