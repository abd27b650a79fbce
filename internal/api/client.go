package api

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"syscall"
	"time"

	"github.com/mobil-koeln/bart-cli/internal/cache"
	"github.com/mobil-koeln/bart-cli/internal/models"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 24 * time.Hour

	// maxErrorBody caps how much of a failed response is read for its message
	maxErrorBody = 64 << 10
)

// Cache interface for caching HTTP responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Client is the API client for api.bart.gov
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      Cache
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL points the client at another API host
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithAPIKey sets the API key sent with every request
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		if key != "" {
			c.apiKey = key
		}
	}
}

// WithCache enables caching with the provided cache implementation.
// Only slow-changing data (station list, fares) is cached.
func WithCache(cache Cache) ClientOption {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithDefaultCache enables caching with the default file cache
func WithDefaultCache() ClientOption {
	return func(c *Client) {
		fc, err := cache.NewFileCache(cache.DefaultCacheDir(), defaultCacheTTL)
		if err == nil {
			_, _ = fc.Cleanup()
			c.cache = fc
		}
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		baseURL: BaseURL,
		apiKey:  DefaultAPIKey,
	}

	for _, opt := range opts {
		opt(c)
	}

	if _, err := url.Parse(c.baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}

	return c, nil
}

// GetAdvisories fetches the current service advisories in the order the API lists them
func (c *Client) GetAdvisories(ctx context.Context) ([]models.Advisory, error) {
	params := url.Values{}
	params.Set("orig", "all")

	body, err := c.get(ctx, EndpointAdvisories, CmdAdvisories, params, false)
	if err != nil {
		return nil, err
	}

	var resp models.AdvisoriesResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse advisories response: %w", err)
	}
	if err := checkMessage(resp.Message, EndpointAdvisories); err != nil {
		return nil, err
	}

	return resp.ToAdvisories(), nil
}

// GetDepartures fetches real-time departure estimates for one station.
// A station with nothing scheduled yields a snapshot with no departures.
func (c *Client) GetDepartures(ctx context.Context, station string) (models.StationSnapshot, error) {
	station = strings.ToUpper(strings.TrimSpace(station))
	if err := validateStation("orig", station); err != nil {
		return models.StationSnapshot{}, err
	}

	params := url.Values{}
	params.Set("orig", station)

	body, err := c.get(ctx, EndpointEstimates, CmdEstimates, params, false)
	if err != nil {
		return models.StationSnapshot{}, err
	}

	var resp models.DeparturesResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return models.StationSnapshot{}, fmt.Errorf("failed to parse departures response: %w", err)
	}
	if err := checkMessage(resp.Message, EndpointEstimates); err != nil {
		return models.StationSnapshot{}, err
	}

	return resp.ToSnapshot(station), nil
}

// GetStations fetches the list of stations
func (c *Client) GetStations(ctx context.Context) ([]models.Station, error) {
	body, err := c.get(ctx, EndpointStations, CmdStations, url.Values{}, true)
	if err != nil {
		return nil, err
	}

	var resp models.StationsResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse stations response: %w", err)
	}
	if err := checkMessage(resp.Message, EndpointStations); err != nil {
		return nil, err
	}

	return resp.ToStations(), nil
}

// GetFare fetches the fares for a trip between two stations
func (c *Client) GetFare(ctx context.Context, orig, dest string) (*models.Fare, error) {
	orig = strings.ToUpper(strings.TrimSpace(orig))
	dest = strings.ToUpper(strings.TrimSpace(dest))
	if err := validateStation("orig", orig); err != nil {
		return nil, err
	}
	if err := validateStation("dest", dest); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("orig", orig)
	params.Set("dest", dest)

	body, err := c.get(ctx, EndpointSchedule, CmdFare, params, true)
	if err != nil {
		return nil, err
	}

	var resp models.FareResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse fare response: %w", err)
	}
	if err := checkMessage(resp.Message, EndpointSchedule); err != nil {
		return nil, err
	}

	return resp.ToFare(), nil
}

// StationsCacheAge reports how old the cached station list is, when the
// configured cache can tell.
func (c *Client) StationsCacheAge() (time.Duration, bool) {
	a, ok := c.cache.(interface {
		Age(key string) (time.Duration, bool)
	})
	if !ok {
		return 0, false
	}
	return a.Age(c.buildURL(EndpointStations, CmdStations, url.Values{}))
}

// buildURL assembles the request URL for a command
func (c *Client) buildURL(endpoint, cmd string, params url.Values) string {
	params.Set("cmd", cmd)
	params.Set("key", c.apiKey)
	return c.baseURL + endpoint + "?" + params.Encode()
}

// get builds the request URL for a command and performs it
func (c *Client) get(ctx context.Context, endpoint, cmd string, params url.Values, cacheable bool) ([]byte, error) {
	return c.doRequest(ctx, c.buildURL(endpoint, cmd, params), cacheable)
}

// doRequest performs an HTTP GET request with optional caching
func (c *Client) doRequest(ctx context.Context, reqURL string, cacheable bool) ([]byte, error) {
	// Check cache first
	if cacheable && c.cache != nil {
		if data, ok := c.cache.Get(reqURL); ok {
			return data, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "text/xml, application/xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, statusError(resp, extractEndpoint(reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, syscall.EINTR) {
			return nil, fmt.Errorf("%w: %w", ErrInterrupted, err)
		}
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if cacheable && c.cache != nil {
		_ = c.cache.Set(reqURL, body)
	}

	return body, nil
}

// statusError builds the error for a non-200 answer. The API often explains a
// failure with the same <message><error> payload it uses inside 200 responses.
func statusError(resp *http.Response, endpoint string) error {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err == nil {
		var payload struct {
			Message models.MessageResponse `xml:"message"`
		}
		if xml.Unmarshal(body, &payload) == nil {
			if text, details, failed := payload.Message.Failure(); failed {
				if details == "" {
					details = text
				}
				if details != "" {
					return NewAPIErrorWithMessage(resp.StatusCode, resp.Status, endpoint, details)
				}
			}
		}
	}
	return NewAPIError(resp.StatusCode, resp.Status, endpoint)
}

// classifyTransportError maps a failed round trip onto the package sentinels
func classifyTransportError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, syscall.EINTR):
		return fmt.Errorf("%w: %w", ErrInterrupted, err)
	case ctx.Err() != nil:
		return fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
	default:
		var netErr interface{ Timeout() bool }
		if errors.As(err, &netErr) && netErr.Timeout() {
			return fmt.Errorf("%w: %w", ErrTimeout, err)
		}
		return fmt.Errorf("%w: %w", ErrNoConnection, err)
	}
}

// checkMessage turns an error payload into a ServiceError
func checkMessage(msg models.MessageResponse, endpoint string) error {
	text, details, failed := msg.Failure()
	if !failed {
		return nil
	}
	return &ServiceError{Endpoint: endpoint, Text: text, Details: details}
}

// validateStation checks for a 4-character station abbreviation
func validateStation(field, code string) error {
	if code == "" {
		return ErrMissingField(field)
	}
	if len(code) != 4 {
		return ErrInvalidFormat(field, "4-character station abbreviation")
	}
	for _, r := range code {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return ErrInvalidFormat(field, "4-character station abbreviation")
		}
	}
	return nil
}

// extractEndpoint extracts the endpoint path from a full URL
func extractEndpoint(fullURL string) string {
	u, err := url.Parse(fullURL)
	if err != nil {
		return fullURL
	}
	return u.Path
}
