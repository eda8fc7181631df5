package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const defaultMaxRetries = 5

// Options configures a Client.
type Options struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	MaxRetries   int
	HTTPClient   *http.Client
	Logger       *zap.Logger
}

// Client is the retrying, token-managed Amadeus HTTP client. It is
// constructed once at startup and passed to every consumer; there is no
// package-level instance.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     *tokenManager
	maxRetries int
	logger     *zap.Logger

	sleep func(time.Duration)
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	maxRetries := opts.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    opts.BaseURL,
		httpClient: httpClient,
		tokens:     newTokenManager(opts.BaseURL, opts.ClientID, opts.ClientSecret, httpClient),
		maxRetries: maxRetries,
		logger:     logger,
		sleep:      time.Sleep,
	}
}

// Get issues a bearer-authenticated GET and decodes the JSON response
// into out. A 401 invalidates the cached token and retries after
// attempt*1s; any other failure retries after 2^(attempt-1)*1s. When
// the retry budget is spent the last status/body surface as an
// ExternalServiceError. Credential-exchange rejections surface as
// AuthenticationError without retrying.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	var lastStatus int
	var lastMessage string

	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return err
		}

		status, body, err := c.do(ctx, u, token)
		if err != nil {
			lastStatus = 0
			lastMessage = err.Error()
			if attempt < c.maxRetries {
				c.sleep(backoff(attempt))
			}
			continue
		}

		if status >= 200 && status < 300 {
			return json.Unmarshal(body, out)
		}

		// Raw error body is diagnostic only, never fatal.
		c.logger.Error("amadeus error response",
			zap.Int("status", status),
			zap.String("endpoint", endpoint),
			zap.ByteString("body", body),
		)
		lastStatus = status
		lastMessage = string(body)

		if status == http.StatusUnauthorized {
			c.tokens.Invalidate()
			if attempt < c.maxRetries {
				c.sleep(time.Duration(attempt) * time.Second)
			}
			continue
		}

		if attempt < c.maxRetries {
			c.sleep(backoff(attempt))
		}
	}

	return &ExternalServiceError{Status: lastStatus, Message: lastMessage}
}

func (c *Client) do(ctx context.Context, url, token string) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// backoff is the exponential wait before retry attempt+1.
func backoff(attempt int) time.Duration {
	return time.Duration(1<<(attempt-1)) * time.Second
}
