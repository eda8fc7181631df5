package amadeus

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// expiryMargin is subtracted from the provider's expires_in so a token
// is never used while it could expire mid-request.
const expiryMargin = 60 * time.Second

// tokenManager owns the single cached OAuth2 client-credentials token.
// The token value never leaves this type except through Token.
type tokenManager struct {
	tokenURL     string
	clientID     string
	clientSecret string
	httpClient   *http.Client

	mu          sync.Mutex
	accessToken string
	expiresAt   time.Time

	now func() time.Time
}

func newTokenManager(baseURL, clientID, clientSecret string, httpClient *http.Client) *tokenManager {
	return &tokenManager{
		tokenURL:     baseURL + "/v1/security/oauth2/token",
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   httpClient,
		now:          time.Now,
	}
}

// Token returns the cached token if it is still inside the expiry
// margin, otherwise performs a credential exchange. The mutex is held
// across the exchange so concurrent first callers share one fetch.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.accessToken != "" && m.now().Before(m.expiresAt) {
		return m.accessToken, nil
	}
	return m.refreshLocked(ctx)
}

// Invalidate discards the cached token. The next Token call performs a
// fresh exchange. Used when the provider answers 401.
func (m *tokenManager) Invalidate() {
	m.mu.Lock()
	m.accessToken = ""
	m.expiresAt = time.Time{}
	m.mu.Unlock()
}

func (m *tokenManager) refreshLocked(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	form.Set("client_id", m.clientID)
	form.Set("client_secret", m.clientSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return "", &AuthenticationError{Message: err.Error()}
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", &AuthenticationError{Status: resp.StatusCode, Message: string(body)}
	}

	var result struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
		TokenType   string `json:"token_type"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", &AuthenticationError{Status: resp.StatusCode, Message: "unparseable token response"}
	}

	m.accessToken = result.AccessToken
	m.expiresAt = m.now().Add(time.Duration(result.ExpiresIn)*time.Second - expiryMargin)
	return m.accessToken, nil
}
