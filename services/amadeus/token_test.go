package amadeus

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokenServer(t *testing.T, hits *int, status int) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		*hits++
		mu.Unlock()

		require.Equal(t, "/v1/security/oauth2/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client_credentials", r.FormValue("grant_type"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			w.Write([]byte(`{"error":"invalid_client"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-abc","expires_in":1799,"token_type":"Bearer"}`))
	}))
}

func TestTokenManagerCachesToken(t *testing.T) {
	hits := 0
	srv := newTokenServer(t, &hits, http.StatusOK)
	defer srv.Close()

	m := newTokenManager(srv.URL, "id", "secret", srv.Client())

	tok, err := m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)

	tok, err = m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", tok)
	assert.Equal(t, 1, hits, "second call must reuse the cached token")
}

func TestTokenManagerRefreshesInsideExpiryMargin(t *testing.T) {
	hits := 0
	srv := newTokenServer(t, &hits, http.StatusOK)
	defer srv.Close()

	current := time.Now()
	m := newTokenManager(srv.URL, "id", "secret", srv.Client())
	m.now = func() time.Time { return current }

	_, err := m.Token(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, hits)

	// expires_in 1799s with a 60s margin: 1738s in the token is still
	// considered expired.
	current = current.Add(1740 * time.Second)
	_, err = m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestTokenManagerInvalidateForcesExchange(t *testing.T) {
	hits := 0
	srv := newTokenServer(t, &hits, http.StatusOK)
	defer srv.Close()

	m := newTokenManager(srv.URL, "id", "secret", srv.Client())

	_, err := m.Token(context.Background())
	require.NoError(t, err)
	m.Invalidate()
	_, err = m.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, hits)
}

func TestTokenManagerRejectedCredentials(t *testing.T) {
	hits := 0
	srv := newTokenServer(t, &hits, http.StatusUnauthorized)
	defer srv.Close()

	m := newTokenManager(srv.URL, "id", "bad-secret", srv.Client())

	_, err := m.Token(context.Background())
	require.Error(t, err)
	var authErr *AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.Status)
}
