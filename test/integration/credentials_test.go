package integration

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triggerflow/triggerflow/ent/integration"
	"github.com/triggerflow/triggerflow/pkg/config"
	"github.com/triggerflow/triggerflow/pkg/credentials"
)

// createExpiringIntegration stores a gmail integration whose token expired an
// hour ago, with a refresh token so a fetch triggers the refresh path.
func (e *testEnv) createExpiringIntegration(t *testing.T, ownerID string) {
	t.Helper()
	err := e.client.Integration.Create().
		SetOwnerID(ownerID).
		SetService("gmail").
		SetWorkspaceID(ownerID + "@example.com").
		SetAccessToken("stale-token").
		SetRefreshToken("refresh-1").
		SetExpiresAt(time.Now().Add(-time.Hour)).
		Exec(context.Background())
	require.NoError(t, err)
}

func oauthConfigFor(tokenURL string) map[string]config.OAuthProviderConfig {
	return map[string]config.OAuthProviderConfig{
		"gmail": {ClientID: "client-id", ClientSecret: "client-secret", TokenURL: tokenURL},
	}
}

func TestCredentialRefreshSerializedAcrossGoroutines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.createExpiringIntegration(t, "user-1")

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"fresh-token","token_type":"Bearer","expires_in":3600,"refresh_token":"refresh-2"}`))
	}))
	defer server.Close()

	store := credentials.NewStore(env.client, oauthConfigFor(server.URL))

	const workers = 8
	creds := make([]*credentials.Credential, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			creds[i], errs[i] = store.Get(ctx, "user-1", "gmail")
		}(i)
	}
	wg.Wait()

	// Every caller gets the refreshed token, and the provider is hit once.
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, "fresh-token", creds[i].AccessToken)
		assert.False(t, creds[i].Stale)
	}
	assert.Equal(t, int32(1), hits.Load())

	row, err := env.client.Integration.Query().
		Where(integration.OwnerIDEQ("user-1"), integration.ServiceEQ("gmail")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "fresh-token", row.AccessToken)
	// The provider rotated the refresh token; the new one is persisted.
	assert.Equal(t, "refresh-2", row.RefreshToken)
	require.NotNil(t, row.ExpiresAt)
	assert.True(t, row.ExpiresAt.After(time.Now()))
}

func TestCredentialRefreshFailurePassesStaleToken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	env.createExpiringIntegration(t, "user-1")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "provider down", http.StatusInternalServerError)
	}))
	defer server.Close()

	store := credentials.NewStore(env.client, oauthConfigFor(server.URL))

	// Refresh failure must not block the caller: the stale token goes
	// through so the downstream tool call surfaces the auth error.
	cred, err := store.Get(ctx, "user-1", "gmail")
	require.NoError(t, err)
	assert.Equal(t, "stale-token", cred.AccessToken)
	assert.True(t, cred.Stale)

	row, err := env.client.Integration.Query().
		Where(integration.OwnerIDEQ("user-1"), integration.ServiceEQ("gmail")).
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, "stale-token", row.AccessToken)
	assert.Equal(t, "refresh-1", row.RefreshToken)
}

func TestCredentialStaticTokenSkipsRefresh(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.createUser(t, "user-1")
	// No refresh token and no expiry: the token is assumed static.
	env.createIntegration(t, "user-1", "slack", "T12345")

	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer server.Close()

	store := credentials.NewStore(env.client, oauthConfigFor(server.URL))

	cred, err := store.Get(ctx, "user-1", "slack")
	require.NoError(t, err)
	assert.Equal(t, "token-user-1", cred.AccessToken)
	assert.False(t, cred.Stale)
	assert.Zero(t, hits.Load())

	_, err = store.Get(ctx, "user-1", "gmail")
	assert.Error(t, err)
}
