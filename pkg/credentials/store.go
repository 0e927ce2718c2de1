// Package credentials reads connected-service credentials and refreshes
// expired OAuth tokens lazily on fetch. It also resolves webhook tenant
// identifiers (external workspace ids) back to internal owner ids.
package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/ent/integration"
	"github.com/triggerflow/triggerflow/pkg/config"
)

// RefreshBuffer is how close to expiry a token must be before a fetch
// triggers a refresh.
const RefreshBuffer = 5 * time.Minute

// Credential is the access credential handed to callers. Stale reports
// whether a refresh was attempted and failed; the token is passed through so
// the downstream tool call surfaces a clear auth error.
type Credential struct {
	OwnerID     string
	Service     string
	AccessToken string
	ExpiresAt   *time.Time
	Stale       bool
}

// Store serializes token refreshes per (owner, service) so two concurrent
// expired-token discoveries do not race to refresh.
type Store struct {
	client *ent.Client
	oauth  map[string]config.OAuthProviderConfig
	now    func() time.Time

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewStore creates a Store. The oauth map is keyed by service name; services
// without an entry are never refreshed (their tokens are assumed static).
func NewStore(client *ent.Client, oauth map[string]config.OAuthProviderConfig) *Store {
	return &Store{
		client: client,
		oauth:  oauth,
		now:    time.Now,
		locks:  make(map[string]*sync.Mutex),
	}
}

// Get returns the owner's credential for a service, refreshing the token
// first when it expires within the buffer. Refresh failure does not block:
// the stale token is returned with Stale set.
func (s *Store) Get(ctx context.Context, ownerID, service string) (*Credential, error) {
	row, err := s.client.Integration.Query().
		Where(
			integration.OwnerIDEQ(ownerID),
			integration.ServiceEQ(service),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("no %s integration for owner %s", service, ownerID)
		}
		return nil, fmt.Errorf("querying integration: %w", err)
	}

	if !s.needsRefresh(row) {
		return credentialFrom(row, false), nil
	}

	// Serialize refresh per (owner, service); re-check expiry under the
	// lock in case another goroutine already refreshed.
	lock := s.keyedLock(ownerID, service)
	lock.Lock()
	defer lock.Unlock()

	row, err = s.client.Integration.Get(ctx, row.ID)
	if err != nil {
		return nil, fmt.Errorf("re-reading integration: %w", err)
	}
	if !s.needsRefresh(row) {
		return credentialFrom(row, false), nil
	}

	refreshed, err := s.refresh(ctx, row)
	if err != nil {
		slog.Warn("Token refresh failed, passing through stale token",
			"owner_id", ownerID, "service", service, "error", err)
		return credentialFrom(row, true), nil
	}
	return credentialFrom(refreshed, false), nil
}

// ResolveOwner maps an external workspace identifier to the internal owner.
// When several owners share the workspace, the oldest integration wins.
func (s *Store) ResolveOwner(ctx context.Context, service, workspaceID string) (string, error) {
	row, err := s.client.Integration.Query().
		Where(
			integration.ServiceEQ(service),
			integration.WorkspaceIDEQ(workspaceID),
		).
		Order(ent.Asc(integration.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", fmt.Errorf("no %s integration for workspace %s", service, workspaceID)
		}
		return "", fmt.Errorf("resolving workspace owner: %w", err)
	}
	return row.OwnerID, nil
}

// GmailHistoryCursor returns the stored Gmail history cursor for an owner,
// empty when none has been recorded yet.
func (s *Store) GmailHistoryCursor(ctx context.Context, ownerID string) (string, error) {
	row, err := s.client.Integration.Query().
		Where(
			integration.OwnerIDEQ(ownerID),
			integration.ServiceEQ("gmail"),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("querying gmail integration: %w", err)
	}
	return row.LastGmailHistoryID, nil
}

// SetGmailHistoryCursor advances the stored Gmail history cursor.
func (s *Store) SetGmailHistoryCursor(ctx context.Context, ownerID, historyID string) error {
	n, err := s.client.Integration.Update().
		Where(
			integration.OwnerIDEQ(ownerID),
			integration.ServiceEQ("gmail"),
		).
		SetLastGmailHistoryID(historyID).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("updating gmail history cursor: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("no gmail integration for owner %s", ownerID)
	}
	return nil
}

// needsRefresh reports whether the row's token expires within the buffer and
// a refresh is possible.
func (s *Store) needsRefresh(row *ent.Integration) bool {
	if row.ExpiresAt == nil || row.RefreshToken == "" {
		return false
	}
	if _, ok := s.oauth[row.Service]; !ok {
		return false
	}
	return s.now().Add(RefreshBuffer).After(*row.ExpiresAt)
}

// refresh exchanges the refresh token and writes the new pair back before
// returning.
func (s *Store) refresh(ctx context.Context, row *ent.Integration) (*ent.Integration, error) {
	provider := s.oauth[row.Service]
	cfg := oauth2.Config{
		ClientID:     provider.ClientID,
		ClientSecret: provider.ClientSecret,
		Endpoint:     oauth2.Endpoint{TokenURL: provider.TokenURL},
	}

	token, err := cfg.TokenSource(ctx, &oauth2.Token{RefreshToken: row.RefreshToken}).Token()
	if err != nil {
		return nil, fmt.Errorf("exchanging refresh token: %w", err)
	}

	update := row.Update().
		SetAccessToken(token.AccessToken).
		SetExpiresAt(token.Expiry)
	// Providers that rotate refresh tokens return a new one; keep the old
	// one otherwise.
	if token.RefreshToken != "" {
		update = update.SetRefreshToken(token.RefreshToken)
	}

	refreshed, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("persisting refreshed token: %w", err)
	}

	slog.Info("Refreshed OAuth token", "owner_id", row.OwnerID, "service", row.Service)
	return refreshed, nil
}

func (s *Store) keyedLock(ownerID, service string) *sync.Mutex {
	key := ownerID + "/" + service
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[key] = lock
	}
	return lock
}

func credentialFrom(row *ent.Integration, stale bool) *Credential {
	return &Credential{
		OwnerID:     row.OwnerID,
		Service:     row.Service,
		AccessToken: row.AccessToken,
		ExpiresAt:   row.ExpiresAt,
		Stale:       stale,
	}
}
