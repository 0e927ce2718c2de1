package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/triggerflow/triggerflow/ent"
	"github.com/triggerflow/triggerflow/pkg/models"
)

// UserService resolves owner profiles for the execution context.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	if client == nil {
		panic("NewUserService: client must not be nil")
	}
	return &UserService{client: client}
}

// Get returns one user by id.
func (s *UserService) Get(ctx context.Context, id string) (*ent.User, error) {
	user, err := s.client.User.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: user %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}

// Info returns the profile bound under the "user" context key. A missing
// profile degrades to an id-only record in UTC rather than blocking the
// run.
func (s *UserService) Info(ctx context.Context, ownerID string) models.UserInfo {
	user, err := s.Get(ctx, ownerID)
	if err != nil {
		slog.Warn("User profile unavailable, using defaults", "owner_id", ownerID, "error", err)
		return models.UserInfo{ID: ownerID, Timezone: "UTC"}
	}
	return models.UserInfo{
		ID:       user.ID,
		Email:    user.Email,
		Timezone: user.Timezone,
		Name:     user.Name,
		Phone:    user.Phone,
	}
}
