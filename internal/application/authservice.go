package application

import (
	"context"
	"fmt"
	"time"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
	"github.com/pouyakarimi/zendegi/internal/domain/port/driven"
)

// AuthService signs users in against the hosted auth backend and hands out
// guest sessions when no backend is configured or the user skips sign-in.
type AuthService struct {
	client driven.AuthClient
	now    func() time.Time
}

func NewAuthService(client driven.AuthClient) *AuthService {
	return &AuthService{client: client, now: time.Now}
}

// SignIn exchanges credentials for the user record. A rejected pair wraps
// ErrInvalidCredentials so callers can map it to a 401.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*model.User, error) {
	if s.client == nil {
		return nil, fmt.Errorf("auth: %w", driven.ErrUnavailable)
	}
	if email == "" || password == "" {
		return nil, fmt.Errorf("auth: %w", driven.ErrInvalidCredentials)
	}
	user, err := s.client.SignIn(ctx, email, password)
	if err != nil {
		return nil, fmt.Errorf("signing in: %w", err)
	}
	return user, nil
}

// Guest returns a local-only session that never touches the backend. Guest
// data is not synced anywhere.
func (s *AuthService) Guest() *model.User {
	return &model.User{
		ID:        "guest",
		Name:      "کاربر مهمان",
		IsGuest:   true,
		CreatedAt: s.now(),
		LastLogin: s.now(),
	}
}
