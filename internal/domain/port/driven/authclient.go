package driven

import (
	"context"

	"github.com/pouyakarimi/zendegi/internal/domain/model"
)

// AuthClient defines the driven port for the hosted auth backend.
type AuthClient interface {
	// SignIn exchanges an email/password pair for the user record.
	// Returns ErrInvalidCredentials when the backend rejects the pair.
	SignIn(ctx context.Context, email, password string) (*model.User, error)
}
