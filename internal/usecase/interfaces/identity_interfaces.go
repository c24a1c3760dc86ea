package interfaces

import (
	"context"
	"errors"

	"rpa_chamados/internal/domain/entities"
)

var (
	// ErrInvalidToken means the bearer token failed verification.
	ErrInvalidToken = errors.New("invalid bearer token")
	// ErrInsufficientRole means the caller's role does not satisfy the
	// operation's requirement.
	ErrInsufficientRole = errors.New("insufficient role")
)

// IIdentityVerifier validates an externally-issued bearer token and returns
// the verified caller identity.

type IIdentityVerifier interface {
	Verify(ctx context.Context, bearerToken string) (entities.Identity, error)
}

// IAccessPolicy decides whether a verified caller may perform an operation
// requiring one of the given roles. An empty requiredRoles set allows any
// authenticated caller.

type IAccessPolicy interface {
	Authorize(ctx context.Context, caller entities.Identity, requiredRoles ...entities.UserRole) error
}
