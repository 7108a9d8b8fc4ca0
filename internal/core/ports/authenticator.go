package ports

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Principal is the authenticated caller of a request.
type Principal struct {
	UserID kernel.UUID
	Role   order.Role
}

// Authenticator resolves a bearer token issued elsewhere. Unknown or expired
// tokens fail with ErrUnauthenticated.
type Authenticator interface {
	Resolve(ctx context.Context, token string) (Principal, error)
}
