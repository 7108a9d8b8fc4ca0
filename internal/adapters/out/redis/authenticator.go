package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

// SessionAuthenticator resolves tokens against sessions written by the
// identity service as session:{token} -> "{role}:{user id}". Expiry is the
// key's TTL.
type SessionAuthenticator struct {
	client goredis.UniversalClient
}

func NewSessionAuthenticator(client goredis.UniversalClient) *SessionAuthenticator {
	return &SessionAuthenticator{client: client}
}

func (a *SessionAuthenticator) Resolve(ctx context.Context, token string) (ports.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return ports.Principal{}, ports.ErrUnauthenticated
	}

	value, err := a.client.Get(ctx, fmt.Sprintf(KeySession, token)).Result()
	if errors.Is(err, goredis.Nil) {
		return ports.Principal{}, ports.ErrUnauthenticated
	}
	if err != nil {
		return ports.Principal{}, fmt.Errorf("lookup session: %w", err)
	}

	return parseSession(value)
}

func parseSession(value string) (ports.Principal, error) {
	rawRole, rawID, ok := strings.Cut(value, ":")
	if !ok {
		return ports.Principal{}, fmt.Errorf("%w: malformed session", ports.ErrUnauthenticated)
	}

	role, err := order.ParseRole(rawRole)
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", ports.ErrUnauthenticated, err)
	}

	userID, err := kernel.UUIDFromString(rawID)
	if err == nil {
		err = userID.Validate()
	}
	if err != nil {
		return ports.Principal{}, fmt.Errorf("%w: %w", ports.ErrUnauthenticated, err)
	}

	return ports.Principal{UserID: userID, Role: role}, nil
}
