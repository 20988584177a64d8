package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"

	"fleetadmin/internal/models"
	"fleetadmin/internal/repository"
)

type TokenVerifier interface {
	Verify(token string) (uuid.UUID, error)
}

// AuthorizationGate resolves a bearer header into the acting identity.
type AuthorizationGate struct {
	tokens     TokenVerifier
	identities repository.IdentityRepository
}

func NewAuthorizationGate(tokens TokenVerifier, identities repository.IdentityRepository) *AuthorizationGate {
	return &AuthorizationGate{tokens: tokens, identities: identities}
}

// Authorize admits the request when the header carries a valid token whose
// identity still exists and holds one of the allowed roles.
//
// A missing header or token yields ErrNoToken. Any verification, lookup-miss
// or role failure yields ErrTokenFailed. Store failures are returned wrapped.
func (g *AuthorizationGate) Authorize(ctx context.Context, authHeader string, allowed ...models.Role) (*models.Identity, error) {
	token, ok := bearerToken(authHeader)
	if !ok {
		return nil, ErrNoToken
	}

	id, err := g.tokens.Verify(token)
	if err != nil {
		return nil, ErrTokenFailed
	}

	identity, err := g.identities.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrTokenFailed
	}
	if err != nil {
		return nil, fmt.Errorf("load token identity: %w", err)
	}

	if !slices.Contains(allowed, identity.Role) {
		return nil, ErrTokenFailed
	}
	return identity, nil
}

func bearerToken(header string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(header), "Bearer ")
	if !ok {
		return "", false
	}
	token := strings.TrimSpace(rest)
	return token, token != ""
}
