package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"fleetadmin/internal/metrics"
	"fleetadmin/internal/models"
)

// LoginResult is returned to the client after a successful login.
type LoginResult struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Token string    `json:"token"`
}

type TokenIssuer interface {
	Issue(identity *models.Identity) (string, error)
}

// SessionService exchanges credentials for bearer tokens.
type SessionService struct {
	store  *IdentityStore
	tokens TokenIssuer
	log    logrus.FieldLogger
}

func NewSessionService(store *IdentityStore, tokens TokenIssuer, log logrus.FieldLogger) *SessionService {
	return &SessionService{store: store, tokens: tokens, log: log}
}

func (s *SessionService) Login(ctx context.Context, role models.Role, email, password string) (*LoginResult, error) {
	identity, err := s.store.Authenticate(ctx, role, email, password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues(string(role), "failure").Inc()
		return nil, err
	}

	token, err := s.tokens.Issue(identity)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	metrics.LoginAttempts.WithLabelValues(string(role), "success").Inc()
	s.log.WithFields(logrus.Fields{
		"identity_id": identity.ID,
		"role":        role,
	}).Info("login succeeded")

	return &LoginResult{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Token: token,
	}, nil
}
