package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"fleetadmin/internal/models"
	"fleetadmin/internal/repository"
)

// bcrypt only hashes the first 72 bytes; longer passwords are rejected.
const maxPasswordBytes = 72

var errPasswordTooLong = &ValidationError{Errors: []FieldError{
	{Param: "password", Msg: "Valid Password Not Provided"},
}}

// IdentityStore owns SuperAdmin and Admin credentials.
type IdentityStore struct {
	repo repository.IdentityRepository
	cost int
	log  logrus.FieldLogger

	// compared against when the email is unknown so both paths pay for a hash
	dummyHash []byte
}

func NewIdentityStore(repo repository.IdentityRepository, bcryptCost int, log logrus.FieldLogger) *IdentityStore {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	dummy, _ := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
	return &IdentityStore{repo: repo, cost: bcryptCost, log: log, dummyHash: dummy}
}

// FindByEmail returns nil when no identity of role has the email.
func (s *IdentityStore) FindByEmail(ctx context.Context, role models.Role, email string) (*models.Identity, error) {
	identity, err := s.repo.FindByEmail(ctx, role, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return identity, err
}

// FindByID returns nil when the id is unknown or belongs to another role.
func (s *IdentityStore) FindByID(ctx context.Context, role models.Role, id uuid.UUID) (*models.Identity, error) {
	identity, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if identity.Role != role {
		return nil, nil
	}
	return identity, nil
}

func (s *IdentityStore) VerifyPassword(identity *models.Identity, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(candidate)) == nil
}

// Create hashes password and stores a new identity of role.
func (s *IdentityStore) Create(ctx context.Context, role models.Role, email, name, password string) (*models.Identity, error) {
	if !role.Valid() {
		return nil, fmt.Errorf("unknown role %q", role)
	}
	if len(password) > maxPasswordBytes {
		return nil, errPasswordTooLong
	}
	existing, err := s.FindByEmail(ctx, role, email)
	if err != nil {
		return nil, fmt.Errorf("check identity email: %w", err)
	}
	if existing != nil {
		return nil, &DuplicateEntityError{Entity: role.Label()}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, errPasswordTooLong
	}
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	identity := &models.Identity{
		Role:         role,
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
	}
	if err := s.repo.Create(ctx, identity); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &DuplicateEntityError{Entity: role.Label()}
		}
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"identity_id": identity.ID,
		"role":        role,
	}).Info("identity created")
	return identity, nil
}

// Authenticate returns the identity when email and password match for role.
func (s *IdentityStore) Authenticate(ctx context.Context, role models.Role, email, password string) (*models.Identity, error) {
	identity, err := s.FindByEmail(ctx, role, email)
	if err != nil {
		return nil, fmt.Errorf("find identity: %w", err)
	}
	if identity == nil {
		_ = bcrypt.CompareHashAndPassword(s.dummyHash, []byte(password))
		return nil, &InvalidCredentialsError{Role: role}
	}
	if !s.VerifyPassword(identity, password) {
		return nil, &InvalidCredentialsError{Role: role}
	}
	return identity, nil
}
