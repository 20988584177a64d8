package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleetadmin/internal/models"
)

var _ IdentityRepository = (*GormIdentityRepository)(nil)

type GormIdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *GormIdentityRepository {
	return &GormIdentityRepository{db: db}
}

func (r *GormIdentityRepository) Create(ctx context.Context, identity *models.Identity) error {
	identity.Email = normalizeEmail(identity.Email)
	if err := r.db.WithContext(ctx).Create(identity).Error; err != nil {
		if conflict, ok := classifyConflict(err, ""); ok {
			return conflict
		}
		return fmt.Errorf("create identity: %w", err)
	}
	return nil
}

func (r *GormIdentityRepository) FindByEmail(ctx context.Context, role models.Role, email string) (*models.Identity, error) {
	var identity models.Identity
	err := r.db.WithContext(ctx).
		Where("role = ? AND email = ?", role, normalizeEmail(email)).
		First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find identity by email: %w", err)
	}
	return &identity, nil
}

func (r *GormIdentityRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	var identity models.Identity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find identity by id: %w", err)
	}
	return &identity, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
