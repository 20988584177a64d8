// Package repository persists identities, drivers and merchants in PostgreSQL.
//
// Natural-key uniqueness (identity email per role, driver licence number,
// merchant business name, minted unique IDs) is enforced by unique indexes;
// callers must treat ErrDuplicate from Create as authoritative even when a
// pre-check reported the key as free.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"fleetadmin/internal/models"
)

var (
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate reports a collision on a natural key.
	ErrDuplicate = errors.New("duplicate record")
	// ErrUniqueIDTaken reports a collision on a minted public identifier.
	ErrUniqueIDTaken = errors.New("unique id already taken")
)

type IdentityRepository interface {
	Create(ctx context.Context, identity *models.Identity) error
	FindByEmail(ctx context.Context, role models.Role, email string) (*models.Identity, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Identity, error)
}

type DriverRepository interface {
	Create(ctx context.Context, driver *models.Driver) error
	ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error)
	List(ctx context.Context) ([]models.Driver, error)
}

type MerchantRepository interface {
	Create(ctx context.Context, merchant *models.Merchant) error
	ExistsByBusinessName(ctx context.Context, businessName string) (bool, error)
	List(ctx context.Context) ([]models.Merchant, error)
}
