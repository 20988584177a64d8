package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role tags an identity with its place in the authority hierarchy.
type Role string

const (
	RoleSuperAdmin Role = "superadmin"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// Label is the human form used in API messages ("Super Admin", "Admin").
func (r Role) Label() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Admin"
	default:
		return string(r)
	}
}

// Identity is a SuperAdmin or Admin credential record.
// Email is unique per role, so the same address may exist once as each role.
type Identity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Role         Role      `gorm:"type:varchar(16);not null;uniqueIndex:idx_identities_role_email,priority:1" json:"role"`
	Email        string    `gorm:"not null;uniqueIndex:idx_identities_role_email,priority:2" json:"email"`
	Name         string    `gorm:"not null" json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (i *Identity) BeforeCreate(*gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
