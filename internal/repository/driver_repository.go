package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fleetadmin/internal/models"
)

var _ DriverRepository = (*GormDriverRepository)(nil)

type GormDriverRepository struct {
	db *gorm.DB
}

func NewDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Create inserts the driver. Collisions come back as ErrDuplicate (licence
// number) or ErrUniqueIDTaken (minted unique ID).
func (r *GormDriverRepository) Create(ctx context.Context, driver *models.Driver) error {
	if err := r.db.WithContext(ctx).Create(driver).Error; err != nil {
		if conflict, ok := classifyConflict(err, idxDriversUniqueID); ok {
			return conflict
		}
		return fmt.Errorf("create driver: %w", err)
	}
	return nil
}

func (r *GormDriverRepository) ExistsByLicenseNumber(ctx context.Context, licenseNumber string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Driver{}).
		Where("personal_license_number = ?", licenseNumber).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("count drivers by licence number: %w", err)
	}
	return n > 0, nil
}

// List returns every driver, oldest first, without the pin hash column.
func (r *GormDriverRepository) List(ctx context.Context) ([]models.Driver, error) {
	drivers := make([]models.Driver, 0)
	if err := r.db.WithContext(ctx).Omit("pin_hash").Order("created_at ASC").Find(&drivers).Error; err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}
	return drivers, nil
}
