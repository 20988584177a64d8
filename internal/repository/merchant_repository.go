package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"fleetadmin/internal/models"
)

var _ MerchantRepository = (*GormMerchantRepository)(nil)

type GormMerchantRepository struct {
	db *gorm.DB
}

func NewMerchantRepository(db *gorm.DB) *GormMerchantRepository {
	return &GormMerchantRepository{db: db}
}

func (r *GormMerchantRepository) Create(ctx context.Context, merchant *models.Merchant) error {
	if err := r.db.WithContext(ctx).Create(merchant).Error; err != nil {
		if conflict, ok := classifyConflict(err, idxMerchantsUniqueID); ok {
			return conflict
		}
		return fmt.Errorf("create merchant: %w", err)
	}
	return nil
}

func (r *GormMerchantRepository) ExistsByBusinessName(ctx context.Context, businessName string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Merchant{}).
		Where("personal_business_name = ?", businessName).
		Count(&n).Error
	if err != nil {
		return false, fmt.Errorf("count merchants by business name: %w", err)
	}
	return n > 0, nil
}

func (r *GormMerchantRepository) List(ctx context.Context) ([]models.Merchant, error) {
	merchants := make([]models.Merchant, 0)
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&merchants).Error; err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	return merchants, nil
}
