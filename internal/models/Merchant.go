package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"fleetadmin/internal/geo"
)

type MerchantPersonal struct {
	BusinessName  string    `gorm:"not null;uniqueIndex:idx_merchants_business_name" json:"businessName"`
	ContactName   string    `json:"contactName"`
	ContactNumber string    `json:"contactNumber"`
	Location      string    `json:"location"`
	Coordinates   geo.Point `json:"coordinates,omitzero"`
}

type MerchantPayment struct {
	PaymentMode string `json:"paymentMode"`
	MomoNumber  string `json:"momoNumber"`
	AccountName string `json:"accountName"`
}

// Merchant is a registered business partner.
type Merchant struct {
	ID             uuid.UUID        `gorm:"type:uuid;primaryKey" json:"id"`
	Personal       MerchantPersonal `gorm:"embedded;embeddedPrefix:personal_" json:"personal"`
	ProductDetails pq.StringArray   `gorm:"type:text[]" json:"productDetails"`
	Payment        MerchantPayment  `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	UniqueID       string           `gorm:"not null;uniqueIndex:idx_merchants_unique_id" json:"uniqueID"`
	RegisteredBy   uuid.UUID        `gorm:"type:uuid;not null;index" json:"registeredBy"`
	CreatedAt      time.Time        `json:"createdAt"`
	UpdatedAt      time.Time        `json:"updatedAt"`
}

func (m *Merchant) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
