package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"fleetadmin/internal/geo"
)

// DriverPersonal holds the identifying details of a driver.
type DriverPersonal struct {
	FullName      string    `gorm:"not null" json:"fullName"`
	Contact       string    `json:"contact"`
	Location      string    `json:"location"`
	Gender        string    `json:"gender"`
	Age           int       `json:"age"`
	LicenseNumber string    `gorm:"not null;uniqueIndex:idx_drivers_license_number" json:"licenseNumber"`
	Coordinates   geo.Point `json:"coordinates,omitzero"`
}

type DriverVehicle struct {
	CarModel    string `json:"carModel"`
	ModelYear   int    `json:"modelYear"`
	PlateNumber string `json:"plateNumber"`
}

// DriverPayment is opaque pass-through data.
type DriverPayment struct {
	AmountPaid    string `json:"amountPaid"`
	WeeklyPayment string `json:"weeklyPayment"`
	PaymentMode   string `json:"paymentMode"`
	MomoNumber    string `json:"momoNumber"`
}

// Driver is a registered fleet driver. PinHash never leaves the process.
type Driver struct {
	ID                  uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Personal            DriverPersonal `gorm:"embedded;embeddedPrefix:personal_" json:"personal"`
	PinHash             string         `gorm:"not null" json:"-"`
	Vehicle             DriverVehicle  `gorm:"embedded;embeddedPrefix:vehicle_" json:"vehicle"`
	ResourcesInterest   pq.StringArray `gorm:"type:text[]" json:"resourcesInterest"`
	Payment             DriverPayment  `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`
	ResourcesAllocation pq.StringArray `gorm:"type:text[]" json:"resourcesAllocation"`
	UniqueID            string         `gorm:"not null;uniqueIndex:idx_drivers_unique_id" json:"uniqueID"`
	RegisteredBy        uuid.UUID      `gorm:"type:uuid;not null;index" json:"registeredBy"`
	CreatedAt           time.Time      `json:"createdAt"`
	UpdatedAt           time.Time      `json:"updatedAt"`
}

func (d *Driver) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// DriverPaymentSummary is one row of the drivers amount report.
type DriverPaymentSummary struct {
	ID       uuid.UUID     `json:"id"`
	UniqueID string        `json:"uniqueID"`
	Payment  DriverPayment `json:"payment"`
}
