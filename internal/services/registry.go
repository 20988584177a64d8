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

const (
	entityDriver   = "Driver"
	entityMerchant = "Merchant"
)

// DriverInput is a driver registration as accepted from an operator.
type DriverInput struct {
	Personal            models.DriverPersonal
	Pin                 string
	Vehicle             models.DriverVehicle
	ResourcesInterest   []string
	Payment             models.DriverPayment
	ResourcesAllocation []string
}

type MerchantInput struct {
	Personal       models.MerchantPersonal
	ProductDetails []string
	Payment        models.MerchantPayment
}

// Registry stores drivers and merchants and mints their unique IDs.
type Registry struct {
	drivers   repository.DriverRepository
	merchants repository.MerchantRepository
	cost      int
	log       logrus.FieldLogger

	newUniqueID func() (string, error)
}

func NewRegistry(drivers repository.DriverRepository, merchants repository.MerchantRepository, bcryptCost int, log logrus.FieldLogger) *Registry {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Registry{
		drivers:     drivers,
		merchants:   merchants,
		cost:        bcryptCost,
		log:         log,
		newUniqueID: NewUniqueID,
	}
}

func (r *Registry) DriverExists(ctx context.Context, licenseNumber string) (bool, error) {
	return r.drivers.ExistsByLicenseNumber(ctx, licenseNumber)
}

func (r *Registry) MerchantExists(ctx context.Context, businessName string) (bool, error) {
	return r.merchants.ExistsByBusinessName(ctx, businessName)
}

// RegisterDriver stores a new driver registered by actorID. The pin is kept
// only as a bcrypt hash.
func (r *Registry) RegisterDriver(ctx context.Context, in DriverInput, actorID uuid.UUID) (*models.Driver, error) {
	exists, err := r.DriverExists(ctx, in.Personal.LicenseNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &DuplicateEntityError{Entity: entityDriver}
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte(in.Pin), r.cost)
	if err != nil {
		return nil, fmt.Errorf("hash pin: %w", err)
	}

	driver := &models.Driver{
		Personal:            in.Personal,
		PinHash:             string(pinHash),
		Vehicle:             in.Vehicle,
		ResourcesInterest:   nonNil(in.ResourcesInterest),
		Payment:             in.Payment,
		ResourcesAllocation: nonNil(in.ResourcesAllocation),
		RegisteredBy:        actorID,
	}
	err = r.insertWithUniqueID(entityDriver, func(uniqueID string) error {
		driver.UniqueID = uniqueID
		return r.drivers.Create(ctx, driver)
	})
	if err != nil {
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"driver_id":     driver.ID,
		"unique_id":     driver.UniqueID,
		"registered_by": actorID,
	}).Info("driver registered")
	return driver, nil
}

func (r *Registry) RegisterMerchant(ctx context.Context, in MerchantInput, actorID uuid.UUID) (*models.Merchant, error) {
	exists, err := r.MerchantExists(ctx, in.Personal.BusinessName)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &DuplicateEntityError{Entity: entityMerchant}
	}

	merchant := &models.Merchant{
		Personal:       in.Personal,
		ProductDetails: nonNil(in.ProductDetails),
		Payment:        in.Payment,
		RegisteredBy:   actorID,
	}
	err = r.insertWithUniqueID(entityMerchant, func(uniqueID string) error {
		merchant.UniqueID = uniqueID
		return r.merchants.Create(ctx, merchant)
	})
	if err != nil {
		return nil, err
	}

	r.log.WithFields(logrus.Fields{
		"merchant_id":   merchant.ID,
		"unique_id":     merchant.UniqueID,
		"registered_by": actorID,
	}).Info("merchant registered")
	return merchant, nil
}

func (r *Registry) ListDrivers(ctx context.Context) ([]models.Driver, error) {
	return r.drivers.List(ctx)
}

func (r *Registry) ListMerchants(ctx context.Context) ([]models.Merchant, error) {
	return r.merchants.List(ctx)
}

// insertWithUniqueID runs insert with freshly minted IDs until it stops
// colliding on the unique ID index.
func (r *Registry) insertWithUniqueID(entity string, insert func(uniqueID string) error) error {
	for attempt := 1; attempt <= maxUniqueIDAttempts; attempt++ {
		uniqueID, err := r.newUniqueID()
		if err != nil {
			return fmt.Errorf("mint unique id: %w", err)
		}
		err = insert(uniqueID)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrUniqueIDTaken):
			r.log.WithFields(logrus.Fields{
				"entity":  entity,
				"attempt": attempt,
			}).Warn("unique id collision, retrying")
			continue
		case errors.Is(err, repository.ErrDuplicate):
			return &DuplicateEntityError{Entity: entity}
		default:
			return err
		}
	}
	return fmt.Errorf("%s: %w after %d attempts", entity, repository.ErrUniqueIDTaken, maxUniqueIDAttempts)
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
