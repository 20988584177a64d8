package services

import (
	"context"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"fleetadmin/internal/models"
	"fleetadmin/internal/repository"
)

const testCost = bcrypt.MinCost

func testLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// memIdentities implements repository.IdentityRepository with the same
// uniqueness rule as the (role, email) index.
type memIdentities struct {
	mu        sync.Mutex
	byID      map[uuid.UUID]*models.Identity
	createErr error
	findErr   error
}

func newMemIdentities() *memIdentities {
	return &memIdentities{byID: make(map[uuid.UUID]*models.Identity)}
}

func (m *memIdentities) Create(_ context.Context, identity *models.Identity) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.createErr != nil {
		return m.createErr
	}
	identity.Email = strings.ToLower(strings.TrimSpace(identity.Email))
	for _, existing := range m.byID {
		if existing.Role == identity.Role && existing.Email == identity.Email {
			return repository.ErrDuplicate
		}
	}
	if identity.ID == uuid.Nil {
		identity.ID = uuid.New()
	}
	now := time.Now()
	identity.CreatedAt, identity.UpdatedAt = now, now
	cp := *identity
	m.byID[identity.ID] = &cp
	return nil
}

func (m *memIdentities) FindByEmail(_ context.Context, role models.Role, email string) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	email = strings.ToLower(strings.TrimSpace(email))
	for _, existing := range m.byID {
		if existing.Role == role && existing.Email == email {
			cp := *existing
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memIdentities) FindByID(_ context.Context, id uuid.UUID) (*models.Identity, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return nil, m.findErr
	}
	existing, ok := m.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *existing
	return &cp, nil
}

func (m *memIdentities) remove(id uuid.UUID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.byID, id)
}

type memDrivers struct {
	mu      sync.Mutex
	drivers []models.Driver
	// licence numbers the pre-check does not see, to simulate a racing insert
	hidden map[string]bool
}

func newMemDrivers() *memDrivers {
	return &memDrivers{hidden: make(map[string]bool)}
}

func (m *memDrivers) Create(_ context.Context, driver *models.Driver) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.hidden[driver.Personal.LicenseNumber] {
		return repository.ErrDuplicate
	}
	for _, d := range m.drivers {
		if d.UniqueID == driver.UniqueID {
			return repository.ErrUniqueIDTaken
		}
		if d.Personal.LicenseNumber == driver.Personal.LicenseNumber {
			return repository.ErrDuplicate
		}
	}
	if driver.ID == uuid.Nil {
		driver.ID = uuid.New()
	}
	now := time.Now()
	driver.CreatedAt, driver.UpdatedAt = now, now
	m.drivers = append(m.drivers, *driver)
	return nil
}

func (m *memDrivers) ExistsByLicenseNumber(_ context.Context, licenseNumber string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, d := range m.drivers {
		if d.Personal.LicenseNumber == licenseNumber {
			return true, nil
		}
	}
	return false, nil
}

func (m *memDrivers) List(context.Context) ([]models.Driver, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Driver, len(m.drivers))
	copy(out, m.drivers)
	return out, nil
}

type memMerchants struct {
	mu        sync.Mutex
	merchants []models.Merchant
}

func (m *memMerchants) Create(_ context.Context, merchant *models.Merchant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.merchants {
		if existing.UniqueID == merchant.UniqueID {
			return repository.ErrUniqueIDTaken
		}
		if existing.Personal.BusinessName == merchant.Personal.BusinessName {
			return repository.ErrDuplicate
		}
	}
	if merchant.ID == uuid.Nil {
		merchant.ID = uuid.New()
	}
	now := time.Now()
	merchant.CreatedAt, merchant.UpdatedAt = now, now
	m.merchants = append(m.merchants, *merchant)
	return nil
}

func (m *memMerchants) ExistsByBusinessName(_ context.Context, businessName string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.merchants {
		if existing.Personal.BusinessName == businessName {
			return true, nil
		}
	}
	return false, nil
}

func (m *memMerchants) List(context.Context) ([]models.Merchant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Merchant, len(m.merchants))
	copy(out, m.merchants)
	return out, nil
}

// fixture wires every service over in-memory stores.
type fixture struct {
	identities *memIdentities
	drivers    *memDrivers
	merchants  *memMerchants

	store    *IdentityStore
	tokens   *TokenService
	gate     *AuthorizationGate
	registry *Registry
	workflow *RegistrationWorkflow
	sessions *SessionService
}

func newFixture() *fixture {
	f := &fixture{
		identities: newMemIdentities(),
		drivers:    newMemDrivers(),
		merchants:  &memMerchants{},
	}
	log := testLogger()
	f.store = NewIdentityStore(f.identities, testCost, log)
	f.tokens = &TokenService{secret: []byte("test-secret"), ttl: time.Hour, issuer: "fleetadmin", now: time.Now}
	f.gate = NewAuthorizationGate(f.tokens, f.identities)
	f.registry = NewRegistry(f.drivers, f.merchants, testCost, log)
	f.workflow = NewRegistrationWorkflow(f.identities, f.store, f.registry, log)
	f.sessions = NewSessionService(f.store, f.tokens, log)
	return f
}

func sampleDriver(license string) DriverInput {
	return DriverInput{
		Personal: models.DriverPersonal{
			FullName:      "Kofi Mensah",
			Contact:       "0244000000",
			Location:      "Accra",
			Gender:        "male",
			Age:           31,
			LicenseNumber: license,
		},
		Pin:                 "1234",
		Vehicle:             models.DriverVehicle{CarModel: "Corolla", ModelYear: 2016, PlateNumber: "GR-1234-20"},
		ResourcesInterest:   []string{"fuel"},
		Payment:             models.DriverPayment{AmountPaid: "100", WeeklyPayment: "50", PaymentMode: "momo", MomoNumber: "0244000000"},
		ResourcesAllocation: []string{"tyres"},
	}
}

func sampleMerchant(name string) MerchantInput {
	return MerchantInput{
		Personal: models.MerchantPersonal{
			BusinessName:  name,
			ContactName:   "Ama Owusu",
			ContactNumber: "0200000000",
			Location:      "Kumasi",
		},
		ProductDetails: []string{"fuel"},
		Payment:        models.MerchantPayment{PaymentMode: "momo", MomoNumber: "0200000000", AccountName: "Ama Owusu"},
	}
}

// errUniqueViolation stands in for an insert rejected by a unique index
// after the pre-check passed.
var errUniqueViolation = repository.ErrDuplicate
