package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"fleetadmin/internal/metrics"
	"fleetadmin/internal/models"
	"fleetadmin/internal/repository"
)

// IdentityInput is an admin or super admin registration.
type IdentityInput struct {
	Email    string
	Name     string
	Password string
}

// RegistrationWorkflow runs every authenticated operation on behalf of an
// actor resolved by the AuthorizationGate. The actor is re-read before each
// operation; if it has been removed meanwhile the result is ErrActorNotFound.
type RegistrationWorkflow struct {
	identities repository.IdentityRepository
	store      *IdentityStore
	registry   *Registry
	log        logrus.FieldLogger
	now        func() time.Time
}

func NewRegistrationWorkflow(identities repository.IdentityRepository, store *IdentityStore, registry *Registry, log logrus.FieldLogger) *RegistrationWorkflow {
	return &RegistrationWorkflow{
		identities: identities,
		store:      store,
		registry:   registry,
		log:        log,
		now:        time.Now,
	}
}

func (w *RegistrationWorkflow) confirmActor(ctx context.Context, actor *models.Identity) (*models.Identity, error) {
	if actor == nil {
		return nil, ErrActorNotFound
	}
	current, err := w.identities.FindByID(ctx, actor.ID)
	if errors.Is(err, repository.ErrNotFound) {
		w.log.WithField("actor_id", actor.ID).Warn("actor no longer exists")
		return nil, ErrActorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load actor: %w", err)
	}
	return current, nil
}

// RegisterIdentity creates an identity of role. Only super admins reach it.
func (w *RegistrationWorkflow) RegisterIdentity(ctx context.Context, actor *models.Identity, role models.Role, in IdentityInput) (*models.Identity, error) {
	current, err := w.confirmActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	identity, err := w.store.Create(ctx, role, in.Email, in.Name, in.Password)
	if err != nil {
		return nil, err
	}
	metrics.Registrations.WithLabelValues(string(role), string(current.Role)).Inc()
	return identity, nil
}

func (w *RegistrationWorkflow) RegisterDriver(ctx context.Context, actor *models.Identity, in DriverInput) (*models.Driver, error) {
	current, err := w.confirmActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	driver, err := w.registry.RegisterDriver(ctx, in, current.ID)
	if err != nil {
		return nil, err
	}
	metrics.Registrations.WithLabelValues("driver", string(current.Role)).Inc()
	return driver, nil
}

func (w *RegistrationWorkflow) RegisterMerchant(ctx context.Context, actor *models.Identity, in MerchantInput) (*models.Merchant, error) {
	current, err := w.confirmActor(ctx, actor)
	if err != nil {
		return nil, err
	}
	merchant, err := w.registry.RegisterMerchant(ctx, in, current.ID)
	if err != nil {
		return nil, err
	}
	metrics.Registrations.WithLabelValues("merchant", string(current.Role)).Inc()
	return merchant, nil
}

func (w *RegistrationWorkflow) ListDrivers(ctx context.Context, actor *models.Identity) ([]models.Driver, error) {
	if _, err := w.confirmActor(ctx, actor); err != nil {
		return nil, err
	}
	return w.registry.ListDrivers(ctx)
}

func (w *RegistrationWorkflow) ListMerchants(ctx context.Context, actor *models.Identity) ([]models.Merchant, error) {
	if _, err := w.confirmActor(ctx, actor); err != nil {
		return nil, err
	}
	return w.registry.ListMerchants(ctx)
}

// DriverActivity classifies every driver against the current time.
func (w *RegistrationWorkflow) DriverActivity(ctx context.Context, actor *models.Identity) (ActivityReport, error) {
	drivers, err := w.ListDrivers(ctx, actor)
	if err != nil {
		return ActivityReport{}, err
	}
	return Classify(drivers, w.now()), nil
}

func (w *RegistrationWorkflow) DriverPayments(ctx context.Context, actor *models.Identity) ([]models.DriverPaymentSummary, error) {
	drivers, err := w.ListDrivers(ctx, actor)
	if err != nil {
		return nil, err
	}
	return PaymentSummaries(drivers), nil
}
