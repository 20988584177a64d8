package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetadmin/internal/middleware"
	"fleetadmin/internal/models"
	"fleetadmin/internal/services"
)

// Workflow is the set of operations run on behalf of an authenticated actor.
type Workflow interface {
	RegisterIdentity(ctx context.Context, actor *models.Identity, role models.Role, in services.IdentityInput) (*models.Identity, error)
	RegisterDriver(ctx context.Context, actor *models.Identity, in services.DriverInput) (*models.Driver, error)
	RegisterMerchant(ctx context.Context, actor *models.Identity, in services.MerchantInput) (*models.Merchant, error)
	ListDrivers(ctx context.Context, actor *models.Identity) ([]models.Driver, error)
	ListMerchants(ctx context.Context, actor *models.Identity) ([]models.Merchant, error)
	DriverActivity(ctx context.Context, actor *models.Identity) (services.ActivityReport, error)
	DriverPayments(ctx context.Context, actor *models.Identity) ([]models.DriverPaymentSummary, error)
}

type RegistrationController struct {
	workflow Workflow
}

func NewRegistrationController(workflow Workflow) *RegistrationController {
	useJSONFieldNames()
	return &RegistrationController{workflow: workflow}
}

// actor returns the identity placed by middleware.RequireRole. A missing
// identity is treated as a vanished actor.
func actor(c *gin.Context) *models.Identity {
	identity, _ := middleware.CurrentIdentity(c)
	return identity
}

// RegisterIdentity creates an admin or super admin.
func (rc *RegistrationController) RegisterIdentity(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req identityRequest
		if err := bindJSON(c, &req, identityMessages); err != nil {
			_ = c.Error(err)
			return
		}

		identity, err := rc.workflow.RegisterIdentity(c.Request.Context(), actor(c), role, req.toInput())
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusCreated, identity)
	}
}

func (rc *RegistrationController) RegisterDriver(c *gin.Context) {
	var req driverRequest
	if err := bindJSON(c, &req, driverMessages); err != nil {
		_ = c.Error(err)
		return
	}

	driver, err := rc.workflow.RegisterDriver(c.Request.Context(), actor(c), req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, driver)
}

func (rc *RegistrationController) RegisterMerchant(c *gin.Context) {
	var req merchantRequest
	if err := bindJSON(c, &req, merchantMessages); err != nil {
		_ = c.Error(err)
		return
	}

	merchant, err := rc.workflow.RegisterMerchant(c.Request.Context(), actor(c), req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, merchant)
}
