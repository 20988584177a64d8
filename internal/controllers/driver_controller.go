package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListDrivers returns every registered driver.
func (rc *RegistrationController) ListDrivers(c *gin.Context) {
	drivers, err := rc.workflow.ListDrivers(c.Request.Context(), actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

// ActiveDrivers returns drivers updated within the activity window.
func (rc *RegistrationController) ActiveDrivers(c *gin.Context) {
	report, err := rc.workflow.DriverActivity(c.Request.Context(), actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report.Active)
}

// InactiveDrivers returns drivers not updated for longer than the activity window.
func (rc *RegistrationController) InactiveDrivers(c *gin.Context) {
	report, err := rc.workflow.DriverActivity(c.Request.Context(), actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, report.Inactive)
}

func (rc *RegistrationController) DriversAmount(c *gin.Context) {
	summaries, err := rc.workflow.DriverPayments(c.Request.Context(), actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

func (rc *RegistrationController) ListMerchants(c *gin.Context) {
	merchants, err := rc.workflow.ListMerchants(c.Request.Context(), actor(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, merchants)
}
