package routes

import (
	"github.com/gin-gonic/gin"

	"fleetadmin/internal/controllers"
	"fleetadmin/internal/middleware"
	"fleetadmin/internal/models"
)

func SuperAdminRoutes(api *gin.RouterGroup, gate middleware.Authorizer, auth *controllers.AuthController, rc *controllers.RegistrationController) {
	superAdmin := api.Group("/superadmin")
	superAdmin.POST("/login", auth.Login(models.RoleSuperAdmin))

	protected := superAdmin.Group("")
	protected.Use(middleware.RequireRole(gate, models.RoleSuperAdmin))
	{
		protected.POST("/reg", rc.RegisterIdentity(models.RoleSuperAdmin))
		protected.POST("/admin/reg", rc.RegisterIdentity(models.RoleAdmin))
		protected.POST("/driver/reg", rc.RegisterDriver)
		protected.POST("/merchant/reg", rc.RegisterMerchant)

		protected.GET("/merchants", rc.ListMerchants)
		protected.GET("/drivers", rc.ListDrivers)
		protected.GET("/activedrivers", rc.ActiveDrivers)
		protected.GET("/inactivedrivers", rc.InactiveDrivers)
		protected.GET("/driversamount", rc.DriversAmount)
	}
}
