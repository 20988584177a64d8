package routes

import (
	"github.com/gin-gonic/gin"

	"fleetadmin/internal/controllers"
	"fleetadmin/internal/middleware"
	"fleetadmin/internal/models"
)

// AdminRoutes mounts /admin. Super admins pass the admin gate as well.
func AdminRoutes(api *gin.RouterGroup, gate middleware.Authorizer, auth *controllers.AuthController, rc *controllers.RegistrationController) {
	admin := api.Group("/admin")
	admin.POST("/login", auth.Login(models.RoleAdmin))

	protected := admin.Group("")
	protected.Use(middleware.RequireRole(gate, models.RoleAdmin, models.RoleSuperAdmin))
	{
		protected.POST("/driver/reg", rc.RegisterDriver)
		protected.POST("/merchant/reg", rc.RegisterMerchant)
	}
}
