package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"fleetadmin/internal/models"
	"fleetadmin/internal/services"
)

type Sessions interface {
	Login(ctx context.Context, role models.Role, email, password string) (*services.LoginResult, error)
}

type AuthController struct {
	sessions Sessions
}

func NewAuthController(sessions Sessions) *AuthController {
	useJSONFieldNames()
	return &AuthController{sessions: sessions}
}

// Login exchanges credentials of role for a bearer token.
func (ac *AuthController) Login(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := bindJSON(c, &req, loginMessages); err != nil {
			_ = c.Error(err)
			return
		}

		result, err := ac.sessions.Login(c.Request.Context(), role, req.Email, req.Password)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
