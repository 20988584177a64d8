package middleware

import (
	"context"

	"github.com/gin-gonic/gin"

	"fleetadmin/internal/models"
)

const identityKey = "identity"

type Authorizer interface {
	Authorize(ctx context.Context, authHeader string, allowed ...models.Role) (*models.Identity, error)
}

// RequireRole ensures the bearer token belongs to an identity holding one of roles.
// The identity is stored in the context for downstream handlers.
func RequireRole(gate Authorizer, roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, err := gate.Authorize(c.Request.Context(), c.GetHeader("Authorization"), roles...)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}
		SetIdentity(c, identity)
		c.Next()
	}
}

// SetIdentity stores the acting identity on the request context.
func SetIdentity(c *gin.Context, identity *models.Identity) {
	c.Set(identityKey, identity)
}

// CurrentIdentity returns the identity stored by RequireRole.
func CurrentIdentity(c *gin.Context) (*models.Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	identity, ok := v.(*models.Identity)
	return identity, ok && identity != nil
}
