package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"menu-digital/utils"
)

// RequireRole -> occupy/release/reserve dan mutasi registry hanya untuk
// client staff; admin selalu boleh.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
			c.Abort()
			return
		}

		if userRole == "admin" {
			c.Next()
			return
		}

		for _, role := range roles {
			if userRole == role {
				c.Next()
				return
			}
		}

		utils.RespondError(c, http.StatusForbidden, errors.New("you do not have permission"))
		c.Abort()
	}
}
