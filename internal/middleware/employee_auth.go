package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"carsharex/internal/domain"
	jwtsvc "carsharex/internal/pkg/jwt"
)

func bearerClaims(c *gin.Context, jwt *jwtsvc.Service) *jwtsvc.Claims {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Missing bearer token"})
		return nil
	}

	tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	claims, err := jwt.ValidateToken(tokenStr)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
		return nil
	}
	return claims
}

// UserAuth guards the client surface (profile, personal history) with a
// bearer token issued at registration or login.
func UserAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := bearerClaims(c, jwt)
		if claims == nil {
			return
		}

		c.Set("user_id", claims.UserID)
		c.Next()
	}
}

// EmployeeAuth guards the admin surface. Employee tokens always carry a
// role id; a token without one is rejected.
func EmployeeAuth(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := bearerClaims(c, jwt)
		if claims == nil {
			return
		}
		if claims.RoleID == nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Employee token required"})
			return
		}

		c.Set("employee_id", claims.UserID)
		c.Set("role_id", *claims.RoleID)

		c.Next()
	}
}

// RequireSuperAdmin enforces the single role check of the admin surface:
// employee management is reserved for the SuperAdmin role id.
func RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleID, ok := c.Get("role_id")
		if !ok || roleID.(int64) != domain.RoleSuperAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"detail": "Access denied. SuperAdmin role required"})
			return
		}
		c.Next()
	}
}
