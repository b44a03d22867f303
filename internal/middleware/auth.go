package middleware

import (
	"net/http"
	"strings"

	"churchsite/config"
	"churchsite/internal/auth"

	"github.com/gin-gonic/gin"
)

// StaffRequired validates the console JWT and sets the staff identity in context.
func StaffRequired(cfg *config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing authorization header"})
			return
		}
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid authorization format"})
			return
		}
		claims, err := auth.ParseToken(cfg, parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}
		c.Set("staff_id", claims.StaffID)
		c.Set("staff_username", claims.Username)
		c.Next()
	}
}

// GetStaffID returns the signed-in staff user ID (must be used after StaffRequired).
func GetStaffID(c *gin.Context) uint {
	v, _ := c.Get("staff_id")
	if v == nil {
		return 0
	}
	return v.(uint)
}
