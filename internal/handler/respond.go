package handler

import (
	"errors"
	"net/http"

	"churchsite/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func fail(c *gin.Context, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "server error"})
}

// formErrors answers a failed submission the way a form re-render would:
// HTTP 200 with the field errors inline, never a redirect.
func formErrors(c *gin.Context, ferrs service.FieldErrors) {
	c.JSON(http.StatusOK, gin.H{"success": false, "errors": ferrs})
}
