package handler

import (
	"net/http"

	"churchsite/internal/service"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	intake *service.IntakeService
}

func NewContactHandler(intake *service.IntakeService) *ContactHandler {
	return &ContactHandler{intake: intake}
}

// Form describes the contact form for the renderer.
func (h *ContactHandler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"name", "email", "subject", "message"},
	})
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var in service.ContactInput
	if err := c.ShouldBindJSON(&in); err != nil {
		formErrors(c, service.FieldErrors{"": "invalid submission"})
		return
	}
	msg, ferrs, err := h.intake.SubmitContact(c.Request.Context(), in)
	if err != nil {
		fail(c, err)
		return
	}
	if ferrs != nil {
		formErrors(c, ferrs)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Your message has been sent successfully. We'll get back to you soon!",
		"id":      msg.ID,
	})
}
