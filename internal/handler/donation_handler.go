package handler

import (
	"net/http"

	"churchsite/internal/domain"
	"churchsite/internal/service"

	"github.com/gin-gonic/gin"
)

type DonationHandler struct {
	intake *service.IntakeService
}

func NewDonationHandler(intake *service.IntakeService) *DonationHandler {
	return &DonationHandler{intake: intake}
}

func (h *DonationHandler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"name", "email", "amount", "donation_type", "is_recurring", "notes"},
		"funds":  domain.DonationFunds,
	})
}

func (h *DonationHandler) Submit(c *gin.Context) {
	var in service.DonationInput
	if err := c.ShouldBindJSON(&in); err != nil {
		formErrors(c, service.FieldErrors{"": "invalid submission"})
		return
	}
	d, ferrs, err := h.intake.SubmitDonation(c.Request.Context(), in)
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
		"message": "Thank you for your donation!",
		"id":      d.ID,
	})
}

func (h *DonationHandler) Thanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Thank you for your donation!"})
}
