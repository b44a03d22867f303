package handler

import (
	"net/http"

	"churchsite/internal/domain"
	"churchsite/internal/repository"
	"churchsite/internal/service"
	"churchsite/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type PrayerHandler struct {
	repo   *repository.PrayerRepository
	intake *service.IntakeService
}

func NewPrayerHandler(repo *repository.PrayerRepository, intake *service.IntakeService) *PrayerHandler {
	return &PrayerHandler{repo: repo, intake: intake}
}

// List shows the public prayer wall; private requests never appear.
func (h *PrayerHandler) List(c *gin.Context) {
	p := pagination.Parse(c, domain.PrayersPerPage)
	requests, total, err := h.repo.ListPublic(p.Limit(), p.Offset())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"prayer_requests": requests, "meta": pagination.BuildMeta(total, p)})
}

func (h *PrayerHandler) Form(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"fields": []string{"name", "email", "request", "is_private"},
	})
}

func (h *PrayerHandler) Submit(c *gin.Context) {
	var in service.PrayerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		formErrors(c, service.FieldErrors{"": "invalid submission"})
		return
	}
	req, ferrs, err := h.intake.SubmitPrayerRequest(c.Request.Context(), in)
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
		"message": "Your prayer request has been submitted.",
		"id":      req.ID,
	})
}

func (h *PrayerHandler) Thanks(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Your prayer request has been submitted."})
}
