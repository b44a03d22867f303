package handler

import (
	"net/http"
	"strconv"

	"churchsite/internal/repository"

	"github.com/gin-gonic/gin"
)

type MinistryHandler struct {
	repo *repository.MinistryRepository
}

func NewMinistryHandler(repo *repository.MinistryRepository) *MinistryHandler {
	return &MinistryHandler{repo: repo}
}

func (h *MinistryHandler) List(c *gin.Context) {
	ministries, err := h.repo.List()
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ministries": ministries})
}

func (h *MinistryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	ministry, err := h.repo.GetByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ministry": ministry})
}
