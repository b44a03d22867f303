package handler

import (
	"net/http"
	"strconv"

	"churchsite/internal/domain"
	"churchsite/internal/repository"
	"churchsite/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type SermonHandler struct {
	repo *repository.SermonRepository
}

func NewSermonHandler(repo *repository.SermonRepository) *SermonHandler {
	return &SermonHandler{repo: repo}
}

func (h *SermonHandler) List(c *gin.Context) {
	p := pagination.Parse(c, domain.SermonsPerPage)
	sermons, total, err := h.repo.List(p.Limit(), p.Offset())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sermons": sermons, "meta": pagination.BuildMeta(total, p)})
}

func (h *SermonHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	sermon, err := h.repo.GetByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sermon": sermon})
}
