package handler

import (
	"net/http"
	"strconv"
	"time"

	"churchsite/internal/domain"
	"churchsite/internal/repository"
	"churchsite/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	repo *repository.EventRepository
}

func NewEventHandler(repo *repository.EventRepository) *EventHandler {
	return &EventHandler{repo: repo}
}

func (h *EventHandler) List(c *gin.Context) {
	p := pagination.Parse(c, domain.EventsPerPage)
	events, total, err := h.repo.ListUpcomingPage(time.Now(), p.Limit(), p.Offset())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "meta": pagination.BuildMeta(total, p)})
}

func (h *EventHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	event, err := h.repo.GetByID(uint(id))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"event": event})
}
