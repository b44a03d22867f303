package handler

import (
	"net/http"
	"time"

	"churchsite/internal/repository"

	"github.com/gin-gonic/gin"
)

type HomeHandler struct {
	eventRepo  *repository.EventRepository
	sermonRepo *repository.SermonRepository
	blogRepo   *repository.BlogRepository
}

func NewHomeHandler(eventRepo *repository.EventRepository, sermonRepo *repository.SermonRepository, blogRepo *repository.BlogRepository) *HomeHandler {
	return &HomeHandler{eventRepo: eventRepo, sermonRepo: sermonRepo, blogRepo: blogRepo}
}

// Home returns the front-page sections: 3 upcoming events, 3 latest sermons,
// 3 latest posts.
func (h *HomeHandler) Home(c *gin.Context) {
	events, err := h.eventRepo.ListUpcoming(time.Now(), 3)
	if err != nil {
		fail(c, err)
		return
	}
	sermons, err := h.sermonRepo.Recent(3)
	if err != nil {
		fail(c, err)
		return
	}
	posts, err := h.blogRepo.Recent(3)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"upcoming_events": events,
		"latest_sermons":  sermons,
		"latest_posts":    posts,
	})
}

// Resources returns the 5 most recent sermons.
func (h *HomeHandler) Resources(c *gin.Context) {
	sermons, err := h.sermonRepo.Recent(5)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sermons": sermons})
}
