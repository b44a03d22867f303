package handler

import (
	"net/http"

	"churchsite/internal/repository"

	"github.com/gin-gonic/gin"
)

type SearchHandler struct {
	repo *repository.SearchRepository
}

func NewSearchHandler(repo *repository.SearchRepository) *SearchHandler {
	return &SearchHandler{repo: repo}
}

func (h *SearchHandler) Search(c *gin.Context) {
	query := c.Query("q")
	results, err := h.repo.Search(query)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"query":      query,
		"events":     results.Events,
		"sermons":    results.Sermons,
		"posts":      results.Posts,
		"ministries": results.Ministries,
	})
}
