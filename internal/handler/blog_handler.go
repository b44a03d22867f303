package handler

import (
	"net/http"

	"churchsite/internal/domain"
	"churchsite/internal/repository"
	"churchsite/pkg/pagination"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	repo *repository.BlogRepository
}

func NewBlogHandler(repo *repository.BlogRepository) *BlogHandler {
	return &BlogHandler{repo: repo}
}

func (h *BlogHandler) List(c *gin.Context) {
	p := pagination.Parse(c, domain.PostsPerPage)
	posts, total, err := h.repo.List(p.Limit(), p.Offset())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts, "meta": pagination.BuildMeta(total, p)})
}

func (h *BlogHandler) Get(c *gin.Context) {
	post, err := h.repo.GetBySlug(c.Param("slug"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"post": post})
}
