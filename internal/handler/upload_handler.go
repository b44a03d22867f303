package handler

import (
	"net/http"
	"path/filepath"

	"churchsite/internal/domain"
	"churchsite/pkg/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	store storage.Store
}

func NewUploadHandler(store storage.Store) *UploadHandler {
	return &UploadHandler{store: store}
}

// Upload stores a media file under the folder convention for its kind and
// returns the URL reference the record will carry.
func (h *UploadHandler) Upload(c *gin.Context) {
	folder, ok := domain.UploadFolders[c.Param("kind")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
		return
	}
	defer f.Close()

	filename := uuid.NewString() + filepath.Ext(fileHeader.Filename)
	url, err := h.store.Save(c.Request.Context(), folder, filename, f)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}
