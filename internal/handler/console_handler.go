package handler

import (
	"errors"
	"net/http"
	"strconv"

	"churchsite/config"
	"churchsite/internal/console"
	"churchsite/internal/middleware"
	"churchsite/internal/service"
	"churchsite/pkg/pagination"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const consolePerPage = 50

// ConsoleHandler serves the staff console: one generic list/create/update/
// delete/bulk surface interpreting the entity registry.
type ConsoleHandler struct {
	con     *console.Console
	authSvc *service.AuthService
	site    *config.SiteConfig
}

func NewConsoleHandler(con *console.Console, authSvc *service.AuthService, site *config.SiteConfig) *ConsoleHandler {
	return &ConsoleHandler{con: con, authSvc: authSvc, site: site}
}

func (h *ConsoleHandler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, token, err := h.authSvc.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCreds) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "username": u.Username})
}

func (h *ConsoleHandler) Index(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    h.site.ConsoleTitle,
		"entities": h.con.Keys(),
	})
}

func (h *ConsoleHandler) List(c *gin.Context) {
	desc, err := h.con.Descriptor(c.Param("entity"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	filters := map[string]string{}
	for _, f := range desc.FilterFields {
		filters[f] = c.Query(f)
	}
	p := pagination.Parse(c, consolePerPage)
	list, total, err := h.con.List(desc, c.Query("q"), filters, p.Page, p.PerPage)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"label":   desc.Label,
		"results": list,
		"meta":    pagination.BuildMeta(total, p),
	})
}

func (h *ConsoleHandler) Get(c *gin.Context) {
	desc, rec, ok := h.load(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"label": desc.Label, "record": rec})
}

func (h *ConsoleHandler) Create(c *gin.Context) {
	desc, err := h.con.Descriptor(c.Param("entity"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	rec := desc.New()
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.con.Create(desc, rec, middleware.GetStaffID(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"record": rec})
}

func (h *ConsoleHandler) Update(c *gin.Context) {
	desc, rec, ok := h.load(c)
	if !ok {
		return
	}
	// Binding over the loaded record keeps untouched fields intact.
	if err := c.ShouldBindJSON(rec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.con.Save(desc, rec, middleware.GetStaffID(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec})
}

func (h *ConsoleHandler) Delete(c *gin.Context) {
	desc, err := h.con.Descriptor(c.Param("entity"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if err := h.con.Delete(desc, uint(id)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

func (h *ConsoleHandler) Bulk(c *gin.Context) {
	desc, err := h.con.Descriptor(c.Param("entity"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	var req struct {
		IDs []uint `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.con.RunBulk(desc, c.Param("action"), req.IDs); err != nil {
		if errors.Is(err, console.ErrUnknownAction) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "count": len(req.IDs)})
}

func (h *ConsoleHandler) load(c *gin.Context) (*console.Descriptor, interface{}, bool) {
	desc, err := h.con.Descriptor(c.Param("entity"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return nil, nil, false
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return nil, nil, false
	}
	rec, err := h.con.Get(desc, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		} else {
			fail(c, err)
		}
		return nil, nil, false
	}
	return desc, rec, true
}
