package partner

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minseo-dev/event-marketing-backend/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ListPartners - GET /partners
func (h *Handler) ListPartners(c *gin.Context) {
	partners, err := h.Service.ListActive()
	if err != nil {
		utils.LogError(err, nil, "failed to list partners")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list partners"})
		return
	}
	if partners == nil {
		partners = []Partner{}
	}
	c.JSON(http.StatusOK, partners)
}

// CreatePartner - POST /partners
func (h *Handler) CreatePartner(c *gin.Context) {
	var req CreatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.Create(&req)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"name": req.Name}, "failed to create partner")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create partner"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdatePartner - PATCH /partners/:id
func (h *Handler) UpdatePartner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partner ID"})
		return
	}

	var req UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	updated, err := h.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": id}, "failed to update partner")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update partner"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeletePartner - DELETE /partners/:id (soft delete)
func (h *Handler) DeletePartner(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid partner ID"})
		return
	}

	if err := h.Service.SoftDelete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "partner not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": id}, "failed to delete partner")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete partner"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "partner deactivated"})
}
