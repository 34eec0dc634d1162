package manager

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

// ListManagers - GET /managers
func (h *Handler) ListManagers(c *gin.Context) {
	managers, err := h.Service.ListActive()
	if err != nil {
		utils.LogError(err, nil, "failed to list managers")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list managers"})
		return
	}
	if managers == nil {
		managers = []EventManager{}
	}
	c.JSON(http.StatusOK, managers)
}

// CreateManager - POST /managers
func (h *Handler) CreateManager(c *gin.Context) {
	var req CreateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.Create(&req)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"name": req.Name}, "failed to create manager")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create manager"})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateManager - PATCH /managers/:id
func (h *Handler) UpdateManager(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manager ID"})
		return
	}

	var req UpdateManagerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	updated, err := h.Service.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "manager not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": id}, "failed to update manager")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update manager"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteManager - DELETE /managers/:id (soft delete)
func (h *Handler) DeleteManager(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid manager ID"})
		return
	}

	if err := h.Service.SoftDelete(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "manager not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": id}, "failed to delete manager")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete manager"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "manager deactivated"})
}
