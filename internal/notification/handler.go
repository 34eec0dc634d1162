package notification

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/minseo-dev/event-marketing-backend/middleware"
	"github.com/minseo-dev/event-marketing-backend/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// ListNotifications - GET /notifications?limit=
func (h *Handler) ListNotifications(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}

	items, err := h.Service.ListByUser(userID, limit)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"user_id": userID}, "failed to list notifications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	if items == nil {
		items = []InAppNotification{}
	}

	unread, err := h.Service.CountUnread(userID)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"user_id": userID}, "failed to count unread notifications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"notifications": items, "unread_count": unread})
}

// MarkRead - PATCH /notifications/:id/read
func (h *Handler) MarkRead(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid notification ID"})
		return
	}

	if err := h.Service.MarkAsRead(uint(id), userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": id}, "failed to mark notification read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notification read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "notification marked read"})
}

// MarkAllRead - POST /notifications/read-all
func (h *Handler) MarkAllRead(c *gin.Context) {
	userID := middleware.UserIDFromContext(c)
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
		return
	}

	if err := h.Service.MarkAllAsRead(userID); err != nil {
		utils.LogError(err, map[string]interface{}{"user_id": userID}, "failed to mark notifications read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to mark notifications read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "all notifications marked read"})
}
