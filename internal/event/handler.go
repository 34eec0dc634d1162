package event

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

// CreateEvent - POST /events
func (h *Handler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.Create(&req, middleware.UserIDFromContext(c))
	if err != nil {
		utils.LogError(err, map[string]interface{}{"title": req.Title}, "failed to create event")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// GetEvent - GET /events/:id
func (h *Handler) GetEvent(c *gin.Context) {
	e, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, e)
}

// ListEvents - GET /events
//
// Query filters select one of the read variants:
//
//	?start_date=&end_date=   period overlap
//	?year=&month=            calendar month (start_date based)
//	?year=&quarter=          quarter span, overlap semantics
//	?status=                 exact status match
//
// With no filters, all events ordered by creation time descending.
func (h *Handler) ListEvents(c *gin.Context) {
	var (
		events []Event
		err    error
	)

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")
	status := c.Query("status")
	yearStr := c.Query("year")
	monthStr := c.Query("month")
	quarterStr := c.Query("quarter")

	switch {
	case startDate != "" && endDate != "":
		events, err = h.Service.ListByPeriod(startDate, endDate)
	case yearStr != "" && monthStr != "":
		year, month := atoiOr(yearStr, 0), atoiOr(monthStr, 0)
		events, err = h.Service.ListByMonth(year, month)
	case yearStr != "" && quarterStr != "":
		year, quarter := atoiOr(yearStr, 0), atoiOr(quarterStr, 0)
		events, err = h.Service.ListByQuarter(year, quarter)
	case status != "":
		events, err = h.Service.ListByStatus(status)
	default:
		events, err = h.Service.ListAll()
	}

	if err != nil {
		utils.LogError(err, map[string]interface{}{"path": c.Request.URL.String()}, "failed to list events")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if events == nil {
		events = []Event{}
	}
	c.JSON(http.StatusOK, events)
}

// UpdateEvent - PATCH /events/:id
func (h *Handler) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Param("id"), &req, middleware.UserIDFromContext(c))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": c.Param("id")}, "failed to update event")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteEvent - DELETE /events/:id
func (h *Handler) DeleteEvent(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id"), middleware.UserIDFromContext(c)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "event not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": c.Param("id")}, "failed to delete event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "event deleted successfully"})
}

// EventTypes - GET /events/types (form select options)
func (h *Handler) EventTypes(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"types":    Types,
		"statuses": Statuses,
	})
}

func atoiOr(s string, fallback int) int {
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	return fallback
}
