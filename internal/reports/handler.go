package reports

import (
	"errors"
	"net/http"

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

// CreateReport - POST /reports
func (h *Handler) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input: " + err.Error()})
		return
	}

	created, err := h.Service.Create(&req, middleware.UserIDFromContext(c))
	if err != nil {
		utils.LogError(err, map[string]interface{}{"period_type": req.PeriodType}, "failed to create report")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListReports - GET /reports
func (h *Handler) ListReports(c *gin.Context) {
	reps, err := h.Service.List()
	if err != nil {
		utils.LogError(err, nil, "failed to list reports")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}
	if reps == nil {
		reps = []Report{}
	}
	c.JSON(http.StatusOK, reps)
}

// GetReport - GET /reports/:id
func (h *Handler) GetReport(c *gin.Context) {
	rep, err := h.Service.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": c.Param("id")}, "failed to fetch report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch report"})
		return
	}
	c.JSON(http.StatusOK, rep)
}

// ExportReport - GET /reports/:id/export?format=
func (h *Handler) ExportReport(c *gin.Context) {
	format := c.DefaultQuery("format", FormatText)

	data, filename, mime, err := h.Service.Export(c.Param("id"), format)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": c.Param("id"), "format": format}, "failed to export report")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, mime, data)
}

// DeleteReport - DELETE /reports/:id
func (h *Handler) DeleteReport(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		utils.LogError(err, map[string]interface{}{"id": c.Param("id")}, "failed to delete report")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "report deleted successfully"})
}
