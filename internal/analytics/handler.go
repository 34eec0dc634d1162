package analytics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minseo-dev/event-marketing-backend/internal/event"
	"github.com/minseo-dev/event-marketing-backend/utils"
)

type Handler struct {
	Service *Service
}

func NewHandler(s *Service) *Handler {
	return &Handler{Service: s}
}

// Dashboard - GET /dashboard?year=&month=
// Defaults to the current calendar month.
func (h *Handler) Dashboard(c *gin.Context) {
	now := time.Now()
	year := atoiOr(c.Query("year"), now.Year())
	month := atoiOr(c.Query("month"), int(now.Month()))
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}

	resp, err := h.Service.Dashboard(year, month)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"year": year, "month": month}, "failed to build dashboard")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build dashboard"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MonthlySeries - GET /analytics/monthly?year=
func (h *Handler) MonthlySeries(c *gin.Context) {
	year := atoiOr(c.Query("year"), time.Now().Year())

	series, err := h.Service.MonthlySeriesFor(year)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"year": year}, "failed to build monthly series")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build monthly series"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"year": year, "months": series})
}

// Channels - GET /analytics/channels[?start_date=&end_date=]
// Without a range the rollup covers every event on record.
func (h *Handler) Channels(c *gin.Context) {
	startStr := c.Query("start_date")
	endStr := c.Query("end_date")

	var (
		stats []ChannelStats
		err   error
	)
	if startStr != "" && endStr != "" {
		start, perr := event.ParseDate(startStr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_date, expected YYYY-MM-DD"})
			return
		}
		end, perr := event.ParseDate(endStr)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_date, expected YYYY-MM-DD"})
			return
		}
		if end.Before(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not precede start_date"})
			return
		}
		stats, err = h.Service.ChannelsForPeriod(start, end)
	} else {
		stats, err = h.Service.ChannelsAllTime()
	}
	if err != nil {
		utils.LogError(err, nil, "failed to roll up channels")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to roll up channels"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"channels": stats})
}

// ChannelTrend - GET /analytics/trend?event_type=&year=&month=
func (h *Handler) ChannelTrend(c *gin.Context) {
	eventType := c.Query("event_type")
	if !event.ValidType(eventType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown event_type"})
		return
	}

	now := time.Now()
	year := atoiOr(c.Query("year"), now.Year())
	month := atoiOr(c.Query("month"), int(now.Month()))
	if month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "month must be between 1 and 12"})
		return
	}

	trend, nextTargets, err := h.Service.ChannelTrendFor(eventType, year, month)
	if err != nil {
		utils.LogError(err, map[string]interface{}{"event_type": eventType}, "failed to compute trend")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute trend"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":               year,
		"month":              month,
		"trend":              trend,
		"next_month_targets": nextTargets,
	})
}

func atoiOr(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}
