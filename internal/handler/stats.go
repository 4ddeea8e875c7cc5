package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"shrt/internal/service"

	"github.com/gin-gonic/gin"
)

// defaultClicksLimit caps the recent-clicks listing
const defaultClicksLimit = 50

// StatsHandler handles shortened URL statistics
type StatsHandler struct {
	service service.ShortenerServiceInterface
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(service service.ShortenerServiceInterface) *StatsHandler {
	return &StatsHandler{service: service}
}

// Stats handles GET /api/v1/stats/:shortCode
// @Summary Get statistics for a shortened URL
// @Description Returns counters and state for a short code. Works for inactive and expired links too.
// @Tags analytics
// @Produce json
// @Param shortCode path string true "Short code"
// @Success 200 {object} model.StatsResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/stats/{shortCode} [get]
func (h *StatsHandler) Stats(c *gin.Context) {
	shortCode := c.Param("shortCode")

	stats, err := h.service.Stats(c.Request.Context(), shortCode)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: fmt.Sprintf("Short URL '%s' not found", shortCode),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// Clicks handles GET /api/v1/stats/:shortCode/clicks
// @Summary List recent clicks for a shortened URL
// @Description Returns the most recent tracked clicks for a short code.
// @Tags analytics
// @Produce json
// @Param shortCode path string true "Short code"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} model.ClickResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/stats/{shortCode}/clicks [get]
func (h *StatsHandler) Clicks(c *gin.Context) {
	shortCode := c.Param("shortCode")

	limit := defaultClicksLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= defaultClicksLimit {
			limit = n
		}
	}

	clicks, err := h.service.RecentClicks(c.Request.Context(), shortCode, limit)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{
				Error: fmt.Sprintf("Short URL '%s' not found", shortCode),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		return
	}

	c.JSON(http.StatusOK, clicks)
}
