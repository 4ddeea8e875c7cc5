package handler

import (
	"errors"
	"fmt"
	"net/http"

	"shrt/internal/model"
	"shrt/internal/service"

	"github.com/gin-gonic/gin"
)

// RedirectHandler handles shortened URL resolution
type RedirectHandler struct {
	service service.ShortenerServiceInterface
}

// NewRedirectHandler creates a new RedirectHandler
func NewRedirectHandler(service service.ShortenerServiceInterface) *RedirectHandler {
	return &RedirectHandler{service: service}
}

// Redirect handles GET /shrt/:shortCode
// @Summary Resolve a shortened URL
// @Description Redirects to the original URL, or returns resolution info when info=true. Clicks are tracked on redirects only.
// @Tags shortener
// @Param shortCode path string true "Short code"
// @Param info query bool false "Return URL information instead of redirecting"
// @Success 302
// @Success 200 {object} model.RedirectInfoResponse
// @Failure 404 {object} ErrorResponse
// @Failure 410 {object} ErrorResponse
// @Router /shrt/{shortCode} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	shortCode := c.Param("shortCode")
	infoOnly := c.Query("info") == "true"

	// Info requests inspect the record without counting as a click
	u, err := h.service.Resolve(c.Request.Context(), shortCode, !infoOnly)
	if err != nil {
		h.renderResolveError(c, shortCode, err)
		return
	}

	if infoOnly {
		c.JSON(http.StatusOK, model.RedirectInfoResponse{
			OriginalURL: u.OriginalURL,
			ShortCode:   u.ShortCode,
			Title:       u.Title,
			Description: u.Description,
		})
		return
	}

	// Best-effort click detail capture; never affects the redirect
	h.service.RecordClick(
		c.Request.Context(),
		shortCode,
		c.ClientIP(),
		c.Request.UserAgent(),
		c.Request.Referer(),
	)

	c.Redirect(http.StatusFound, u.OriginalURL)
}

func (h *RedirectHandler) renderResolveError(c *gin.Context, shortCode string, err error) {
	switch {
	case errors.Is(err, service.ErrExpired):
		c.JSON(http.StatusGone, ErrorResponse{
			Error: fmt.Sprintf("Short URL '%s' has expired", shortCode),
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error: fmt.Sprintf("Short URL '%s' not found", shortCode),
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
	}
}
