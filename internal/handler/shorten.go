package handler

import (
	"errors"
	"net/http"

	"shrt/internal/model"
	"shrt/internal/service"

	"github.com/gin-gonic/gin"
)

// ShortenHandler handles shortened URL creation
type ShortenHandler struct {
	service service.ShortenerServiceInterface
}

// NewShortenHandler creates a new ShortenHandler
func NewShortenHandler(service service.ShortenerServiceInterface) *ShortenHandler {
	return &ShortenHandler{service: service}
}

// Shorten handles POST /api/v1/shorten
// @Summary Create a shortened URL
// @Description Creates a shortened URL for the given original URL. Repeated submissions of the same still-valid URL return the existing record.
// @Tags shortener
// @Accept json
// @Produce json
// @Param request body model.ShortenRequest true "Shorten request"
// @Success 201 {object} model.ShortenResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/shorten [post]
func (h *ShortenHandler) Shorten(c *gin.Context) {
	var req model.ShortenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "Invalid input data",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.service.Shorten(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidURL), errors.Is(err, service.ErrPastExpiry):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "An unexpected error occurred"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ErrorResponse is the error API response
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
