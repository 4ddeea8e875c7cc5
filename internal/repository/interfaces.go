package repository

import (
	"context"
	"time"

	"shrt/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations
type MySQLRepositoryInterface interface {
	SaveShortenedURL(ctx context.Context, u *model.ShortenedURL) error
	GetByCode(ctx context.Context, shortCode string) (*model.ShortenedURL, error)
	GetAvailableByURL(ctx context.Context, originalURL string) (*model.ShortenedURL, error)
	IncrementClickCount(ctx context.Context, id uint64, accessedAt time.Time) error
	SaveClick(ctx context.Context, click *model.URLClick) error
	GetClicks(ctx context.Context, id uint64, limit int) ([]model.URLClick, error)
	Close() error
}
