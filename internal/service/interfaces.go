package service

import (
	"context"
	"time"

	"shrt/internal/model"
)

// MySQLRepositoryInterface defines the interface for MySQL operations (for testing)
type MySQLRepositoryInterface interface {
	SaveShortenedURL(ctx context.Context, u *model.ShortenedURL) error
	GetByCode(ctx context.Context, shortCode string) (*model.ShortenedURL, error)
	GetAvailableByURL(ctx context.Context, originalURL string) (*model.ShortenedURL, error)
	IncrementClickCount(ctx context.Context, id uint64, accessedAt time.Time) error
	SaveClick(ctx context.Context, click *model.URLClick) error
	GetClicks(ctx context.Context, id uint64, limit int) ([]model.URLClick, error)
}

// ShortenerServiceInterface defines the interface for shortened URL operations
type ShortenerServiceInterface interface {
	Shorten(ctx context.Context, req *model.ShortenRequest, clientIP string) (*model.ShortenResponse, error)
	Resolve(ctx context.Context, shortCode string, trackClick bool) (*model.ShortenedURL, error)
	RecordClick(ctx context.Context, shortCode, ipAddress, userAgent, referer string)
	Stats(ctx context.Context, shortCode string) (*model.StatsResponse, error)
	RecentClicks(ctx context.Context, shortCode string, limit int) ([]model.ClickResponse, error)
}
