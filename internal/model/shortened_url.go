package model

import (
	"time"
)

// ShortenedURL represents a shortened URL entity
type ShortenedURL struct {
	ID             uint64     `json:"id" gorm:"primaryKey;autoIncrement"`
	OriginalURL    string     `json:"original_url" gorm:"type:varchar(2048);not null;index:idx_original_url,length:255"`
	ShortCode      string     `json:"short_code" gorm:"type:varchar(20);uniqueIndex;not null"`
	Title          *string    `json:"title" gorm:"type:varchar(200)"`
	Description    *string    `json:"description" gorm:"type:text"`
	CreatedAt      time.Time  `json:"created_at" gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	ExpiresAt      *time.Time `json:"expires_at" gorm:"index"`
	IsActive       bool       `json:"is_active" gorm:"default:true;index"`
	ClickCount     uint64     `json:"click_count" gorm:"default:0"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	CreatedByIP    *string    `json:"created_by_ip" gorm:"type:varchar(45)"`

	Clicks []URLClick `json:"-" gorm:"foreignKey:ShortenedURLID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for ShortenedURL
func (ShortenedURL) TableName() string {
	return "shortened_urls"
}

// IsExpired reports whether the shortened URL has passed its expiration time.
// A URL without an expiration time never expires.
func (u *ShortenedURL) IsExpired() bool {
	if u.ExpiresAt == nil {
		return false
	}
	return time.Now().After(*u.ExpiresAt)
}

// IsAvailable reports whether the shortened URL can be resolved:
// it must be active and not expired.
func (u *ShortenedURL) IsAvailable() bool {
	return u.IsActive && !u.IsExpired()
}

// ShortenRequest represents the request to create a shortened URL
type ShortenRequest struct {
	OriginalURL string     `json:"original_url" binding:"required,url,max=2048"`
	Title       string     `json:"title" binding:"max=200"`
	Description string     `json:"description" binding:"max=1000"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

// ShortenResponse represents the response of shortened URL creation
type ShortenResponse struct {
	ShortCode   string     `json:"short_code"`
	ShortURL    string     `json:"short_url"`
	OriginalURL string     `json:"original_url"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at"`
	ClickCount  uint64     `json:"click_count"`
}

// RedirectInfoResponse represents the resolution data returned when the
// caller asks for info instead of a redirect
type RedirectInfoResponse struct {
	OriginalURL string  `json:"original_url"`
	ShortCode   string  `json:"short_code"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// StatsResponse represents the statistics for a shortened URL
type StatsResponse struct {
	ShortCode      string     `json:"short_code"`
	OriginalURL    string     `json:"original_url"`
	Title          *string    `json:"title"`
	Description    *string    `json:"description"`
	ClickCount     uint64     `json:"click_count"`
	CreatedAt      time.Time  `json:"created_at"`
	LastAccessedAt *time.Time `json:"last_accessed_at"`
	ExpiresAt      *time.Time `json:"expires_at"`
	IsActive       bool       `json:"is_active"`
	IsExpired      bool       `json:"is_expired"`
}
