package model

import (
	"time"
)

// URLClick represents a single tracked resolution of a shortened URL.
// Rows are append-only: they are written on redirects and never updated.
type URLClick struct {
	ID             uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	ShortenedURLID uint64    `json:"shortened_url_id" gorm:"index:idx_url_clicked,priority:1;not null"`
	ClickedAt      time.Time `json:"clicked_at" gorm:"autoCreateTime;index:idx_url_clicked,priority:2"`
	IPAddress      *string   `json:"ip_address" gorm:"type:varchar(45);index"`
	UserAgent      *string   `json:"user_agent" gorm:"type:varchar(512)"`
	Referer        *string   `json:"referer" gorm:"type:varchar(2048)"`
}

// TableName returns the table name for URLClick
func (URLClick) TableName() string {
	return "url_clicks"
}

// ClickResponse represents a single click row in the recent-clicks listing
type ClickResponse struct {
	ClickedAt time.Time `json:"clicked_at"`
	IPAddress *string   `json:"ip_address"`
	UserAgent *string   `json:"user_agent"`
	Referer   *string   `json:"referer"`
}
