package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"shrt/internal/generator"
	"shrt/internal/model"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrInvalidURL is returned when the original URL is malformed
	ErrInvalidURL = errors.New("invalid URL")
	// ErrPastExpiry is returned when the expiration time is not in the future
	ErrPastExpiry = errors.New("expiration date must be in the future")
	// ErrNotFound is returned when the short code is unknown or inactive
	ErrNotFound = errors.New("shortened URL not found")
	// ErrExpired is returned when the shortened URL has expired
	ErrExpired = errors.New("shortened URL has expired")
)

// maxURLLength bounds the accepted original URL
const maxURLLength = 2048

// maxCreateAttempts bounds the perturb-and-retry loop on short code collisions
const maxCreateAttempts = 5

// ShortenerService handles shortened URL operations
type ShortenerService struct {
	gen       *generator.Generator
	mysqlRepo MySQLRepositoryInterface
	domain    string
}

// NewShortenerService creates a new Shortener Service
func NewShortenerService(
	mysqlRepo MySQLRepositoryInterface,
	gen *generator.Generator,
	domain string,
) *ShortenerService {
	return &ShortenerService{
		gen:       gen,
		mysqlRepo: mysqlRepo,
		domain:    strings.TrimRight(domain, "/"),
	}
}

// Shorten creates a shortened URL for the given original URL. Submitting the
// same URL again while its record is still available returns the existing
// record unchanged; new metadata on the repeat call is discarded.
func (s *ShortenerService) Shorten(ctx context.Context, req *model.ShortenRequest, clientIP string) (*model.ShortenResponse, error) {
	if err := validateURL(req.OriginalURL); err != nil {
		return nil, err
	}

	if req.ExpiresAt != nil && !req.ExpiresAt.After(time.Now()) {
		return nil, ErrPastExpiry
	}

	// Dedupe: an available record for the same URL wins
	if existing, err := s.mysqlRepo.GetAvailableByURL(ctx, req.OriginalURL); err == nil && existing.IsAvailable() {
		return s.buildResponse(existing), nil
	}

	u, err := s.create(ctx, req, clientIP)
	if err != nil {
		return nil, err
	}

	return s.buildResponse(u), nil
}

// create inserts a new record, regenerating the short code from a perturbed
// input on unique-constraint violations. The short_code unique index is the
// backstop for two concurrent creators of the same URL: the loser either
// folds into the winner's row or retries with a fresh code.
func (s *ShortenerService) create(ctx context.Context, req *model.ShortenRequest, clientIP string) (*model.ShortenedURL, error) {
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		input := req.OriginalURL
		if attempt > 0 {
			input = fmt.Sprintf("%s#%d", req.OriginalURL, attempt)
		}

		shortCode, err := s.gen.Encode(input)
		if err != nil {
			return nil, fmt.Errorf("failed to generate short code: %w", err)
		}

		u := &model.ShortenedURL{
			OriginalURL: req.OriginalURL,
			ShortCode:   shortCode,
			Title:       optional(req.Title),
			Description: optional(req.Description),
			ExpiresAt:   req.ExpiresAt,
			IsActive:    true,
			CreatedByIP: optional(clientIP),
		}

		err = s.mysqlRepo.SaveShortenedURL(ctx, u)
		if err == nil {
			return u, nil
		}

		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to save shortened URL")
			return nil, fmt.Errorf("failed to create shortened URL: %w", err)
		}

		// A concurrent creator of the same URL may have won the race
		if existing, lookupErr := s.mysqlRepo.GetAvailableByURL(ctx, req.OriginalURL); lookupErr == nil && existing.IsAvailable() {
			return existing, nil
		}

		log.Warn().Str("short_code", shortCode).Int("attempt", attempt+1).Msg("Short code collision, regenerating")
	}

	return nil, fmt.Errorf("failed to create shortened URL: short code collisions exhausted %d attempts", maxCreateAttempts)
}

// Resolve returns the record for a short code. Inactive records are reported
// as not found so deactivated links are indistinguishable from absent ones.
// With trackClick set, the click counter and last access time are updated
// atomically in place.
func (s *ShortenerService) Resolve(ctx context.Context, shortCode string, trackClick bool) (*model.ShortenedURL, error) {
	u, err := s.mysqlRepo.GetByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load shortened URL: %w", err)
	}

	if !u.IsActive {
		return nil, ErrNotFound
	}

	if u.IsExpired() {
		return nil, ErrExpired
	}

	if trackClick {
		now := time.Now()
		if err := s.mysqlRepo.IncrementClickCount(ctx, u.ID, now); err != nil {
			log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to increment click count")
		} else {
			u.ClickCount++
			u.LastAccessedAt = &now
		}
	}

	return u, nil
}

// RecordClick appends a click detail row for a short code. It is best
// effort: an unknown code or a failed insert is logged and swallowed so
// click capture can never break the redirect path.
func (s *ShortenerService) RecordClick(ctx context.Context, shortCode, ipAddress, userAgent, referer string) {
	u, err := s.mysqlRepo.GetByCode(ctx, shortCode)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to load shortened URL for click")
		}
		return
	}

	click := &model.URLClick{
		ShortenedURLID: u.ID,
		IPAddress:      optional(ipAddress),
		UserAgent:      optional(userAgent),
		Referer:        optional(referer),
	}

	if err := s.mysqlRepo.SaveClick(ctx, click); err != nil {
		log.Error().Err(err).Str("short_code", shortCode).Msg("Failed to record click")
	}
}

// Stats returns statistics for a short code. Unlike Resolve, inactive and
// expired records are still reported, with their state flags computed.
func (s *ShortenerService) Stats(ctx context.Context, shortCode string) (*model.StatsResponse, error) {
	u, err := s.mysqlRepo.GetByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load shortened URL: %w", err)
	}

	return &model.StatsResponse{
		ShortCode:      u.ShortCode,
		OriginalURL:    u.OriginalURL,
		Title:          u.Title,
		Description:    u.Description,
		ClickCount:     u.ClickCount,
		CreatedAt:      u.CreatedAt,
		LastAccessedAt: u.LastAccessedAt,
		ExpiresAt:      u.ExpiresAt,
		IsActive:       u.IsActive,
		IsExpired:      u.IsExpired(),
	}, nil
}

// RecentClicks returns the most recent click rows for a short code
func (s *ShortenerService) RecentClicks(ctx context.Context, shortCode string, limit int) ([]model.ClickResponse, error) {
	u, err := s.mysqlRepo.GetByCode(ctx, shortCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load shortened URL: %w", err)
	}

	clicks, err := s.mysqlRepo.GetClicks(ctx, u.ID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load clicks: %w", err)
	}

	resp := make([]model.ClickResponse, 0, len(clicks))
	for _, c := range clicks {
		resp = append(resp, model.ClickResponse{
			ClickedAt: c.ClickedAt,
			IPAddress: c.IPAddress,
			UserAgent: c.UserAgent,
			Referer:   c.Referer,
		})
	}

	return resp, nil
}

// validateURL checks that the original URL is an absolute http/https URL
func validateURL(rawURL string) error {
	if rawURL == "" || len(rawURL) > maxURLLength {
		return ErrInvalidURL
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ErrInvalidURL
	}

	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}

	return nil
}

// optional converts an empty string to a nil pointer
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// buildResponse builds a shorten response from a shortened URL entity
func (s *ShortenerService) buildResponse(u *model.ShortenedURL) *model.ShortenResponse {
	return &model.ShortenResponse{
		ShortCode:   u.ShortCode,
		ShortURL:    fmt.Sprintf("%s/shrt/%s", s.domain, u.ShortCode),
		OriginalURL: u.OriginalURL,
		Title:       u.Title,
		Description: u.Description,
		CreatedAt:   u.CreatedAt,
		ExpiresAt:   u.ExpiresAt,
		ClickCount:  u.ClickCount,
	}
}
