package repository

import (
	"context"
	"time"

	"shrt/internal/config"
	"shrt/internal/model"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MySQLRepository handles MySQL operations
type MySQLRepository struct {
	db *gorm.DB
}

// NewMySQLRepository creates a new MySQL repository
func NewMySQLRepository(cfg *config.MySQLConfig) *MySQLRepository {
	// Configure GORM logger
	var gormLogger logger.Interface
	if zerolog.GlobalLevel() > zerolog.DebugLevel {
		gormLogger = logger.Default.LogMode(logger.Silent)
	} else {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	db, err := gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		// Translate driver errors so unique violations surface as
		// gorm.ErrDuplicatedKey.
		TranslateError: true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MySQL")
	}

	// Auto migrate tables
	if err := db.AutoMigrate(&model.ShortenedURL{}, &model.URLClick{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	log.Info().Msg("MySQL connected successfully")

	return &MySQLRepository{db: db}
}

// GetDB returns the GORM DB instance
func (r *MySQLRepository) GetDB() *gorm.DB {
	return r.db
}

// SaveShortenedURL inserts a shortened URL row. A duplicate short code is
// reported as gorm.ErrDuplicatedKey for the caller to handle.
func (r *MySQLRepository) SaveShortenedURL(ctx context.Context, u *model.ShortenedURL) error {
	return r.db.WithContext(ctx).Create(u).Error
}

// GetByCode retrieves a shortened URL by short code regardless of its
// active or expired state.
func (r *MySQLRepository) GetByCode(ctx context.Context, shortCode string) (*model.ShortenedURL, error) {
	var u model.ShortenedURL
	err := r.db.WithContext(ctx).
		Where("short_code = ?", shortCode).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetAvailableByURL retrieves an active, unexpired shortened URL by
// original URL (for deduplication). Expired rows are skipped so a
// repeat shorten resolves to the row that still serves redirects.
func (r *MySQLRepository) GetAvailableByURL(ctx context.Context, originalURL string) (*model.ShortenedURL, error) {
	var u model.ShortenedURL
	err := r.db.WithContext(ctx).
		Where("original_url = ? AND is_active = ? AND (expires_at IS NULL OR expires_at > ?)", originalURL, true, time.Now().UTC()).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// IncrementClickCount atomically bumps click_count and stamps
// last_accessed_at in place. Only those two columns are written, so
// concurrent resolutions never lose updates.
func (r *MySQLRepository) IncrementClickCount(ctx context.Context, id uint64, accessedAt time.Time) error {
	return r.db.WithContext(ctx).
		Model(&model.ShortenedURL{}).
		Where("id = ?", id).
		UpdateColumns(map[string]interface{}{
			"click_count":      gorm.Expr("click_count + ?", 1),
			"last_accessed_at": accessedAt,
		}).Error
}

// SaveClick appends a click row for a shortened URL
func (r *MySQLRepository) SaveClick(ctx context.Context, click *model.URLClick) error {
	return r.db.WithContext(ctx).Create(click).Error
}

// GetClicks retrieves recent click rows for a shortened URL
func (r *MySQLRepository) GetClicks(ctx context.Context, id uint64, limit int) ([]model.URLClick, error) {
	var clicks []model.URLClick
	query := r.db.WithContext(ctx).
		Where("shortened_url_id = ?", id).
		Order("clicked_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	err := query.Find(&clicks).Error
	return clicks, err
}

// Close closes the database connection
func (r *MySQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
