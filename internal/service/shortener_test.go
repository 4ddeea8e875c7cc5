package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"shrt/internal/generator"
	"shrt/internal/mocks"
	"shrt/internal/model"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestGenerator(t *testing.T) *generator.Generator {
	gen, err := generator.New("test-salt", 8)
	require.NoError(t, err)
	return gen
}

func TestNewShortenerService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
	gen := newTestGenerator(t)

	svc := NewShortenerService(mockRepo, gen, "https://s.example.com/")

	assert.NotNil(t, svc)
	assert.Equal(t, "https://s.example.com", svc.domain)
}

func TestShortenerService_Shorten(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-time.Second)

	tests := []struct {
		name      string
		req       *model.ShortenRequest
		setupMock func(*mocks.MockMySQLRepositoryInterface)
		wantErr   error
		wantCode  string
	}{
		{
			name:      "empty URL",
			req:       &model.ShortenRequest{OriginalURL: ""},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {},
			wantErr:   ErrInvalidURL,
		},
		{
			name:      "missing scheme",
			req:       &model.ShortenRequest{OriginalURL: "example.com/path"},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {},
			wantErr:   ErrInvalidURL,
		},
		{
			name:      "unsupported scheme",
			req:       &model.ShortenRequest{OriginalURL: "ftp://example.com/file"},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {},
			wantErr:   ErrInvalidURL,
		},
		{
			name:      "expiration in the past",
			req:       &model.ShortenRequest{OriginalURL: "https://example.com", ExpiresAt: &past},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {},
			wantErr:   ErrPastExpiry,
		},
		{
			name: "dedupe returns existing record",
			req:  &model.ShortenRequest{OriginalURL: "https://example.com", Title: "ignored"},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com").Return(&model.ShortenedURL{
					ID:          1,
					ShortCode:   "eXiStInG",
					OriginalURL: "https://example.com",
					IsActive:    true,
				}, nil)
			},
			wantCode: "eXiStInG",
		},
		{
			name: "expired match from lookup is ignored, creates new one",
			req:  &model.ShortenRequest{OriginalURL: "https://example.com"},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com").Return(&model.ShortenedURL{
					ID:          1,
					ShortCode:   "oLdCoDe1",
					OriginalURL: "https://example.com",
					IsActive:    true,
					ExpiresAt:   &past,
				}, nil)
				m.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "creates new record",
			req:  &model.ShortenRequest{OriginalURL: "https://example.com", Title: "Example", ExpiresAt: &future},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com").Return(nil, gorm.ErrRecordNotFound)
				m.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "duplicate key folds into concurrent winner",
			req:  &model.ShortenRequest{OriginalURL: "https://example.com"},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com").Return(nil, gorm.ErrRecordNotFound)
				m.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)
				m.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com").Return(&model.ShortenedURL{
					ID:          7,
					ShortCode:   "wInNeR12",
					OriginalURL: "https://example.com",
					IsActive:    true,
				}, nil)
			},
			wantCode: "wInNeR12",
		},
		{
			name: "duplicate key retries with regenerated code",
			req:  &model.ShortenRequest{OriginalURL: "https://example.com"},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com").Return(nil, gorm.ErrRecordNotFound)
				m.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)
				m.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com").Return(nil, gorm.ErrRecordNotFound)
				m.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "persistence failure surfaces generically",
			req:  &model.ShortenRequest{OriginalURL: "https://example.com"},
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com").Return(nil, gorm.ErrRecordNotFound)
				m.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))
			},
			wantErr: errors.New("failed to create shortened URL"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
			tt.setupMock(mockRepo)

			svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
			resp, err := svc.Shorten(context.Background(), tt.req, "203.0.113.7")

			if tt.wantErr != nil {
				require.Error(t, err)
				if errors.Is(tt.wantErr, ErrInvalidURL) || errors.Is(tt.wantErr, ErrPastExpiry) {
					assert.ErrorIs(t, err, tt.wantErr)
				} else {
					assert.Contains(t, err.Error(), tt.wantErr.Error())
				}
				assert.Nil(t, resp)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, resp.ShortCode)
			} else {
				assert.NotEmpty(t, resp.ShortCode)
			}
			assert.Equal(t, tt.req.OriginalURL, resp.OriginalURL)
			assert.Equal(t, "https://s.example.com/shrt/"+resp.ShortCode, resp.ShortURL)
		})
	}
}

func TestShortenerService_Shorten_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
	svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
	ctx := context.Background()

	var saved *model.ShortenedURL

	// First call: nothing exists, a row is inserted
	mockRepo.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com/a").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *model.ShortenedURL) error {
			u.ID = 1
			saved = u
			return nil
		})

	first, err := svc.Shorten(ctx, &model.ShortenRequest{OriginalURL: "https://example.com/a"}, "")
	require.NoError(t, err)

	// Second call: dedupe finds the stored row, no new insert
	mockRepo.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com/a").DoAndReturn(
		func(_ context.Context, _ string) (*model.ShortenedURL, error) {
			return saved, nil
		})

	second, err := svc.Shorten(ctx, &model.ShortenRequest{OriginalURL: "https://example.com/a", Title: "late metadata"}, "")
	require.NoError(t, err)

	assert.Equal(t, first.ShortCode, second.ShortCode)
	assert.Nil(t, second.Title)
}

func TestShortenerService_Shorten_IdempotentAfterExpiry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
	gen := newTestGenerator(t)
	svc := NewShortenerService(mockRepo, gen, "https://s.example.com")
	ctx := context.Background()

	// An expired row for the same URL still holds the base short code,
	// but the dedupe lookup skips it.
	baseCode, err := gen.Encode("https://example.com/a")
	require.NoError(t, err)

	var saved *model.ShortenedURL

	// First call: the base code collides with the expired row, no
	// available row to fold into, so a regenerated code is inserted
	mockRepo.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com/a").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).Return(gorm.ErrDuplicatedKey)
	mockRepo.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com/a").Return(nil, gorm.ErrRecordNotFound)
	mockRepo.EXPECT().SaveShortenedURL(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u *model.ShortenedURL) error {
			u.ID = 2
			saved = u
			return nil
		})

	first, err := svc.Shorten(ctx, &model.ShortenRequest{OriginalURL: "https://example.com/a"}, "")
	require.NoError(t, err)
	assert.NotEqual(t, baseCode, first.ShortCode)

	// Second call: the dedupe lookup finds the fresh row, no new insert
	mockRepo.EXPECT().GetAvailableByURL(gomock.Any(), "https://example.com/a").DoAndReturn(
		func(_ context.Context, _ string) (*model.ShortenedURL, error) {
			return saved, nil
		})

	second, err := svc.Shorten(ctx, &model.ShortenRequest{OriginalURL: "https://example.com/a"}, "")
	require.NoError(t, err)
	assert.Equal(t, first.ShortCode, second.ShortCode)
}

func TestShortenerService_LookupFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
	svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
	ctx := context.Background()

	dbErr := errors.New("dial tcp 127.0.0.1:3306: connect: connection refused")

	t.Run("resolve surfaces persistence failure", func(t *testing.T) {
		mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(nil, dbErr)

		u, err := svc.Resolve(ctx, "aBcDeFgH", false)
		assert.Nil(t, u)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, err, dbErr)
	})

	t.Run("stats surfaces persistence failure", func(t *testing.T) {
		mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(nil, dbErr)

		stats, err := svc.Stats(ctx, "aBcDeFgH")
		assert.Nil(t, stats)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("recent clicks surfaces persistence failure", func(t *testing.T) {
		mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(nil, dbErr)

		clicks, err := svc.RecentClicks(ctx, "aBcDeFgH", 10)
		assert.Nil(t, clicks)
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("record click swallows persistence failure", func(t *testing.T) {
		mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(nil, dbErr)

		svc.RecordClick(ctx, "aBcDeFgH", "203.0.113.9", "curl/8.0", "")
	})
}

func TestShortenerService_Resolve(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	tests := []struct {
		name      string
		setupMock func(*mocks.MockMySQLRepositoryInterface)
		track     bool
		wantErr   error
	}{
		{
			name: "not found",
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(nil, gorm.ErrRecordNotFound)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "inactive treated as not found",
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{
					ID:        1,
					ShortCode: "aBcDeFgH",
					IsActive:  false,
				}, nil)
			},
			wantErr: ErrNotFound,
		},
		{
			name: "expired",
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{
					ID:        1,
					ShortCode: "aBcDeFgH",
					IsActive:  true,
					ExpiresAt: &past,
				}, nil)
			},
			wantErr: ErrExpired,
		},
		{
			name: "success without tracking",
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{
					ID:          1,
					ShortCode:   "aBcDeFgH",
					OriginalURL: "https://example.com",
					IsActive:    true,
				}, nil)
			},
		},
		{
			name:  "success with tracking",
			track: true,
			setupMock: func(m *mocks.MockMySQLRepositoryInterface) {
				m.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{
					ID:          1,
					ShortCode:   "aBcDeFgH",
					OriginalURL: "https://example.com",
					IsActive:    true,
					ClickCount:  4,
				}, nil)
				m.EXPECT().IncrementClickCount(gomock.Any(), uint64(1), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
			tt.setupMock(mockRepo)

			svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
			u, err := svc.Resolve(context.Background(), "aBcDeFgH", tt.track)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, u)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, "https://example.com", u.OriginalURL)
			if tt.track {
				assert.Equal(t, uint64(5), u.ClickCount)
				assert.NotNil(t, u.LastAccessedAt)
			}
		})
	}
}

func TestShortenerService_Resolve_TrackingFailureStillResolves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
	mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{
		ID:          1,
		ShortCode:   "aBcDeFgH",
		OriginalURL: "https://example.com",
		IsActive:    true,
		ClickCount:  4,
	}, nil)
	mockRepo.EXPECT().IncrementClickCount(gomock.Any(), uint64(1), gomock.Any()).Return(assert.AnError)

	svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
	u, err := svc.Resolve(context.Background(), "aBcDeFgH", true)

	require.NoError(t, err)
	assert.Equal(t, uint64(4), u.ClickCount)
	assert.Nil(t, u.LastAccessedAt)
}

func TestShortenerService_RecordClick(t *testing.T) {
	t.Run("unknown code is a silent no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRepo.EXPECT().GetByCode(gomock.Any(), "missing0").Return(nil, gorm.ErrRecordNotFound)

		svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
		assert.NotPanics(t, func() {
			svc.RecordClick(context.Background(), "missing0", "203.0.113.7", "agent", "https://ref.example.com")
		})
	})

	t.Run("records click row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{ID: 9, ShortCode: "aBcDeFgH"}, nil)
		mockRepo.EXPECT().SaveClick(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, click *model.URLClick) error {
				assert.Equal(t, uint64(9), click.ShortenedURLID)
				require.NotNil(t, click.IPAddress)
				assert.Equal(t, "203.0.113.7", *click.IPAddress)
				assert.Nil(t, click.Referer)
				return nil
			})

		svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
		svc.RecordClick(context.Background(), "aBcDeFgH", "203.0.113.7", "agent", "")
	})

	t.Run("insert failure is swallowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{ID: 9}, nil)
		mockRepo.EXPECT().SaveClick(gomock.Any(), gomock.Any()).Return(assert.AnError)

		svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
		assert.NotPanics(t, func() {
			svc.RecordClick(context.Background(), "aBcDeFgH", "", "", "")
		})
	})
}

func TestShortenerService_Stats(t *testing.T) {
	past := time.Now().Add(-time.Hour)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRepo.EXPECT().GetByCode(gomock.Any(), "missing0").Return(nil, gorm.ErrRecordNotFound)

		svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
		stats, err := svc.Stats(context.Background(), "missing0")

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, stats)
	})

	t.Run("expired and inactive rows still report stats", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{
			ID:          1,
			ShortCode:   "aBcDeFgH",
			OriginalURL: "https://example.com",
			IsActive:    false,
			ExpiresAt:   &past,
			ClickCount:  42,
		}, nil)

		svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
		stats, err := svc.Stats(context.Background(), "aBcDeFgH")

		require.NoError(t, err)
		assert.Equal(t, uint64(42), stats.ClickCount)
		assert.False(t, stats.IsActive)
		assert.True(t, stats.IsExpired)
	})
}

func TestShortenerService_RecentClicks(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRepo.EXPECT().GetByCode(gomock.Any(), "missing0").Return(nil, gorm.ErrRecordNotFound)

		svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
		clicks, err := svc.RecentClicks(context.Background(), "missing0", 10)

		assert.ErrorIs(t, err, ErrNotFound)
		assert.Nil(t, clicks)
	})

	t.Run("returns recent clicks", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		ip := "203.0.113.7"
		mockRepo := mocks.NewMockMySQLRepositoryInterface(ctrl)
		mockRepo.EXPECT().GetByCode(gomock.Any(), "aBcDeFgH").Return(&model.ShortenedURL{ID: 3}, nil)
		mockRepo.EXPECT().GetClicks(gomock.Any(), uint64(3), 10).Return([]model.URLClick{
			{ShortenedURLID: 3, IPAddress: &ip},
			{ShortenedURLID: 3},
		}, nil)

		svc := NewShortenerService(mockRepo, newTestGenerator(t), "https://s.example.com")
		clicks, err := svc.RecentClicks(context.Background(), "aBcDeFgH", 10)

		require.NoError(t, err)
		require.Len(t, clicks, 2)
		assert.Equal(t, &ip, clicks[0].IPAddress)
	})
}
