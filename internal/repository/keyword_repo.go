package repository

import (
	"context"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"gorm.io/gorm"
)

// KeywordRepository handles keyword spot persistence.
type KeywordRepository struct {
	db *gorm.DB
}

// NewKeywordRepository creates a new KeywordRepository.
func NewKeywordRepository(db *gorm.DB) *KeywordRepository {
	return &KeywordRepository{db: db}
}

// CreateBatch inserts keyword spots for a video in one statement.
func (r *KeywordRepository) CreateBatch(ctx context.Context, keywords []domain.Keyword) error {
	if len(keywords) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&keywords).Error
}

// ListByVideoID retrieves all keyword spots of a video ordered by timestamp.
func (r *KeywordRepository) ListByVideoID(ctx context.Context, videoID uint) ([]domain.Keyword, error) {
	var keywords []domain.Keyword
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("timestamp ASC").
		Find(&keywords).Error; err != nil {
		return nil, err
	}
	return keywords, nil
}

// CountByVideoID counts keyword spots belonging to a video.
func (r *KeywordRepository) CountByVideoID(ctx context.Context, videoID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Keyword{}).
		Where("video_id = ?", videoID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
