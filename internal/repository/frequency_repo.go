package repository

import (
	"context"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"gorm.io/gorm"
)

// FrequencyRepository handles word-frequency persistence.
type FrequencyRepository struct {
	db *gorm.DB
}

// NewFrequencyRepository creates a new FrequencyRepository.
func NewFrequencyRepository(db *gorm.DB) *FrequencyRepository {
	return &FrequencyRepository{db: db}
}

// CreateBatch inserts word-frequency rows for a video in one statement.
func (r *FrequencyRepository) CreateBatch(ctx context.Context, frequencies []domain.Frequency) error {
	if len(frequencies) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&frequencies).Error
}

// ListByVideoID retrieves all word-frequency rows of a video.
func (r *FrequencyRepository) ListByVideoID(ctx context.Context, videoID uint) ([]domain.Frequency, error) {
	var frequencies []domain.Frequency
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("count DESC").
		Find(&frequencies).Error; err != nil {
		return nil, err
	}
	return frequencies, nil
}

// CountByVideoID counts word-frequency rows belonging to a video.
func (r *FrequencyRepository) CountByVideoID(ctx context.Context, videoID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Frequency{}).
		Where("video_id = ?", videoID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
