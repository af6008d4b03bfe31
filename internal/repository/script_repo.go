package repository

import (
	"context"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"gorm.io/gorm"
)

// ScriptRepository handles transcript segment persistence.
type ScriptRepository struct {
	db *gorm.DB
}

// NewScriptRepository creates a new ScriptRepository.
func NewScriptRepository(db *gorm.DB) *ScriptRepository {
	return &ScriptRepository{db: db}
}

// CreateBatch inserts transcript segments for a video in one statement.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - scripts: segment rows to persist; no-op when empty.
// Returns:
//   - error: non-nil if the insert fails.
func (r *ScriptRepository) CreateBatch(ctx context.Context, scripts []domain.Script) error {
	if len(scripts) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&scripts).Error
}

// ListByVideoID retrieves all segments of a video ordered by timestamp.
func (r *ScriptRepository) ListByVideoID(ctx context.Context, videoID uint) ([]domain.Script, error) {
	var scripts []domain.Script
	if err := r.db.WithContext(ctx).
		Where("video_id = ?", videoID).
		Order("timestamp ASC").
		Find(&scripts).Error; err != nil {
		return nil, err
	}
	return scripts, nil
}

// CountByVideoID counts segments belonging to a video.
func (r *ScriptRepository) CountByVideoID(ctx context.Context, videoID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Script{}).
		Where("video_id = ?", videoID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
