package repository

import (
	"context"
	"errors"

	"github.com/castela0119/Elice-Team5/internal/domain"
	"gorm.io/gorm"
)

// VideoRepository handles video aggregate-root persistence.
type VideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new VideoRepository.
// Parameters:
//   - db: GORM database handle used for queries.
// Returns:
//   - *VideoRepository: repository instance bound to db.
func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// Create inserts a new video record.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - video: video record to persist; ID is assigned on insert.
// Returns:
//   - error: non-nil if the insert fails.
func (r *VideoRepository) Create(ctx context.Context, video *domain.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

// GetByID retrieves a video by its ID.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - id: video ID.
// Returns:
//   - *domain.Video: video record if found.
//   - error: domain.ErrNotFound on a miss, otherwise the lookup error.
func (r *VideoRepository) GetByID(ctx context.Context, id uint) (*domain.Video, error) {
	var video domain.Video
	if err := r.db.WithContext(ctx).First(&video, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &video, nil
}

// ListByOwner retrieves all videos currently owned by a user.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - userID: owning user ID.
// Returns:
//   - []domain.Video: matching video records, newest first.
//   - error: non-nil if the query fails.
func (r *VideoRepository) ListByOwner(ctx context.Context, userID uint) ([]domain.Video, error) {
	var videos []domain.Video
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// SetOwner overwrites the owner column of a video. Passing nil clears
// ownership. The write is unconditional: concurrent callers race and
// the last write wins.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - videoID: video to update.
//   - userID: new owner, or nil to detach.
// Returns:
//   - error: domain.ErrNotFound if no row matched, otherwise the write error.
func (r *VideoRepository) SetOwner(ctx context.Context, videoID uint, userID *uint) error {
	res := r.db.WithContext(ctx).
		Model(&domain.Video{}).
		Where("id = ?", videoID).
		Update("user_id", userID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetStatus updates the analysis status of a video.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - videoID: video to update.
//   - status: new analysis status.
// Returns:
//   - error: non-nil if the write fails.
func (r *VideoRepository) SetStatus(ctx context.Context, videoID uint, status domain.VideoStatus) error {
	return r.db.WithContext(ctx).
		Model(&domain.Video{}).
		Where("id = ?", videoID).
		Update("status", status).Error
}
